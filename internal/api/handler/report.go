package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

// GetReport retorna o registro de um relatório pelo ID. Relatório ainda
// não finalizado volta com is_ready=false e sem caminho de artefato.
func GetReport(reportRepo repository.ReportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReport")

		reportID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if reportID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do relatório não especificado", nil)
			return
		}

		report, err := reportRepo.GetByID(reportID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"report_id": reportID,
				"error":     err.Error(),
			}).Error("Erro ao buscar relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Relatório não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// GenerateReport compila sob demanda um relatório personalizado da conta
// para o período informado em start_date e end_date (AAAA-MM-DD)
func GenerateReport(
	accountRepo repository.TrackedAccountRepository,
	compiler reporting.Compiler,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateReport")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não especificado", nil)
			return
		}

		if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período do relatório não especificado", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}

		// O período precisa ser um intervalo real: início estritamente
		// anterior ao fim
		if !endDate.After(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data final deve ser posterior à data inicial", nil)
			return
		}

		account, err := accountRepo.GetByID(domain.AccountID(accountID))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Erro ao buscar conta para geração de relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
			return
		}

		report, err := compiler.Compile(account, domain.ReportKindCustom, *startDate, *endDate)
		if err != nil {
			if errors.Is(err, reporting.ErrNoData) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Sem dados no período informado", nil)
				return
			}

			wrapped := errors.Wrap(err, "erro ao compilar relatório personalizado")
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      wrapped.Error(),
			}).Error("Erro na geração de relatório sob demanda")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(report)
	}
}
