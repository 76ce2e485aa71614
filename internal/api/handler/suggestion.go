package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
)

// GetContentSuggestions gera sugestões de conteúdo sob demanda para a
// conta. Com a IA indisponível, responde as sugestões fixas do nicho.
func GetContentSuggestions(
	accountRepo repository.TrackedAccountRepository,
	analyzer feedback.Analyzer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetContentSuggestions")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não especificado", nil)
			return
		}

		account, err := accountRepo.GetByID(domain.AccountID(accountID))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Erro ao buscar conta para sugestões de conteúdo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
			return
		}

		suggestions, err := analyzer.GenerateAccountSuggestions(account)
		if err != nil || len(suggestions) == 0 {
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"error":      err.Error(),
				}).Warn("Geração de sugestões por IA indisponível, usando sugestões do nicho")
			}
			suggestions = feedback.FallbackSuggestions(account.Niche)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"suggestions": suggestions})
	}
}
