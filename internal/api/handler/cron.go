package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/internal/scheduler"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetrics   = "metrics"
	CronJobTypeFeedback  = "feedback"
	CronJobTypeReports   = "reports"
	CronJobTypeRetention = "retention"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MetricsCollectionService *scheduler.MetricsCollectionService
	FeedbackAnalysisService  *scheduler.FeedbackAnalysisService
	ReportGenerationService  *scheduler.ReportGenerationService
	RetentionSweepService    *scheduler.RetentionSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeMetrics:
			if services.MetricsCollectionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta de métricas não disponível", nil)
				return
			}
			services.MetricsCollectionService.TriggerManualSync()

		case CronJobTypeFeedback:
			if services.FeedbackAnalysisService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise de feedback não disponível", nil)
				return
			}
			services.FeedbackAnalysisService.TriggerManualSync()

		case CronJobTypeReports:
			if services.ReportGenerationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de geração de relatórios não disponível", nil)
				return
			}
			services.ReportGenerationService.TriggerManualSync()

		case CronJobTypeRetention:
			if services.RetentionSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de dados antigos não disponível", nil)
				return
			}
			services.RetentionSweepService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MetricsCollectionService != nil {
				services.MetricsCollectionService.TriggerManualSync()
			}
			if services.FeedbackAnalysisService != nil {
				services.FeedbackAnalysisService.TriggerManualSync()
			}
			if services.ReportGenerationService != nil {
				services.ReportGenerationService.TriggerManualSync()
			}
			if services.RetentionSweepService != nil {
				services.RetentionSweepService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: metrics, feedback, reports, retention, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"metrics":   services.MetricsCollectionService.GetStatus(),
			"feedback":  services.FeedbackAnalysisService.GetStatus(),
			"reports":   services.ReportGenerationService.GetStatus(),
			"retention": services.RetentionSweepService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
