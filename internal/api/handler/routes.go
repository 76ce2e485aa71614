package handler

import (
	"net/http"

	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/api/handler/router"
	"github.com/vfg2006/creator-insights-api/internal/usecases/credentialing"
	"github.com/vfg2006/creator-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/creator-insights-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Accounts(
	credentials credentialing.CredentialManager,
	accountRepo repository.TrackedAccountRepository,
	analyzer feedback.Analyzer,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/link",
			Method:  http.MethodPost,
			Handler: LinkAccount(credentials),
		},
		{
			Path:    "/v1/accounts/:id/suggestions",
			Method:  http.MethodGet,
			Handler: GetContentSuggestions(accountRepo, analyzer),
		},
	}
}

func Reports(
	reportRepo repository.ReportRepository,
	accountRepo repository.TrackedAccountRepository,
	compiler reporting.Compiler,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(reportRepo),
		},
		{
			Path:    "/v1/accounts/:id/reports",
			Method:  http.MethodPost,
			Handler: GenerateReport(accountRepo, compiler),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
