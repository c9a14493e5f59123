package handler

import (
	"net/http"

	"github.com/vfg2006/sales-agent-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-agent-api/internal/api/handler/router"
	"github.com/vfg2006/sales-agent-api/internal/config"
	"github.com/vfg2006/sales-agent-api/internal/usecases/analyzing"
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

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/insight",
			Method:  http.MethodGet,
			Handler: GetInsightReport(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: GetAlerts(service),
		},
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
	}
}

func Snapshots(store *snapshot.Store, cfg config.Snapshot) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshots",
			Method:  http.MethodPost,
			Handler: UploadSnapshot(store, cfg),
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
