package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-agent-api/internal/scheduler"
	"github.com/vfg2006/sales-agent-api/pkg/apiErrors"
	"github.com/vfg2006/sales-agent-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyReport = "daily-report"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyReportService *scheduler.DailyReportService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: manual run requested")

		switch cronType {
		case CronJobTypeDailyReport, CronJobTypeAll:
			if services.DailyReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório diário não disponível", nil)
				return
			}
			if err := services.DailyReportService.RunNow(); err != nil {
				logger.WithError(err).Error("cron: daily report run failed")
				apiErrors.WriteError(w, apiErrors.ErrReportGeneration, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-report, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("cron: failed to encode run response")
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("cron: status requested")

		status := map[string]any{
			"daily-report": services.DailyReportService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("cron: failed to encode status response")
		}
	})
}
