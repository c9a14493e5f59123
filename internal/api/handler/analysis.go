package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-agent-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-agent-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-agent-api/pkg/apiErrors"
	"github.com/vfg2006/sales-agent-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetOverview retorna o sumário agregado do portfólio para o snapshot corrente
func GetOverview(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analysis: fetching portfolio overview")

		summary, err := service.GetOverview()
		if err != nil {
			logger.WithError(err).Error("analysis: failed to build portfolio overview")
			writeAnalysisError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"status":   summary.OverallStatus,
			"critical": summary.CriticalCount,
			"warning":  summary.WarningCount,
		}).Info("analysis: portfolio overview ready")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("analysis: failed to encode overview response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetInsightReport retorna o relatório diário em linguagem natural
func GetInsightReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analysis: generating daily insight report")

		report, err := service.GetInsightReport()
		if err != nil {
			logger.WithError(err).Error("analysis: failed to generate insight report")
			writeAnalysisError(w, err)
			return
		}

		logger.WithField("status", report.Status).Info("analysis: insight report generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("analysis: failed to encode insight response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAlerts retorna apenas as linhas sinalizadas (CRITICAL e WARNING)
func GetAlerts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analysis: fetching flagged rows")

		alerts, err := service.GetAlerts()
		if err != nil {
			logger.WithError(err).Error("analysis: failed to fetch flagged rows")
			writeAnalysisError(w, err)
			return
		}

		logger.WithField("alerts", len(alerts)).Info("analysis: flagged rows ready")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			logger.WithError(err).Error("analysis: failed to encode alerts response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetMetrics retorna os vereditos por linha e o sumário como dados estruturados
func GetMetrics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("analysis: fetching structured metrics")

		result, err := service.GetMetrics()
		if err != nil {
			logger.WithError(err).Error("analysis: failed to fetch structured metrics")
			writeAnalysisError(w, err)
			return
		}

		logger.WithField("rows", len(result.Verdicts)).Info("analysis: structured metrics ready")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("analysis: failed to encode metrics response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeAnalysisError traduz erros do pipeline de análise para o contrato de erros da API
func writeAnalysisError(w http.ResponseWriter, err error) {
	var missingColumn *snapshot.MissingColumnError

	switch {
	case errors.Is(err, snapshot.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Snapshot de vendas não encontrado", nil)
	case errors.Is(err, snapshot.ErrSnapshotEmpty):
		apiErrors.WriteError(w, apiErrors.ErrSnapshotEmpty, "Snapshot de vendas sem linhas válidas", nil)
	case errors.As(err, &missingColumn):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumn, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar o snapshot de vendas", nil)
	}
}
