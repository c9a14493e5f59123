package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-agent-api/internal/api/handler"
	"github.com/vfg2006/sales-agent-api/internal/api/handler/router"
	"github.com/vfg2006/sales-agent-api/internal/config"
	"github.com/vfg2006/sales-agent-api/internal/domain"
	"github.com/vfg2006/sales-agent-api/internal/scheduler"
	"github.com/vfg2006/sales-agent-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-agent-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func cronRouter(services handler.CronJobServices) http.Handler {
	return router.New(
		router.WithRoutes(handler.CronJobs(services)...),
	)
}

func dailyReportService(analyzer *mocks.MockAnalyzer) *scheduler.DailyReportService {
	cfg := &config.Config{
		DailyReport: config.DailyReport{
			CronSchedule: "0 7 * * *",
			Enabled:      false,
		},
	}

	return scheduler.NewDailyReportService(analyzer, cfg)
}

func TestRunCronJob_DailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		RunAnalysis().
		Return(&domain.AnalysisResult{
			Summary: &domain.PortfolioSummary{
				Date:          "2025-07-15",
				OverallStatus: domain.SeverityOK,
			},
			Insight: "relatório do dia",
		}, nil)

	services := handler.CronJobServices{
		DailyReportService: dailyReportService(mockAnalyzer),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/daily-report/run", nil)
	rec := httptest.NewRecorder()

	cronRouter(services).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "daily-report", response["type"])
}

func TestRunCronJob_InvalidType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/bogus/run", nil)
	rec := httptest.NewRecorder()

	cronRouter(handler.CronJobServices{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/daily-report/run", nil)
	rec := httptest.NewRecorder()

	cronRouter(handler.CronJobServices{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	services := handler.CronJobServices{
		DailyReportService: dailyReportService(mockAnalyzer),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	cronRouter(services).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]scheduler.DailyReportStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	report, ok := status["daily-report"]
	require.True(t, ok)
	assert.False(t, report.Enabled)
	assert.Equal(t, "0 7 * * *", report.CronSchedule)
}
