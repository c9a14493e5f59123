package analyzing

import (
	"github.com/vfg2006/sales-agent-api/internal/domain"
)

// InsightGenerator define a interface para gerar o relatório diário em linguagem natural.
// Uma implementação futura com backend generativo deve respeitar o mesmo contrato.
type InsightGenerator interface {
	// Generate produz o relatório a partir do sumário de portfólio
	Generate(summary *domain.PortfolioSummary) (string, error)
}

// Analyzer é a interface completa do pipeline de análise diária de vendas
type Analyzer interface {
	// RunAnalysis executa o pipeline completo: carregar, avaliar, agregar e gerar o insight
	RunAnalysis() (*domain.AnalysisResult, error)

	// GetOverview retorna o sumário de portfólio do snapshot corrente
	GetOverview() (*domain.PortfolioSummary, error)

	// GetInsightReport retorna o relatório diário em linguagem natural
	GetInsightReport() (*domain.InsightReport, error)

	// GetAlerts retorna as linhas sinalizadas (CRITICAL e WARNING)
	GetAlerts() ([]*domain.RowVerdict, error)

	// GetMetrics retorna os vereditos por linha e o sumário como dados estruturados
	GetMetrics() (*domain.AnalysisResult, error)
}
