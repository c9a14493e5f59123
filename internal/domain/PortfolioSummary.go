package domain

import "time"

// PortfolioSummary consolida os vereditos do dia em estatísticas de portfólio.
// Determinístico para a mesma sequência de vereditos.
type PortfolioSummary struct {
	Date      string `json:"date"`
	DayName   string `json:"day_name"`
	IsWeekend bool   `json:"is_weekend"`

	TotalRows     int `json:"total_rows"`
	SkippedRows   int `json:"skipped_rows"`
	CriticalCount int `json:"critical_count"`
	WarningCount  int `json:"warning_count"`
	OKCount       int `json:"ok_count"`

	TotalSales           float64 `json:"total_sales"`
	TotalTarget          float64 `json:"total_target"`
	PortfolioAchievement float64 `json:"portfolio_achievement"`

	// Média de delta_vs_target ponderada por total_sales
	WeightedDeltaVsTarget float64 `json:"weighted_delta_vs_target"`
	// Média simples de delta_vs_yesterday entre as linhas
	DeltaVsYesterday float64 `json:"delta_vs_yesterday"`

	OverallStatus Severity `json:"overall_status"`

	CriticalIssues []*RowVerdict `json:"critical_issues"`
	WarningIssues  []*RowVerdict `json:"warning_issues"`
	TopPerformers  []*RowVerdict `json:"top_performers"`
	FlaggedItems   []*RowVerdict `json:"flagged_items"`

	TopPerformer  *RowVerdict `json:"top_performer,omitempty"`
	WorstDecliner *RowVerdict `json:"worst_decliner,omitempty"`
}

// EmptyPortfolioSummary retorna o sumário padrão para um snapshot sem linhas
func EmptyPortfolioSummary(now time.Time) *PortfolioSummary {
	return &PortfolioSummary{
		Date:           now.Format(time.DateOnly),
		DayName:        now.Weekday().String(),
		OverallStatus:  SeverityOK,
		CriticalIssues: []*RowVerdict{},
		WarningIssues:  []*RowVerdict{},
		TopPerformers:  []*RowVerdict{},
		FlaggedItems:   []*RowVerdict{},
	}
}

// AnalysisResult agrega a saída completa de uma execução do pipeline de análise
type AnalysisResult struct {
	Summary  *PortfolioSummary `json:"summary"`
	Verdicts []*RowVerdict     `json:"verdicts"`
	Insight  string            `json:"insight"`
}
