package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-agent-api/internal/domain"
)

func TestAggregate_EmptySnapshot(t *testing.T) {
	now := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)

	summary := Aggregate(nil, 4, now)

	assert.Equal(t, "2025-07-15", summary.Date)
	assert.Equal(t, domain.SeverityOK, summary.OverallStatus)
	assert.Equal(t, 0, summary.TotalRows)
	assert.Equal(t, 4, summary.SkippedRows)
	assert.Empty(t, summary.FlaggedItems)
}

func TestAggregate_WeightedDeltaVsTarget(t *testing.T) {
	// Média ponderada por total_sales: (100*10 + 300*(-10)) / 400 = -5
	verdicts := EvaluateAll([]domain.SalesRecord{
		salesRecord(func(r *domain.SalesRecord) {
			r.Region = "Norte"
			r.TotalSales = 100.0
			r.TargetDaily = 90.0
			r.DeltaVsTarget = 10.0
		}),
		salesRecord(func(r *domain.SalesRecord) {
			r.Region = "Sul"
			r.TotalSales = 300.0
			r.TargetDaily = 330.0
			r.DeltaVsTarget = -10.0
		}),
	})

	summary := Aggregate(verdicts, 0, time.Now())

	assert.InDelta(t, -5.0, summary.WeightedDeltaVsTarget, 0.001)
}

func TestAggregate_PortfolioScenario(t *testing.T) {
	records := []domain.SalesRecord{
		// Linha saudável acima da meta
		salesRecord(func(r *domain.SalesRecord) {
			r.Region = "Sudeste"
			r.Product = "Óculos de Sol"
			r.TotalSales = 1000.0
			r.TargetDaily = 950.0
			r.DeltaVsTarget = 5.0
			r.DeltaVsYesterday = 2.0
		}),
		// Linha crítica em dia útil
		salesRecord(func(r *domain.SalesRecord) {
			r.Region = "Norte"
			r.Product = "Armações"
			r.TotalSales = 880.0
			r.TargetDaily = 1000.0
			r.DeltaVsTarget = -12.0
			r.DeltaVsYesterday = -3.0
		}),
		// Linha de fim de semana com queda forte vs ontem, rebaixada para alerta
		salesRecord(func(r *domain.SalesRecord) {
			r.Region = "Sul"
			r.Product = "Lentes"
			r.TotalSales = 930.0
			r.TargetDaily = 1000.0
			r.DeltaVsTarget = -7.0
			r.DeltaVsYesterday = -20.0
			r.IsWeekend = true
			r.DayName = "Saturday"
		}),
	}

	verdicts := EvaluateAll(records)
	summary := Aggregate(verdicts, 1, time.Now())

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 1, summary.SkippedRows)
	assert.Equal(t, 1, summary.CriticalCount)
	assert.Equal(t, 1, summary.WarningCount)
	assert.Equal(t, 1, summary.OKCount)
	assert.Equal(t, domain.SeverityCritical, summary.OverallStatus)

	assert.InDelta(t, 2810.0, summary.TotalSales, 0.001)
	assert.InDelta(t, 2950.0, summary.TotalTarget, 0.001)
	assert.InDelta(t, 95.25, summary.PortfolioAchievement, 0.001)

	// Média simples de delta_vs_yesterday: (2 - 3 - 20) / 3 = -7
	assert.InDelta(t, -7.0, summary.DeltaVsYesterday, 0.001)

	// Destaques
	assert.Equal(t, "Sudeste", summary.TopPerformer.Record.Region)
	assert.Equal(t, "Sul", summary.WorstDecliner.Record.Region)

	// Listas por severidade
	assert.Len(t, summary.CriticalIssues, 1)
	assert.Equal(t, "Norte", summary.CriticalIssues[0].Record.Region)
	assert.Len(t, summary.WarningIssues, 1)
	assert.Equal(t, "Sul", summary.WarningIssues[0].Record.Region)
	assert.Len(t, summary.TopPerformers, 1)

	// Linhas sinalizadas preservam a ordem original do snapshot
	assert.Len(t, summary.FlaggedItems, 2)
	assert.Equal(t, "Norte", summary.FlaggedItems[0].Record.Region)
	assert.Equal(t, "Sul", summary.FlaggedItems[1].Record.Region)
}

func TestAggregate_LimitsIssueLists(t *testing.T) {
	var records []domain.SalesRecord
	regions := []string{"A", "B", "C", "D", "E", "F", "G"}

	for i, region := range regions {
		delta := -11.0 - float64(i)
		records = append(records, salesRecord(func(r *domain.SalesRecord) {
			r.Region = region
			r.DeltaVsTarget = delta
		}))
	}

	verdicts := EvaluateAll(records)
	summary := Aggregate(verdicts, 0, time.Now())

	assert.Equal(t, 7, summary.CriticalCount)
	assert.Len(t, summary.CriticalIssues, maxIssuesPerSeverity)

	// Ordenados do pior delta para o melhor
	assert.Equal(t, "G", summary.CriticalIssues[0].Record.Region)
	assert.Equal(t, "F", summary.CriticalIssues[1].Record.Region)

	// A lista completa de sinalizados não é limitada
	assert.Len(t, summary.FlaggedItems, 7)
}

func TestAggregate_Deterministic(t *testing.T) {
	verdicts := EvaluateAll([]domain.SalesRecord{
		salesRecord(func(r *domain.SalesRecord) { r.Region = "Norte"; r.DeltaVsTarget = -12.0 }),
		salesRecord(func(r *domain.SalesRecord) { r.Region = "Sul"; r.DeltaVsTarget = -3.0 }),
	})

	now := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)

	first := Aggregate(verdicts, 0, now)
	second := Aggregate(verdicts, 0, now)

	assert.Equal(t, first, second)
}
