package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-agent-api/internal/domain"
	"github.com/vfg2006/sales-agent-api/pkg/utils"
)

const (
	maxIssuesPerSeverity = 5
	maxTopPerformers     = 3
)

// Aggregate consolida a sequência ordenada de vereditos em um sumário de portfólio.
// Determinístico para a mesma sequência de entrada; nenhuma aleatoriedade.
func Aggregate(verdicts []*domain.RowVerdict, skippedRows int, now time.Time) *domain.PortfolioSummary {
	if len(verdicts) == 0 {
		summary := domain.EmptyPortfolioSummary(now)
		summary.SkippedRows = skippedRows
		return summary
	}

	first := verdicts[0].Record

	summary := &domain.PortfolioSummary{
		Date:        first.Date.Format(time.DateOnly),
		DayName:     first.DayName,
		IsWeekend:   first.IsWeekend,
		TotalRows:   len(verdicts),
		SkippedRows: skippedRows,
	}

	var (
		weightedDelta  float64
		totalWeight    float64
		deltaYesterday float64
	)

	for _, verdict := range verdicts {
		record := verdict.Record

		switch verdict.Severity {
		case domain.SeverityCritical:
			summary.CriticalCount++
		case domain.SeverityWarning:
			summary.WarningCount++
		default:
			summary.OKCount++
		}

		summary.TotalSales += record.TotalSales
		summary.TotalTarget += record.TargetDaily

		weightedDelta += record.TotalSales * record.DeltaVsTarget
		totalWeight += record.TotalSales
		deltaYesterday += record.DeltaVsYesterday

		if summary.TopPerformer == nil || record.DeltaVsTarget > summary.TopPerformer.Record.DeltaVsTarget {
			summary.TopPerformer = verdict
		}

		if summary.WorstDecliner == nil || record.DeltaVsYesterday < summary.WorstDecliner.Record.DeltaVsYesterday {
			summary.WorstDecliner = verdict
		}
	}

	if summary.TotalTarget > 0 {
		summary.PortfolioAchievement = utils.RoundWithTwoDecimalPlace(summary.TotalSales / summary.TotalTarget * 100)
	}

	if totalWeight > 0 {
		summary.WeightedDeltaVsTarget = utils.RoundWithTwoDecimalPlace(weightedDelta / totalWeight)
	}

	summary.DeltaVsYesterday = utils.RoundWithTwoDecimalPlace(deltaYesterday / float64(len(verdicts)))

	// Status geral: a severidade máxima presente entre as linhas
	switch {
	case summary.CriticalCount > 0:
		summary.OverallStatus = domain.SeverityCritical
	case summary.WarningCount > 0:
		summary.OverallStatus = domain.SeverityWarning
	default:
		summary.OverallStatus = domain.SeverityOK
	}

	summary.CriticalIssues = worstBySeverity(verdicts, domain.SeverityCritical, maxIssuesPerSeverity)
	summary.WarningIssues = worstBySeverity(verdicts, domain.SeverityWarning, maxIssuesPerSeverity)
	summary.TopPerformers = bestPerformers(verdicts, maxTopPerformers)
	summary.FlaggedItems = flagged(verdicts)

	return summary
}

// worstBySeverity retorna as linhas da severidade informada, ordenadas da pior
// para a melhor em relação à meta, limitadas a max itens
func worstBySeverity(verdicts []*domain.RowVerdict, severity domain.Severity, max int) []*domain.RowVerdict {
	selected := make([]*domain.RowVerdict, 0, len(verdicts))
	for _, verdict := range verdicts {
		if verdict.Severity == severity {
			selected = append(selected, verdict)
		}
	}

	// Ordenação estável para manter o resultado determinístico em caso de empate
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Record.DeltaVsTarget < selected[j].Record.DeltaVsTarget
	})

	if len(selected) > max {
		selected = selected[:max]
	}

	return selected
}

// bestPerformers retorna as linhas OK com melhor desempenho contra a meta
func bestPerformers(verdicts []*domain.RowVerdict, max int) []*domain.RowVerdict {
	selected := make([]*domain.RowVerdict, 0, len(verdicts))
	for _, verdict := range verdicts {
		if verdict.Severity == domain.SeverityOK {
			selected = append(selected, verdict)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Record.DeltaVsTarget > selected[j].Record.DeltaVsTarget
	})

	if len(selected) > max {
		selected = selected[:max]
	}

	return selected
}

// flagged retorna todas as linhas sinalizadas (CRITICAL e WARNING) na ordem original
func flagged(verdicts []*domain.RowVerdict) []*domain.RowVerdict {
	selected := make([]*domain.RowVerdict, 0, len(verdicts))
	for _, verdict := range verdicts {
		if verdict.Severity != domain.SeverityOK {
			selected = append(selected, verdict)
		}
	}
	return selected
}
