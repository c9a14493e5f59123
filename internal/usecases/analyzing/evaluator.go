// Package analyzing contém o motor de avaliação de regras e agregação do dia de vendas
package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-agent-api/internal/domain"
)

// Limiares das regras de avaliação. Os limites de OK/WARNING são inclusivos:
// delta_vs_target de exatamente -10% é WARNING, não CRITICAL.
const (
	r1CriticalBelow = -10.0 // delta_vs_target abaixo disso é crítico
	r2WarningBelow  = -5.0  // delta_vs_yesterday abaixo disso é aviso
	r2CriticalBelow = -15.0 // delta_vs_yesterday abaixo disso é crítico
	r3WarningRatio  = 0.85  // vendas/média 7d abaixo disso é aviso
	r3CriticalRatio = 0.70  // vendas/média 7d abaixo disso é crítico
)

const weekendAdjustmentNote = "Rebaixado de CRITICAL devido ao fim de semana"

// EvaluateRecord aplica as regras R1-R3 de forma independente, consolida a
// severidade máxima entre elas e por fim aplica o ajuste de fim de semana (R4).
func EvaluateRecord(record domain.SalesRecord) *domain.RowVerdict {
	findings := make([]domain.RuleFinding, 0, 3)

	if f := evaluateTargetAchievement(record); f != nil {
		findings = append(findings, *f)
	}

	if f := evaluateDayOverDay(record); f != nil {
		findings = append(findings, *f)
	}

	if f := evaluateTrend(record); f != nil {
		findings = append(findings, *f)
	}

	// Merge: severidade máxima entre R1, R2 e R3
	merged := domain.SeverityOK
	for _, finding := range findings {
		merged = domain.MaxSeverity(merged, finding.Severity)
	}

	verdict := &domain.RowVerdict{
		Record:   record,
		Severity: merged,
		Findings: findings,
		Reason:   buildReason(findings, merged),
	}

	// R4: fins de semana toleram oscilações maiores sem escalar para o nível mais severo
	if record.IsWeekend && verdict.Severity == domain.SeverityCritical {
		verdict.Severity = domain.SeverityWarning
		verdict.AdjustmentNote = weekendAdjustmentNote
	}

	return verdict
}

// EvaluateAll avalia todos os registros do snapshot na ordem recebida
func EvaluateAll(records []domain.SalesRecord) []*domain.RowVerdict {
	verdicts := make([]*domain.RowVerdict, 0, len(records))
	for _, record := range records {
		verdicts = append(verdicts, EvaluateRecord(record))
	}
	return verdicts
}

// R1: atingimento da meta diária
func evaluateTargetAchievement(record domain.SalesRecord) *domain.RuleFinding {
	delta := record.DeltaVsTarget

	if delta < r1CriticalBelow {
		return &domain.RuleFinding{
			Rule:     "R1.3",
			Severity: domain.SeverityCritical,
			Basis:    delta,
			Message:  fmt.Sprintf("Meta perdida em %.1f%%", -delta),
		}
	}

	if delta < 0 {
		return &domain.RuleFinding{
			Rule:     "R1.2",
			Severity: domain.SeverityWarning,
			Basis:    delta,
			Message:  fmt.Sprintf("Abaixo da meta em %.1f%%", -delta),
		}
	}

	return nil
}

// R2: desempenho dia a dia
func evaluateDayOverDay(record domain.SalesRecord) *domain.RuleFinding {
	delta := record.DeltaVsYesterday

	if delta < r2CriticalBelow {
		return &domain.RuleFinding{
			Rule:     "R2.3",
			Severity: domain.SeverityCritical,
			Basis:    delta,
			Message:  fmt.Sprintf("Queda de %.1f%% vs ontem", -delta),
		}
	}

	if delta < r2WarningBelow {
		return &domain.RuleFinding{
			Rule:     "R2.2",
			Severity: domain.SeverityWarning,
			Basis:    delta,
			Message:  fmt.Sprintf("Baixa de %.1f%% vs ontem", -delta),
		}
	}

	return nil
}

// R3: anomalia de tendência contra a média de 7 dias.
// A regra não se aplica quando a média de 7 dias não é positiva.
func evaluateTrend(record domain.SalesRecord) *domain.RuleFinding {
	if record.Avg7dSales <= 0 {
		return nil
	}

	ratio := record.TotalSales / record.Avg7dSales
	belowAverage := (1 - ratio) * 100

	if ratio < r3CriticalRatio {
		return &domain.RuleFinding{
			Rule:     "R3.3",
			Severity: domain.SeverityCritical,
			Basis:    belowAverage,
			Message:  fmt.Sprintf("Vendas %.1f%% abaixo da média de 7 dias", belowAverage),
		}
	}

	if ratio < r3WarningRatio {
		return &domain.RuleFinding{
			Rule:     "R3.2",
			Severity: domain.SeverityWarning,
			Basis:    belowAverage,
			Message:  fmt.Sprintf("Vendas %.1f%% abaixo da média de 7 dias", belowAverage),
		}
	}

	return nil
}

// buildReason monta a justificativa citando as regras que estão no nível da severidade consolidada
func buildReason(findings []domain.RuleFinding, merged domain.Severity) string {
	if merged == domain.SeverityOK {
		return "Dentro dos limites esperados"
	}

	messages := make([]string, 0, len(findings))
	for _, finding := range findings {
		if finding.Severity == merged {
			messages = append(messages, finding.Message)
		}
	}

	return strings.Join(messages, "; ")
}
