package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-agent-api/internal/domain"
)

// salesRecord monta um registro saudável que pode ser degradado campo a campo pelos testes
func salesRecord(modify func(r *domain.SalesRecord)) domain.SalesRecord {
	record := domain.SalesRecord{
		Date:             time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Region:           "Sudeste",
		Product:          "Óculos de Sol",
		TotalSales:       1000.0,
		TargetDaily:      950.0,
		SalesYesterday:   980.0,
		Avg7dSales:       990.0,
		DeltaVsYesterday: 2.0,
		DeltaVsTarget:    5.26,
		DayName:          "Tuesday",
		IsWeekend:        false,
	}

	if modify != nil {
		modify(&record)
	}

	return record
}

func TestEvaluateRecord_TargetAchievement(t *testing.T) {
	tests := []struct {
		name         string
		delta        float64
		wantSeverity domain.Severity
		wantRule     string
	}{
		{
			name:         "Meta atingida - sem violação",
			delta:        0.0,
			wantSeverity: domain.SeverityOK,
		},
		{
			name:         "Pouco abaixo da meta - alerta",
			delta:        -3.5,
			wantSeverity: domain.SeverityWarning,
			wantRule:     "R1.2",
		},
		{
			name:         "Exatamente -10 por cento - o limite inclusivo mantém alerta",
			delta:        -10.0,
			wantSeverity: domain.SeverityWarning,
			wantRule:     "R1.2",
		},
		{
			name:         "Abaixo de -10 por cento - crítico",
			delta:        -10.01,
			wantSeverity: domain.SeverityCritical,
			wantRule:     "R1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := salesRecord(func(r *domain.SalesRecord) {
				r.DeltaVsTarget = tt.delta
			})

			verdict := EvaluateRecord(record)

			assert.Equal(t, tt.wantSeverity, verdict.Severity)

			if tt.wantRule != "" {
				assert.Len(t, verdict.Findings, 1)
				assert.Equal(t, tt.wantRule, verdict.Findings[0].Rule)
			} else {
				assert.Empty(t, verdict.Findings)
				assert.Equal(t, "Dentro dos limites esperados", verdict.Reason)
			}
		})
	}
}

func TestEvaluateRecord_DayOverDay(t *testing.T) {
	tests := []struct {
		name         string
		delta        float64
		wantSeverity domain.Severity
		wantRule     string
	}{
		{
			name:         "Queda de exatamente -5 por cento ainda é aceitável",
			delta:        -5.0,
			wantSeverity: domain.SeverityOK,
		},
		{
			name:         "Queda moderada vs ontem - alerta",
			delta:        -8.0,
			wantSeverity: domain.SeverityWarning,
			wantRule:     "R2.2",
		},
		{
			name:         "Queda de exatamente -15 por cento mantém alerta",
			delta:        -15.0,
			wantSeverity: domain.SeverityWarning,
			wantRule:     "R2.2",
		},
		{
			name:         "Queda acima de -15 por cento - crítico",
			delta:        -20.0,
			wantSeverity: domain.SeverityCritical,
			wantRule:     "R2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := salesRecord(func(r *domain.SalesRecord) {
				r.DeltaVsYesterday = tt.delta
			})

			verdict := EvaluateRecord(record)

			assert.Equal(t, tt.wantSeverity, verdict.Severity)
			if tt.wantRule != "" {
				assert.Equal(t, tt.wantRule, verdict.Findings[0].Rule)
			}
		})
	}
}

func TestEvaluateRecord_Trend(t *testing.T) {
	tests := []struct {
		name         string
		totalSales   float64
		avg7d        float64
		wantSeverity domain.Severity
		wantRule     string
	}{
		{
			name:         "Vendas em 85 por cento da média - o limite inclusivo mantém OK",
			totalSales:   850.0,
			avg7d:        1000.0,
			wantSeverity: domain.SeverityOK,
		},
		{
			name:         "Vendas em 84 por cento da média - alerta",
			totalSales:   840.0,
			avg7d:        1000.0,
			wantSeverity: domain.SeverityWarning,
			wantRule:     "R3.2",
		},
		{
			name:         "Vendas em 69 por cento da média - crítico",
			totalSales:   690.0,
			avg7d:        1000.0,
			wantSeverity: domain.SeverityCritical,
			wantRule:     "R3.3",
		},
		{
			name:         "Média de 7 dias zerada - regra não se aplica",
			totalSales:   10.0,
			avg7d:        0.0,
			wantSeverity: domain.SeverityOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := salesRecord(func(r *domain.SalesRecord) {
				r.TotalSales = tt.totalSales
				r.Avg7dSales = tt.avg7d
			})

			verdict := EvaluateRecord(record)

			assert.Equal(t, tt.wantSeverity, verdict.Severity)
			if tt.wantRule != "" {
				assert.Equal(t, tt.wantRule, verdict.Findings[0].Rule)
			}
		})
	}
}

func TestEvaluateRecord_MergeUsesMaxSeverity(t *testing.T) {
	// R1 em alerta e R2 em crítico: a severidade consolidada deve ser a máxima
	record := salesRecord(func(r *domain.SalesRecord) {
		r.DeltaVsTarget = -7.0
		r.DeltaVsYesterday = -20.0
	})

	verdict := EvaluateRecord(record)

	assert.Equal(t, domain.SeverityCritical, verdict.Severity)
	assert.Len(t, verdict.Findings, 2)

	// A justificativa cita apenas as regras no nível consolidado
	assert.Contains(t, verdict.Reason, "Queda de 20.0% vs ontem")
	assert.NotContains(t, verdict.Reason, "Abaixo da meta")
}

func TestEvaluateRecord_WeekendAdjustment(t *testing.T) {
	tests := []struct {
		name           string
		isWeekend      bool
		deltaVsTarget  float64
		wantSeverity   domain.Severity
		wantAdjustment bool
	}{
		{
			name:           "Crítico no fim de semana é rebaixado para alerta",
			isWeekend:      true,
			deltaVsTarget:  -25.0,
			wantSeverity:   domain.SeverityWarning,
			wantAdjustment: true,
		},
		{
			name:          "Crítico em dia útil permanece crítico",
			isWeekend:     false,
			deltaVsTarget: -25.0,
			wantSeverity:  domain.SeverityCritical,
		},
		{
			name:          "Alerta no fim de semana não sofre ajuste",
			isWeekend:     true,
			deltaVsTarget: -4.0,
			wantSeverity:  domain.SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := salesRecord(func(r *domain.SalesRecord) {
				r.IsWeekend = tt.isWeekend
				r.DeltaVsTarget = tt.deltaVsTarget
				if tt.isWeekend {
					r.DayName = "Saturday"
				}
			})

			verdict := EvaluateRecord(record)

			assert.Equal(t, tt.wantSeverity, verdict.Severity)

			if tt.wantAdjustment {
				assert.Equal(t, weekendAdjustmentNote, verdict.AdjustmentNote)
				// Os achados preservam a severidade original das regras
				assert.Equal(t, domain.SeverityCritical, verdict.Findings[0].Severity)
			} else {
				assert.Empty(t, verdict.AdjustmentNote)
			}
		})
	}
}

func TestEvaluateAll_PreservesOrder(t *testing.T) {
	records := []domain.SalesRecord{
		salesRecord(func(r *domain.SalesRecord) { r.Region = "Norte" }),
		salesRecord(func(r *domain.SalesRecord) { r.Region = "Sul" }),
		salesRecord(func(r *domain.SalesRecord) { r.Region = "Sudeste" }),
	}

	verdicts := EvaluateAll(records)

	assert.Len(t, verdicts, 3)
	assert.Equal(t, "Norte", verdicts[0].Record.Region)
	assert.Equal(t, "Sul", verdicts[1].Record.Region)
	assert.Equal(t, "Sudeste", verdicts[2].Record.Region)
}
