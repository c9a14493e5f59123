// Package reporting contém o gerador determinístico do relatório diário em linguagem natural.
// A seleção de texto é uma tabela de decisão chaveada no status geral do portfólio;
// nenhum modelo estatístico está envolvido.
package reporting

import (
	"math"
	"strings"

	"github.com/osteele/liquid"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-agent-api/internal/domain"
	"github.com/vfg2006/sales-agent-api/pkg/utils"
)

const (
	maxCriticalInReport = 3
	maxWarningsInReport = 2
)

// Generator renderiza o relatório diário a partir de um PortfolioSummary.
// Função pura do sumário para o texto: o mesmo sumário produz o mesmo relatório.
type Generator struct {
	engine *liquid.Engine
}

// NewGenerator cria o gerador com os filtros de formatação registrados
func NewGenerator() *Generator {
	engine := liquid.NewEngine()

	engine.RegisterFilter("brl", func(value float64) string {
		return utils.FormatBRL(value)
	})

	engine.RegisterFilter("percent", func(value float64) string {
		return utils.FormatPercent(value)
	})

	engine.RegisterFilter("signed_percent", func(value float64) string {
		return utils.FormatSignedPercent(value)
	})

	return &Generator{engine: engine}
}

// Generate produz o relatório completo com as seções fixas:
// Resumo Executivo, Métricas Principais, Alertas e Riscos,
// Análise de Causa Raiz e Ações Recomendadas.
func (g *Generator) Generate(summary *domain.PortfolioSummary) (string, error) {
	status := summary.OverallStatus
	if !status.IsValid() {
		status = domain.SeverityOK
	}

	bindings := baseBindings(summary, status)

	var report strings.Builder

	header, err := g.render(reportHeader, bindings)
	if err != nil {
		return "", err
	}
	report.WriteString(header + "\n")

	if err := g.renderSection(&report, sectionExecutiveSummary, executiveSummaryLines[status], bindings); err != nil {
		return "", err
	}

	if err := g.renderSection(&report, sectionKeyMetrics, keyMetricsLines, bindings); err != nil {
		return "", err
	}

	if err := g.renderAlerts(&report, summary); err != nil {
		return "", err
	}

	if err := g.renderSection(&report, sectionRootCause, rootCauseLines[status], bindings); err != nil {
		return "", err
	}

	if err := g.renderSection(&report, sectionActions, recommendedActionLines[status], bindings); err != nil {
		return "", err
	}

	footer, err := g.render(statusFooter, bindings)
	if err != nil {
		return "", err
	}
	report.WriteString("\n" + footer + "\n")

	return report.String(), nil
}

func (g *Generator) render(template string, bindings liquid.Bindings) (string, error) {
	out, err := g.engine.ParseAndRenderString(template, bindings)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao renderizar template do relatório: %q", template)
	}
	return out, nil
}

func (g *Generator) renderSection(report *strings.Builder, title string, lines []string, bindings liquid.Bindings) error {
	report.WriteString("\n" + title + "\n")

	for _, line := range lines {
		rendered, err := g.render(line, bindings)
		if err != nil {
			return err
		}
		report.WriteString(rendered + "\n")
	}

	return nil
}

// renderAlerts monta a seção de alertas com os piores itens sinalizados
func (g *Generator) renderAlerts(report *strings.Builder, summary *domain.PortfolioSummary) error {
	report.WriteString("\n" + sectionAlerts + "\n")

	criticals := summary.CriticalIssues
	if len(criticals) > maxCriticalInReport {
		criticals = criticals[:maxCriticalInReport]
	}

	warnings := summary.WarningIssues
	if len(warnings) > maxWarningsInReport {
		warnings = warnings[:maxWarningsInReport]
	}

	if len(criticals) == 0 && len(warnings) == 0 {
		report.WriteString(noIssuesLine + "\n")
		return nil
	}

	for _, issue := range criticals {
		rendered, err := g.render(criticalIssueLine, issueBindings(issue))
		if err != nil {
			return err
		}
		report.WriteString(rendered + "\n")
	}

	for _, issue := range warnings {
		rendered, err := g.render(warningIssueLine, issueBindings(issue))
		if err != nil {
			return err
		}
		report.WriteString(rendered + "\n")
	}

	return nil
}

// baseBindings monta as variáveis disponíveis para os templates do relatório
func baseBindings(summary *domain.PortfolioSummary, status domain.Severity) liquid.Bindings {
	direction := "alta"
	if summary.DeltaVsYesterday < 0 {
		direction = "queda"
	}

	return liquid.Bindings{
		"date":                summary.Date,
		"day_name":            translateDayName(summary.DayName),
		"status":              string(status),
		"status_icon":         statusIcons[status],
		"achievement":         summary.PortfolioAchievement,
		"target_gap":          summary.PortfolioAchievement - 100,
		"total_sales":         summary.TotalSales,
		"total_target":        summary.TotalTarget,
		"weighted_delta":      summary.WeightedDeltaVsTarget,
		"delta_yesterday":     summary.DeltaVsYesterday,
		"delta_yesterday_abs": math.Abs(summary.DeltaVsYesterday),
		"delta_direction":     direction,
		"critical_count":      summary.CriticalCount,
		"warning_count":       summary.WarningCount,
		"ok_count":            summary.OKCount,
	}
}

func issueBindings(issue *domain.RowVerdict) liquid.Bindings {
	return liquid.Bindings{
		"pair":                  issue.Record.Pair(),
		"sales":                 issue.Record.TotalSales,
		"delta_target":          issue.Record.DeltaVsTarget,
		"issue_delta_yesterday": issue.Record.DeltaVsYesterday,
	}
}

func translateDayName(dayName string) string {
	if translated, ok := dayNamesPT[dayName]; ok {
		return translated
	}
	return dayName
}
