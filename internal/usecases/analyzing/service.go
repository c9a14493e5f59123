package analyzing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-agent-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-agent-api/internal/domain"
)

// Service implementa o pipeline de análise: Loader → Evaluator → Aggregator → InsightGenerator.
// Sem estado mutável compartilhado: cada chamada relê o snapshot e refaz o passe completo.
type Service struct {
	loader    snapshot.SnapshotLoader
	generator InsightGenerator
}

// NewService cria uma nova instância do serviço de análise
func NewService(loader snapshot.SnapshotLoader, generator InsightGenerator) Analyzer {
	return &Service{
		loader:    loader,
		generator: generator,
	}
}

// RunAnalysis executa o passe completo sobre o snapshot corrente
func (s *Service) RunAnalysis() (*domain.AnalysisResult, error) {
	records, skippedRows, err := s.loader.LoadLatest()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar o snapshot de vendas")
		return nil, err
	}

	verdicts := EvaluateAll(records)
	summary := Aggregate(verdicts, skippedRows, time.Now())

	insight, err := s.generator.Generate(summary)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o relatório de insights")
	}

	logrus.WithFields(logrus.Fields{
		"date":           summary.Date,
		"total_rows":     summary.TotalRows,
		"skipped_rows":   summary.SkippedRows,
		"overall_status": summary.OverallStatus,
		"critical_count": summary.CriticalCount,
		"warning_count":  summary.WarningCount,
	}).Info("Análise diária de vendas concluída")

	return &domain.AnalysisResult{
		Summary:  summary,
		Verdicts: verdicts,
		Insight:  insight,
	}, nil
}

// GetOverview retorna o sumário de portfólio do snapshot corrente
func (s *Service) GetOverview() (*domain.PortfolioSummary, error) {
	result, err := s.RunAnalysis()
	if err != nil {
		return nil, err
	}

	return result.Summary, nil
}

// GetInsightReport retorna o relatório diário em linguagem natural
func (s *Service) GetInsightReport() (*domain.InsightReport, error) {
	result, err := s.RunAnalysis()
	if err != nil {
		return nil, err
	}

	return &domain.InsightReport{
		Date:    result.Summary.Date,
		DayName: result.Summary.DayName,
		Status:  result.Summary.OverallStatus,
		Report:  result.Insight,
	}, nil
}

// GetAlerts retorna as linhas sinalizadas do dia (CRITICAL e WARNING)
func (s *Service) GetAlerts() ([]*domain.RowVerdict, error) {
	result, err := s.RunAnalysis()
	if err != nil {
		return nil, err
	}

	return result.Summary.FlaggedItems, nil
}

// GetMetrics retorna os vereditos por linha e o sumário como dados estruturados
func (s *Service) GetMetrics() (*domain.AnalysisResult, error) {
	return s.RunAnalysis()
}
