// Package scheduler contém o serviço de agendamento do relatório diário de vendas
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-agent-api/internal/config"
	"github.com/vfg2006/sales-agent-api/internal/usecases/analyzing"
)

type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyReportStatus é um retrato do estado da cron do relatório diário
type DailyReportStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastStatus      string    `json:"last_status"`
}

// DailyReportService executa a análise completa do snapshot toda manhã e
// registra o relatório executivo nos logs
type DailyReportService struct {
	scheduler       *gocron.Scheduler
	analyzer        analyzing.Analyzer
	config          DailyReportConfig
	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastStatus      string
}

func NewDailyReportService(analyzer analyzing.Analyzer, cfg *config.Config) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: cfg.DailyReport.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.DailyReport.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler: scheduler,
		analyzer:  analyzer,
		config:    reportConfig,
	}
}

func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do relatório diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório diário de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(); err != nil {
			logrus.WithError(err).Error("Erro na geração do relatório diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório diário: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a análise imediatamente e registra o relatório nos logs.
// Também acionado manualmente pelo endpoint de cron.
func (s *DailyReportService) RunNow() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		logrus.Warn("Geração do relatório diário já está em execução")
		return nil
	}

	s.running = true
	s.lastStartedAt = time.Now()
	defer func() {
		s.running = false
		s.lastCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando geração do relatório diário de vendas")

	result, err := s.analyzer.RunAnalysis()
	if err != nil {
		s.lastStatus = "ERROR"
		return err
	}

	s.lastStatus = string(result.Summary.OverallStatus)

	for _, line := range strings.Split(result.Insight, "\n") {
		if line == "" {
			continue
		}
		logrus.WithField("report", "daily").Info(line)
	}

	logrus.WithFields(logrus.Fields{
		"date":           result.Summary.Date,
		"overall_status": result.Summary.OverallStatus,
		"critical_count": result.Summary.CriticalCount,
		"warning_count":  result.Summary.WarningCount,
	}).Info("Relatório diário de vendas gerado com sucesso")

	return nil
}

// Status retorna o estado atual da cron do relatório diário
func (s *DailyReportService) Status() DailyReportStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return DailyReportStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.running,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
		LastStatus:      s.lastStatus,
	}
}
