package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-agent-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-agent-api/internal/api"
	"github.com/vfg2006/sales-agent-api/internal/config"
	"github.com/vfg2006/sales-agent-api/internal/scheduler"
	"github.com/vfg2006/sales-agent-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-agent-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotStore := snapshot.NewStore(cfg.Snapshot)
	snapshotLoader := snapshot.NewLoader(snapshotStore)

	insightGenerator := reporting.NewGenerator()

	analyzerService := analyzing.NewService(snapshotLoader, insightGenerator)

	// Inicializa o agendador do relatório diário
	dailyReportService := scheduler.NewDailyReportService(analyzerService, cfg)

	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzerService,
		snapshotStore,
		dailyReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
