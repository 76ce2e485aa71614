package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/api"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/scheduler"
	"github.com/vfg2006/creator-insights-api/internal/usecases/collecting"
	"github.com/vfg2006/creator-insights-api/internal/usecases/credentialing"
	"github.com/vfg2006/creator-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/creator-insights-api/internal/usecases/reporting"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewTrackedAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	metricsRepo := repository.NewMetricsRepository(pgConn)
	feedbackRepo := repository.NewFeedbackRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	suggestionRepo := repository.NewContentSuggestionRepository(pgConn)

	instagramClient := igclient.NewClient(cfg)

	credentialService := credentialing.NewService(accountRepo, instagramClient, cfg)

	collectorService := collecting.NewService(instagramClient, credentialService, metricsRepo, cfg)

	completionClient := feedback.NewOpenAIClient(cfg)
	analyzerService := feedback.NewService(
		instagramClient,
		credentialService,
		completionClient,
		feedbackRepo,
		suggestionRepo,
		metricsRepo,
		cfg,
	)

	renderer, err := reporting.NewHTMLRenderer(cfg.Reports.OutputDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o renderizador de relatórios")
	}
	notifier := reporting.NewSMTPNotifier(cfg)

	compilerService := reporting.NewService(
		metricsRepo,
		feedbackRepo,
		reportRepo,
		userRepo,
		renderer,
		notifier,
	)

	// Inicializa os agendadores
	metricsCollectionService := scheduler.NewMetricsCollectionService(accountRepo, collectorService, cfg)
	feedbackAnalysisService := scheduler.NewFeedbackAnalysisService(accountRepo, analyzerService, cfg)
	reportGenerationService := scheduler.NewReportGenerationService(accountRepo, compilerService, cfg)
	retentionSweepService := scheduler.NewRetentionSweepService(metricsRepo, reportRepo, cfg)

	// Inicia os agendadores em background
	if err := metricsCollectionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de métricas")
	} else {
		logrus.Info("Agendador de coleta de métricas iniciado com sucesso")
	}

	if err := feedbackAnalysisService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise de feedback")
	} else {
		logrus.Info("Agendador de análise de feedback iniciado com sucesso")
	}

	if err := reportGenerationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de geração de relatórios")
	} else {
		logrus.Info("Agendador de geração de relatórios iniciado com sucesso")
	}

	if err := retentionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de dados antigos")
	} else {
		logrus.Info("Agendador de limpeza de dados antigos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		credentialService,
		reportRepo,
		accountRepo,
		analyzerService,
		compilerService,
		metricsCollectionService,
		feedbackAnalysisService,
		reportGenerationService,
		retentionSweepService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
