package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/credentialing"
	"github.com/vfg2006/creator-insights-api/internal/usecases/feedback"
)

// FeedbackAnalysisConfig representa a configuração do agendador de análise de feedback
type FeedbackAnalysisConfig struct {
	CronSchedule      string
	MediaLimit        int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// FeedbackAnalysisService gerencia o agendamento e execução da análise
// de IA das publicações das contas ativas
type FeedbackAnalysisService struct {
	scheduler           *gocron.Scheduler
	config              FeedbackAnalysisConfig
	accountRepo         repository.TrackedAccountRepository
	analyzer            feedback.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          BatchResult
}

// NewFeedbackAnalysisService cria uma nova instância do serviço de análise de feedback
func NewFeedbackAnalysisService(
	accountRepo repository.TrackedAccountRepository,
	analyzer feedback.Analyzer,
	appConfig *config.Config,
) *FeedbackAnalysisService {
	analysisConfig := FeedbackAnalysisConfig{
		CronSchedule:      appConfig.FeedbackAnalysis.CronSchedule,
		MediaLimit:        appConfig.FeedbackAnalysis.MediaLimit,
		MaxConcurrentJobs: appConfig.FeedbackAnalysis.MaxConcurrentJobs,
		SyncEnabled:       appConfig.FeedbackAnalysis.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       analysisConfig.CronSchedule,
		"media_limit":         analysisConfig.MediaLimit,
		"max_concurrent_jobs": analysisConfig.MaxConcurrentJobs,
		"sync_enabled":        analysisConfig.SyncEnabled,
	}).Info("Configuração do agendador de análise de feedback carregada")

	return &FeedbackAnalysisService{
		scheduler:   scheduler,
		config:      analysisConfig,
		accountRepo: accountRepo,
		analyzer:    analyzer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *FeedbackAnalysisService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Análise de feedback desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise de feedback")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.analyzeAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise de feedback: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise de feedback")
		s.scheduler.Stop()
	}()

	return nil
}

// analyzeAllAccounts executa uma rodada de análise para todas as contas ativas
func (s *FeedbackAnalysisService) analyzeAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de feedback já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando análise de feedback para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para análise de feedback")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para análise de feedback")
		s.lastResult = BatchResult{}
		s.lastSyncCompletedAt = time.Now()
		return
	}

	result := s.analyzeAccounts(activeAccounts)
	s.lastResult = result

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"total":         result.Total,
		"success_count": result.SuccessCount,
		"error_count":   result.ErrorCount,
		"skipped_count": result.SkippedCount,
	}).Info("Análise de feedback concluída")

	s.lastSyncCompletedAt = time.Now()
}

func (s *FeedbackAnalysisService) analyzeAccounts(accounts []*domain.TrackedAccount) BatchResult {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	counter := newBatchCounter(len(accounts))

	for _, account := range accounts {
		if !account.HasCredential() {
			logrus.WithField("account_id", account.ID).Warn("Conta sem credencial. Pulando.")
			counter.skip()
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.TrackedAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"username":   acc.Username,
			}).Info("Analisando publicações da conta")

			if err := s.analyzer.AnalyzeAccountPosts(acc); err != nil {
				// Sem chave de API ou sem credencial, a conta sai da rodada sem contar como erro
				if errors.Is(err, feedback.ErrUnavailable) || errors.Is(err, credentialing.ErrNoCredential) {
					logrus.WithFields(logrus.Fields{
						"account_id": acc.ID,
						"reason":     err.Error(),
					}).Warn("Análise de feedback indisponível para a conta. Pulando.")
					counter.skip()
					return
				}
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"error":      err.Error(),
				}).Error("Erro na análise de feedback da conta")
				counter.failure()
				return
			}

			// Sugestões de conteúdo acompanham a análise: falha aqui não
			// derruba a conta da rodada
			if _, err := s.analyzer.GenerateAccountSuggestions(acc); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"error":      err.Error(),
				}).Warn("Erro ao gerar sugestões de conteúdo da conta")
			}

			counter.success()
		}(account)
	}

	wg.Wait()

	return counter.snapshot()
}

// TriggerManualSync inicia manualmente uma rodada de análise de feedback
func (s *FeedbackAnalysisService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de feedback já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando análise manual de feedback")
	go s.analyzeAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *FeedbackAnalysisService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_media_limit":       s.config.MediaLimit,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
