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
	"github.com/vfg2006/creator-insights-api/internal/usecases/collecting"
	"github.com/vfg2006/creator-insights-api/internal/usecases/credentialing"
)

// MetricsCollectionConfig representa a configuração do agendador de coleta de métricas
type MetricsCollectionConfig struct {
	CronSchedule      string
	MediaLimit        int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// MetricsCollectionService gerencia o agendamento e execução da coleta de métricas das contas
type MetricsCollectionService struct {
	scheduler           *gocron.Scheduler
	config              MetricsCollectionConfig
	accountRepo         repository.TrackedAccountRepository
	collector           collecting.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          BatchResult
}

// NewMetricsCollectionService cria uma nova instância do serviço de coleta de métricas
func NewMetricsCollectionService(
	accountRepo repository.TrackedAccountRepository,
	collector collecting.Collector,
	appConfig *config.Config,
) *MetricsCollectionService {
	collectionConfig := MetricsCollectionConfig{
		CronSchedule:      appConfig.MetricsSync.CronSchedule,
		MediaLimit:        appConfig.MetricsSync.MediaLimit,
		MaxConcurrentJobs: appConfig.MetricsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       collectionConfig.CronSchedule,
		"media_limit":         collectionConfig.MediaLimit,
		"max_concurrent_jobs": collectionConfig.MaxConcurrentJobs,
		"sync_enabled":        collectionConfig.SyncEnabled,
	}).Info("Configuração do agendador de coleta de métricas carregada")

	return &MetricsCollectionService{
		scheduler:   scheduler,
		config:      collectionConfig,
		accountRepo: accountRepo,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MetricsCollectionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.collectAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// collectAllAccounts executa uma rodada de coleta para todas as contas ativas
func (s *MetricsCollectionService) collectAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de métricas já em andamento, ignorando")
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

	logrus.Info("Iniciando coleta de métricas para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para coleta de métricas")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para coleta de métricas")
		s.lastResult = BatchResult{}
		s.lastSyncCompletedAt = time.Now()
		return
	}

	result := s.collectAccounts(activeAccounts)
	s.lastResult = result

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"total":         result.Total,
		"success_count": result.SuccessCount,
		"error_count":   result.ErrorCount,
		"skipped_count": result.SkippedCount,
	}).Info("Coleta de métricas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// collectAccounts processa as contas em paralelo, limitado pelo semáforo
func (s *MetricsCollectionService) collectAccounts(accounts []*domain.TrackedAccount) BatchResult {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	counter := newBatchCounter(len(accounts))

	for _, account := range accounts {
		// Conta sem credencial não participa da rodada nem conta como erro
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
			}).Info("Coletando métricas da conta")

			if err := s.collector.CollectAccount(acc); err != nil {
				if errors.Is(err, credentialing.ErrNoCredential) {
					counter.skip()
					return
				}
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"error":      err.Error(),
				}).Error("Erro na coleta de métricas da conta")
				counter.failure()
				return
			}

			counter.success()
		}(account)
	}

	wg.Wait()

	return counter.snapshot()
}

// TriggerManualSync inicia manualmente uma rodada de coleta de métricas
func (s *MetricsCollectionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de métricas")
	go s.collectAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *MetricsCollectionService) GetStatus() map[string]any {
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
