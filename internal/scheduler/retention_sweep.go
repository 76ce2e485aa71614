package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/config"
)

// RetentionSweepConfig representa a configuração do agendador de limpeza de dados antigos
type RetentionSweepConfig struct {
	CronSchedule         string
	MetricsRetentionDays int
	ReportsRetentionDays int
	SyncEnabled          bool
}

// RetentionSweepService gerencia o agendamento e execução da limpeza de
// registros de métricas e relatórios fora da janela de retenção
type RetentionSweepService struct {
	scheduler           *gocron.Scheduler
	config              RetentionSweepConfig
	metricsRepo         repository.MetricsRepository
	reportRepo          repository.ReportRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastMetricsRemoved  int64
	lastReportsRemoved  int64
}

// NewRetentionSweepService cria uma nova instância do serviço de limpeza de dados antigos
func NewRetentionSweepService(
	metricsRepo repository.MetricsRepository,
	reportRepo repository.ReportRepository,
	appConfig *config.Config,
) *RetentionSweepService {
	sweepConfig := RetentionSweepConfig{
		CronSchedule:         appConfig.RetentionSweep.CronSchedule,
		MetricsRetentionDays: appConfig.RetentionSweep.MetricsRetentionDays,
		ReportsRetentionDays: appConfig.RetentionSweep.ReportsRetentionDays,
		SyncEnabled:          appConfig.RetentionSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          sweepConfig.CronSchedule,
		"metrics_retention_days": sweepConfig.MetricsRetentionDays,
		"reports_retention_days": sweepConfig.ReportsRetentionDays,
		"sync_enabled":           sweepConfig.SyncEnabled,
	}).Info("Configuração do agendador de limpeza de dados antigos carregada")

	return &RetentionSweepService{
		scheduler:   scheduler,
		config:      sweepConfig,
		metricsRepo: metricsRepo,
		reportRepo:  reportRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RetentionSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de dados antigos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de dados antigos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de dados antigos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de dados antigos")
		s.scheduler.Stop()
	}()

	return nil
}

// sweep remove métricas e relatórios fora da janela de retenção. Os
// feedbacks não entram na varredura: são a memória de deduplicação das
// análises de IA.
func (s *RetentionSweepService) sweep() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de dados antigos já em andamento, ignorando")
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

	logrus.WithFields(logrus.Fields{
		"metrics_retention_days": s.config.MetricsRetentionDays,
		"reports_retention_days": s.config.ReportsRetentionDays,
	}).Info("Iniciando limpeza de dados antigos")

	s.lastMetricsRemoved = s.sweepMetrics()
	s.lastReportsRemoved = s.sweepReports()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":        duration.String(),
		"metrics_removed": s.lastMetricsRemoved,
		"reports_removed": s.lastReportsRemoved,
	}).Info("Limpeza de dados antigos concluída")

	s.lastSyncCompletedAt = time.Now()
}

func (s *RetentionSweepService) sweepMetrics() int64 {
	removed, err := s.metricsRepo.DeleteOlderThan(s.config.MetricsRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover registros de métricas antigos")
		return 0
	}

	logrus.WithField("metrics_removed", removed).Info("Registros de métricas antigos removidos")
	return removed
}

// sweepReports remove os artefatos do disco antes dos registros do
// banco. Artefato que não pôde ser removido não impede a remoção do
// registro: o caminho fica órfão no disco, nunca o contrário.
func (s *RetentionSweepService) sweepReports() int64 {
	oldReports, err := s.reportRepo.ListOlderThan(s.config.ReportsRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar relatórios antigos")
		return 0
	}

	for _, report := range oldReports {
		if report.ArtifactPath == nil {
			continue
		}
		if err := os.Remove(*report.ArtifactPath); err != nil && !os.IsNotExist(err) {
			logrus.WithFields(logrus.Fields{
				"report_id":     report.ID,
				"artifact_path": *report.ArtifactPath,
				"error":         err.Error(),
			}).Warn("Erro ao remover artefato de relatório antigo")
		}
	}

	removed, err := s.reportRepo.DeleteOlderThan(s.config.ReportsRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover registros de relatórios antigos")
		return 0
	}

	logrus.WithField("reports_removed", removed).Info("Registros de relatórios antigos removidos")
	return removed
}

// TriggerManualSync inicia manualmente uma limpeza de dados antigos
func (s *RetentionSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de dados antigos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de dados antigos")
	go s.sweep()
}

// GetStatus retorna o status atual do agendador
func (s *RetentionSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"metrics_retention_days": s.config.MetricsRetentionDays,
		"reports_retention_days": s.config.ReportsRetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_metrics_removed":   s.lastMetricsRemoved,
		"last_reports_removed":   s.lastReportsRemoved,
	}
}
