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
	"github.com/vfg2006/creator-insights-api/internal/usecases/reporting"
)

// Janelas dos relatórios periódicos, em dias
const (
	weeklyWindowDays  = 7
	monthlyWindowDays = 30
)

// ReportGenerationConfig representa a configuração do agendador de geração de relatórios
type ReportGenerationConfig struct {
	WeeklyCronSchedule  string
	MonthlyCronSchedule string
	SyncEnabled         bool
}

// ReportGenerationService gerencia o agendamento e execução da geração
// de relatórios semanais e mensais das contas ativas
type ReportGenerationService struct {
	scheduler           *gocron.Scheduler
	config              ReportGenerationConfig
	accountRepo         repository.TrackedAccountRepository
	compiler            reporting.Compiler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          BatchResult
	now                 func() time.Time
}

// NewReportGenerationService cria uma nova instância do serviço de geração de relatórios
func NewReportGenerationService(
	accountRepo repository.TrackedAccountRepository,
	compiler reporting.Compiler,
	appConfig *config.Config,
) *ReportGenerationService {
	generationConfig := ReportGenerationConfig{
		WeeklyCronSchedule:  appConfig.ReportSync.WeeklyCronSchedule,
		MonthlyCronSchedule: appConfig.ReportSync.MonthlyCronSchedule,
		SyncEnabled:         appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"weekly_cron":  generationConfig.WeeklyCronSchedule,
		"monthly_cron": generationConfig.MonthlyCronSchedule,
		"sync_enabled": generationConfig.SyncEnabled,
	}).Info("Configuração do agendador de geração de relatórios carregada")

	return &ReportGenerationService{
		scheduler:   scheduler,
		config:      generationConfig,
		accountRepo: accountRepo,
		compiler:    compiler,
		syncRunning: false,
		now:         time.Now,
	}
}

// Start inicia o agendador com os dois crons, semanal e mensal
func (s *ReportGenerationService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"weekly_cron":  s.config.WeeklyCronSchedule,
		"monthly_cron": s.config.MonthlyCronSchedule,
	}).Info("Iniciando agendador de geração de relatórios")

	_, err := s.scheduler.Cron(s.config.WeeklyCronSchedule).Do(func() {
		s.generateAllReports(domain.ReportKindWeekly)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios semanais: %w", err)
	}

	_, err = s.scheduler.Cron(s.config.MonthlyCronSchedule).Do(func() {
		s.generateAllReports(domain.ReportKindMonthly)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios mensais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de geração de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// generateAllReports compila o relatório do tipo pedido para todas as
// contas ativas. As compilações rodam em sequência: cada uma carrega as
// séries inteiras do período e renderiza um artefato.
func (s *ReportGenerationService) generateAllReports(kind domain.ReportKind) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando")
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

	end := s.now()
	start := end.AddDate(0, 0, -windowDays(kind))

	logrus.WithFields(logrus.Fields{
		"report_kind":  kind,
		"period_start": start.Format(time.DateOnly),
		"period_end":   end.Format(time.DateOnly),
	}).Info("Iniciando geração de relatórios para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para geração de relatórios")
		return
	}

	counter := newBatchCounter(len(activeAccounts))

	for _, account := range activeAccounts {
		_, err := s.compiler.Compile(account, kind, start, end)
		if err != nil {
			// Conta sem dados no período não conta como erro
			if errors.Is(err, reporting.ErrNoData) {
				logrus.WithFields(logrus.Fields{
					"account_id":  account.ID,
					"report_kind": kind,
				}).Info("Conta sem dados no período. Pulando relatório.")
				counter.skip()
				continue
			}
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"report_kind": kind,
				"error":       err.Error(),
			}).Error("Erro na geração do relatório da conta")
			counter.failure()
			continue
		}

		counter.success()
	}

	s.lastResult = counter.snapshot()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"report_kind":   kind,
		"total":         s.lastResult.Total,
		"success_count": s.lastResult.SuccessCount,
		"error_count":   s.lastResult.ErrorCount,
		"skipped_count": s.lastResult.SkippedCount,
	}).Info("Geração de relatórios concluída")

	s.lastSyncCompletedAt = time.Now()
}

func windowDays(kind domain.ReportKind) int {
	if kind == domain.ReportKindMonthly {
		return monthlyWindowDays
	}
	return weeklyWindowDays
}

// TriggerManualSync inicia manualmente uma rodada de geração de
// relatórios semanais
func (s *ReportGenerationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios semanais")
	go s.generateAllReports(domain.ReportKindWeekly)
}

// GetStatus retorna o status atual do agendador
func (s *ReportGenerationService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"weekly_cron":            s.config.WeeklyCronSchedule,
		"monthly_cron":           s.config.MonthlyCronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
