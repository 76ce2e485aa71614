package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

// Rótulos dos tipos de relatório usados nos títulos
var kindLabels = map[domain.ReportKind]string{
	domain.ReportKindWeekly:  "Semanal",
	domain.ReportKindMonthly: "Mensal",
	domain.ReportKindCustom:  "Personalizado",
}

// Compiler compila relatórios de performance por conta e período
type Compiler interface {
	Compile(account *domain.TrackedAccount, kind domain.ReportKind, start, end time.Time) (*domain.ReportRecord, error)
}

type Service struct {
	metricsRepo  repository.MetricsRepository
	feedbackRepo repository.FeedbackRepository
	reportRepo   repository.ReportRepository
	userRepo     repository.UserRepository
	renderer     Renderer
	notifier     Notifier
	now          func() time.Time
}

func NewService(
	metricsRepo repository.MetricsRepository,
	feedbackRepo repository.FeedbackRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	renderer Renderer,
	notifier Notifier,
) *Service {
	return &Service{
		metricsRepo:  metricsRepo,
		feedbackRepo: feedbackRepo,
		reportRepo:   reportRepo,
		userRepo:     userRepo,
		renderer:     renderer,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Compile materializa o relatório da conta para o período: carrega as
// séries de métricas e feedbacks, monta os resumos, renderiza o
// artefato e só então grava o registro já pronto. A compilação é
// atômica do ponto de vista do leitor: ou existe registro pronto com
// artefato, ou não existe registro nenhum. A notificação por e-mail é
// melhor esforço e nunca desfaz a compilação.
func (s *Service) Compile(account *domain.TrackedAccount, kind domain.ReportKind, start, end time.Time) (*domain.ReportRecord, error) {
	metricsRecords, err := s.metricsRepo.GetByPeriod(account.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompilationFailed, err)
	}

	feedbackRecords, err := s.feedbackRepo.GetByPeriod(account.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompilationFailed, err)
	}

	if len(metricsRecords) == 0 && len(feedbackRecords) == 0 {
		return nil, ErrNoData
	}

	metricsSummary := SummarizeMetrics(metricsRecords)
	scores := AverageScores(feedbackRecords)
	hasFeedback := len(feedbackRecords) > 0

	title := fmt.Sprintf("Relatório %s - %s a %s",
		kindLabels[kind],
		start.Format("02/01/2006"),
		end.Format("02/01/2006"),
	)

	data := &ReportData{
		Title:           title,
		Username:        account.Username,
		Niche:           account.Niche,
		PeriodStart:     start,
		PeriodEnd:       end,
		GeneratedAt:     s.now(),
		Metrics:         metricsSummary,
		Scores:          scores,
		HasFeedback:     hasFeedback,
		TopSuggestions:  TopSuggestions(feedbackRecords),
		Recommendations: BuildRecommendations(metricsSummary, scores, hasFeedback, account.Niche),
	}

	artifactPath, err := s.renderer.Render(account.ID, data)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao renderizar artefato do relatório")
		return nil, fmt.Errorf("%w: %v", ErrCompilationFailed, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompilationFailed, err)
	}

	record := &domain.ReportRecord{
		ID:           id,
		AccountID:    account.ID,
		Kind:         kind,
		PeriodStart:  start,
		PeriodEnd:    end,
		Title:        title,
		Summary:      fmt.Sprintf("Relatório %s gerado automaticamente", kindLabels[kind]),
		ArtifactPath: &artifactPath,
		IsReady:      true,
		CreatedAt:    s.now(),
	}

	if err := s.reportRepo.Save(record); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao gravar registro do relatório")
		return nil, fmt.Errorf("%w: %v", ErrCompilationFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"report_id":     record.ID,
		"report_kind":   record.Kind,
		"artifact_path": artifactPath,
	}).Info("Relatório compilado com sucesso")

	s.notifyOwner(account, record)

	return record, nil
}

func (s *Service) notifyOwner(account *domain.TrackedAccount, record *domain.ReportRecord) {
	user, err := s.userRepo.GetByID(account.UserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao buscar dono da conta para notificação")
		return
	}

	if err := s.notifier.NotifyReportReady(user, record); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"report_id":  record.ID,
			"error":      err.Error(),
		}).Warn("Erro ao notificar dono da conta sobre relatório pronto")
	}
}
