package reporting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/creator-insights-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type compileMocks struct {
	metrics  *mocks.MockMetricsRepository
	feedback *mocks.MockFeedbackRepository
	report   *mocks.MockReportRepository
	user     *mocks.MockUserRepository
	renderer *reportingmocks.MockRenderer
	notifier *reportingmocks.MockNotifier
}

func newCompileService(ctrl *gomock.Controller) (*reporting.Service, *compileMocks) {
	m := &compileMocks{
		metrics:  mocks.NewMockMetricsRepository(ctrl),
		feedback: mocks.NewMockFeedbackRepository(ctrl),
		report:   mocks.NewMockReportRepository(ctrl),
		user:     mocks.NewMockUserRepository(ctrl),
		renderer: reportingmocks.NewMockRenderer(ctrl),
		notifier: reportingmocks.NewMockNotifier(ctrl),
	}

	service := reporting.NewService(m.metrics, m.feedback, m.report, m.user, m.renderer, m.notifier)

	return service, m
}

func TestService_Compile(t *testing.T) {
	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	account := &domain.TrackedAccount{
		ID:       "ACC001",
		UserID:   "USR001",
		Username: "criadora",
		Niche:    domain.NicheBeauty,
	}

	metricsRecords := []*domain.MetricsRecord{
		{AccountID: "ACC001", FollowersCount: 1200, AvgEngagementRate: 3.5},
		{AccountID: "ACC001", FollowersCount: 1000, AvgEngagementRate: 3.0},
	}

	feedbackRecords := []*domain.FeedbackRecord{
		{
			AccountID:   "ACC001",
			Scores:      domain.FeedbackScores{Overall: 0.8, ContentQuality: 0.8, EngagementPotential: 0.7, VisualAppeal: 0.9},
			Suggestions: []string{"Use hashtags do nicho"},
		},
	}

	t.Run("Período com dados - artefato renderizado, registro pronto e dono notificado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCompileService(ctrl)

		m.metrics.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(metricsRecords, nil)
		m.feedback.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(feedbackRecords, nil)

		m.renderer.EXPECT().
			Render(domain.AccountID("ACC001"), gomock.Any()).
			DoAndReturn(func(_ domain.AccountID, data *reporting.ReportData) (string, error) {
				assert.Equal(t, "Relatório Semanal - 03/06/2025 a 10/06/2025", data.Title)
				assert.Equal(t, "criadora", data.Username)
				assert.True(t, data.HasFeedback)
				assert.NotNil(t, data.Metrics)
				return "/tmp/reports/report_ACC001.html", nil
			})

		m.report.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(record *domain.ReportRecord) error {
				assert.Equal(t, domain.AccountID("ACC001"), record.AccountID)
				assert.Equal(t, domain.ReportKindWeekly, record.Kind)
				assert.True(t, record.IsReady)
				assert.NotNil(t, record.ArtifactPath)
				assert.Equal(t, "/tmp/reports/report_ACC001.html", *record.ArtifactPath)
				return nil
			})

		owner := &domain.User{ID: "USR001", Email: "criadora@example.com"}
		m.user.EXPECT().GetByID("USR001").Return(owner, nil)
		m.notifier.EXPECT().NotifyReportReady(owner, gomock.Any()).Return(nil)

		record, err := service.Compile(account, domain.ReportKindWeekly, start, end)

		assert.NoError(t, err)
		assert.True(t, record.IsReady)
	})

	t.Run("Período sem métricas nem feedbacks - devolve ErrNoData sem gravar nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCompileService(ctrl)

		m.metrics.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(nil, nil)
		m.feedback.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(nil, nil)

		record, err := service.Compile(account, domain.ReportKindWeekly, start, end)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, reporting.ErrNoData)
	})

	t.Run("Falha na renderização - devolve ErrCompilationFailed sem gravar registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCompileService(ctrl)

		m.metrics.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(metricsRecords, nil)
		m.feedback.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(nil, nil)

		m.renderer.EXPECT().
			Render(domain.AccountID("ACC001"), gomock.Any()).
			Return("", errors.New("disco cheio"))

		record, err := service.Compile(account, domain.ReportKindWeekly, start, end)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, reporting.ErrCompilationFailed)
	})

	t.Run("Falha na gravação do registro - devolve ErrCompilationFailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCompileService(ctrl)

		m.metrics.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(metricsRecords, nil)
		m.feedback.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(nil, nil)

		m.renderer.EXPECT().
			Render(domain.AccountID("ACC001"), gomock.Any()).
			Return("/tmp/reports/report_ACC001.html", nil)

		m.report.EXPECT().Save(gomock.Any()).Return(errors.New("banco indisponível"))

		record, err := service.Compile(account, domain.ReportKindWeekly, start, end)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, reporting.ErrCompilationFailed)
	})

	t.Run("Falha na notificação não desfaz a compilação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCompileService(ctrl)

		m.metrics.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(metricsRecords, nil)
		m.feedback.EXPECT().GetByPeriod(domain.AccountID("ACC001"), start, end).Return(feedbackRecords, nil)

		m.renderer.EXPECT().
			Render(domain.AccountID("ACC001"), gomock.Any()).
			Return("/tmp/reports/report_ACC001.html", nil)

		m.report.EXPECT().Save(gomock.Any()).Return(nil)

		m.user.EXPECT().GetByID("USR001").Return(nil, errors.New("banco indisponível"))

		record, err := service.Compile(account, domain.ReportKindWeekly, start, end)

		assert.NoError(t, err)
		assert.NotNil(t, record)
	})
}
