package feedback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	igmocks "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/igclient/mocks"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	credmocks "github.com/vfg2006/creator-insights-api/internal/usecases/credentialing/mocks"
	feedbackmocks "github.com/vfg2006/creator-insights-api/internal/usecases/feedback/mocks"
	"go.uber.org/mock/gomock"
)

type analyzeMocks struct {
	client      *igmocks.MockClient
	credentials *credmocks.MockCredentialManager
	completion  *feedbackmocks.MockCompletionClient
	feedback    *mocks.MockFeedbackRepository
	suggestion  *mocks.MockContentSuggestionRepository
	metrics     *mocks.MockMetricsRepository
}

func newAnalyzeService(ctrl *gomock.Controller, cfg *config.Config) (*Service, *analyzeMocks) {
	m := &analyzeMocks{
		client:      igmocks.NewMockClient(ctrl),
		credentials: credmocks.NewMockCredentialManager(ctrl),
		completion:  feedbackmocks.NewMockCompletionClient(ctrl),
		feedback:    mocks.NewMockFeedbackRepository(ctrl),
		suggestion:  mocks.NewMockContentSuggestionRepository(ctrl),
		metrics:     mocks.NewMockMetricsRepository(ctrl),
	}

	service := &Service{
		client:         m.client,
		credentials:    m.credentials,
		completion:     m.completion,
		feedbackRepo:   m.feedback,
		suggestionRepo: m.suggestion,
		metricsRepo:    m.metrics,
		appConfig:      cfg,
		now:            func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) },
	}

	return service, m
}

func TestService_AnalyzeAccountPosts(t *testing.T) {
	cfg := &config.Config{
		OpenAI: config.OpenAI{APIKey: "sk-teste"},
		FeedbackAnalysis: config.FeedbackAnalysis{
			MediaLimit: 5,
		},
	}

	account := &domain.TrackedAccount{
		ID:       "ACC001",
		Username: "criadora",
		Niche:    domain.NicheBeauty,
	}

	credential := &domain.Credential{
		AccessToken:    "token-valido",
		ExternalUserID: "IG001",
	}

	t.Run("Sem chave da API - devolve ErrUnavailable sem tocar a plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newAnalyzeService(ctrl, &config.Config{})

		err := service.AnalyzeAccountPosts(account)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("Publicação nova - analisada e gravada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newAnalyzeService(ctrl, cfg)

		m.credentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		m.client.EXPECT().
			GetRecentMedia("token-valido", "IG001", 5).
			Return([]igdomain.Media{
				{ID: "POST001", Caption: "look do dia", MediaType: "IMAGE", Permalink: "https://ig/p/1"},
			}, nil)

		m.feedback.EXPECT().ExistsByPostID(domain.PostID("POST001")).Return(false, nil)

		m.client.EXPECT().
			GetMediaInsights("token-valido", "POST001").
			Return(igdomain.InsightValues{"likes": 10}, nil)

		m.completion.EXPECT().
			Complete(analysisSystemMessage, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(`{"scores":{"overall":0.8,"content_quality":0.8,"engagement_potential":0.7,"visual_appeal":0.9},"feedback_text":"Bom post","suggestions":["Use hashtags"]}`, nil)

		m.feedback.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(record *domain.FeedbackRecord) error {
				assert.Equal(t, domain.AccountID("ACC001"), record.AccountID)
				assert.Equal(t, domain.PostID("POST001"), record.PostID)
				assert.Equal(t, "https://ig/p/1", record.PostURL)
				assert.Equal(t, 0.8, record.Scores.Overall)
				assert.Equal(t, "Bom post", record.FeedbackText)
				return nil
			})

		err := service.AnalyzeAccountPosts(account)
		assert.NoError(t, err)
	})

	t.Run("Publicação já analisada - pulada antes de qualquer chamada de IA", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newAnalyzeService(ctrl, cfg)

		m.credentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		m.client.EXPECT().
			GetRecentMedia("token-valido", "IG001", 5).
			Return([]igdomain.Media{
				{ID: "POST001", MediaType: "IMAGE"},
			}, nil)

		m.feedback.EXPECT().ExistsByPostID(domain.PostID("POST001")).Return(true, nil)

		err := service.AnalyzeAccountPosts(account)
		assert.NoError(t, err)
	})

	t.Run("Corrida na gravação - ErrFeedbackAlreadyExists tratado como no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newAnalyzeService(ctrl, cfg)

		m.credentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		m.client.EXPECT().
			GetRecentMedia("token-valido", "IG001", 5).
			Return([]igdomain.Media{{ID: "POST001", MediaType: "IMAGE"}}, nil)

		m.feedback.EXPECT().ExistsByPostID(domain.PostID("POST001")).Return(false, nil)

		m.client.EXPECT().
			GetMediaInsights("token-valido", "POST001").
			Return(nil, errors.New("métrica indisponível"))

		m.completion.EXPECT().
			Complete(analysisSystemMessage, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("resposta em texto livre", nil)

		m.feedback.EXPECT().
			Save(gomock.Any()).
			Return(repository.ErrFeedbackAlreadyExists)

		err := service.AnalyzeAccountPosts(account)
		assert.NoError(t, err)
	})

	t.Run("Todas as análises falham - devolve ErrAnalysisFailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newAnalyzeService(ctrl, cfg)

		m.credentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		m.client.EXPECT().
			GetRecentMedia("token-valido", "IG001", 5).
			Return([]igdomain.Media{{ID: "POST001", MediaType: "IMAGE"}}, nil)

		m.feedback.EXPECT().ExistsByPostID(domain.PostID("POST001")).Return(false, nil)

		m.client.EXPECT().
			GetMediaInsights("token-valido", "POST001").
			Return(igdomain.InsightValues{}, nil)

		m.completion.EXPECT().
			Complete(analysisSystemMessage, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("limite de requisições excedido"))

		err := service.AnalyzeAccountPosts(account)
		assert.ErrorIs(t, err, ErrAnalysisFailed)
	})
}

func TestService_GenerateAccountSuggestions(t *testing.T) {
	cfg := &config.Config{
		OpenAI: config.OpenAI{APIKey: "sk-teste"},
	}

	account := &domain.TrackedAccount{
		ID:    "ACC001",
		Niche: domain.NicheFitness,
	}

	t.Run("Sem chave da API - devolve ErrUnavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newAnalyzeService(ctrl, &config.Config{})

		suggestions, err := service.GenerateAccountSuggestions(account)
		assert.Nil(t, suggestions)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("Sugestões geradas e gravadas com limite de cinco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newAnalyzeService(ctrl, cfg)

		m.metrics.EXPECT().
			GetRecent(domain.AccountID("ACC001"), recentRecordsForSuggestions).
			Return([]*domain.MetricsRecord{
				{AvgEngagementRate: 2.5, FollowersCount: 1000},
			}, nil)

		m.completion.EXPECT().
			Complete(suggestionsSystemMessage, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("Sugestão um\nSugestão dois\nSugestão três\nSugestão quatro\nSugestão cinco\nSugestão seis", nil)

		m.suggestion.EXPECT().
			Save(gomock.Any(), domain.AccountID("ACC001"), domain.NicheFitness, gomock.Len(5)).
			Return(nil)

		suggestions, err := service.GenerateAccountSuggestions(account)
		assert.NoError(t, err)
		assert.Len(t, suggestions, 5)
	})
}
