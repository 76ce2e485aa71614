package collecting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	igmocks "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/igclient/mocks"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	credmocks "github.com/vfg2006/creator-insights-api/internal/usecases/credentialing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_CollectAccount(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cfg := &config.Config{
		MetricsSync: config.MetricsSync{
			MediaLimit: 10,
		},
	}

	account := &domain.TrackedAccount{
		ID:       "ACC001",
		Username: "criadora",
	}

	credential := &domain.Credential{
		AccessToken:    "token-valido",
		ExternalUserID: "IG001",
	}

	t.Run("Coleta completa - snapshot, publicações e registro gravado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := igmocks.NewMockClient(ctrl)
		mockCredentials := credmocks.NewMockCredentialManager(ctrl)
		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)

		mockCredentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		mockClient.EXPECT().
			GetAccountInsights("token-valido", "IG001").
			Return(igdomain.InsightValues{"follower_count": 1000, "follows_count": 200}, nil)

		mockClient.EXPECT().
			GetRecentMedia("token-valido", "IG001", 10).
			Return([]igdomain.Media{
				{ID: "POST001", MediaType: "IMAGE"},
				{ID: "POST002", MediaType: "VIDEO"},
			}, nil)

		mockClient.EXPECT().
			GetMediaInsights("token-valido", "POST001").
			Return(igdomain.InsightValues{"likes": 10, "comments": 1}, nil)

		mockClient.EXPECT().
			GetMediaInsights("token-valido", "POST002").
			Return(igdomain.InsightValues{"likes": 20, "comments": 2}, nil)

		mockMetricsRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(record *domain.MetricsRecord) error {
				assert.Equal(t, domain.AccountID("ACC001"), record.AccountID)
				assert.Equal(t, int64(1000), record.FollowersCount)
				assert.Equal(t, 2, record.PostsCount)
				assert.Equal(t, int64(30), record.TotalLikes)
				assert.Equal(t, 1.65, record.AvgEngagementRate)
				return nil
			})

		service := &Service{
			client:      mockClient,
			credentials: mockCredentials,
			metricsRepo: mockMetricsRepo,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		err := service.CollectAccount(account)
		assert.NoError(t, err)
	})

	t.Run("Falha na credencial - aborta sem chamar a plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := igmocks.NewMockClient(ctrl)
		mockCredentials := credmocks.NewMockCredentialManager(ctrl)
		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)

		refreshErr := errors.New("renovação falhou")
		mockCredentials.EXPECT().EnsureFresh(account).Return(nil, refreshErr)

		service := &Service{
			client:      mockClient,
			credentials: mockCredentials,
			metricsRepo: mockMetricsRepo,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		err := service.CollectAccount(account)
		assert.ErrorIs(t, err, refreshErr)
	})

	t.Run("Snapshot da conta indisponível - aborta com ErrCollectionFailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := igmocks.NewMockClient(ctrl)
		mockCredentials := credmocks.NewMockCredentialManager(ctrl)
		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)

		mockCredentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		mockClient.EXPECT().
			GetAccountInsights("token-valido", "IG001").
			Return(nil, errors.New("plataforma indisponível"))

		service := &Service{
			client:      mockClient,
			credentials: mockCredentials,
			metricsRepo: mockMetricsRepo,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		err := service.CollectAccount(account)
		assert.ErrorIs(t, err, ErrCollectionFailed)
	})

	t.Run("Insight de uma publicação falha - fica fora da agregação, lote segue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := igmocks.NewMockClient(ctrl)
		mockCredentials := credmocks.NewMockCredentialManager(ctrl)
		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)

		mockCredentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		mockClient.EXPECT().
			GetAccountInsights("token-valido", "IG001").
			Return(igdomain.InsightValues{"follower_count": 1000}, nil)

		mockClient.EXPECT().
			GetRecentMedia("token-valido", "IG001", 10).
			Return([]igdomain.Media{
				{ID: "POST001", MediaType: "IMAGE"},
				{ID: "POST002", MediaType: "VIDEO"},
			}, nil)

		mockClient.EXPECT().
			GetMediaInsights("token-valido", "POST001").
			Return(igdomain.InsightValues{"likes": 10}, nil)

		mockClient.EXPECT().
			GetMediaInsights("token-valido", "POST002").
			Return(nil, errors.New("métrica indisponível"))

		mockMetricsRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(record *domain.MetricsRecord) error {
				assert.Equal(t, 2, record.PostsCount)
				assert.Equal(t, int64(10), record.TotalLikes)
				assert.Equal(t, 1.0, record.AvgEngagementRate)
				assert.Len(t, record.PerPost, 1)
				assert.Equal(t, domain.PostID("POST001"), record.PerPost[0].PostID)
				return nil
			})

		service := &Service{
			client:      mockClient,
			credentials: mockCredentials,
			metricsRepo: mockMetricsRepo,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		err := service.CollectAccount(account)
		assert.NoError(t, err)
	})

	t.Run("Falha de persistência - devolve ErrCollectionFailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := igmocks.NewMockClient(ctrl)
		mockCredentials := credmocks.NewMockCredentialManager(ctrl)
		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)

		mockCredentials.EXPECT().EnsureFresh(account).Return(credential, nil)

		mockClient.EXPECT().
			GetAccountInsights("token-valido", "IG001").
			Return(igdomain.InsightValues{"follower_count": 1000}, nil)

		mockClient.EXPECT().
			GetRecentMedia("token-valido", "IG001", 10).
			Return([]igdomain.Media{}, nil)

		mockMetricsRepo.EXPECT().
			Save(gomock.Any()).
			Return(errors.New("banco indisponível"))

		service := &Service{
			client:      mockClient,
			credentials: mockCredentials,
			metricsRepo: mockMetricsRepo,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		err := service.CollectAccount(account)
		assert.ErrorIs(t, err, ErrCollectionFailed)
	})
}
