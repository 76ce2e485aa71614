package collecting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/credentialing"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

// Collector executa uma rodada de coleta para uma conta
type Collector interface {
	CollectAccount(account *domain.TrackedAccount) error
}

type Service struct {
	client      igclient.Client
	credentials credentialing.CredentialManager
	metricsRepo repository.MetricsRepository
	appConfig   *config.Config
	now         func() time.Time
}

func NewService(
	client igclient.Client,
	credentials credentialing.CredentialManager,
	metricsRepo repository.MetricsRepository,
	appConfig *config.Config,
) *Service {
	return &Service{
		client:      client,
		credentials: credentials,
		metricsRepo: metricsRepo,
		appConfig:   appConfig,
		now:         time.Now,
	}
}

// CollectAccount roda a máquina de estados de uma conta: credencial →
// snapshot → publicações → agregação → persistência. Os passos são
// estritamente sequenciais; qualquer falha antes da agregação aborta sem
// gravar registro parcial.
func (s *Service) CollectAccount(account *domain.TrackedAccount) error {
	credential, err := s.credentials.EnsureFresh(account)
	if err != nil {
		return err
	}

	snapshot, err := s.client.GetAccountInsights(credential.AccessToken, credential.ExternalUserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao obter snapshot da conta na plataforma")
		return fmt.Errorf("%w: %v", ErrCollectionFailed, err)
	}

	mediaList, err := s.client.GetRecentMedia(credential.AccessToken, credential.ExternalUserID, s.appConfig.MetricsSync.MediaLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao listar publicações recentes da conta")
		return fmt.Errorf("%w: %v", ErrCollectionFailed, err)
	}

	capturedAt := s.now()

	// Falha de insight de uma publicação isolada não derruba a coleta:
	// a publicação fica fora da agregação, mas o lote segue inteiro
	posts := make([]PostInsights, 0, len(mediaList))
	for _, media := range mediaList {
		insights, err := s.client.GetMediaInsights(credential.AccessToken, media.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"post_id":    media.ID,
				"error":      err.Error(),
			}).Warn("Erro ao obter métricas da publicação, seguindo com métricas ausentes")
			insights = nil
		}
		posts = append(posts, PostInsights{Media: media, Insights: insights})
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCollectionFailed, err)
	}

	record := BuildMetricsRecord(id, account.ID, snapshot, posts, capturedAt)

	if err := s.metricsRepo.Save(record); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao gravar registro de métricas")
		return fmt.Errorf("%w: %v", ErrCollectionFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":          account.ID,
		"followers_count":     record.FollowersCount,
		"posts_count":         record.PostsCount,
		"avg_engagement_rate": record.AvgEngagementRate,
	}).Info("Registro de métricas gravado com sucesso")

	return nil
}
