package feedback

import (
	"errors"
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

// Limite de sugestões de conteúdo devolvidas por conta
const maxSuggestionsPerAccount = 5

// Quantidade de registros recentes usados no resumo de performance
const recentRecordsForSuggestions = 10

// Analyzer executa a análise de IA das publicações de uma conta e gera
// sugestões de conteúdo por nicho
type Analyzer interface {
	AnalyzeAccountPosts(account *domain.TrackedAccount) error
	GenerateAccountSuggestions(account *domain.TrackedAccount) ([]string, error)
}

type Service struct {
	client         igclient.Client
	credentials    credentialing.CredentialManager
	completion     CompletionClient
	feedbackRepo   repository.FeedbackRepository
	suggestionRepo repository.ContentSuggestionRepository
	metricsRepo    repository.MetricsRepository
	appConfig      *config.Config
	now            func() time.Time
}

func NewService(
	client igclient.Client,
	credentials credentialing.CredentialManager,
	completion CompletionClient,
	feedbackRepo repository.FeedbackRepository,
	suggestionRepo repository.ContentSuggestionRepository,
	metricsRepo repository.MetricsRepository,
	appConfig *config.Config,
) *Service {
	return &Service{
		client:         client,
		credentials:    credentials,
		completion:     completion,
		feedbackRepo:   feedbackRepo,
		suggestionRepo: suggestionRepo,
		metricsRepo:    metricsRepo,
		appConfig:      appConfig,
		now:            time.Now,
	}
}

// AnalyzeAccountPosts analisa as publicações recentes da conta que ainda
// não têm feedback. Publicações já analisadas são puladas antes de
// qualquer chamada de IA; a constraint de unicidade no banco cobre a
// janela entre a checagem e a gravação. Falha de análise de uma
// publicação isolada não interrompe o restante do lote.
func (s *Service) AnalyzeAccountPosts(account *domain.TrackedAccount) error {
	if s.appConfig.OpenAI.APIKey == "" {
		return ErrUnavailable
	}

	credential, err := s.credentials.EnsureFresh(account)
	if err != nil {
		return err
	}

	mediaList, err := s.client.GetRecentMedia(credential.AccessToken, credential.ExternalUserID, s.appConfig.FeedbackAnalysis.MediaLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao listar publicações recentes para análise")
		return fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	var analyzed, skipped, failed int
	for _, media := range mediaList {
		postID := domain.PostID(media.ID)

		exists, err := s.feedbackRepo.ExistsByPostID(postID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"post_id":    media.ID,
				"error":      err.Error(),
			}).Error("Erro ao verificar feedback existente")
			failed++
			continue
		}
		if exists {
			skipped++
			continue
		}

		insights, err := s.client.GetMediaInsights(credential.AccessToken, media.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"post_id":    media.ID,
				"error":      err.Error(),
			}).Warn("Erro ao obter métricas da publicação, analisando sem dados de engajamento")
			insights = nil
		}

		prompt := buildAnalysisPrompt(media.Caption, media.MediaType, account.Niche, insights)

		raw, err := s.completion.Complete(analysisSystemMessage, prompt, analysisTemperature, analysisMaxTokens)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"post_id":    media.ID,
				"error":      err.Error(),
			}).Error("Erro na chamada de análise de IA")
			failed++
			continue
		}

		analysis := ParseAnalysis(raw)

		logrus.WithField("post_id", media.ID).Debug(utils.PrettyJson(analysis))

		id, err := utils.GenerateID()
		if err != nil {
			failed++
			continue
		}

		record := &domain.FeedbackRecord{
			ID:           id,
			AccountID:    account.ID,
			PostID:       postID,
			PostURL:      media.Permalink,
			Caption:      media.Caption,
			PostKind:     media.MediaType,
			Scores:       analysis.Scores,
			FeedbackText: analysis.FeedbackText,
			Suggestions:  analysis.Suggestions,
			CreatedAt:    s.now(),
		}

		if err := s.feedbackRepo.Save(record); err != nil {
			if errors.Is(err, repository.ErrFeedbackAlreadyExists) {
				skipped++
				continue
			}
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"post_id":    media.ID,
				"error":      err.Error(),
			}).Error("Erro ao gravar feedback da publicação")
			failed++
			continue
		}

		analyzed++
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"analyzed":   analyzed,
		"skipped":    skipped,
		"failed":     failed,
	}).Info("Análise de publicações da conta concluída")

	if failed > 0 && analyzed == 0 && skipped == 0 {
		return fmt.Errorf("%w: todas as %d publicações falharam", ErrAnalysisFailed, failed)
	}

	return nil
}

// GenerateAccountSuggestions gera e grava sugestões de conteúdo para a
// conta a partir do nicho e da performance recente.
func (s *Service) GenerateAccountSuggestions(account *domain.TrackedAccount) ([]string, error) {
	if s.appConfig.OpenAI.APIKey == "" {
		return nil, ErrUnavailable
	}

	records, err := s.metricsRepo.GetRecent(account.ID, recentRecordsForSuggestions)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao buscar métricas recentes, gerando sugestões sem resumo de performance")
		records = nil
	}

	prompt := buildSuggestionsPrompt(account.Niche, records)

	raw, err := s.completion.Complete(suggestionsSystemMessage, prompt, suggestionsTemperature, suggestionsMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("erro na chamada de sugestões de conteúdo: %w", err)
	}

	suggestions := ParseSuggestions(raw, maxSuggestionsPerAccount)
	if len(suggestions) == 0 {
		return nil, errors.New("a IA não devolveu nenhuma sugestão de conteúdo")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	if err := s.suggestionRepo.Save(id, account.ID, account.Niche, suggestions); err != nil {
		return nil, fmt.Errorf("erro ao gravar sugestões de conteúdo: %w", err)
	}

	return suggestions, nil
}
