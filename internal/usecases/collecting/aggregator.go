package collecting

import (
	"time"

	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

// PostInsights junta uma publicação com o payload bruto de métricas
// retornado pela plataforma. Insights pode ser nil quando a busca da
// publicação falhou; a publicação fica fora da agregação mas segue
// contando no tamanho do lote.
type PostInsights struct {
	Media    igdomain.Media
	Insights igdomain.InsightValues
}

// ExtractPostMetric converte o payload bruto de uma publicação em
// PostMetric, zerando métricas ausentes e ignorando nomes desconhecidos
func ExtractPostMetric(media igdomain.Media, insights igdomain.InsightValues, capturedAt time.Time) domain.PostMetric {
	return domain.PostMetric{
		PostID:      domain.PostID(media.ID),
		MediaKind:   media.MediaType,
		CapturedAt:  capturedAt,
		Likes:       insights["likes"],
		Comments:    insights["comments"],
		Shares:      insights["shares"],
		Saves:       insights["saved"],
		Reach:       insights["reach"],
		Impressions: insights["impressions"],
	}
}

// EngagementRate calcula a taxa média de engajamento do lote:
// ((likes+comentários) / (seguidores × publicações)) × 100. É uma média
// do lote, sem ponderar pelo alcance de cada publicação, e devolve 0
// quando não há seguidores ou publicações.
func EngagementRate(totalLikes, totalComments, followersCount int64, postCount int) float64 {
	if followersCount <= 0 || postCount <= 0 {
		return 0.0
	}

	rate := (float64(totalLikes+totalComments) / float64(followersCount*int64(postCount))) * 100
	return utils.RoundWithTwoDecimalPlace(rate)
}

// BuildMetricsRecord agrega o snapshot da conta e o lote de publicações
// em um registro da série temporal. posts_count é o tamanho do lote
// coletado, não o total histórico da conta. Publicações cujo insight
// falhou (Insights nil) ficam fora da série por publicação e do
// denominador da taxa; só posts_count segue refletindo o lote inteiro.
func BuildMetricsRecord(
	id string,
	accountID domain.AccountID,
	snapshot igdomain.InsightValues,
	posts []PostInsights,
	capturedAt time.Time,
) *domain.MetricsRecord {
	perPost := make([]domain.PostMetric, 0, len(posts))

	var totalLikes, totalComments, totalReach int64
	for _, post := range posts {
		if post.Insights == nil {
			continue
		}

		metric := ExtractPostMetric(post.Media, post.Insights, capturedAt)
		perPost = append(perPost, metric)

		totalLikes += metric.Likes
		totalComments += metric.Comments
		totalReach += metric.Reach
	}

	followersCount := snapshot["follower_count"]

	return &domain.MetricsRecord{
		ID:                id,
		AccountID:         accountID,
		CapturedAt:        capturedAt,
		FollowersCount:    followersCount,
		FollowingCount:    snapshot["follows_count"],
		PostsCount:        len(posts),
		AvgEngagementRate: EngagementRate(totalLikes, totalComments, followersCount, len(perPost)),
		TotalLikes:        totalLikes,
		TotalComments:     totalComments,
		TotalReach:        totalReach,
		PerPost:           perPost,
	}
}
