package collecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name           string
		totalLikes     int64
		totalComments  int64
		followersCount int64
		postCount      int
		expected       float64
	}{
		{
			name:           "Lote com duas publicações - média arredondada em duas casas",
			totalLikes:     30, // 10 + 20
			totalComments:  3,  // 1 + 2
			followersCount: 1000,
			postCount:      2,
			expected:       1.65,
		},
		{
			name:           "Conta sem seguidores - taxa zero, sem divisão por zero",
			totalLikes:     50,
			totalComments:  10,
			followersCount: 0,
			postCount:      3,
			expected:       0.0,
		},
		{
			name:           "Lote vazio - taxa zero",
			totalLikes:     0,
			totalComments:  0,
			followersCount: 1000,
			postCount:      0,
			expected:       0.0,
		},
		{
			name:           "Seguidores negativos vindos de payload corrompido - taxa zero",
			totalLikes:     10,
			totalComments:  5,
			followersCount: -10,
			postCount:      2,
			expected:       0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := EngagementRate(tt.totalLikes, tt.totalComments, tt.followersCount, tt.postCount)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

func TestExtractPostMetric(t *testing.T) {
	capturedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	media := igdomain.Media{
		ID:        "POST001",
		MediaType: "IMAGE",
	}

	t.Run("Payload completo - todas as métricas extraídas", func(t *testing.T) {
		insights := igdomain.InsightValues{
			"likes":       10,
			"comments":    2,
			"shares":      1,
			"saved":       4,
			"reach":       500,
			"impressions": 700,
		}

		metric := ExtractPostMetric(media, insights, capturedAt)

		assert.Equal(t, domain.PostID("POST001"), metric.PostID)
		assert.Equal(t, "IMAGE", metric.MediaKind)
		assert.Equal(t, capturedAt, metric.CapturedAt)
		assert.Equal(t, int64(10), metric.Likes)
		assert.Equal(t, int64(2), metric.Comments)
		assert.Equal(t, int64(1), metric.Shares)
		assert.Equal(t, int64(4), metric.Saves)
		assert.Equal(t, int64(500), metric.Reach)
		assert.Equal(t, int64(700), metric.Impressions)
	})

	t.Run("Payload nulo - métricas zeradas", func(t *testing.T) {
		metric := ExtractPostMetric(media, nil, capturedAt)

		assert.Equal(t, int64(0), metric.Likes)
		assert.Equal(t, int64(0), metric.Comments)
		assert.Equal(t, int64(0), metric.Reach)
	})

	t.Run("Payload parcial - métricas ausentes zeradas", func(t *testing.T) {
		insights := igdomain.InsightValues{
			"likes": 7,
		}

		metric := ExtractPostMetric(media, insights, capturedAt)

		assert.Equal(t, int64(7), metric.Likes)
		assert.Equal(t, int64(0), metric.Comments)
		assert.Equal(t, int64(0), metric.Saves)
	})
}

func TestBuildMetricsRecord(t *testing.T) {
	capturedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	snapshot := igdomain.InsightValues{
		"follower_count": 1000,
		"follows_count":  300,
	}

	t.Run("Lote com duas publicações - totais e taxa agregados", func(t *testing.T) {
		posts := []PostInsights{
			{
				Media:    igdomain.Media{ID: "POST001", MediaType: "IMAGE"},
				Insights: igdomain.InsightValues{"likes": 10, "comments": 1, "reach": 400},
			},
			{
				Media:    igdomain.Media{ID: "POST002", MediaType: "VIDEO"},
				Insights: igdomain.InsightValues{"likes": 20, "comments": 2, "reach": 600},
			},
		}

		record := BuildMetricsRecord("REC001", domain.AccountID("ACC001"), snapshot, posts, capturedAt)

		assert.Equal(t, "REC001", record.ID)
		assert.Equal(t, domain.AccountID("ACC001"), record.AccountID)
		assert.Equal(t, int64(1000), record.FollowersCount)
		assert.Equal(t, int64(300), record.FollowingCount)
		assert.Equal(t, 2, record.PostsCount)
		assert.Equal(t, int64(30), record.TotalLikes)
		assert.Equal(t, int64(3), record.TotalComments)
		assert.Equal(t, int64(1000), record.TotalReach)
		assert.Equal(t, 1.65, record.AvgEngagementRate)
		assert.Len(t, record.PerPost, 2)
	})

	t.Run("Lote vazio - registro com zeros e taxa zero", func(t *testing.T) {
		record := BuildMetricsRecord("REC002", domain.AccountID("ACC001"), snapshot, nil, capturedAt)

		assert.Equal(t, 0, record.PostsCount)
		assert.Equal(t, int64(0), record.TotalLikes)
		assert.Equal(t, 0.0, record.AvgEngagementRate)
		assert.Empty(t, record.PerPost)
	})

	t.Run("Publicação com insights ausentes fica fora da série e do denominador", func(t *testing.T) {
		posts := []PostInsights{
			{
				Media:    igdomain.Media{ID: "POST001", MediaType: "IMAGE"},
				Insights: igdomain.InsightValues{"likes": 10, "comments": 1},
			},
			{
				Media:    igdomain.Media{ID: "POST002", MediaType: "VIDEO"},
				Insights: nil,
			},
		}

		record := BuildMetricsRecord("REC003", domain.AccountID("ACC001"), snapshot, posts, capturedAt)

		// posts_count reflete o lote buscado; a taxa só considera as
		// publicações com insights: ((10+1)/(1000×1))×100
		assert.Equal(t, 2, record.PostsCount)
		assert.Equal(t, int64(10), record.TotalLikes)
		assert.Equal(t, int64(1), record.TotalComments)
		assert.Equal(t, 1.1, record.AvgEngagementRate)
		assert.Len(t, record.PerPost, 1)
		assert.Equal(t, domain.PostID("POST001"), record.PerPost[0].PostID)
	})

	t.Run("Todos os insights falham - taxa zero, lote preservado em posts_count", func(t *testing.T) {
		posts := []PostInsights{
			{Media: igdomain.Media{ID: "POST001", MediaType: "IMAGE"}, Insights: nil},
			{Media: igdomain.Media{ID: "POST002", MediaType: "VIDEO"}, Insights: nil},
		}

		record := BuildMetricsRecord("REC004", domain.AccountID("ACC001"), snapshot, posts, capturedAt)

		assert.Equal(t, 2, record.PostsCount)
		assert.Equal(t, 0.0, record.AvgEngagementRate)
		assert.Empty(t, record.PerPost)
	})
}
