package domain

import "time"

// PostMetric guarda as métricas de uma publicação no momento da coleta.
// É embutida no MetricsRecord, nunca endereçada individualmente.
type PostMetric struct {
	PostID      PostID    `json:"post_id"`
	MediaKind   string    `json:"media_kind"`
	CapturedAt  time.Time `json:"captured_at"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	Shares      int64     `json:"shares"`
	Saves       int64     `json:"saves"`
	Reach       int64     `json:"reach"`
	Impressions int64     `json:"impressions"`
}

// MetricsRecord é um ponto da série temporal de métricas de uma conta.
// A série é append-only: um registro por execução de coleta, nunca
// atualizado depois de gravado.
type MetricsRecord struct {
	ID                string       `json:"id"`
	AccountID         AccountID    `json:"account_id"`
	CapturedAt        time.Time    `json:"captured_at"`
	FollowersCount    int64        `json:"followers_count"`
	FollowingCount    int64        `json:"following_count"`
	PostsCount        int          `json:"posts_count"`
	AvgEngagementRate float64      `json:"avg_engagement_rate"`
	TotalLikes        int64        `json:"total_likes"`
	TotalComments     int64        `json:"total_comments"`
	TotalReach        int64        `json:"total_reach"`
	PerPost           []PostMetric `json:"per_post"`
	CreatedAt         time.Time    `json:"created_at"`
}
