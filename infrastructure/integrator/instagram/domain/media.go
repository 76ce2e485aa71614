package domain

import "time"

// Media é uma publicação retornada pela API da plataforma
type Media struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption"`
	MediaType    string    `json:"media_type"`
	MediaURL     string    `json:"media_url"`
	Permalink    string    `json:"permalink"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Timestamp    time.Time `json:"timestamp"`
}

// InsightValues é o payload bruto de métricas da plataforma, já achatado
// para nome→valor. Nomes desconhecidos são simplesmente carregados junto;
// quem consome decide o que extrair.
type InsightValues map[string]int64
