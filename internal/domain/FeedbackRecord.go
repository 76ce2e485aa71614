package domain

import "time"

// FeedbackScores são as quatro notas da análise de IA, cada uma em [0,1]
type FeedbackScores struct {
	Overall             float64 `json:"overall"`
	ContentQuality      float64 `json:"content_quality"`
	EngagementPotential float64 `json:"engagement_potential"`
	VisualAppeal        float64 `json:"visual_appeal"`
}

// Analysis é o resultado validado de uma chamada à API de completion.
// A conversão do payload livre para esta estrutura acontece na borda.
type Analysis struct {
	Scores       FeedbackScores `json:"scores"`
	FeedbackText string         `json:"feedback_text"`
	Suggestions  []string       `json:"suggestions"`
}

// FeedbackRecord guarda a análise de IA de uma publicação. Existe no
// máximo um registro por post_id (constraint de unicidade no banco);
// tentativas repetidas de análise são no-ops, não erros.
type FeedbackRecord struct {
	ID           string         `json:"id"`
	AccountID    AccountID      `json:"account_id"`
	PostID       PostID         `json:"post_id"`
	PostURL      string         `json:"post_url"`
	Caption      string         `json:"caption"`
	PostKind     string         `json:"post_kind"`
	Scores       FeedbackScores `json:"scores"`
	FeedbackText string         `json:"feedback_text"`
	Suggestions  []string       `json:"suggestions"`
	CreatedAt    time.Time      `json:"created_at"`
}
