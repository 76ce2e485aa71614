package feedback

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

// Nota assumida quando o modelo omite uma das quatro chaves de score
const defaultScore = 0.5

// Sugestões usadas quando a resposta do modelo não veio no formato
// JSON esperado e portanto não traz sugestões estruturadas
var fallbackSuggestions = []string{
	"Considere adicionar mais elementos visuais ao seu conteúdo",
	"Use hashtags relevantes para aumentar o alcance",
	"Inclua uma call-to-action clara no final do post",
}

type analysisPayload struct {
	Scores       map[string]float64 `json:"scores"`
	FeedbackText string             `json:"feedback_text"`
	Suggestions  []string           `json:"suggestions"`
}

// ParseAnalysis interpreta a resposta bruta do modelo. Respostas fora
// do formato JSON não são descartadas: viram uma análise com notas
// neutras, o texto integral como feedback e sugestões genéricas.
func ParseAnalysis(raw string) *domain.Analysis {
	payload := &analysisPayload{}
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		logrus.Warn("Resposta da IA fora do formato JSON, usando análise de contingência")
		return &domain.Analysis{
			Scores: domain.FeedbackScores{
				Overall:             0.7,
				ContentQuality:      0.7,
				EngagementPotential: 0.7,
				VisualAppeal:        0.7,
			},
			FeedbackText: raw,
			Suggestions:  fallbackSuggestions,
		}
	}

	return &domain.Analysis{
		Scores: domain.FeedbackScores{
			Overall:             scoreOrDefault(payload.Scores, "overall"),
			ContentQuality:      scoreOrDefault(payload.Scores, "content_quality"),
			EngagementPotential: scoreOrDefault(payload.Scores, "engagement_potential"),
			VisualAppeal:        scoreOrDefault(payload.Scores, "visual_appeal"),
		},
		FeedbackText: payload.FeedbackText,
		Suggestions:  payload.Suggestions,
	}
}

func scoreOrDefault(scores map[string]float64, key string) float64 {
	value, ok := scores[key]
	if !ok {
		return defaultScore
	}
	return value
}

// ParseSuggestions quebra a resposta de sugestões em itens, descartando
// linhas vazias e limitando ao máximo esperado.
func ParseSuggestions(raw string, limit int) []string {
	suggestions := make([]string, 0, limit)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
