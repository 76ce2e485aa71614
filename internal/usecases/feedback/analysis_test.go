package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("Resposta JSON válida - notas e sugestões estruturadas", func(t *testing.T) {
		raw := `{
			"scores": {
				"overall": 0.8,
				"content_quality": 0.9,
				"engagement_potential": 0.7,
				"visual_appeal": 0.6
			},
			"feedback_text": "Legenda bem construída, com narrativa clara.",
			"suggestions": ["Use mais hashtags", "Poste em horários de pico"]
		}`

		analysis := ParseAnalysis(raw)

		assert.Equal(t, 0.8, analysis.Scores.Overall)
		assert.Equal(t, 0.9, analysis.Scores.ContentQuality)
		assert.Equal(t, 0.7, analysis.Scores.EngagementPotential)
		assert.Equal(t, 0.6, analysis.Scores.VisualAppeal)
		assert.Equal(t, "Legenda bem construída, com narrativa clara.", analysis.FeedbackText)
		assert.Len(t, analysis.Suggestions, 2)
	})

	t.Run("Resposta fora do formato JSON - notas neutras e texto integral preservado", func(t *testing.T) {
		raw := "O post tem bom potencial, mas a legenda poderia ser mais direta."

		analysis := ParseAnalysis(raw)

		assert.Equal(t, 0.7, analysis.Scores.Overall)
		assert.Equal(t, 0.7, analysis.Scores.ContentQuality)
		assert.Equal(t, 0.7, analysis.Scores.EngagementPotential)
		assert.Equal(t, 0.7, analysis.Scores.VisualAppeal)
		assert.Equal(t, raw, analysis.FeedbackText)
		assert.Equal(t, fallbackSuggestions, analysis.Suggestions)
	})

	t.Run("JSON com nota ausente - assume a nota padrão", func(t *testing.T) {
		raw := `{
			"scores": {"overall": 0.9},
			"feedback_text": "Ótimo post.",
			"suggestions": []
		}`

		analysis := ParseAnalysis(raw)

		assert.Equal(t, 0.9, analysis.Scores.Overall)
		assert.Equal(t, 0.5, analysis.Scores.ContentQuality)
		assert.Equal(t, 0.5, analysis.Scores.EngagementPotential)
		assert.Equal(t, 0.5, analysis.Scores.VisualAppeal)
	})
}

func TestParseSuggestions(t *testing.T) {
	t.Run("Linhas vazias descartadas e limite aplicado", func(t *testing.T) {
		raw := "Sugestão um\n\n  Sugestão dois  \nSugestão três\nSugestão quatro\nSugestão cinco\nSugestão seis"

		suggestions := ParseSuggestions(raw, 5)

		assert.Len(t, suggestions, 5)
		assert.Equal(t, "Sugestão um", suggestions[0])
		assert.Equal(t, "Sugestão dois", suggestions[1])
	})

	t.Run("Resposta vazia - nenhuma sugestão", func(t *testing.T) {
		suggestions := ParseSuggestions("\n\n  \n", 5)
		assert.Empty(t, suggestions)
	})
}

func TestFallbackSuggestions(t *testing.T) {
	t.Run("Nicho com sugestões próprias", func(t *testing.T) {
		suggestions := FallbackSuggestions(domain.NicheBeauty)
		assert.Len(t, suggestions, 5)
		assert.Equal(t, "Tutorial de maquiagem passo a passo", suggestions[0])
	})

	t.Run("Nicho sem entrada - sugestões genéricas", func(t *testing.T) {
		suggestions := FallbackSuggestions(domain.NicheTech)
		assert.Equal(t, genericSuggestions, suggestions)
	})
}
