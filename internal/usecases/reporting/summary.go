package reporting

import (
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

// Growth calcula a variação percentual entre dois valores. Quando o
// valor anterior é zero não há base de comparação e o crescimento é 0.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return ((current - previous) / previous) * 100
}

// AverageScores calcula a média das notas de feedback do período,
// convertida da escala [0,1] do modelo para a escala 0-10 dos
// relatórios. Sem feedbacks, todas as médias são 0.
func AverageScores(feedbacks []*domain.FeedbackRecord) domain.FeedbackScores {
	if len(feedbacks) == 0 {
		return domain.FeedbackScores{}
	}

	totals := domain.FeedbackScores{}
	for _, feedback := range feedbacks {
		totals.Overall += feedback.Scores.Overall * 10
		totals.ContentQuality += feedback.Scores.ContentQuality * 10
		totals.EngagementPotential += feedback.Scores.EngagementPotential * 10
		totals.VisualAppeal += feedback.Scores.VisualAppeal * 10
	}

	count := float64(len(feedbacks))
	return domain.FeedbackScores{
		Overall:             totals.Overall / count,
		ContentQuality:      totals.ContentQuality / count,
		EngagementPotential: totals.EngagementPotential / count,
		VisualAppeal:        totals.VisualAppeal / count,
	}
}

// ClassifyScore traduz uma nota 0-10 na classificação usada nos
// relatórios
func ClassifyScore(score float64) string {
	switch {
	case score >= 8:
		return "Excelente"
	case score >= 6:
		return "Bom"
	case score >= 4:
		return "Regular"
	default:
		return "Precisa Melhorar"
	}
}

// MetricsSummary condensa a série de métricas do período para o
// relatório. A série chega ordenada do registro mais recente para o
// mais antigo.
type MetricsSummary struct {
	Latest           *domain.MetricsRecord
	FollowersGrowth  float64
	EngagementGrowth float64

	// HasComparison indica se havia ao menos dois registros no período;
	// sem comparação as recomendações de tendência não se aplicam
	HasComparison bool
}

// SummarizeMetrics compara o registro mais recente com o mais antigo do
// período. Com um único registro não há base de comparação e os
// crescimentos ficam em 0.
func SummarizeMetrics(records []*domain.MetricsRecord) *MetricsSummary {
	if len(records) == 0 {
		return nil
	}

	latest := records[0]
	oldest := records[len(records)-1]

	summary := &MetricsSummary{Latest: latest}
	if len(records) > 1 {
		summary.HasComparison = true
		summary.FollowersGrowth = utils.RoundWithTwoDecimalPlace(
			Growth(float64(latest.FollowersCount), float64(oldest.FollowersCount)),
		)
		summary.EngagementGrowth = utils.RoundWithTwoDecimalPlace(
			Growth(latest.AvgEngagementRate, oldest.AvgEngagementRate),
		)
	}

	return summary
}

// TopSuggestions reúne as sugestões únicas dos feedbacks do período,
// preservando a ordem de chegada, limitadas às cinco primeiras.
func TopSuggestions(feedbacks []*domain.FeedbackRecord) []string {
	seen := make(map[string]bool)
	suggestions := make([]string, 0, 5)

	for _, feedback := range feedbacks {
		for _, suggestion := range feedback.Suggestions {
			if seen[suggestion] {
				continue
			}
			seen[suggestion] = true
			suggestions = append(suggestions, suggestion)
			if len(suggestions) == 5 {
				return suggestions
			}
		}
	}

	return suggestions
}
