package reporting

import "github.com/vfg2006/creator-insights-api/internal/domain"

// Limite de recomendações estratégicas por relatório
const maxRecommendations = 6

// Recomendações fixas por nicho. Nichos sem entrada não recebem
// recomendação específica.
var nicheRecommendations = map[domain.Niche]string{
	domain.NicheFashion: "Mostre mais looks completos e detalhes dos acessórios para aumentar o engajamento.",
	domain.NicheBeauty:  "Crie mais tutoriais passo a passo e antes/depois para gerar mais interações.",
	domain.NicheFitness: "Compartilhe sua jornada pessoal e resultados para inspirar seus seguidores.",
	domain.NicheFood:    "Inclua receitas e dicas culinárias para agregar mais valor ao seu conteúdo.",
	domain.NicheTravel:  "Conte histórias sobre os lugares visitados e dê dicas práticas de viagem.",
}

var generalRecommendations = []string{
	"Mantenha uma frequência consistente de postagens para manter o engajamento.",
	"Analise os horários de maior atividade da sua audiência para otimizar o timing dos posts.",
	"Interaja genuinamente com seus seguidores respondendo comentários e mensagens.",
}

// BuildRecommendations monta as recomendações estratégicas do relatório
// em ordem de prioridade: tendências das métricas, notas médias de
// feedback, recomendação do nicho e por fim as genéricas, limitadas a
// seis itens.
func BuildRecommendations(
	metrics *MetricsSummary,
	scores domain.FeedbackScores,
	hasFeedback bool,
	niche domain.Niche,
) []string {
	recommendations := make([]string, 0, maxRecommendations)

	if metrics != nil && metrics.HasComparison {
		if metrics.FollowersGrowth < 5 {
			recommendations = append(recommendations, "Foque em estratégias de crescimento de seguidores, como colaborações e uso de hashtags relevantes.")
		}

		if metrics.EngagementGrowth < 0 {
			recommendations = append(recommendations, "Sua taxa de engajamento está diminuindo. Considere criar conteúdo mais interativo e responder aos comentários mais rapidamente.")
		}

		if metrics.Latest.AvgEngagementRate < 3 {
			recommendations = append(recommendations, "Sua taxa de engajamento está abaixo da média. Experimente diferentes tipos de conteúdo e horários de postagem.")
		}
	}

	if hasFeedback {
		if scores.ContentQuality < 7 {
			recommendations = append(recommendations, "Invista mais tempo na qualidade do seu conteúdo. Planeje suas postagens com antecedência.")
		}

		if scores.VisualAppeal < 7 {
			recommendations = append(recommendations, "Melhore o apelo visual dos seus posts com melhor iluminação, composição e edição.")
		}

		if scores.EngagementPotential < 7 {
			recommendations = append(recommendations, "Inclua mais call-to-actions em seus posts para incentivar interações.")
		}
	}

	if recommendation, ok := nicheRecommendations[niche]; ok {
		recommendations = append(recommendations, recommendation)
	}

	recommendations = append(recommendations, generalRecommendations...)

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}
