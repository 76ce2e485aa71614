package feedback

import (
	"fmt"
	"strings"

	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	analysisSystemMessage    = "Você é um especialista em marketing digital e análise de conteúdo UGC."
	suggestionsSystemMessage = "Você é um especialista em estratégia de conteúdo e marketing digital."

	analysisTemperature    = 0.7
	analysisMaxTokens      = 1000
	suggestionsTemperature = 0.8
	suggestionsMaxTokens   = 500
)

// buildAnalysisPrompt monta o prompt de análise de uma publicação. Os
// dados de engajamento são opcionais: quando a coleta de insights da
// publicação falhou, o prompt segue só com legenda e tipo de mídia.
func buildAnalysisPrompt(caption, mediaType string, niche domain.Niche, insights igdomain.InsightValues) string {
	var b strings.Builder

	b.WriteString("Você é um especialista em marketing digital e criação de conteúdo UGC (User Generated Content).\n")
	fmt.Fprintf(&b, "Analise o seguinte post de um criador de conteúdo no nicho de %s.\n\n", niche)
	fmt.Fprintf(&b, "Tipo de mídia: %s\n", mediaType)
	fmt.Fprintf(&b, "Legenda do post: %q\n", caption)

	if insights != nil {
		b.WriteString("\nDados de engajamento:\n")
		fmt.Fprintf(&b, "- Curtidas: %d\n", insights["likes"])
		fmt.Fprintf(&b, "- Comentários: %d\n", insights["comments"])
		fmt.Fprintf(&b, "- Compartilhamentos: %d\n", insights["shares"])
		fmt.Fprintf(&b, "- Salvamentos: %d\n", insights["saved"])
		fmt.Fprintf(&b, "- Alcance: %d\n", insights["reach"])
	}

	b.WriteString(`
Por favor, forneça uma análise detalhada do post seguindo este formato JSON:
{
    "scores": {
        "overall": [nota de 0 a 1],
        "content_quality": [nota de 0 a 1],
        "engagement_potential": [nota de 0 a 1],
        "visual_appeal": [nota de 0 a 1]
    },
    "feedback_text": "[feedback detalhado em português sobre o post]",
    "suggestions": [
        "[sugestão 1 para melhorar o post]",
        "[sugestão 2 para melhorar o post]",
        "[sugestão 3 para melhorar o post]"
    ]
}

Critérios de avaliação:
- overall: Nota geral do post considerando todos os aspectos
- content_quality: Qualidade do conteúdo, relevância, originalidade
- engagement_potential: Potencial de gerar engajamento (curtidas, comentários, compartilhamentos)
- visual_appeal: Atratividade visual e estética (mesmo para posts de texto)

O feedback deve ser construtivo, específico e focado em melhorias práticas.
As sugestões devem ser acionáveis e relevantes para o nicho do criador.
`)

	return b.String()
}

// buildSuggestionsPrompt monta o prompt de sugestões de conteúdo para a
// conta, resumindo a performance recente quando houver registros.
func buildSuggestionsPrompt(niche domain.Niche, records []*domain.MetricsRecord) string {
	var b strings.Builder

	b.WriteString("Você é um especialista em estratégia de conteúdo para criadores UGC.\n\n")
	fmt.Fprintf(&b, "Nicho do criador: %s\n", niche)

	if len(records) > 0 {
		var total float64
		best := records[0]
		for _, record := range records {
			total += record.AvgEngagementRate
			if record.AvgEngagementRate > best.AvgEngagementRate {
				best = record
			}
		}

		b.WriteString("\nPerformance recente:\n")
		fmt.Fprintf(&b, "- Taxa de engajamento média: %.2f%%\n", total/float64(len(records)))
		fmt.Fprintf(&b, "- Melhor registro teve %.2f%% de engajamento\n", best.AvgEngagementRate)
		fmt.Fprintf(&b, "- Seguidores no último registro: %d\n", records[0].FollowersCount)
	}

	b.WriteString(`
Gere 5 sugestões específicas e acionáveis de conteúdo para este criador.
As sugestões devem:
1. Ser relevantes para o nicho
2. Ter potencial de alto engajamento
3. Ser práticas e executáveis
4. Considerar tendências atuais
5. Levar em conta a performance recente

Formato: Lista simples, uma sugestão por linha, sem numeração.
`)

	return b.String()
}
