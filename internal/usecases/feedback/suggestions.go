package feedback

import "github.com/vfg2006/creator-insights-api/internal/domain"

// Sugestões fixas por nicho, usadas quando a geração por IA está
// indisponível. Nichos sem entrada recebem as sugestões genéricas.
var nicheSuggestions = map[domain.Niche][]string{
	domain.NicheFashion: {
		"Mostre seu look do dia com detalhes dos acessórios",
		"Faça um antes e depois de um styling",
		"Compartilhe dicas de como combinar peças básicas",
		"Mostre sua rotina matinal de escolha de roupas",
		"Crie um post sobre tendências da estação",
	},
	domain.NicheBeauty: {
		"Tutorial de maquiagem passo a passo",
		"Rotina de skincare matinal e noturna",
		"Resenha de produtos que você usa",
		"Transformação com maquiagem",
		"Dicas de cuidados com a pele",
	},
	domain.NicheFitness: {
		"Treino rápido de 10 minutos",
		"Receita de pré-treino saudável",
		"Progresso da sua jornada fitness",
		"Dicas de motivação para exercícios",
		"Comparação de antes e depois",
	},
}

var genericSuggestions = []string{
	"Compartilhe uma dica valiosa do seu nicho",
	"Mostre os bastidores do seu trabalho",
	"Faça uma pergunta para engajar sua audiência",
	"Conte uma história pessoal relacionada ao seu conteúdo",
	"Crie um post educativo sobre seu tema",
}

// FallbackSuggestions devolve as sugestões fixas do nicho quando a
// geração por IA não está disponível
func FallbackSuggestions(niche domain.Niche) []string {
	if suggestions, ok := nicheSuggestions[niche]; ok {
		return suggestions
	}
	return genericSuggestions
}
