package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/vfg2006/creator-insights-api/internal/domain"
)

// ReportData reúne tudo o que o artefato do relatório apresenta
type ReportData struct {
	Title       string
	Username    string
	Niche       domain.Niche
	PeriodStart time.Time
	PeriodEnd   time.Time
	GeneratedAt time.Time

	Metrics         *MetricsSummary
	Scores          domain.FeedbackScores
	HasFeedback     bool
	TopSuggestions  []string
	Recommendations []string
}

// Renderer materializa o artefato de um relatório e devolve o caminho
// do arquivo gerado. Falha de renderização aborta a compilação inteira;
// nenhum registro deve ser gravado sem artefato.
type Renderer interface {
	Render(accountID domain.AccountID, data *ReportData) (string, error)
}

type htmlRenderer struct {
	outputDir string
	template  *template.Template
	now       func() time.Time
}

func NewHTMLRenderer(outputDir string) (Renderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de relatórios: %w", err)
	}

	tmpl, err := template.New("report").
		Funcs(template.FuncMap{"classify": ClassifyScore}).
		Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("erro ao compilar template de relatório: %w", err)
	}

	return &htmlRenderer{
		outputDir: outputDir,
		template:  tmpl,
		now:       time.Now,
	}, nil
}

func (r *htmlRenderer) Render(accountID domain.AccountID, data *ReportData) (string, error) {
	filename := fmt.Sprintf("report_%s_%s.html", accountID.String(), r.now().Format("20060102_150405"))
	path := filepath.Join(r.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar arquivo do relatório: %w", err)
	}
	defer file.Close()

	if err := r.template.Execute(file, data); err != nil {
		// Artefato incompleto não fica para trás
		os.Remove(path)
		return "", fmt.Errorf("erro ao renderizar relatório: %w", err)
	}

	return path, nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #1f2937; }
h1 { color: #2563eb; }
h2 { color: #1f2937; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; }
table { border-collapse: collapse; margin-bottom: 24px; }
th, td { border: 1px solid #e5e7eb; padding: 6px 12px; text-align: left; }
th { background: #2563eb; color: #fff; }
ol li { margin-bottom: 6px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

<h2>Informações do Perfil</h2>
<table>
<tr><td><b>Nome:</b></td><td>{{.Username}}</td></tr>
<tr><td><b>Nicho:</b></td><td>{{.Niche}}</td></tr>
<tr><td><b>Período:</b></td><td>{{.PeriodStart.Format "02/01/2006"}} - {{.PeriodEnd.Format "02/01/2006"}}</td></tr>
<tr><td><b>Gerado em:</b></td><td>{{.GeneratedAt.Format "02/01/2006 às 15:04"}}</td></tr>
</table>

{{if .Metrics}}
<h2>Resumo de Métricas</h2>
<table>
<tr><th>Métrica</th><th>Valor Atual</th><th>Crescimento</th></tr>
<tr><td>Seguidores</td><td>{{.Metrics.Latest.FollowersCount}}</td><td>{{printf "%+.1f%%" .Metrics.FollowersGrowth}}</td></tr>
<tr><td>Taxa de Engajamento</td><td>{{printf "%.2f%%" .Metrics.Latest.AvgEngagementRate}}</td><td>{{printf "%+.1f%%" .Metrics.EngagementGrowth}}</td></tr>
<tr><td>Total de Curtidas</td><td>{{.Metrics.Latest.TotalLikes}}</td><td>-</td></tr>
<tr><td>Total de Comentários</td><td>{{.Metrics.Latest.TotalComments}}</td><td>-</td></tr>
<tr><td>Posts Analisados</td><td>{{.Metrics.Latest.PostsCount}}</td><td>-</td></tr>
</table>
{{end}}

{{if .HasFeedback}}
<h2>Análise de Feedback</h2>
<table>
<tr><th>Métrica</th><th>Nota Média</th><th>Classificação</th></tr>
<tr><td>Nota Geral</td><td>{{printf "%.1f" .Scores.Overall}}/10</td><td>{{classify .Scores.Overall}}</td></tr>
<tr><td>Qualidade do Conteúdo</td><td>{{printf "%.1f" .Scores.ContentQuality}}/10</td><td>{{classify .Scores.ContentQuality}}</td></tr>
<tr><td>Potencial de Engajamento</td><td>{{printf "%.1f" .Scores.EngagementPotential}}/10</td><td>{{classify .Scores.EngagementPotential}}</td></tr>
<tr><td>Apelo Visual</td><td>{{printf "%.1f" .Scores.VisualAppeal}}/10</td><td>{{classify .Scores.VisualAppeal}}</td></tr>
</table>

{{if .TopSuggestions}}
<h2>Principais Sugestões de Melhoria</h2>
<ol>
{{range .TopSuggestions}}<li>{{.}}</li>
{{end}}</ol>
{{end}}
{{end}}

<h2>Recomendações Estratégicas</h2>
<ol>
{{range .Recommendations}}<li>{{.}}</li>
{{end}}</ol>
</body>
</html>
`
