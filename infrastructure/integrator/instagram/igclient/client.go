package igclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/creator-insights-api/internal/config"
)

type Client interface {
	ExchangeCode(code string) (*igdomain.TokenGrant, error)
	RefreshToken(accessToken string) (*igdomain.TokenGrant, error)
	GetAccountInsights(accessToken, externalUserID string) (igdomain.InsightValues, error)
	GetRecentMedia(accessToken, externalUserID string, limit int) ([]igdomain.Media, error)
	GetMediaInsights(accessToken, mediaID string) (igdomain.InsightValues, error)
}

// InstagramClient fala com a Graph API em nome de uma credencial por
// conta. O cliente não guarda token nenhum: cada chamada recebe o token
// da conta, e a renovação é responsabilidade do credenciamento.
type InstagramClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &InstagramClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
	return client
}

// doGet executa um GET e decodifica o envelope de erro da plataforma
// quando o status não for 2xx
func (c *InstagramClient) doGet(url string) ([]byte, error) {
	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope igdomain.ErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
			envelope.Error.HTTPCode = resp.StatusCode
			return nil, envelope.Error
		}
		return nil, fmt.Errorf("resposta inesperada da plataforma (status %d)", resp.StatusCode)
	}

	return body, nil
}
