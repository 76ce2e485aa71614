package igclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
)

// ExchangeCode troca o código de autorização do OAuth por um token de
// longa duração, junto com o id do usuário na plataforma
func (c *InstagramClient) ExchangeCode(code string) (*igdomain.TokenGrant, error) {
	params := url.Values{}
	params.Add("grant_type", "ig_exchange_token")
	params.Add("client_id", c.Cfg.Instagram.AppID)
	params.Add("client_secret", c.Cfg.Instagram.AppSecret)
	params.Add("redirect_uri", c.Cfg.Instagram.RedirectURI)
	params.Add("code", code)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.Cfg.Instagram.BaseURL, params.Encode())

	body, err := c.doGet(requestURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao trocar código de autorização por token")
		return nil, err
	}

	var grant igdomain.TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if grant.AccessToken == "" {
		return nil, fmt.Errorf("resposta da troca de código sem access_token")
	}

	return &grant, nil
}

// RefreshToken renova um token de longa duração antes de expirar. A
// operação é idempotente do lado da plataforma.
func (c *InstagramClient) RefreshToken(accessToken string) (*igdomain.TokenGrant, error) {
	params := url.Values{}
	params.Add("grant_type", "ig_refresh_token")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/refresh_access_token?%s", c.Cfg.Instagram.BaseURL, params.Encode())

	body, err := c.doGet(requestURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao renovar token de acesso")
		return nil, err
	}

	var grant igdomain.TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if grant.AccessToken == "" {
		return nil, fmt.Errorf("resposta da renovação sem access_token")
	}

	return &grant, nil
}
