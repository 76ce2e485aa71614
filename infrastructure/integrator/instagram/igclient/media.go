package igclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
)

type responseMediaList struct {
	Data []igdomain.Media `json:"data"`
}

// GetRecentMedia busca as publicações mais recentes da conta, limitadas a
// limit itens
func (c *InstagramClient) GetRecentMedia(accessToken, externalUserID string, limit int) ([]igdomain.Media, error) {
	params := url.Values{}
	params.Add("fields", "id,caption,media_type,media_url,permalink,thumbnail_url,timestamp")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s/media?%s", c.Cfg.Instagram.URL, externalUserID, params.Encode())

	body, err := c.doGet(requestURL)
	if err != nil {
		return nil, err
	}

	var response responseMediaList
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return response.Data, nil
}
