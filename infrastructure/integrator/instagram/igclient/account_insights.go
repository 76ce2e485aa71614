package igclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
)

type responseInsightList struct {
	Data []struct {
		Name   string `json:"name"`
		Values []struct {
			Value int64 `json:"value"`
		} `json:"values"`
	} `json:"data"`
}

// GetAccountInsights busca o snapshot diário da conta. O retorno é um
// mapa achatado nome→valor; métricas ausentes simplesmente não aparecem.
func (c *InstagramClient) GetAccountInsights(accessToken, externalUserID string) (igdomain.InsightValues, error) {
	params := url.Values{}
	params.Add("metric", "follower_count,follows_count,media_count,impressions,reach,profile_views")
	params.Add("period", "day")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Instagram.URL, externalUserID, params.Encode())

	body, err := c.doGet(requestURL)
	if err != nil {
		return nil, err
	}

	return parseInsightList(body)
}

func parseInsightList(body []byte) (igdomain.InsightValues, error) {
	var response responseInsightList
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	values := make(igdomain.InsightValues, len(response.Data))
	for _, metric := range response.Data {
		if len(metric.Values) == 0 {
			continue
		}
		values[metric.Name] = metric.Values[0].Value
	}

	return values, nil
}
