package igclient

import (
	"fmt"
	"net/url"

	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
)

// GetMediaInsights busca as métricas de uma publicação específica. O
// formato de resposta é o mesmo dos insights de conta.
func (c *InstagramClient) GetMediaInsights(accessToken, mediaID string) (igdomain.InsightValues, error) {
	params := url.Values{}
	params.Add("metric", "engagement,impressions,reach,saved,video_views,likes,comments,shares")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Instagram.URL, mediaID, params.Encode())

	body, err := c.doGet(requestURL)
	if err != nil {
		return nil, err
	}

	return parseInsightList(body)
}
