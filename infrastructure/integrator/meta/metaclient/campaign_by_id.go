package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// GetCampaignByID busca uma campanha com o sub-campo de insights limitado
// ao período solicitado
func (c *MetaClient) GetCampaignByID(token, campaignID string, tr TimeRange) (*metadomain.RawCampaign, error) {
	params := url.Values{}
	params.Add("fields", fmt.Sprintf(
		"id,name,objective,status,insights.time_range(%s){spend,impressions,clicks,reach}",
		tr.JSONString(),
	))

	body, err := c.doGet(campaignID, params, token, singleEntityTimeout)
	if err != nil {
		return nil, err
	}

	var campaign metadomain.RawCampaign
	if err := json.Unmarshal(body, &campaign); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &campaign, nil
}
