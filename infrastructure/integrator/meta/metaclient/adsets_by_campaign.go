package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAdSets struct {
	Data   []metadomain.RawAdSet `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdSetsByCampaignID lista os conjuntos de anúncios de uma campanha com
// targeting e insights do período embutidos
func (c *MetaClient) GetAdSetsByCampaignID(token, campaignID string, tr TimeRange) ([]metadomain.RawAdSet, error) {
	params := url.Values{}
	params.Add("fields", fmt.Sprintf(
		"id,name,status,campaign_id,daily_budget,lifetime_budget,start_time,end_time,targeting,"+
			"insights.time_range(%s){spend,impressions,clicks,reach}",
		tr.JSONString(),
	))
	params.Add("limit", "100")

	body, err := c.doGet(campaignID+"/adsets", params, token, listTimeout)
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
