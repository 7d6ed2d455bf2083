package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAds struct {
	Data   []metadomain.RawAd `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// GetAdsByCampaignID busca todos os anúncios da campanha em uma única chamada.
// O agrupamento por conjunto é feito em memória pelo chamador; buscar por
// conjunto multiplicaria as chamadas linearmente com o tamanho da hierarquia.
func (c *MetaClient) GetAdsByCampaignID(token, campaignID string, tr TimeRange) ([]metadomain.RawAd, error) {
	params := url.Values{}
	params.Add("fields", fmt.Sprintf(
		"id,name,status,adset_id,"+
			"creative{id,thumbnail_url,image_url,video_id,body,title,object_story_spec},"+
			"insights.time_range(%s){spend,impressions,clicks,reach}",
		tr.JSONString(),
	))
	params.Add("limit", "500")

	body, err := c.doGet(campaignID+"/ads", params, token, listTimeout)
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
