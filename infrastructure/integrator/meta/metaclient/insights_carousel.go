package metaclient

import (
	"encoding/json"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseCarouselInsights struct {
	Data   []metadomain.CarouselInsightRow `json:"data"`
	Paging metadomain.Paging               `json:"paging"`
}

type ResponseDestinationInsights struct {
	Data   []metadomain.DestinationInsightRow `json:"data"`
	Paging metadomain.Paging                  `json:"paging"`
}

// GetAdInsightsByCard busca os insights do anúncio com breakdown por cartão
// de carrossel, o sinal autoritativo de cliques por cartão quando existe
func (c *MetaClient) GetAdInsightsByCard(token, adID string, tr TimeRange) ([]metadomain.CarouselInsightRow, error) {
	params := url.Values{}
	params.Add("fields", "actions")
	params.Add("time_range", tr.JSONString())
	params.Add("breakdowns", "carousel_card_id")

	body, err := c.doGet(adID+"/insights", params, token, listTimeout)
	if err != nil {
		return nil, err
	}

	var response ResponseCarouselInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

// GetAdInsightsByDestination busca os insights do anúncio com breakdown por
// URL de destino, usado como segundo nível de atribuição via utm_content
func (c *MetaClient) GetAdInsightsByDestination(token, adID string, tr TimeRange) ([]metadomain.DestinationInsightRow, error) {
	params := url.Values{}
	params.Add("fields", "actions")
	params.Add("time_range", tr.JSONString())
	params.Add("breakdowns", "link_url_asset")

	body, err := c.doGet(adID+"/insights", params, token, listTimeout)
	if err != nil {
		return nil, err
	}

	var response ResponseDestinationInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
