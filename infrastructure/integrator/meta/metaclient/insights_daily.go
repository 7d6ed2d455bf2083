package metaclient

import (
	"encoding/json"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseInsights struct {
	Data   []metadomain.InsightRow `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetDailyInsights busca uma linha de métricas por dia do período. Períodos
// acima do limite de 14 dias são divididos em janelas consecutivas, pois o
// endpoint trunca resultados silenciosamente em intervalos longos em vez de
// paginar de forma confiável, e os resultados são concatenados em ordem
// cronológica.
func (c *MetaClient) GetDailyInsights(token, objectID string, tr TimeRange) ([]metadomain.InsightRow, error) {
	chunks := SplitTimeRange(tr, MaxChunkDays)

	var rows []metadomain.InsightRow
	for _, chunk := range chunks {
		chunkRows, err := c.fetchDailyChunk(token, objectID, chunk)
		if err != nil {
			return nil, err
		}

		rows = append(rows, chunkRows...)
	}

	return rows, nil
}

func (c *MetaClient) fetchDailyChunk(token, objectID string, tr TimeRange) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", "spend,impressions,clicks,reach")
	params.Add("time_range", tr.JSONString())
	params.Add("time_increment", "1")
	params.Add("limit", "100")

	body, err := c.doGet(objectID+"/insights", params, token, listTimeout)
	if err != nil {
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
