package metaclient

import (
	"encoding/json"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// Limite de linhas horárias por consulta: três semanas de buckets de uma hora
// é um teto seguro para a janela estendida
const hourlyRowsLimit = "504"

// GetHourlyInsights busca as métricas com breakdown por hora do dia no fuso
// da audiência. O chamador é responsável por estender o intervalo e por
// deduplicar os buckets retornados.
func (c *MetaClient) GetHourlyInsights(token, objectID string, tr TimeRange) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", "spend,impressions,clicks,reach")
	params.Add("time_range", tr.JSONString())
	params.Add("time_increment", "1")
	params.Add("breakdowns", "hourly_stats_aggregated_by_audience_time_zone")
	params.Add("limit", hourlyRowsLimit)

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
