package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// MaxZipBatchSize é o máximo de códigos postais aceitos por chamada de lookup
const MaxZipBatchSize = 50

type ResponseZipLocations struct {
	Data []metadomain.RawZipLocation `json:"data"`
}

// GetZipLocations resolve nomes de cidade/estado para um lote de até 50
// códigos postais. Lotes maiores são responsabilidade do chamador.
func (c *MetaClient) GetZipLocations(token string, keys []string) (map[string]metadomain.RawZipLocation, error) {
	if len(keys) > MaxZipBatchSize {
		return nil, fmt.Errorf("lote de códigos postais acima do limite: %d > %d", len(keys), MaxZipBatchSize)
	}

	quoted := make([]string, 0, len(keys))
	for _, key := range keys {
		quoted = append(quoted, fmt.Sprintf("%q", key))
	}

	params := url.Values{}
	params.Add("type", "adgeolocationmeta")
	params.Add("zips", fmt.Sprintf("[%s]", strings.Join(quoted, ",")))

	body, err := c.doGet("search", params, token, listTimeout)
	if err != nil {
		return nil, err
	}

	var response ResponseZipLocations
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	resolved := make(map[string]metadomain.RawZipLocation, len(response.Data))
	for _, location := range response.Data {
		resolved[location.Key] = location
	}

	return resolved, nil
}
