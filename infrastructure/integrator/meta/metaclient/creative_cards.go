package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// GetCreativeCardImage busca a imagem do cartão de índice `index` nos
// child_attachments do criativo. Usado apenas como busca suplementar quando
// a imagem não veio na leitura principal do anúncio.
func (c *MetaClient) GetCreativeCardImage(token, creativeID string, index int) (string, error) {
	params := url.Values{}
	params.Add("fields", "object_story_spec{link_data{child_attachments}}")

	body, err := c.doGet(creativeID, params, token, singleEntityTimeout)
	if err != nil {
		return "", err
	}

	var creative metadomain.RawCreative
	if err := json.Unmarshal(body, &creative); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	if creative.ObjectStorySpec == nil || creative.ObjectStorySpec.LinkData == nil {
		return "", fmt.Errorf("criativo %s sem child_attachments", creativeID)
	}

	attachments := creative.ObjectStorySpec.LinkData.ChildAttachments
	if index < 0 || index >= len(attachments) {
		return "", fmt.Errorf("criativo %s não tem cartão no índice %d", creativeID, index)
	}

	return attachments[index].Picture, nil
}
