package meta

import (
	"math"
	"net/url"
	"strings"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// resolveCarouselCards monta a lista de cartões de um anúncio em carrossel e
// atribui os cliques de cada cartão. Os dois breakdowns de insights são
// buscados uma única vez por anúncio; falha em qualquer um deles degrada para
// lista vazia e os cartões sem sinal caem na estimativa por participação.
func (s *MetaIntegrator) resolveCarouselCards(token, campaignName string, ad *domain.Ad, rawAd *metadomain.RawAd, tr metaclient.TimeRange) []*domain.CarouselCard {
	attachments := childAttachments(rawAd)
	if len(attachments) == 0 {
		return nil
	}

	cardRows, err := s.Client.GetAdInsightsByCard(token, ad.ID, tr)
	if err != nil {
		logrus.WithError(err).WithField("ad_id", ad.ID).
			Warn("insights: falha no breakdown por cartão, usando estimativa")
		cardRows = nil
	}

	destinationRows, err := s.Client.GetAdInsightsByDestination(token, ad.ID, tr)
	if err != nil {
		logrus.WithError(err).WithField("ad_id", ad.ID).
			Warn("insights: falha no breakdown por destino, usando estimativa")
		destinationRows = nil
	}

	total := len(attachments)
	cards := make([]*domain.CarouselCard, 0, total)

	for i, attachment := range attachments {
		link := substituteTemplateVars(attachment.Link, campaignName, ad.Name)

		card := &domain.CarouselCard{
			Headline:    substituteTemplateVars(attachment.Name, campaignName, ad.Name),
			Description: substituteTemplateVars(attachment.Description, campaignName, ad.Name),
			ImageURL:    attachment.Picture,
			LinkURL:     link,
			UTMContent:  extractUTMContent(link),
		}

		if card.ImageURL == "" && rawAd.Creative != nil {
			card.ImageURL = s.fetchCardImage(token, rawAd.Creative.ID, i)
		}

		card.ActualClicks = resolveCardClicks(card, attachment.ID, i, total, ad.Metrics.Clicks, cardRows, destinationRows)

		cards = append(cards, card)
	}

	return cards
}

func childAttachments(rawAd *metadomain.RawAd) []metadomain.RawChildAttachment {
	if rawAd == nil || rawAd.Creative == nil || rawAd.Creative.ObjectStorySpec == nil ||
		rawAd.Creative.ObjectStorySpec.LinkData == nil {
		return nil
	}

	return rawAd.Creative.ObjectStorySpec.LinkData.ChildAttachments
}

// fetchCardImage faz uma busca suplementar da imagem do cartão quando o
// payload da listagem veio sem ela. Falha deixa a imagem vazia.
func (s *MetaIntegrator) fetchCardImage(token, creativeID string, index int) string {
	if creativeID == "" {
		return ""
	}

	picture, err := s.Client.GetCreativeCardImage(token, creativeID, index)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"creative_id": creativeID,
			"card_index":  index,
		}).Warn("insights: falha ao buscar imagem do cartão")
		return ""
	}

	return picture
}

// resolveCardClicks atribui os cliques do cartão em três níveis de prioridade:
// linha direta do breakdown por cartão, soma das linhas de destino que
// carregam o utm_content do cartão e, por último, estimativa por participação
// sobre o total de cliques do anúncio.
func resolveCardClicks(card *domain.CarouselCard, cardID string, index, total, adClicks int, cardRows []metadomain.CarouselInsightRow, destinationRows []metadomain.DestinationInsightRow) int {
	if row, ok := matchCardRow(cardID, index, cardRows); ok && row.HasClickAction() {
		// Linha direta é autoritativa, inclusive quando reporta zero cliques
		return row.ClicksForCard()
	}

	if card.UTMContent != "" {
		matched := false
		sum := 0
		for i := range destinationRows {
			row := &destinationRows[i]
			if strings.Contains(row.LinkURLAsset.WebsiteURL, card.UTMContent) {
				matched = true
				sum += row.ClicksForDestination()
			}
		}
		if matched {
			return sum
		}
	}

	return triangularShare(index, total, adClicks)
}

// matchCardRow localiza a linha do breakdown que pertence ao cartão. O
// breakdown só retorna linhas para cartões com atividade, então o casamento é
// pelo carousel_card_id; a posição na lista só vale como critério quando o
// upstream não informou id algum.
func matchCardRow(cardID string, index int, rows []metadomain.CarouselInsightRow) (*metadomain.CarouselInsightRow, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	idsPresent := false
	for i := range rows {
		if rows[i].CarouselCardID != "" {
			idsPresent = true
			if cardID != "" && rows[i].CarouselCardID == cardID {
				return &rows[i], true
			}
		}
	}

	if !idsPresent && index < len(rows) {
		return &rows[index], true
	}

	return nil, false
}

// triangularShare calcula a participação estimada do cartão `index` sobre o
// total de cliques do anúncio: cartões nas primeiras posições recebem parcela
// maior, com pesos (total-index) sobre a soma triangular total*(total+1)/2
func triangularShare(index, total, adClicks int) int {
	if total <= 0 || adClicks <= 0 {
		return 0
	}

	weight := float64(total-index) / float64(total*(total+1)/2)
	return int(math.Round(float64(adClicks) * weight))
}

// substituteTemplateVars troca as variáveis de template suportadas nas URLs
// e textos dos cartões pelos valores resolvidos
func substituteTemplateVars(value, campaignName, adName string) string {
	if value == "" {
		return value
	}

	replacer := strings.NewReplacer(
		"{{campaign.name}}", campaignName,
		"{{ad.name}}", adName,
	)

	return replacer.Replace(value)
}

// extractUTMContent extrai o parâmetro utm_content da query string da URL;
// retorna vazio quando a URL é inválida ou não carrega o parâmetro
func extractUTMContent(link string) string {
	if link == "" {
		return ""
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	return parsed.Query().Get("utm_content")
}
