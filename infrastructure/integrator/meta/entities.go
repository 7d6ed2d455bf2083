package meta

import (
	"sort"
	"strconv"
	"time"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// campaignTree é o resultado normalizado da busca de entidades, mantendo os
// payloads brutos necessários para os estágios de enriquecimento
type campaignTree struct {
	campaign  *domain.Campaign
	rawAdSets map[string]*metadomain.RawAdSet
	rawAds    map[string]*metadomain.RawAd
}

// fetchCampaignTree busca a campanha, seus conjuntos e todos os anúncios.
// Campanha e lista de conjuntos são obrigatórios; a busca única de anúncios
// é opcional: se falhar, os conjuntos ficam sem anúncios e a requisição
// prossegue.
func (s *MetaIntegrator) fetchCampaignTree(token, campaignID string, tr metaclient.TimeRange) (*campaignTree, error) {
	rawCampaign, err := s.Client.GetCampaignByID(token, campaignID, tr)
	if err != nil {
		return nil, err
	}

	rawAdSets, err := s.Client.GetAdSetsByCampaignID(token, campaignID, tr)
	if err != nil {
		return nil, err
	}

	// Uma única chamada para todos os anúncios da campanha, agrupados por
	// conjunto em memória: o custo upstream fica constante independente do
	// tamanho da hierarquia
	adsByAdSet := s.fetchAdsGrouped(token, campaignID, tr)

	tree := &campaignTree{
		campaign:  normalizeCampaign(rawCampaign),
		rawAdSets: make(map[string]*metadomain.RawAdSet, len(rawAdSets)),
		rawAds:    make(map[string]*metadomain.RawAd),
	}

	for i := range rawAdSets {
		rawAdSet := &rawAdSets[i]
		adSet := normalizeAdSet(rawAdSet)

		for _, rawAd := range adsByAdSet[rawAdSet.ID] {
			adSet.Ads = append(adSet.Ads, normalizeAd(rawAd))
			tree.rawAds[rawAd.ID] = rawAd
		}

		// Ordenação estável por id atribuído pelo upstream, não por ordem
		// de chegada
		sort.Slice(adSet.Ads, func(a, b int) bool {
			return adSet.Ads[a].ID < adSet.Ads[b].ID
		})

		tree.campaign.AdSets = append(tree.campaign.AdSets, adSet)
		tree.rawAdSets[rawAdSet.ID] = rawAdSet
	}

	return tree, nil
}

// fetchAdsGrouped retorna os anúncios da campanha agrupados por conjunto.
// Falha degrada para mapa vazio em vez de derrubar a requisição.
func (s *MetaIntegrator) fetchAdsGrouped(token, campaignID string, tr metaclient.TimeRange) map[string][]*metadomain.RawAd {
	rawAds, err := s.Client.GetAdsByCampaignID(token, campaignID, tr)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).
			Warn("insights: falha ao listar anúncios, conjuntos ficarão vazios")
		return map[string][]*metadomain.RawAd{}
	}

	grouped := make(map[string][]*metadomain.RawAd)
	for i := range rawAds {
		rawAd := &rawAds[i]
		grouped[rawAd.AdsetID] = append(grouped[rawAd.AdsetID], rawAd)
	}

	return grouped
}

func normalizeCampaign(raw *metadomain.RawCampaign) *domain.Campaign {
	return &domain.Campaign{
		ID:        raw.ID,
		Name:      raw.Name,
		Objective: raw.Objective,
		Status:    raw.Status,
		Metrics:   metricsFromEnvelope(raw.Insights),
		AdSets:    make([]*domain.AdSet, 0),
	}
}

func normalizeAdSet(raw *metadomain.RawAdSet) *domain.AdSet {
	return &domain.AdSet{
		ID:        raw.ID,
		Name:      raw.Name,
		Status:    raw.Status,
		Budget:    normalizeBudget(raw),
		Schedule:  normalizeSchedule(raw),
		Placement: normalizePlacement(raw.Targeting),
		Metrics:   metricsFromEnvelope(raw.Insights),
		Ads:       make([]*domain.Ad, 0),
	}
}

// normalizeBudget converte o orçamento da menor unidade monetária (como a
// API retorna) para a unidade principal
func normalizeBudget(raw *metadomain.RawAdSet) *domain.Budget {
	if raw.DailyBudget != "" {
		return &domain.Budget{Type: "daily", Amount: minorToMajorUnit(raw.DailyBudget)}
	}

	if raw.LifetimeBudget != "" {
		return &domain.Budget{Type: "lifetime", Amount: minorToMajorUnit(raw.LifetimeBudget)}
	}

	return nil
}

func minorToMajorUnit(value string) float64 {
	cents, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"budget_value": value,
			"error":        err.Error(),
		}).Warn("insights: erro ao converter orçamento")
		return 0
	}

	return cents / 100
}

func normalizeSchedule(raw *metadomain.RawAdSet) *domain.Schedule {
	if raw.StartTime == "" && raw.EndTime == "" {
		return nil
	}

	return &domain.Schedule{
		StartDate: dateOnly(raw.StartTime),
		EndDate:   dateOnly(raw.EndTime),
	}
}

// dateOnly extrai a parte de data de um timestamp RFC3339 do upstream
func dateOnly(timestamp string) string {
	if timestamp == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		if len(timestamp) >= len(time.DateOnly) {
			return timestamp[:len(time.DateOnly)]
		}
		return timestamp
	}

	return parsed.Format(time.DateOnly)
}

func normalizePlacement(targeting *metadomain.RawTargeting) *domain.Placement {
	if targeting == nil || len(targeting.PublisherPlatforms) == 0 {
		return &domain.Placement{Type: "automatic"}
	}

	positions := make([]string, 0, len(targeting.FacebookPositions)+len(targeting.InstagramPositions))
	positions = append(positions, targeting.FacebookPositions...)
	positions = append(positions, targeting.InstagramPositions...)

	return &domain.Placement{
		Type:      "manual",
		Platforms: targeting.PublisherPlatforms,
		Positions: positions,
		Devices:   targeting.DevicePlatforms,
	}
}

func normalizeAd(raw *metadomain.RawAd) *domain.Ad {
	ad := &domain.Ad{
		ID:         raw.ID,
		Name:       raw.Name,
		Status:     raw.Status,
		Format:     detectAdFormat(raw.Creative),
		Metrics:    metricsFromEnvelope(raw.Insights),
		DailyStats: make([]*domain.DailyStat, 0),
	}

	creative := raw.Creative
	if creative == nil {
		return ad
	}

	ad.ThumbnailURL = creative.ThumbnailURL
	ad.MediaURL = creative.ImageURL
	ad.VideoID = creative.VideoID
	ad.Headline = creative.Title
	ad.PrimaryText = creative.Body

	if creative.ObjectStorySpec == nil {
		return ad
	}

	if linkData := creative.ObjectStorySpec.LinkData; linkData != nil {
		if ad.Headline == "" {
			ad.Headline = linkData.Name
		}
		if ad.PrimaryText == "" {
			ad.PrimaryText = linkData.Message
		}
		ad.Description = linkData.Description
		ad.LinkURL = linkData.Link
		if ad.MediaURL == "" {
			ad.MediaURL = linkData.Picture
		}
		if linkData.CallToAction != nil {
			ad.CallToAction = linkData.CallToAction.Type
		}
	}

	if videoData := creative.ObjectStorySpec.VideoData; videoData != nil {
		if ad.VideoID == "" {
			ad.VideoID = videoData.VideoID
		}
		if ad.PrimaryText == "" {
			ad.PrimaryText = videoData.Message
		}
		if ad.Headline == "" {
			ad.Headline = videoData.Title
		}
		if ad.MediaURL == "" {
			ad.MediaURL = videoData.ImageURL
		}
		if videoData.CallToAction != nil && ad.CallToAction == "" {
			ad.CallToAction = videoData.CallToAction.Type
		}
	}

	return ad
}

// detectAdFormat classifica o criativo: carrossel quando há child_attachments,
// vídeo quando há video_id ou video_data, imagem nos demais casos
func detectAdFormat(creative *metadomain.RawCreative) string {
	if creative == nil {
		return domain.AdFormatImage
	}

	if spec := creative.ObjectStorySpec; spec != nil {
		if spec.LinkData != nil && len(spec.LinkData.ChildAttachments) > 0 {
			return domain.AdFormatCarousel
		}
		if spec.VideoData != nil {
			return domain.AdFormatVideo
		}
	}

	if creative.VideoID != "" {
		return domain.AdFormatVideo
	}

	return domain.AdFormatImage
}

func metricsFromEnvelope(env *metadomain.InsightEnvelope) domain.MetricTotals {
	if env == nil || len(env.Data) == 0 {
		return domain.MetricTotals{}
	}

	row := &env.Data[0]
	return domain.MetricTotals{
		Spend:       row.SpendValue(),
		Impressions: row.ImpressionsValue(),
		Clicks:      row.ClicksValue(),
		Reach:       row.ReachValue(),
	}
}

// genderFromTargeting mapeia o campo genders da API para o rótulo do relatório
func genderFromTargeting(genders []int) string {
	if len(genders) != 1 {
		return "all"
	}

	switch genders[0] {
	case 1:
		return "male"
	case 2:
		return "female"
	}

	return "all"
}
