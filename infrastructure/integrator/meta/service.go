package meta

import (
	"sync"
	"time"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Integrator é a visão que os usecases têm do agregador de insights
type Integrator interface {
	GetCampaignDetails(conn *domain.BrandConnection, campaignID string, filters *domain.InsigthFilters) (*domain.CampaignDetails, error)
}

// MetaIntegrator agrega os dados de performance da plataforma de anúncios em
// uma hierarquia normalizada de campanha. Não guarda estado entre requisições.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetCampaignDetails monta a árvore completa de uma campanha: entidades,
// série diária e perfil horário em paralelo, depois audiência e atribuição
// de carrossel por conjunto de anúncios.
//
// Falhas nos dados obrigatórios (campanha, lista de conjuntos) propagam como
// erro; falhas em dados de enriquecimento degradam o ramo para valores
// vazios ou zerados sem derrubar a requisição.
func (s *MetaIntegrator) GetCampaignDetails(
	conn *domain.BrandConnection,
	campaignID string,
	filters *domain.InsigthFilters,
) (*domain.CampaignDetails, error) {
	tr := metaclient.TimeRange{Since: *filters.StartDate, Until: *filters.EndDate}
	token := conn.AccessToken

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"brand_id":    conn.BrandID,
		"start_date":  tr.Since.Format(time.DateOnly),
		"end_date":    tr.Until.Format(time.DateOnly),
	}).Info("insights: montando detalhes da campanha")

	var (
		tree         *campaignTree
		entityErr    error
		dailyStats   []*domain.DailyStat
		hourlySlots  []*domain.HourlySlot
		hourlyTotals domain.MetricTotals
	)

	// Campanha, série diária e perfil horário não dependem entre si
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		tree, entityErr = s.fetchCampaignTree(token, campaignID, tr)
	}()

	go func() {
		defer wg.Done()
		dailyStats = s.getDailyStats(token, campaignID, tr)
	}()

	go func() {
		defer wg.Done()
		hourlySlots, hourlyTotals = s.getHourlyProfile(token, campaignID, tr)
	}()

	wg.Wait()

	if entityErr != nil {
		logrus.WithError(entityErr).WithField("campaign_id", campaignID).
			Error("insights: falha nos dados obrigatórios da campanha")
		return nil, entityErr
	}

	s.enrichAdSets(token, tree, tr)

	return &domain.CampaignDetails{
		Campaign:     tree.campaign,
		DailyStats:   dailyStats,
		HourlyStats:  hourlySlots,
		HourlyTotals: hourlyTotals,
	}, nil
}

// enrichAdSets resolve audiência, série diária por anúncio e cartões de
// carrossel. Conjuntos são
// processados em paralelo entre si; dentro de um conjunto, os anúncios e os
// cartões de cada carrossel são resolvidos em sequência para limitar a
// carga concorrente no upstream por anúncio.
func (s *MetaIntegrator) enrichAdSets(token string, tree *campaignTree, tr metaclient.TimeRange) {
	wg := sync.WaitGroup{}

	for i := range tree.campaign.AdSets {
		adSet := tree.campaign.AdSets[i]
		rawAdSet := tree.rawAdSets[adSet.ID]

		wg.Add(1)
		go func() {
			defer wg.Done()

			if rawAdSet != nil {
				adSet.Audience = s.resolveAudience(token, rawAdSet.Targeting)
			}

			for _, ad := range adSet.Ads {
				ad.DailyStats = s.getDailyStats(token, ad.ID, tr)

				if ad.Format != domain.AdFormatCarousel {
					continue
				}

				rawAd := tree.rawAds[ad.ID]
				if rawAd == nil {
					continue
				}

				ad.CarouselCards = s.resolveCarouselCards(token, tree.campaign.Name, ad, rawAd, tr)
			}
		}()
	}

	wg.Wait()
}

// getDailyStats busca a série diária da campanha ou de um anúncio; falha
// degrada para lista vazia
func (s *MetaIntegrator) getDailyStats(token, objectID string, tr metaclient.TimeRange) []*domain.DailyStat {
	rows, err := s.Client.GetDailyInsights(token, objectID, tr)
	if err != nil {
		logrus.WithError(err).WithField("object_id", objectID).
			Warn("insights: falha na série diária, degradando para lista vazia")
		return []*domain.DailyStat{}
	}

	return mapDailyStats(rows)
}

func mapDailyStats(rows []metadomain.InsightRow) []*domain.DailyStat {
	stats := make([]*domain.DailyStat, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		stats = append(stats, &domain.DailyStat{
			Date:        row.DateStart,
			Spend:       row.SpendValue(),
			Impressions: row.ImpressionsValue(),
			Clicks:      row.ClicksValue(),
			Reach:       row.ReachValue(),
		})
	}
	return stats
}
