package meta

import (
	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/adpulse/campaign-reporting-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// getHourlyProfile busca o breakdown horário e o consolida nas 24 faixas do
// dia. A janela é estendida em um dia para cada lado antes da consulta: o
// breakdown é calculado no fuso da audiência e os dias de borda podem vir
// incompletos quando a consulta usa exatamente a janela pedida. Falha degrada
// para as 24 faixas zeradas.
func (s *MetaIntegrator) getHourlyProfile(token, campaignID string, tr metaclient.TimeRange) ([]*domain.HourlySlot, domain.MetricTotals) {
	rows, err := s.Client.GetHourlyInsights(token, campaignID, tr.Extend(1))
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).
			Warn("insights: falha no breakdown horário, degradando para perfil zerado")
		return emptyHourlyProfile(), domain.MetricTotals{}
	}

	return BuildHourlyProfile(rows, tr)
}

// BuildHourlyProfile consolida as linhas horárias nas 24 faixas do dia.
// Linhas duplicadas por (data, hora) são descartadas mantendo a primeira
// vista, e linhas fora da janela original (trazidas pela extensão da
// consulta) são filtradas antes da soma.
func BuildHourlyProfile(rows []metadomain.InsightRow, tr metaclient.TimeRange) ([]*domain.HourlySlot, domain.MetricTotals) {
	slots := emptyHourlyProfile()
	totals := domain.MetricTotals{}

	type slotKey struct {
		date string
		hour int
	}
	seen := make(map[slotKey]bool, len(rows))

	for i := range rows {
		row := &rows[i]

		hour := row.Hour()
		if hour < 0 || hour > 23 {
			continue
		}

		if !tr.Contains(row.DateStart) {
			continue
		}

		key := slotKey{date: row.DateStart, hour: hour}
		if seen[key] {
			continue
		}
		seen[key] = true

		slot := slots[hour]
		slot.Spend += row.SpendValue()
		slot.Impressions += row.ImpressionsValue()
		slot.Clicks += row.ClicksValue()

		// Reach não é aditivo entre dias, mas é a melhor aproximação
		// disponível no breakdown horário
		slot.Reach += row.ReachValue()
	}

	for _, slot := range slots {
		slot.Spend = utils.RoundWithSixDecimalPlace(slot.Spend)

		totals.Spend += slot.Spend
		totals.Impressions += slot.Impressions
		totals.Clicks += slot.Clicks
		totals.Reach += slot.Reach
	}

	totals.Spend = utils.RoundWithSixDecimalPlace(totals.Spend)

	return slots, totals
}

// emptyHourlyProfile retorna as 24 faixas zeradas, na ordem 0h-23h
func emptyHourlyProfile() []*domain.HourlySlot {
	slots := make([]*domain.HourlySlot, 24)
	for hour := range slots {
		slots[hour] = &domain.HourlySlot{Hour: hour}
	}

	return slots
}
