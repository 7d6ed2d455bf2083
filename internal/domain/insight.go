package domain

import "time"

// InsigthFilters define o período solicitado para o relatório
type InsigthFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// HourlySlot é uma fatia de uma hora do perfil diário, indexada pela
// hora do dia no fuso horário da audiência
type HourlySlot struct {
	Hour        int     `json:"hour"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Reach       int     `json:"reach"`
}

// DailyStat agrega as métricas de um dia do período solicitado
type DailyStat struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Reach       int     `json:"reach"`
}

// CampaignDetails é a resposta completa de uma requisição de detalhes de campanha.
// O formato é sempre consistente: ramos degradados aparecem como valores vazios
// ou zerados, nunca como campos de erro misturados aos dados.
type CampaignDetails struct {
	Campaign     *Campaign     `json:"campaign"`
	DailyStats   []*DailyStat  `json:"dailyStats"`
	HourlyStats  []*HourlySlot `json:"hourlyStats"`
	HourlyTotals MetricTotals  `json:"hourlyTotals"`
}
