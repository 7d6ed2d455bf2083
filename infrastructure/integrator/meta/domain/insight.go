package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Tipos de ação que contam como clique para atribuição
var ClickActionTypes = []string{"link_click", "onsite_web_click"}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightEnvelope embrulha o sub-campo "insights" das leituras de entidade
type InsightEnvelope struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

// InsightRow é uma linha de métricas de performance. Os campos numéricos chegam
// como strings da API; os getters fazem a conversão tolerante a vazio.
type InsightRow struct {
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Reach       string   `json:"reach"`
	Actions     []Action `json:"actions,omitempty"`

	// Preenchido apenas em consultas com breakdown horário: formato
	// "HH:00:00 - HH:59:59" no fuso da audiência
	HourlyBreakdown string `json:"hourly_stats_aggregated_by_audience_time_zone,omitempty"`
}

func (r *InsightRow) SpendValue() float64 {
	return parseFloat(r.Spend, "spend")
}

func (r *InsightRow) ImpressionsValue() int {
	return parseInt(r.Impressions, "impressions")
}

func (r *InsightRow) ClicksValue() int {
	return parseInt(r.Clicks, "clicks")
}

func (r *InsightRow) ReachValue() int {
	return parseInt(r.Reach, "reach")
}

// Hour extrai a hora do dia do breakdown horário; retorna -1 quando o campo
// está ausente ou malformado
func (r *InsightRow) Hour() int {
	if len(r.HourlyBreakdown) < 2 {
		return -1
	}

	hour, err := strconv.Atoi(r.HourlyBreakdown[:2])
	if err != nil {
		logrus.WithField("breakdown", r.HourlyBreakdown).Warn("insights: breakdown horário malformado")
		return -1
	}

	return hour
}

// CarouselInsightRow é uma linha de insights com breakdown por cartão de carrossel
type CarouselInsightRow struct {
	CarouselCardID string   `json:"carousel_card_id"`
	Actions        []Action `json:"actions,omitempty"`
}

// HasClickAction informa se a linha carrega alguma ação de tipo clique.
// Linha presente com ação de clique é sinal autoritativo mesmo com valor zero.
func (r *CarouselInsightRow) HasClickAction() bool {
	for _, action := range r.Actions {
		if isClickAction(action.ActionType) {
			return true
		}
	}
	return false
}

// ClicksForCard soma os valores das ações de clique da linha
func (r *CarouselInsightRow) ClicksForCard() int {
	total := 0
	for _, action := range r.Actions {
		if isClickAction(action.ActionType) {
			total += parseInt(action.Value, "action_value")
		}
	}
	return total
}

// DestinationInsightRow é uma linha de insights com breakdown por URL de destino
type DestinationInsightRow struct {
	LinkURLAsset struct {
		WebsiteURL string `json:"website_url"`
	} `json:"link_url_asset"`
	Actions []Action `json:"actions,omitempty"`
}

// ClicksForDestination soma os valores das ações de clique da linha
func (r *DestinationInsightRow) ClicksForDestination() int {
	total := 0
	for _, action := range r.Actions {
		if isClickAction(action.ActionType) {
			total += parseInt(action.Value, "action_value")
		}
	}
	return total
}

func isClickAction(actionType string) bool {
	for _, t := range ClickActionTypes {
		if actionType == t {
			return true
		}
	}
	return false
}

func parseInt(value, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: erro ao converter valor para inteiro")
		return 0
	}

	return parsed
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: erro ao converter valor para float")
		return 0
	}

	return parsed
}
