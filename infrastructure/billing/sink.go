package billing

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/pkg/utils"
)

const sinkTimeout = 10 * time.Second

// ReportEvent é um evento de uso emitido quando um relatório de campanha é
// servido com sucesso
type ReportEvent struct {
	IdempotencyKey string    `json:"idempotency_key"`
	CustomerID     string    `json:"customer_id"`
	EventType      string    `json:"event_type"`
	BrandID        string    `json:"brand_id"`
	CampaignID     string    `json:"campaign_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// EventSink publica eventos de uso no serviço de cobrança. A emissão é
// best-effort: o caller loga falhas mas nunca as propaga para a resposta.
type EventSink interface {
	EmitReportViewed(customerID, brandID, campaignID string) error
}

type eventSink struct {
	cfg *config.Config
}

func NewEventSink(cfg *config.Config) EventSink {
	return &eventSink{cfg: cfg}
}

func (s *eventSink) EmitReportViewed(customerID, brandID, campaignID string) error {
	key, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "billing: erro ao gerar chave de idempotência")
	}

	event := ReportEvent{
		IdempotencyKey: key,
		CustomerID:     customerID,
		EventType:      "campaign_report_viewed",
		BrandID:        brandID,
		CampaignID:     campaignID,
		Timestamp:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "billing: erro ao serializar evento")
	}

	endpoint := fmt.Sprintf("%s/events", s.cfg.Billing.EventsAPIURL)
	headers := map[string]string{
		"Authorization": "Bearer " + s.cfg.Billing.APIKey,
	}

	if _, err := utils.PostJSON(endpoint, payload, headers, sinkTimeout); err != nil {
		return errors.Wrap(err, "billing: erro ao publicar evento de uso")
	}

	return nil
}
