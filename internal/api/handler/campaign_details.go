package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/adpulse/campaign-reporting-api/internal/usecases/reporting"
	"github.com/adpulse/campaign-reporting-api/pkg/apiErrors"
	"github.com/adpulse/campaign-reporting-api/pkg/log"
)

// GetCampaignDetails serve o relatório completo de uma campanha: hierarquia
// de entidades, série diária e perfil horário
func GetCampaignDetails(service reporting.CampaignReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		brandID := params.ByName("id")
		campaignID := params.ByName("campaign_id")

		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		logger.WithFields(log.Fields{
			"brand_id":    brandID,
			"campaign_id": campaignID,
			"start_date":  startDate,
			"end_date":    endDate,
		}).Info("report: montando relatório de campanha")

		details, err := service.GetCampaignDetails(brandID, campaignID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id":    brandID,
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("report: falha ao montar relatório de campanha")

			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(details); err != nil {
			logger.WithField("error", err.Error()).Error("report: falha ao enviar resposta")
		}
	})
}

// handleReportError converte o erro do usecase no código de API apropriado
func handleReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao montar relatório", nil)
}
