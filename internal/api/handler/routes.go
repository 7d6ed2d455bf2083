package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/adpulse/campaign-reporting-api/internal/api/handler/router"
	"github.com/adpulse/campaign-reporting-api/internal/usecases/authenticating"
	"github.com/adpulse/campaign-reporting-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Reports(service reporting.CampaignReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/brands/:id/campaigns/:campaign_id/details",
			Method:  http.MethodGet,
			Handler: GetCampaignDetails(service),
		},
	}
}
