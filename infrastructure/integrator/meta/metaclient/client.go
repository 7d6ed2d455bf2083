package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Timeouts por tipo de leitura: entidades únicas respondem rápido,
// listas e insights podem demorar mais
const (
	singleEntityTimeout = 10 * time.Second
	listTimeout         = 15 * time.Second
)

// Client expõe as leituras da plataforma de anúncios usadas pelo agregador.
// Todas as chamadas recebem o token da conexão de marca: não há credencial
// implícita; token ausente é erro de configuração do caller.
type Client interface {
	GetCampaignByID(token, campaignID string, tr TimeRange) (*metadomain.RawCampaign, error)
	GetAdSetsByCampaignID(token, campaignID string, tr TimeRange) ([]metadomain.RawAdSet, error)
	GetAdsByCampaignID(token, campaignID string, tr TimeRange) ([]metadomain.RawAd, error)
	GetDailyInsights(token, objectID string, tr TimeRange) ([]metadomain.InsightRow, error)
	GetHourlyInsights(token, objectID string, tr TimeRange) ([]metadomain.InsightRow, error)
	GetAdInsightsByCard(token, adID string, tr TimeRange) ([]metadomain.CarouselInsightRow, error)
	GetAdInsightsByDestination(token, adID string, tr TimeRange) ([]metadomain.DestinationInsightRow, error)
	GetCreativeCardImage(token, creativeID string, index int) (string, error)
	GetZipLocations(token string, keys []string) (map[string]metadomain.RawZipLocation, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{Cfg: cfg}
}

// doGet executa uma leitura autenticada com timeout próprio. Não faz retry:
// a política de repetição é responsabilidade do estágio chamador.
func (c *MetaClient) doGet(endpoint string, params url.Values, token string, timeout time.Duration) ([]byte, error) {
	params.Set("access_token", token)

	fullURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, endpoint, params.Encode())

	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, endpoint, params)
}

// handleResponse lê o corpo e converte respostas não-2xx em UpstreamError
// com o corpo estruturado de erro da plataforma quando presente
func (c *MetaClient) handleResponse(resp *http.Response, endpoint string, params url.Values) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	upstreamErr := &metadomain.UpstreamError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		Params:     redactParams(params),
		Body:       string(body),
	}

	var errResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error.Message != "" {
		upstreamErr.Details = &errResponse.Error
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":    endpoint,
		"status_code": resp.StatusCode,
		"params":      upstreamErr.Params,
	}).Error("Erro na resposta da API do Meta")

	return nil, upstreamErr
}

// redactParams remove o token da representação dos parâmetros usada em
// logs e erros
func redactParams(params url.Values) string {
	redacted := url.Values{}
	for key, values := range params {
		if key == "access_token" {
			continue
		}
		redacted[key] = values
	}
	return redacted.Encode()
}
