package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	billingmocks "github.com/adpulse/campaign-reporting-api/infrastructure/billing/mocks"
	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/adpulse/campaign-reporting-api/infrastructure/repository/mocks"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/adpulse/campaign-reporting-api/pkg/apiErrors"
	"github.com/adpulse/campaign-reporting-api/pkg/cache"
)

type serviceMocks struct {
	brandRepo  *repomocks.MockBrandConnectionRepository
	integrator *metamocks.MockIntegrator
	resolver   *billingmocks.MockCustomerResolver
	sink       *billingmocks.MockEventSink
}

func newTestService(t *testing.T, billingEnabled bool) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		brandRepo:  repomocks.NewMockBrandConnectionRepository(ctrl),
		integrator: metamocks.NewMockIntegrator(ctrl),
		resolver:   billingmocks.NewMockCustomerResolver(ctrl),
		sink:       billingmocks.NewMockEventSink(ctrl),
	}

	cfg := &config.Config{}
	cfg.Billing.Enabled = billingEnabled

	service := &Service{
		brandRepo:  m.brandRepo,
		integrator: m.integrator,
		resolver:   m.resolver,
		sink:       m.sink,
		brandCache: cache.NewTTL[*domain.BrandConnection](brandCacheTTL),
		cfg:        cfg,
	}

	return service, m
}

func activeConnection() *domain.BrandConnection {
	return &domain.BrandConnection{
		BrandID:        "brand-1",
		AdAccountID:    "act_123",
		AccessToken:    "token",
		OrganizationID: "org-1",
		Status:         domain.BrandConnectionActive,
	}
}

func assertReportCode(t *testing.T, err error, code string) {
	t.Helper()

	var reportErr *ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, code, reportErr.Code)
}

func TestGetCampaignDetails_PeriodoInvalido(t *testing.T) {
	cases := []struct {
		name      string
		startDate string
		endDate   string
		wantCode  string
	}{
		{
			name:      "formato de data irreconhecível",
			startDate: "01/03/2024",
			endDate:   "2024-03-07",
			wantCode:  apiErrors.ErrInvalidDateFormat,
		},
		{
			name:      "data final malformada",
			startDate: "2024-03-01",
			endDate:   "not-a-date",
			wantCode:  apiErrors.ErrInvalidDateFormat,
		},
		{
			name:      "início depois do fim",
			startDate: "2024-03-10",
			endDate:   "2024-03-01",
			wantCode:  apiErrors.ErrInvalidDateRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newTestService(t, false)

			details, err := service.GetCampaignDetails("brand-1", "camp-1", tc.startDate, tc.endDate)

			assert.Nil(t, details)
			assertReportCode(t, err, tc.wantCode)
		})
	}
}

func TestGetCampaignDetails_ConexaoDaMarca(t *testing.T) {
	t.Run("marca sem conexão", func(t *testing.T) {
		service, m := newTestService(t, false)

		m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(nil, nil)

		_, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

		assertReportCode(t, err, apiErrors.ErrBrandNotFound)
	})

	t.Run("conexão sem access token", func(t *testing.T) {
		service, m := newTestService(t, false)

		conn := activeConnection()
		conn.AccessToken = ""
		m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil)

		_, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

		assertReportCode(t, err, apiErrors.ErrMissingBrandToken)
	})

	t.Run("conexão sem conta de anúncios", func(t *testing.T) {
		service, m := newTestService(t, false)

		conn := activeConnection()
		conn.AdAccountID = ""
		m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil)

		_, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

		assertReportCode(t, err, apiErrors.ErrMissingAdAccount)
	})

	t.Run("falha no banco", func(t *testing.T) {
		service, m := newTestService(t, false)

		m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(nil, errors.New("conexão recusada"))

		_, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

		assertReportCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

// Conexão resolvida fica em cache: o segundo relatório da mesma marca não
// volta ao banco
func TestGetCampaignDetails_CacheiaConexao(t *testing.T) {
	service, m := newTestService(t, false)

	conn := activeConnection()
	m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil).Times(1)
	m.integrator.EXPECT().
		GetCampaignDetails(conn, "camp-1", gomock.Any()).
		Return(&domain.CampaignDetails{}, nil).
		Times(2)

	_, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")
	require.NoError(t, err)

	_, err = service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")
	require.NoError(t, err)
}

func TestGetCampaignDetails_FalhaUpstream(t *testing.T) {
	service, m := newTestService(t, false)

	conn := activeConnection()
	m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil)
	m.integrator.EXPECT().
		GetCampaignDetails(conn, "camp-1", gomock.Any()).
		Return(nil, errors.New("meta api: status 500"))

	details, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

	assert.Nil(t, details)
	assertReportCode(t, err, apiErrors.ErrUpstreamAPI)
}

// Token vencido no upstream vira erro de configuração e a conexão é marcada
// como expirada na hora, sem esperar a varredura agendada
func TestGetCampaignDetails_TokenVencidoExpiraConexao(t *testing.T) {
	service, m := newTestService(t, false)

	conn := activeConnection()
	m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil)

	upstreamErr := &metadomain.UpstreamError{
		StatusCode: 400,
		Endpoint:   "camp-1/insights",
		Details: &metadomain.ErrorDetails{
			Code:    190,
			Type:    "OAuthException",
			Message: "Error validating access token: Session has expired",
		},
	}

	m.integrator.EXPECT().
		GetCampaignDetails(conn, "camp-1", gomock.Any()).
		Return(nil, upstreamErr)

	m.brandRepo.EXPECT().UpdateStatus("brand-1", domain.BrandConnectionExpired).Return(nil)

	details, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

	assert.Nil(t, details)
	assertReportCode(t, err, apiErrors.ErrMissingBrandToken)

	// A conexão saiu do cache: a próxima requisição volta ao banco
	m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(nil, nil)

	_, err = service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")
	assertReportCode(t, err, apiErrors.ErrBrandNotFound)
}

func TestGetCampaignDetails_EmiteEventoDeUso(t *testing.T) {
	service, m := newTestService(t, true)

	conn := activeConnection()
	m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil)
	m.integrator.EXPECT().
		GetCampaignDetails(conn, "camp-1", gomock.Any()).
		Return(&domain.CampaignDetails{}, nil)

	m.resolver.EXPECT().ResolveCustomerID("org-1").Return("cus_abc", nil)
	m.sink.EXPECT().EmitReportViewed("cus_abc", "brand-1", "camp-1").Return(nil)

	_, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

	require.NoError(t, err)
}

// Falha de cobrança nunca afeta a resposta do relatório
func TestGetCampaignDetails_FalhaDeCobrancaNaoPropaga(t *testing.T) {
	service, m := newTestService(t, true)

	conn := activeConnection()
	m.brandRepo.EXPECT().GetByBrandID("brand-1").Return(conn, nil)
	m.integrator.EXPECT().
		GetCampaignDetails(conn, "camp-1", gomock.Any()).
		Return(&domain.CampaignDetails{}, nil)

	m.resolver.EXPECT().ResolveCustomerID("org-1").Return("", errors.New("billing fora do ar"))

	details, err := service.GetCampaignDetails("brand-1", "camp-1", "2024-03-01", "2024-03-07")

	require.NoError(t, err)
	assert.NotNil(t, details)
}

func TestBuildFilters_JanelaPadrao(t *testing.T) {
	filters, err := buildFilters("", "")

	require.NoError(t, err)
	require.NotNil(t, filters.StartDate)
	require.NotNil(t, filters.EndDate)

	days := int(filters.EndDate.Sub(*filters.StartDate).Hours()/24) + 1
	assert.Equal(t, defaultRangeDays, days)
}
