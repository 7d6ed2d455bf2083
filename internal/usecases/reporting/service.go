package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpulse/campaign-reporting-api/infrastructure/billing"
	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta"
	"github.com/adpulse/campaign-reporting-api/infrastructure/repository"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/adpulse/campaign-reporting-api/pkg/apiErrors"
	"github.com/adpulse/campaign-reporting-api/pkg/cache"
	"github.com/adpulse/campaign-reporting-api/pkg/utils"
)

const (
	brandCacheTTL = 5 * time.Minute

	// Janela padrão quando a requisição não informa o período
	defaultRangeDays = 7
)

// ReportError carrega o código de API de uma falha de relatório
type ReportError struct {
	Err  error
	Code string
}

func (e *ReportError) Error() string {
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func newReportError(err error, code string) *ReportError {
	return &ReportError{Err: err, Code: code}
}

type CampaignReporter interface {
	GetCampaignDetails(brandID, campaignID, startDate, endDate string) (*domain.CampaignDetails, error)
}

type Service struct {
	brandRepo  repository.BrandConnectionRepository
	integrator meta.Integrator
	resolver   billing.CustomerResolver
	sink       billing.EventSink
	brandCache cache.Cache[*domain.BrandConnection]
	cfg        *config.Config
}

func NewService(
	brandRepo repository.BrandConnectionRepository,
	integrator meta.Integrator,
	resolver billing.CustomerResolver,
	sink billing.EventSink,
	cfg *config.Config,
) CampaignReporter {
	return &Service{
		brandRepo:  brandRepo,
		integrator: integrator,
		resolver:   resolver,
		sink:       sink,
		brandCache: cache.NewTTL[*domain.BrandConnection](brandCacheTTL),
		cfg:        cfg,
	}
}

// GetCampaignDetails valida o período, resolve a conexão da marca e delega a
// agregação ao integrador. Relatório servido com sucesso emite um evento de
// uso best-effort quando a cobrança está habilitada.
func (s *Service) GetCampaignDetails(brandID, campaignID, startDate, endDate string) (*domain.CampaignDetails, error) {
	filters, err := buildFilters(startDate, endDate)
	if err != nil {
		return nil, err
	}

	conn, err := s.resolveBrandConnection(brandID)
	if err != nil {
		return nil, err
	}

	details, err := s.integrator.GetCampaignDetails(conn, campaignID, filters)
	if err != nil {
		return nil, s.handleUpstreamError(conn, err)
	}

	s.emitUsageEvent(conn, campaignID)

	return details, nil
}

// handleUpstreamError traduz a falha do integrador. Token vencido marca a
// conexão como expirada na hora, sem esperar a varredura agendada: as
// próximas requisições da marca falham com erro de configuração em vez de
// repetir a chamada upstream condenada.
func (s *Service) handleUpstreamError(conn *domain.BrandConnection, err error) error {
	var upstreamErr *metadomain.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.IsTokenExpired() {
		logrus.WithField("brand_id", conn.BrandID).
			Warn("insights: token da conexão vencido, marcando conexão como expirada")

		s.brandCache.Invalidate(conn.BrandID)

		if updateErr := s.brandRepo.UpdateStatus(conn.BrandID, domain.BrandConnectionExpired); updateErr != nil {
			logrus.WithError(updateErr).WithField("brand_id", conn.BrandID).
				Error("insights: falha ao marcar conexão como expirada")
		}

		return newReportError(err, apiErrors.ErrMissingBrandToken)
	}

	return newReportError(err, apiErrors.ErrUpstreamAPI)
}

// buildFilters valida e converte o período pedido; ausente, usa os últimos
// dias da janela padrão
func buildFilters(startDate, endDate string) (*domain.InsigthFilters, error) {
	if startDate == "" && endDate == "" {
		end := time.Now().UTC().Truncate(24 * time.Hour)
		start := end.AddDate(0, 0, -(defaultRangeDays - 1))
		return &domain.InsigthFilters{StartDate: &start, EndDate: &end}, nil
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, newReportError(err, apiErrors.ErrInvalidDateFormat)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, newReportError(err, apiErrors.ErrInvalidDateFormat)
	}

	if start.After(*end) {
		return nil, newReportError(domain.ErrInvalidDateRange, apiErrors.ErrInvalidDateRange)
	}

	return &domain.InsigthFilters{StartDate: start, EndDate: end}, nil
}

// resolveBrandConnection busca a conexão da marca com cache de curta duração.
// Conexão ausente ou incompleta é erro de configuração do caller, não de
// servidor.
func (s *Service) resolveBrandConnection(brandID string) (*domain.BrandConnection, error) {
	if conn, ok := s.brandCache.Get(brandID); ok {
		return conn, nil
	}

	conn, err := s.brandRepo.GetByBrandID(brandID)
	if err != nil {
		return nil, newReportError(err, apiErrors.ErrDatabaseOperation)
	}

	if conn == nil {
		return nil, newReportError(domain.ErrBrandNotFound, apiErrors.ErrBrandNotFound)
	}

	if conn.AccessToken == "" {
		return nil, newReportError(domain.ErrMissingBrandToken, apiErrors.ErrMissingBrandToken)
	}

	if conn.AdAccountID == "" {
		return nil, newReportError(domain.ErrMissingAdAccount, apiErrors.ErrMissingAdAccount)
	}

	s.brandCache.Set(brandID, conn)

	return conn, nil
}

// emitUsageEvent publica o evento de relatório servido. Falha de cobrança
// nunca chega na resposta: o relatório já foi montado.
func (s *Service) emitUsageEvent(conn *domain.BrandConnection, campaignID string) {
	if !s.cfg.Billing.Enabled {
		return
	}

	customerID, err := s.resolver.ResolveCustomerID(conn.OrganizationID)
	if err != nil {
		logrus.WithError(err).WithField("organization_id", conn.OrganizationID).
			Warn("billing: cliente de cobrança não resolvido, evento descartado")
		return
	}

	if err := s.sink.EmitReportViewed(customerID, conn.BrandID, campaignID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"brand_id":    conn.BrandID,
			"campaign_id": campaignID,
		}).Warn("billing: falha ao emitir evento de uso")
	}
}
