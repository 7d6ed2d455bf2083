package billing

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/pkg/cache"
)

const resolverTimeout = 10 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CustomerResolver resolve o identificador de cliente de cobrança de uma
// organização. O resultado é cacheado em memória com TTL para não consultar
// o serviço de cobrança a cada requisição de relatório.
type CustomerResolver interface {
	ResolveCustomerID(organizationID string) (string, error)
}

type customerResolver struct {
	cfg   *config.Config
	cache cache.Cache[string]
}

func NewCustomerResolver(cfg *config.Config) CustomerResolver {
	ttl := time.Duration(cfg.Billing.CacheTTLMinutes) * time.Minute

	return &customerResolver{
		cfg:   cfg,
		cache: cache.NewTTL[string](ttl),
	}
}

type customerResponse struct {
	CustomerID string `json:"customer_id"`
}

// ResolveCustomerID busca o cliente de cobrança da organização, privilegiando
// o cache. Organização sem cliente cadastrado é erro: o caller decide se a
// cobrança é obrigatória ou best-effort.
func (r *customerResolver) ResolveCustomerID(organizationID string) (string, error) {
	if customerID, ok := r.cache.Get(organizationID); ok {
		return customerID, nil
	}

	endpoint := fmt.Sprintf("%s/organizations/%s/customer", r.cfg.Billing.CustomerAPIURL, organizationID)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "billing: erro ao criar requisição de cliente")
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.Billing.APIKey)

	client := &http.Client{Timeout: resolverTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "billing: erro ao consultar cliente de cobrança")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("billing: consulta de cliente retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "billing: erro ao ler resposta de cliente")
	}

	var customer customerResponse
	if err := json.Unmarshal(body, &customer); err != nil {
		return "", errors.Wrap(err, "billing: resposta de cliente malformada")
	}

	if customer.CustomerID == "" {
		return "", errors.Errorf("billing: organização %s sem cliente de cobrança", organizationID)
	}

	r.cache.Set(organizationID, customer.CustomerID)

	return customer.CustomerID, nil
}
