package domain

import "time"

// Status possíveis de uma conexão de marca
const (
	BrandConnectionActive  = "active"
	BrandConnectionExpired = "expired"
)

// BrandConnection vincula uma marca à sua conta de anúncios na plataforma,
// com o token de acesso usado em todas as chamadas upstream
type BrandConnection struct {
	BrandID        string     `json:"brand_id"`
	AdAccountID    string     `json:"ad_account_id"`
	AccessToken    string     `json:"-"`
	OrganizationID string     `json:"organization_id"`
	Status         string     `json:"status"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
