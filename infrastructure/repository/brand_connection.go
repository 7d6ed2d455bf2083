package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/adpulse/campaign-reporting-api/infrastructure/database/postgres"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
)

const brandConnectionsTable = "brand_connections"

type BrandConnectionRepository interface {
	GetByBrandID(brandID string) (*domain.BrandConnection, error)
	ListExpiring(before time.Time) ([]*domain.BrandConnection, error)
	UpdateStatus(brandID, status string) error
}

type brandConnectionRepository struct {
	conn postgres.Queryer
}

func NewBrandConnectionRepository(conn postgres.Queryer) BrandConnectionRepository {
	return &brandConnectionRepository{
		conn: conn,
	}
}

// GetByBrandID retorna a conexão da marca, ou nil quando a marca não está
// cadastrada
func (r *brandConnectionRepository) GetByBrandID(brandID string) (*domain.BrandConnection, error) {
	connSQL, connArgs, err := squirrel.
		Select("brand_id, ad_account_id, access_token, organization_id, status, token_expires_at, created_at, updated_at").
		From(brandConnectionsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(connSQL, connArgs...)

	connection, err := r.deserialize(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar conexão da marca")
	}

	return connection, nil
}

// ListExpiring retorna as conexões ativas cujo token expira antes do
// instante dado
func (r *brandConnectionRepository) ListExpiring(before time.Time) ([]*domain.BrandConnection, error) {
	connSQL, connArgs, err := squirrel.
		Select("brand_id, ad_account_id, access_token, organization_id, status, token_expires_at, created_at, updated_at").
		From(brandConnectionsTable).
		Where(squirrel.Eq{"status": domain.BrandConnectionActive}).
		Where(squirrel.Lt{"token_expires_at": before}).
		OrderBy("token_expires_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(connSQL, connArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao listar conexões expirando")
	}
	defer rows.Close()

	connections := make([]*domain.BrandConnection, 0)

	for rows.Next() {
		connection, err := r.deserialize(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler conexão da marca")
		}

		connections = append(connections, connection)
	}

	return connections, nil
}

func (r *brandConnectionRepository) UpdateStatus(brandID, status string) error {
	connSQL, connArgs, err := squirrel.
		Update(brandConnectionsTable).
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"brand_id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(connSQL, connArgs...); err != nil {
		return errors.Wrap(err, "erro ao atualizar status da conexão")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *brandConnectionRepository) deserialize(row rowScanner) (*domain.BrandConnection, error) {
	connection := &domain.BrandConnection{}

	if err := row.Scan(
		&connection.BrandID,
		&connection.AdAccountID,
		&connection.AccessToken,
		&connection.OrganizationID,
		&connection.Status,
		&connection.TokenExpiresAt,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return connection, nil
}
