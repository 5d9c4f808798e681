package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"post_syncer/internal/domain"
)

type TenantStore struct {
	db *sqlx.DB
}

func NewTenantStore(db *sqlx.DB) *TenantStore {
	return &TenantStore{db: db}
}

// ListEligible returns the tenants a batch run may process: connected
// authorization and a stored source token.
func (s *TenantStore) ListEligible(ctx context.Context) ([]domain.Tenant, error) {
	query := `
		SELECT id, name, wordpress_url, facebook_token, token_status,
		       instagram_account_id, instagram_account_name, start_date,
		       delete_hash, secret_phrase, created_at, updated_at
		FROM tenants
		WHERE token_status = $1
		  AND facebook_token IS NOT NULL
		ORDER BY id`

	var tenants []domain.Tenant
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &tenants, query, domain.TokenConnected); err != nil {
		return nil, err
	}
	return tenants, nil
}

// UpdateTokenStatus flips the tenant's authorization state. Called outside
// the tenant task's transaction when the source reports an expired token.
func (s *TenantStore) UpdateTokenStatus(ctx context.Context, tenantID int64, status domain.TokenStatus) error {
	query := `UPDATE tenants SET token_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, status, tenantID)
	return err
}
