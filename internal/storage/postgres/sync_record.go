package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"post_syncer/internal/domain"
)

type SyncRecordStore struct {
	db *sqlx.DB
}

func NewSyncRecordStore(db *sqlx.DB) *SyncRecordStore {
	return &SyncRecordStore{db: db}
}

func (s *SyncRecordStore) FindByTenant(ctx context.Context, tenantID int64) ([]domain.SyncRecord, error) {
	query := `
		SELECT id, tenant_id, media_id, timestamp, media_url, permalink,
		       wordpress_link, created_at
		FROM sync_records
		WHERE tenant_id = $1
		ORDER BY id`

	var records []domain.SyncRecord
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &records, query, tenantID); err != nil {
		return nil, err
	}
	return records, nil
}

// Add inserts one evaluation record. The conflict clause makes overlapping
// batch runs idempotent at (tenant, media) granularity.
func (s *SyncRecordStore) Add(ctx context.Context, record *domain.SyncRecord) error {
	query := `
		INSERT INTO sync_records (
			tenant_id, media_id, timestamp, media_url, permalink, wordpress_link
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, media_id) DO NOTHING`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		record.TenantID,
		record.MediaID,
		record.Timestamp,
		record.MediaURL,
		record.Permalink,
		record.WordpressLink,
	)
	return err
}
