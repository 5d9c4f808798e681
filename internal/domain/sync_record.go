package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncRecord is the persisted proof that a source media has been evaluated
// for a tenant. (tenant_id, media_id) is the sole deduplication key.
// WordpressLink is nil when the row only exists to prevent re-evaluation.
type SyncRecord struct {
	ID            int64      `db:"id"`
	TenantID      int64      `db:"tenant_id"`
	MediaID       string     `db:"media_id"`
	Timestamp     *time.Time `db:"timestamp"`
	MediaURL      *string    `db:"media_url"`
	Permalink     *string    `db:"permalink"`
	WordpressLink *string    `db:"wordpress_link"`
	CreatedAt     time.Time  `db:"created_at"`
}

// BatchStats summarizes one orchestrator run.
type BatchStats struct {
	RunID     uuid.UUID
	Tenants   int
	Succeeded int
	Failed    int
	Expired   int
	Published int
	Skipped   int
	Duration  time.Duration
}
