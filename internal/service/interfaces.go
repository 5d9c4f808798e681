package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"post_syncer/internal/domain"
)

// TenantDirectory yields tenants and maintains their authorization state.
type TenantDirectory interface {
	ListEligible(ctx context.Context) ([]domain.Tenant, error)
	UpdateTokenStatus(ctx context.Context, tenantID int64, status domain.TokenStatus) error
}

// SyncRecordStore persists one row per evaluated media per tenant.
type SyncRecordStore interface {
	FindByTenant(ctx context.Context, tenantID int64) ([]domain.SyncRecord, error)
	Add(ctx context.Context, record *domain.SyncRecord) error
}

// SourceClient fetches a tenant's published media from the source platform.
type SourceClient interface {
	FetchMedia(ctx context.Context, token, accountID string) ([]domain.Media, error)
}

// TargetPublisher publishes media onto one tenant's target site.
type TargetPublisher interface {
	Publish(ctx context.Context, items []domain.Media) []domain.PublishResult
	CheckReachable(ctx context.Context) error
}

// TargetClientFactory builds a per-tenant publisher; the signing key depends
// on the tenant's secret phrase and site domain.
type TargetClientFactory interface {
	ForTenant(tenant *domain.Tenant) TargetPublisher
}

// TransactionManager scopes a unit of work to one tenant task.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier is the fire-and-forget alerting collaborator. Implementations
// must swallow their own delivery failures.
type Notifier interface {
	SendAlert(ctx context.Context, text string)
	SendMessage(ctx context.Context, text string)
}

// EventPublisher emits sync events for downstream consumers.
type EventPublisher interface {
	PublishResult(ctx context.Context, tenant *domain.Tenant, result domain.PublishResult) error
	PublishSummary(ctx context.Context, stats *domain.BatchStats) error
	Close() error
}
