package service

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"post_syncer/internal/config"
	"post_syncer/internal/domain"
	"post_syncer/internal/source/meta"
)

// BatchService drives one syndication run: it loads the eligible tenants,
// fans one task per tenant out onto a bounded worker pool, and isolates
// per-tenant failures so a broken tenant never affects its siblings.
type BatchService struct {
	tenants   TenantDirectory
	records   SyncRecordStore
	source    SourceClient
	targets   TargetClientFactory
	txManager TransactionManager
	notifier  Notifier
	events    EventPublisher
	logger    *slog.Logger
	config    config.BatchConfig
	allowed   map[domain.MediaKind]bool
}

func NewBatchService(
	tenants TenantDirectory,
	records SyncRecordStore,
	source SourceClient,
	targets TargetClientFactory,
	txManager TransactionManager,
	notifier Notifier,
	events EventPublisher,
	logger *slog.Logger,
	cfg config.BatchConfig,
) *BatchService {
	return &BatchService{
		tenants:   tenants,
		records:   records,
		source:    source,
		targets:   targets,
		txManager: txManager,
		notifier:  notifier,
		events:    events,
		logger:    logger.With("component", "batch"),
		config:    cfg,
		allowed:   cfg.AllowedKindSet(),
	}
}

// Run executes one batch and blocks until every tenant task has drained.
// Overlapping runs are safe: the (tenant, media) dedup key makes redundant
// work harmless, so no global lock is taken.
func (s *BatchService) Run(ctx context.Context) *domain.BatchStats {
	return s.run(ctx, uuid.New())
}

// RunAsync launches a batch on a detached context and returns its run id
// immediately. Completion is observed through records, events, and alerts.
func (s *BatchService) RunAsync() uuid.UUID {
	runID := uuid.New()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.config.RunTimeout)
		defer cancel()
		s.run(ctx, runID)
	}()
	return runID
}

func (s *BatchService) run(ctx context.Context, runID uuid.UUID) *domain.BatchStats {
	startTime := time.Now()
	logger := s.logger.With("run_id", runID.String())

	stats := &domain.BatchStats{RunID: runID}

	tenants, err := s.tenants.ListEligible(ctx)
	if err != nil {
		logger.Error("failed to load tenants", "error", err)
		s.notifier.SendAlert(ctx, fmt.Sprintf("batch %s: failed to load tenants: %v", runID, err))
		return stats
	}
	stats.Tenants = len(tenants)

	logger.Info("starting batch", "tenants", len(tenants), "workers", s.config.Workers)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, s.config.Workers)
	)
	for i := range tenants {
		tenant := tenants[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			published, skipped, err := s.syncTenant(ctx, &tenant)

			expired := err != nil && meta.IsAuthorizationExpired(err)
			switch {
			case err == nil:
			case expired:
				s.markExpired(ctx, &tenant, err)
			default:
				s.alertFailure(ctx, &tenant, err)
			}

			mu.Lock()
			defer mu.Unlock()
			stats.Published += published
			stats.Skipped += skipped
			switch {
			case err == nil:
				stats.Succeeded++
			case expired:
				stats.Expired++
			default:
				stats.Failed++
			}
		}()
	}
	wg.Wait()

	stats.Duration = time.Since(startTime)

	if err := s.events.PublishSummary(ctx, stats); err != nil {
		logger.Warn("failed to publish batch summary", "error", err)
	}
	s.notifier.SendMessage(ctx, fmt.Sprintf(
		"batch %s finished: tenants=%d succeeded=%d failed=%d expired=%d published=%d",
		runID, stats.Tenants, stats.Succeeded, stats.Failed, stats.Expired, stats.Published,
	))

	logger.Info("batch completed",
		"tenants", stats.Tenants,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"expired", stats.Expired,
		"published", stats.Published,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)

	return stats
}

// syncTenant runs one tenant's fetch-decide-publish-record cycle inside its
// own transaction. A panic inside the task is converted into an error so it
// cannot take the whole batch down.
func (s *BatchService) syncTenant(ctx context.Context, tenant *domain.Tenant) (published, skipped int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in tenant task: %v\n%s", r, debug.Stack())
		}
	}()

	logger := s.logger.With("tenant_id", tenant.ID, "tenant", tenant.Name)
	logger.Info("tenant sync started")

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		target := s.targets.ForTenant(tenant)
		if err := target.CheckReachable(ctx); err != nil {
			return fmt.Errorf("target unreachable: %w", err)
		}

		prior, err := s.records.FindByTenant(txCtx, tenant.ID)
		if err != nil {
			return fmt.Errorf("load sync records: %w", err)
		}

		media, err := s.source.FetchMedia(ctx, tenant.Token(), tenant.AccountID())
		if err != nil {
			return fmt.Errorf("fetch media: %w", err)
		}

		targets := SelectTargets(media, prior, tenant.StartDate, s.allowed)
		logger.Info("selected sync targets", "fetched", len(media), "targets", len(targets))

		results := target.Publish(ctx, targets)
		for _, result := range results {
			record := publishedRecord(tenant.ID, result)
			if err := s.records.Add(txCtx, record); err != nil {
				return fmt.Errorf("save sync record: %w", err)
			}
			if err := s.events.PublishResult(ctx, tenant, result); err != nil {
				logger.Warn("failed to publish sync event", "media_id", result.MediaID, "error", err)
			}
		}
		published = len(results)

		for _, m := range SelectSkipped(media, prior, targets) {
			if err := s.records.Add(txCtx, skipRecord(tenant.ID, m)); err != nil {
				return fmt.Errorf("save skip record: %w", err)
			}
			skipped++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	logger.Info("tenant sync finished", "published", published, "skipped", skipped)
	return published, skipped, nil
}

// markExpired flips the tenant's authorization state in its own transaction
// and notifies support. An expired token is a tenant-action item, not an
// engineering alert.
func (s *BatchService) markExpired(ctx context.Context, tenant *domain.Tenant, cause error) {
	s.logger.Warn("source authorization expired", "tenant", tenant.Name, "error", cause)
	if err := s.tenants.UpdateTokenStatus(ctx, tenant.ID, domain.TokenExpired); err != nil {
		s.notifier.SendAlert(ctx, fmt.Sprintf(
			"failed to mark tenant %s expired: %v (original: %v)", tenant.Name, err, cause,
		))
		return
	}
	s.notifier.SendMessage(ctx, fmt.Sprintf(
		"tenant %s needs to re-authorize the source account (token expired)", tenant.Name,
	))
}

func (s *BatchService) alertFailure(ctx context.Context, tenant *domain.Tenant, cause error) {
	s.logger.Error("tenant sync failed", "tenant", tenant.Name, "error", cause)
	s.notifier.SendAlert(ctx, fmt.Sprintf(
		"tenant %s sync failed: %v\n%s", tenant.Name, cause, debug.Stack(),
	))
}

func publishedRecord(tenantID int64, result domain.PublishResult) *domain.SyncRecord {
	ts := result.Timestamp
	mediaURL := result.MediaURL
	permalink := result.Permalink
	link := result.WordpressLink
	return &domain.SyncRecord{
		TenantID:      tenantID,
		MediaID:       result.MediaID,
		Timestamp:     &ts,
		MediaURL:      &mediaURL,
		Permalink:     &permalink,
		WordpressLink: &link,
	}
}

// skipRecord marks a media as evaluated without a resulting post.
func skipRecord(tenantID int64, m domain.Media) *domain.SyncRecord {
	ts := m.Timestamp
	record := &domain.SyncRecord{
		TenantID: tenantID,
		MediaID:  m.ID,
	}
	if !ts.IsZero() {
		record.Timestamp = &ts
	}
	if m.MediaURL != "" {
		record.MediaURL = &m.MediaURL
	}
	if m.Permalink != "" {
		record.Permalink = &m.Permalink
	}
	return record
}
