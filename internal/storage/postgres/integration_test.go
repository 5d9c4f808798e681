//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"post_syncer/internal/domain"
	"post_syncer/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_tenants.up.sql"),
			filepath.Join(migrationsPath, "002_create_sync_records.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_records")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tenants")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertTenant(name string, status domain.TokenStatus, token *string) int64 {
	var id int64
	err := s.db.GetContext(s.ctx, &id, `
		INSERT INTO tenants (name, wordpress_url, facebook_token, token_status, instagram_account_id, secret_phrase)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, name, name+".example.com", token, status, "ig-"+name, "phrase-"+name)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestTenantStore_ListEligible() {
	store := NewTenantStore(s.db)

	connected := s.insertTenant("connected", domain.TokenConnected, utils.Ptr("token-1"))
	s.insertTenant("expired", domain.TokenExpired, utils.Ptr("token-2"))
	s.insertTenant("not-connected", domain.TokenNotConnected, nil)
	s.insertTenant("connected-no-token", domain.TokenConnected, nil)

	tenants, err := store.ListEligible(s.ctx)
	s.NoError(err)
	s.Len(tenants, 1)
	s.Equal(connected, tenants[0].ID)
	s.Equal("connected", tenants[0].Name)
	s.Equal("token-1", tenants[0].Token())
	s.Equal("ig-connected", tenants[0].AccountID())
}

func (s *PostgresIntegrationSuite) TestTenantStore_ListEligible_OrderedByID() {
	store := NewTenantStore(s.db)

	first := s.insertTenant("first", domain.TokenConnected, utils.Ptr("t1"))
	second := s.insertTenant("second", domain.TokenConnected, utils.Ptr("t2"))

	tenants, err := store.ListEligible(s.ctx)
	s.NoError(err)
	s.Require().Len(tenants, 2)
	s.Equal(first, tenants[0].ID)
	s.Equal(second, tenants[1].ID)
}

func (s *PostgresIntegrationSuite) TestTenantStore_UpdateTokenStatus() {
	store := NewTenantStore(s.db)
	id := s.insertTenant("flipper", domain.TokenConnected, utils.Ptr("token"))

	err := store.UpdateTokenStatus(s.ctx, id, domain.TokenExpired)
	s.NoError(err)

	var status int
	err = s.db.GetContext(s.ctx, &status, "SELECT token_status FROM tenants WHERE id = $1", id)
	s.NoError(err)
	s.Equal(int(domain.TokenExpired), status)

	tenants, err := store.ListEligible(s.ctx)
	s.NoError(err)
	s.Empty(tenants)
}

func (s *PostgresIntegrationSuite) TestSyncRecordStore_AddAndFind() {
	store := NewSyncRecordStore(s.db)
	tenantID := s.insertTenant("writer", domain.TokenConnected, utils.Ptr("token"))

	now := time.Now().Truncate(time.Microsecond)
	record := &domain.SyncRecord{
		TenantID:      tenantID,
		MediaID:       "media-1",
		Timestamp:     &now,
		MediaURL:      utils.Ptr("https://cdn/1.jpg"),
		Permalink:     utils.Ptr("https://source/p/1"),
		WordpressLink: utils.Ptr("https://writer.example.com/?p=1"),
	}
	s.NoError(store.Add(s.ctx, record))

	records, err := store.FindByTenant(s.ctx, tenantID)
	s.NoError(err)
	s.Require().Len(records, 1)
	s.Equal("media-1", records[0].MediaID)
	s.Require().NotNil(records[0].WordpressLink)
	s.Equal("https://writer.example.com/?p=1", *records[0].WordpressLink)
	s.WithinDuration(now, *records[0].Timestamp, time.Second)
}

func (s *PostgresIntegrationSuite) TestSyncRecordStore_DuplicateIsIgnored() {
	store := NewSyncRecordStore(s.db)
	tenantID := s.insertTenant("dedup", domain.TokenConnected, utils.Ptr("token"))

	record := &domain.SyncRecord{
		TenantID:      tenantID,
		MediaID:       "media-1",
		WordpressLink: utils.Ptr("https://dedup.example.com/?p=1"),
	}
	s.NoError(store.Add(s.ctx, record))

	// Second insert for the same (tenant, media) pair is a silent no-op.
	record.WordpressLink = utils.Ptr("https://dedup.example.com/?p=999")
	s.NoError(store.Add(s.ctx, record))

	records, err := store.FindByTenant(s.ctx, tenantID)
	s.NoError(err)
	s.Require().Len(records, 1)
	s.Equal("https://dedup.example.com/?p=1", *records[0].WordpressLink)
}

func (s *PostgresIntegrationSuite) TestSyncRecordStore_SameMediaDifferentTenants() {
	store := NewSyncRecordStore(s.db)
	tenantA := s.insertTenant("tenant-a", domain.TokenConnected, utils.Ptr("ta"))
	tenantB := s.insertTenant("tenant-b", domain.TokenConnected, utils.Ptr("tb"))

	s.NoError(store.Add(s.ctx, &domain.SyncRecord{TenantID: tenantA, MediaID: "shared"}))
	s.NoError(store.Add(s.ctx, &domain.SyncRecord{TenantID: tenantB, MediaID: "shared"}))

	recordsA, err := store.FindByTenant(s.ctx, tenantA)
	s.NoError(err)
	s.Len(recordsA, 1)

	recordsB, err := store.FindByTenant(s.ctx, tenantB)
	s.NoError(err)
	s.Len(recordsB, 1)
}

func (s *PostgresIntegrationSuite) TestSyncRecordStore_SkipRecord() {
	store := NewSyncRecordStore(s.db)
	tenantID := s.insertTenant("skipper", domain.TokenConnected, utils.Ptr("token"))

	s.NoError(store.Add(s.ctx, &domain.SyncRecord{
		TenantID: tenantID,
		MediaID:  "filtered-out",
		MediaURL: utils.Ptr("https://cdn/old.jpg"),
	}))

	records, err := store.FindByTenant(s.ctx, tenantID)
	s.NoError(err)
	s.Require().Len(records, 1)
	s.Nil(records[0].WordpressLink)
	s.Nil(records[0].Timestamp)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewSyncRecordStore(s.db)
	tenantID := s.insertTenant("committer", domain.TokenConnected, utils.Ptr("token"))

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.Add(ctx, &domain.SyncRecord{TenantID: tenantID, MediaID: "in-tx"})
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM sync_records WHERE tenant_id = $1", tenantID)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewSyncRecordStore(s.db)
	tenantID := s.insertTenant("roller", domain.TokenConnected, utils.Ptr("token"))

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.Add(ctx, &domain.SyncRecord{TenantID: tenantID, MediaID: "doomed"}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM sync_records WHERE tenant_id = $1", tenantID)
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_ReadsSeeUncommittedWrites() {
	tm := NewTransactionManager(s.db)
	store := NewSyncRecordStore(s.db)
	tenantID := s.insertTenant("reader", domain.TokenConnected, utils.Ptr("token"))

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.Add(ctx, &domain.SyncRecord{TenantID: tenantID, MediaID: "visible"}); err != nil {
			return err
		}
		records, err := store.FindByTenant(ctx, tenantID)
		if err != nil {
			return err
		}
		s.Len(records, 1)
		return nil
	})
	s.NoError(err)
}
