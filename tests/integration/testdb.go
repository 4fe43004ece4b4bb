// Package integration runs the HR repositories and HTTP API against a real
// PostgreSQL started with testcontainers.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/infrastructure/migration"
	"github.com/asnhr/hrms/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// Shared container for all tests in the package
	sharedContainer    testcontainers.Container
	sharedContainerMu  sync.Mutex
	sharedContainerDSN string
)

// TestDB represents a test database connection
type TestDB struct {
	DB        *gorm.DB
	SqlDB     *sql.DB
	Container testcontainers.Container
	DSN       string
	t         *testing.T
}

func startPostgres(t *testing.T, database string) (testcontainers.Container, string) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase(database),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("hrms123"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")
	return container, dsn
}

// NewTestDB creates a fresh PostgreSQL container with the schema applied.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	container, dsn := startPostgres(t, "hrms_test")
	db, sqlDB := connectToDatabase(t, dsn)
	runMigrations(t, sqlDB)

	testDB := &TestDB{
		DB:        db,
		SqlDB:     sqlDB,
		Container: container,
		DSN:       dsn,
		t:         t,
	}
	t.Cleanup(testDB.Close)
	return testDB
}

// NewSharedTestDB returns a connection to a container shared by the package.
// Callers clean up after themselves with CleanTables.
func NewSharedTestDB(t *testing.T) *TestDB {
	t.Helper()

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer == nil {
		container, dsn := startPostgres(t, "hrms_shared_test")
		sharedContainer = container
		sharedContainerDSN = dsn

		_, sqlDB := connectToDatabase(t, dsn)
		runMigrations(t, sqlDB)
		sqlDB.Close()
	}

	db, sqlDB := connectToDatabase(t, sharedContainerDSN)
	testDB := &TestDB{
		DB:        db,
		SqlDB:     sqlDB,
		Container: sharedContainer,
		DSN:       sharedContainerDSN,
		t:         t,
	}
	t.Cleanup(func() {
		if testDB.SqlDB != nil {
			testDB.SqlDB.Close()
		}
	})
	return testDB
}

// Close closes the database connection and terminates a non-shared container
func (tdb *TestDB) Close() {
	if tdb.SqlDB != nil {
		tdb.SqlDB.Close()
	}
	if tdb.Container != nil && tdb.Container != sharedContainer {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			tdb.t.Logf("Warning: Failed to terminate container: %v", err)
		}
	}
}

// CleanTables truncates every table except the migration bookkeeping
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "Failed to get table names")

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			tdb.t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}

// connectToDatabase opens GORM with the same error translation as the server
func connectToDatabase(t *testing.T, dsn string) (*gorm.DB, *sql.DB) {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), gormConfig)
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err, "Failed to get underlying SQL DB")

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, sqlDB
}

// runMigrations applies the embedded schema migrations
func runMigrations(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	m, err := migration.New(sqlDB, migrations.FS, zap.NewNop())
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, m.Up(), "Failed to run migrations")
}
