package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDatabase creates a Database instance with a mocked SQL connection
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return &Database{DB: gormDB}, mock, mockDB
}

func TestConnectionStats_Struct(t *testing.T) {
	stats := ConnectionStats{
		MaxOpenConnections: 25,
		OpenConnections:    10,
		InUse:              6,
		Idle:               4,
		WaitDuration:       5 * time.Second,
	}
	assert.Equal(t, stats.OpenConnections, stats.InUse+stats.Idle)
	assert.Equal(t, 5*time.Second, stats.WaitDuration)
}

// TestDatabase_Stats tests the Stats method
func TestDatabase_Stats(t *testing.T) {
	db, _, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	stats, err := db.Stats()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, stats.OpenConnections, 0)
	assert.GreaterOrEqual(t, stats.WaitCount, int64(0))
}

// TestDatabase_Ping tests Ping and PingContext
func TestDatabase_Ping(t *testing.T) {
	t.Run("successful ping", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectPing()
		assert.NoError(t, db.Ping())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping with context", func(t *testing.T) {
		db, _, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		assert.NoError(t, db.PingContext(context.Background()))
	})
}

// TestDatabase_Close tests the Close method
func TestDatabase_Close(t *testing.T) {
	db, mock, _ := newMockDatabase(t)

	mock.ExpectClose()
	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestDatabase_Transaction tests the Transaction method
func TestDatabase_Transaction(t *testing.T) {
	t.Run("successful transaction", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		type TestModel struct {
			ID   uint
			Name string
		}

		mock.ExpectBegin()
		// PostgreSQL GORM uses Query with RETURNING clause instead of Exec
		mock.ExpectQuery(`INSERT INTO "test_models"`).
			WithArgs("test").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&TestModel{Name: "test"}).Error
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transaction rollback on error", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := db.Transaction(func(tx *gorm.DB) error {
			return assert.AnError
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEmployeeRepository_NextSequencePostgres(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT nextval\('employee_code_seq'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(42))

	next, err := NewGormEmployeeRepository(db.DB).NextSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRow_NoRowsIsNotFound(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	mock.ExpectExec(`UPDATE "units" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	unit, err := organization.NewUnit("PUNE", "Pune Plant")
	require.NoError(t, err)
	err = NewGormUnitRepository(db.DB).Update(context.Background(), unit)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
