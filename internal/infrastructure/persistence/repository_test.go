package persistence

import (
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with every HR table
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// each :memory: connection is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.UnitModel{},
		&models.DepartmentModel{},
		&models.EmployeeModel{},
		&models.LeaveRequestModel{},
		&models.AttendanceModel{},
		&models.HolidayModel{},
		&models.SystemSettingsModel{},
		&models.ChallanModel{},
	))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testEmployee builds an employee without paying for bcrypt
func testEmployee(code, username, first, last string) *employee.Employee {
	return &employee.Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeCode:      code,
		Username:          username,
		PasswordHash:      "$2a$04$placeholder",
		FirstName:         first,
		LastName:          last,
		Role:              employee.RoleEmployee,
		Salary:            decimal.NewFromInt(30000),
		JoinDate:          date(2024, time.June, 10),
		IsActive:          true,
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
