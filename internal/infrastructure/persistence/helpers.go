package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// createRow inserts row, reporting unique violations as shared.ErrAlreadyExists
func createRow(ctx context.Context, db *gorm.DB, row any) error {
	err := db.WithContext(ctx).Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// updateRow writes every column of row to the record with id, including zero
// values. Returns shared.ErrNotFound when no row matched.
func updateRow(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, row any) error {
	result := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// deleteRow hard-deletes the record with id
func deleteRow(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// likePattern lowercases q and wraps it for a LIKE match, escaping wildcards
func likePattern(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	q = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(q)
	return "%" + q + "%"
}
