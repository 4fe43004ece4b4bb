package models

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel extends BaseModel with the aggregate version
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToAggregateRoot converts AggregateModel back to a domain BaseAggregateRoot
func (m *AggregateModel) ToAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.BaseModel.ToDomain(),
		Version:    m.Version,
	}
}

// civilDate normalizes a DATE column value read back from the driver.
// Drivers return DATE as midnight in varying locations; the domain
// expects UTC midnight of the same calendar date.
func civilDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return shared.DateOf(t)
}
