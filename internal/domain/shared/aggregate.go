package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides identity and audit timestamps
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *BaseEntity) GetID() uuid.UUID        { return e.ID }
func (e *BaseEntity) GetCreatedAt() time.Time { return e.CreatedAt }
func (e *BaseEntity) GetUpdatedAt() time.Time { return e.UpdatedAt }

// Touch bumps the update timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot adds an optimistic-locking version to BaseEntity
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number and touches UpdatedAt
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.Touch()
}

// NewBaseAggregateRoot creates a new base aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
