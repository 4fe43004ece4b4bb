package models

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/holiday"
)

// HolidayModel is the persistence model for a Holiday
type HolidayModel struct {
	AggregateModel
	Name        string    `gorm:"type:varchar(200);not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Description string    `gorm:"type:text;not null;default:''"`
	IsOptional  bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (HolidayModel) TableName() string {
	return "holidays"
}

// ToDomain converts the persistence model to a domain Holiday
func (m *HolidayModel) ToDomain() *holiday.Holiday {
	return &holiday.Holiday{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		Date:              civilDate(m.Date),
		Description:       m.Description,
		IsOptional:        m.IsOptional,
	}
}

// HolidayModelFromDomain creates a new persistence model from a domain Holiday
func HolidayModelFromDomain(h *holiday.Holiday) *HolidayModel {
	m := &HolidayModel{
		Name:        h.Name,
		Date:        civilDate(h.Date),
		Description: h.Description,
		IsOptional:  h.IsOptional,
	}
	m.FromDomainAggregateRoot(h.BaseAggregateRoot)
	return m
}
