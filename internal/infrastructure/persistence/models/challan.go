package models

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/google/uuid"
)

// ChallanModel is the persistence model for uploaded challan metadata
type ChallanModel struct {
	BaseModel
	Kind         payroll.ChallanKind `gorm:"type:varchar(20);not null;index:idx_challans_period"`
	PeriodYear   int                 `gorm:"not null;index:idx_challans_period"`
	PeriodMonth  int                 `gorm:"not null;index:idx_challans_period"`
	ObjectKey    string              `gorm:"type:varchar(500);not null;uniqueIndex"`
	FileName     string              `gorm:"type:varchar(255);not null"`
	ContentType  string              `gorm:"type:varchar(100);not null;default:''"`
	Size         int64               `gorm:"not null"`
	UploadedByID *uuid.UUID          `gorm:"type:uuid"`
	UploadedAt   time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ChallanModel) TableName() string {
	return "challans"
}

// ToDomain converts the persistence model to a domain Challan
func (m *ChallanModel) ToDomain() *payroll.Challan {
	c := &payroll.Challan{
		BaseEntity:  m.BaseModel.ToDomain(),
		Kind:        m.Kind,
		PeriodYear:  m.PeriodYear,
		PeriodMonth: time.Month(m.PeriodMonth),
		ObjectKey:   m.ObjectKey,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Size:        m.Size,
		UploadedAt:  m.UploadedAt,
	}
	if m.UploadedByID != nil {
		c.UploadedByID = *m.UploadedByID
	}
	return c
}

// ChallanModelFromDomain creates a new persistence model from a domain Challan
func ChallanModelFromDomain(c *payroll.Challan) *ChallanModel {
	m := &ChallanModel{
		Kind:        c.Kind,
		PeriodYear:  c.PeriodYear,
		PeriodMonth: int(c.PeriodMonth),
		ObjectKey:   c.ObjectKey,
		FileName:    c.FileName,
		ContentType: c.ContentType,
		Size:        c.Size,
		UploadedAt:  c.UploadedAt,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	if c.UploadedByID != uuid.Nil {
		id := c.UploadedByID
		m.UploadedByID = &id
	}
	return m
}
