package models

import (
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/google/uuid"
)

// UnitModel is the persistence model for the Unit domain entity
type UnitModel struct {
	AggregateModel
	Code     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name     string `gorm:"type:varchar(200);not null"`
	Address  string `gorm:"type:text;not null;default:''"`
	IsActive bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit
func (m *UnitModel) ToDomain() *organization.Unit {
	return &organization.Unit{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Address:           m.Address,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Unit
func (m *UnitModel) FromDomain(u *organization.Unit) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Code = u.Code
	m.Name = u.Name
	m.Address = u.Address
	m.IsActive = u.IsActive
}

// UnitModelFromDomain creates a new persistence model from a domain Unit
func UnitModelFromDomain(u *organization.Unit) *UnitModel {
	m := &UnitModel{}
	m.FromDomain(u)
	return m
}

// DepartmentModel is the persistence model for the Department domain entity
type DepartmentModel struct {
	AggregateModel
	Code        string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text;not null;default:''"`
	UnitID      *uuid.UUID `gorm:"type:uuid;index"`
	IsActive    bool       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department
func (m *DepartmentModel) ToDomain() *organization.Department {
	return &organization.Department{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Description:       m.Description,
		UnitID:            m.UnitID,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Department
func (m *DepartmentModel) FromDomain(d *organization.Department) {
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	m.Code = d.Code
	m.Name = d.Name
	m.Description = d.Description
	m.UnitID = d.UnitID
	m.IsActive = d.IsActive
}

// DepartmentModelFromDomain creates a new persistence model from a domain Department
func DepartmentModelFromDomain(d *organization.Department) *DepartmentModel {
	m := &DepartmentModel{}
	m.FromDomain(d)
	return m
}
