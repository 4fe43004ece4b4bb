// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: BaseModel and AggregateModel
// - organization.go: units and departments
// - employee.go: employees (login accounts)
// - leave.go, attendance.go, holiday.go: time off and presence
// - settings.go, challan.go: payroll settings document and uploaded challans
//
// DATE columns are read back through civilDate so every domain date is UTC midnight.
package models
