package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
)

// SettingsSingletonID is the only row id of system_settings
const SettingsSingletonID = 1

// SystemSettingsModel stores the settings document as JSON in one row
type SystemSettingsModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false"`
	DataJSON  string    `gorm:"column:data;type:jsonb;not null"`
	Version   int       `gorm:"not null;default:1"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SystemSettingsModel) TableName() string {
	return "system_settings"
}

// settingsDocument is the JSON shape of the data column
type settingsDocument struct {
	SalaryComponents payroll.SalaryComponents `json:"salary_components"`
	Company          payroll.CompanyProfile   `json:"company"`
}

// ToDomain decodes the stored document
func (m *SystemSettingsModel) ToDomain() (*payroll.SystemSettings, error) {
	var doc settingsDocument
	if err := json.Unmarshal([]byte(m.DataJSON), &doc); err != nil {
		return nil, fmt.Errorf("decode system settings: %w", err)
	}
	return &payroll.SystemSettings{
		SalaryComponents: doc.SalaryComponents,
		Company:          doc.Company,
		Version:          m.Version,
	}, nil
}

// SystemSettingsModelFromDomain encodes s into the singleton row
func SystemSettingsModelFromDomain(s *payroll.SystemSettings) (*SystemSettingsModel, error) {
	data, err := json.Marshal(settingsDocument{
		SalaryComponents: s.SalaryComponents,
		Company:          s.Company,
	})
	if err != nil {
		return nil, fmt.Errorf("encode system settings: %w", err)
	}
	return &SystemSettingsModel{
		ID:       SettingsSingletonID,
		DataJSON: string(data),
		Version:  s.Version,
	}, nil
}
