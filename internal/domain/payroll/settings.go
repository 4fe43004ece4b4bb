package payroll

import (
	"context"
	"strings"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalaryComponents are the organisation wide payroll percentages
type SalaryComponents struct {
	BasicSalaryPercentage decimal.Decimal `json:"basic_salary_percentage"`
	HRAPercentage         decimal.Decimal `json:"hra_percentage"`
	EPFPercentage         decimal.Decimal `json:"epf_percentage"`
	ESICPercentage        decimal.Decimal `json:"esic_percentage"`
	ProfessionalTax       decimal.Decimal `json:"professional_tax"`
}

// DefaultSalaryComponents returns basic 50, HRA 20, EPF 12, ESIC 0.75 and PT 200
func DefaultSalaryComponents() SalaryComponents {
	return SalaryComponents{
		BasicSalaryPercentage: decimal.NewFromInt(50),
		HRAPercentage:         decimal.NewFromInt(20),
		EPFPercentage:         decimal.NewFromInt(12),
		ESICPercentage:        decimal.RequireFromString("0.75"),
		ProfessionalTax:       decimal.NewFromInt(200),
	}
}

// Validate checks every percentage lies in [0, 100] and the fixed tax is not negative
func (c SalaryComponents) Validate() error {
	pcts := map[string]decimal.Decimal{
		"basic salary": c.BasicSalaryPercentage,
		"HRA":          c.HRAPercentage,
		"EPF":          c.EPFPercentage,
		"ESIC":         c.ESICPercentage,
	}
	for name, p := range pcts {
		if p.IsNegative() || p.GreaterThan(hundred) {
			return shared.NewDomainError("INVALID_PERCENTAGE", name+" percentage must be between 0 and 100")
		}
	}
	if c.BasicSalaryPercentage.Add(c.HRAPercentage).GreaterThan(hundred) {
		return shared.NewDomainError("INVALID_PERCENTAGE", "Basic and HRA together cannot exceed 100%")
	}
	if c.ProfessionalTax.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Professional tax cannot be negative")
	}
	return nil
}

// CompanyProfile is the letterhead information printed on reports
type CompanyProfile struct {
	Name          string `json:"name"`
	Tagline       string `json:"tagline"`
	Address       string `json:"address"`
	Website       string `json:"website"`
	Email         string `json:"email"`
	HRName        string `json:"hr_name"`
	HRDesignation string `json:"hr_designation"`
}

// Normalize trims every field
func (p CompanyProfile) Normalize() CompanyProfile {
	return CompanyProfile{
		Name:          strings.TrimSpace(p.Name),
		Tagline:       strings.TrimSpace(p.Tagline),
		Address:       strings.TrimSpace(p.Address),
		Website:       strings.TrimSpace(p.Website),
		Email:         strings.TrimSpace(p.Email),
		HRName:        strings.TrimSpace(p.HRName),
		HRDesignation: strings.TrimSpace(p.HRDesignation),
	}
}

// SystemSettings is the singleton settings document
type SystemSettings struct {
	SalaryComponents SalaryComponents `json:"salary_components"`
	Company          CompanyProfile   `json:"company"`
	Version          int              `json:"version"`
}

// DefaultSystemSettings returns the settings used before an admin saves any
func DefaultSystemSettings(company CompanyProfile) *SystemSettings {
	return &SystemSettings{
		SalaryComponents: DefaultSalaryComponents(),
		Company:          company.Normalize(),
	}
}

// SettingsRepository persists the singleton settings
type SettingsRepository interface {
	// Get returns shared.ErrNotFound when nothing has been saved yet
	Get(ctx context.Context) (*SystemSettings, error)
	Save(ctx context.Context, s *SystemSettings) error
}
