package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	settingsCacheKey = "settings:system"
	settingsCacheTTL = 10 * time.Minute
)

// PayrollService exposes the statutory calculators and the system settings
type PayrollService struct {
	settingsRepo payroll.SettingsRepository
	cache        shared.Cache
	company      payroll.CompanyProfile
	logger       *zap.Logger
	now          func() time.Time
}

// NewPayrollService creates a new payroll service. company is the letterhead
// used until an admin saves settings; cache may be nil.
func NewPayrollService(settingsRepo payroll.SettingsRepository, cache shared.Cache, company payroll.CompanyProfile, logger *zap.Logger) *PayrollService {
	return &PayrollService{
		settingsRepo: settingsRepo,
		cache:        cache,
		company:      company.Normalize(),
		logger:       logger,
		now:          time.Now,
	}
}

// Settings returns the stored settings, or the defaults when none were saved
func (s *PayrollService) Settings(ctx context.Context) (*payroll.SystemSettings, error) {
	if cached, ok := s.cachedSettings(ctx); ok {
		return cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		settings = payroll.DefaultSystemSettings(s.company)
	case err != nil:
		s.logger.Error("Failed to load system settings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load system settings")
	}
	s.storeCache(ctx, settings)
	return settings, nil
}

// UpdateSettings validates and saves new settings
func (s *PayrollService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*payroll.SystemSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		current = payroll.DefaultSystemSettings(s.company)
	case err != nil:
		s.logger.Error("Failed to load system settings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update system settings")
	}
	if input.Version != 0 && input.Version != current.Version {
		return nil, shared.NewDomainError("CONCURRENCY_CONFLICT", "Settings were changed by someone else, reload and try again")
	}

	next := *current
	if input.SalaryComponents != nil {
		if err := input.SalaryComponents.Validate(); err != nil {
			return nil, err
		}
		next.SalaryComponents = *input.SalaryComponents
	}
	if input.Company != nil {
		company := input.Company.Normalize()
		if company.Name == "" {
			return nil, shared.NewDomainError("INVALID_COMPANY", "Company name cannot be empty")
		}
		next.Company = company
	}

	if err := s.settingsRepo.Save(ctx, &next); err != nil {
		s.logger.Error("Failed to save system settings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update system settings")
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
			s.logger.Warn("Failed to invalidate settings cache", zap.Error(err))
		}
	}
	s.logger.Info("System settings updated", zap.Int("version", next.Version))
	return &next, nil
}

// Company returns the letterhead printed on reports
func (s *PayrollService) Company(ctx context.Context) (payroll.CompanyProfile, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return payroll.CompanyProfile{}, err
	}
	company := settings.Company
	if company.Name == "" {
		company = s.company
	}
	return company, nil
}

// CalculateCTC splits a cost to company into its monthly breakup
func (s *PayrollService) CalculateCTC(_ context.Context, input CalculateCTCInput) (*payroll.CTCBreakup, error) {
	if !input.CTC.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "CTC must be greater than zero")
	}
	regime, err := payroll.ParseRegime(input.Regime)
	if err != nil {
		return nil, shared.WrapDomainError("INVALID_REGIME", "Tax regime must be new or old", err)
	}
	month := time.Month(input.Month)
	if input.Month == 0 {
		month = s.now().Month()
	}
	if month < time.January || month > time.December {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}

	in := payroll.CTCInput{
		CTC:         input.CTC,
		Yearly:      input.Yearly,
		Regime:      regime,
		Percentages: payroll.DefaultPercentages(),
		Options:     payroll.DefaultOptions(),
		Month:       month,
	}
	if input.Percentages != nil {
		in.Percentages = *input.Percentages
	}
	if input.Options != nil {
		in.Options = *input.Options
	}
	breakup := payroll.CalculateCTC(in)
	return &breakup, nil
}

// CompareTax computes the annual tax under both regimes for an annual income
func (s *PayrollService) CompareTax(_ context.Context, annualIncome, monthlyPF decimal.Decimal) (*TaxComparison, error) {
	if annualIncome.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Income cannot be negative")
	}
	cmp := &TaxComparison{
		AnnualIncome: annualIncome,
		New:          payroll.IncomeTax(annualIncome, payroll.RegimeNew, monthlyPF),
		Old:          payroll.IncomeTax(annualIncome, payroll.RegimeOld, monthlyPF),
		Recommended:  payroll.RegimeNew,
	}
	if cmp.Old.AnnualTax.LessThan(cmp.New.AnnualTax) {
		cmp.Recommended = payroll.RegimeOld
	}
	cmp.Savings = cmp.New.AnnualTax.Sub(cmp.Old.AnnualTax).Abs()
	return cmp, nil
}

// Structure returns the salary structure, priced for monthlyCTC when given
func (s *PayrollService) Structure(ctx context.Context, monthlyCTC *decimal.Decimal) (*payroll.Structure, error) {
	if monthlyCTC != nil && monthlyCTC.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "CTC cannot be negative")
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	st := payroll.BuildSalaryStructure(settings.SalaryComponents, monthlyCTC)
	return &st, nil
}

func (s *PayrollService) cachedSettings(ctx context.Context) (*payroll.SystemSettings, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, settingsCacheKey)
	if err != nil {
		if !errors.Is(err, shared.ErrCacheMiss) {
			s.logger.Warn("Settings cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var settings payroll.SystemSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("Discarding unreadable settings cache entry", zap.Error(err))
		return nil, false
	}
	return &settings, true
}

func (s *PayrollService) storeCache(ctx context.Context, settings *payroll.SystemSettings) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, settingsCacheKey, raw, settingsCacheTTL); err != nil {
		s.logger.Warn("Settings cache write failed", zap.Error(err))
	}
}
