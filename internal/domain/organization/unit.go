package organization

import (
	"regexp"
	"strings"

	"github.com/asnhr/hrms/internal/domain/shared"
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]*$`)

// Unit is a physical establishment (factory, branch, office) that
// groups departments for statutory registers.
type Unit struct {
	shared.BaseAggregateRoot
	Code     string
	Name     string
	Address  string
	IsActive bool
}

// NewUnit creates an active unit
func NewUnit(code, name string) (*Unit, error) {
	code = normalizeCode(code)
	if err := validateCode("UNIT", code); err != nil {
		return nil, err
	}
	if err := validateName("UNIT", name); err != nil {
		return nil, err
	}
	return &Unit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              strings.TrimSpace(name),
		IsActive:          true,
	}, nil
}

// Update replaces the unit's editable fields
func (u *Unit) Update(name, address string) error {
	if err := validateName("UNIT", name); err != nil {
		return err
	}
	u.Name = strings.TrimSpace(name)
	u.Address = strings.TrimSpace(address)
	u.IncrementVersion()
	return nil
}

// SetActive toggles the unit status
func (u *Unit) SetActive(active bool) {
	if u.IsActive == active {
		return
	}
	u.IsActive = active
	u.IncrementVersion()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateCode(kind, code string) error {
	errCode := "INVALID_" + kind + "_CODE"
	if code == "" {
		return shared.NewDomainError(errCode, "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError(errCode, "Code cannot exceed 50 characters")
	}
	if !codeRegex.MatchString(code) {
		return shared.NewDomainError(errCode, "Code can only contain letters, numbers, underscores, and hyphens")
	}
	return nil
}

func validateName(kind, name string) error {
	errCode := "INVALID_" + kind + "_NAME"
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(errCode, "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError(errCode, "Name cannot exceed 200 characters")
	}
	return nil
}
