package employee

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Role is the access role of an employee account
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHR        Role = "hr"
	RoleManager   Role = "manager"
	RoleEmployee  Role = "employee"
	RoleDeveloper Role = "developer"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee, RoleDeveloper:
		return true
	}
	return false
}

// CanApproveLeave reports whether the role may decide leave requests
func (r Role) CanApproveLeave() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleManager
}

// CanManagePeople reports whether the role may create and edit employee records
func (r Role) CanManagePeople() bool {
	return r == RoleAdmin || r == RoleHR
}

const bcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.@]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Employee is the aggregate root for a person on the payroll. Every
// employee is also a login account.
type Employee struct {
	shared.BaseAggregateRoot
	EmployeeCode string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	DepartmentID *uuid.UUID
	Role         Role
	Salary       decimal.Decimal // monthly CTC
	JoinDate     time.Time
	IsActive     bool
	LastLoginAt  *time.Time
}

// NewEmployeeInput carries the fields required to onboard an employee
type NewEmployeeInput struct {
	EmployeeCode string
	Username     string
	Password     string
	FirstName    string
	LastName     string
	Role         Role
	Salary       decimal.Decimal
	JoinDate     time.Time
}

// NewEmployee creates an active employee with a hashed password
func NewEmployee(in NewEmployeeInput) (*Employee, error) {
	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	role := in.Role
	if role == "" {
		role = RoleEmployee
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", fmt.Sprintf("Unknown role: %s", role))
	}
	if in.Salary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	joinDate := in.JoinDate
	if joinDate.IsZero() {
		joinDate = time.Now()
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeCode:      strings.ToUpper(strings.TrimSpace(in.EmployeeCode)),
		Username:          strings.ToLower(strings.TrimSpace(in.Username)),
		PasswordHash:      hash,
		FirstName:         strings.TrimSpace(in.FirstName),
		LastName:          strings.TrimSpace(in.LastName),
		Role:              role,
		Salary:            in.Salary,
		JoinDate:          shared.DateOf(joinDate),
		IsActive:          true,
	}, nil
}

// FormatEmployeeCode renders the display code for a sequence number
func FormatEmployeeCode(seq int64) string {
	return fmt.Sprintf("EMP%03d", seq)
}

// FullName returns "First Last"
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// MatchesSearch reports whether the full name or employee code contains
// search, case-insensitively. An empty search matches everyone.
func (e *Employee) MatchesSearch(search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.FullName()), q) ||
		strings.Contains(strings.ToLower(e.EmployeeCode), q)
}

// UpdateProfile replaces the personal fields
func (e *Employee) UpdateProfile(firstName, lastName, email, phone, position string) error {
	if strings.TrimSpace(firstName) == "" {
		return shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if len(email) > 200 || !emailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	e.FirstName = strings.TrimSpace(firstName)
	e.LastName = strings.TrimSpace(lastName)
	e.Email = email
	e.Phone = strings.TrimSpace(phone)
	e.Position = strings.TrimSpace(position)
	e.IncrementVersion()
	return nil
}

// SetDepartment moves the employee to a department, or none
func (e *Employee) SetDepartment(departmentID *uuid.UUID) {
	e.DepartmentID = departmentID
	e.IncrementVersion()
}

// SetRole changes the access role
func (e *Employee) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", fmt.Sprintf("Unknown role: %s", role))
	}
	e.Role = role
	e.IncrementVersion()
	return nil
}

// SetSalary sets the monthly CTC
func (e *Employee) SetSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	e.Salary = salary
	e.IncrementVersion()
	return nil
}

// SetJoinDate sets the date of joining
func (e *Employee) SetJoinDate(d time.Time) {
	e.JoinDate = shared.DateOf(d)
	e.IncrementVersion()
}

// SetActive toggles the employment status
func (e *Employee) SetActive(active bool) {
	if e.IsActive == active {
		return
	}
	e.IsActive = active
	e.IncrementVersion()
}

// SetPassword replaces the password (admin reset, no old password check)
func (e *Employee) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	e.PasswordHash = hash
	e.IncrementVersion()
	return nil
}

// ChangePassword changes the password after verifying the current one
func (e *Employee) ChangePassword(oldPassword, newPassword string) error {
	if !e.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return e.SetPassword(newPassword)
}

// VerifyPassword verifies if the provided password matches
func (e *Employee) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful login
func (e *Employee) RecordLogin(at time.Time) {
	e.LastLoginAt = &at
	e.Touch()
}

// IsPayrollEligible reports whether the employee appears on statutory registers
func (e *Employee) IsPayrollEligible() bool {
	return e.IsActive && e.Salary.IsPositive()
}

// JoinedBy reports whether the employee had joined on or before d
func (e *Employee) JoinedBy(d time.Time) bool {
	return !shared.DateOf(e.JoinDate).After(shared.DateOf(d))
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, dots, and @")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
