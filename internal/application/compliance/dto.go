package compliance

import (
	"io"
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/infrastructure/spreadsheet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MLWF import column headers, in template order
const (
	ColEmployeeID       = "Employee ID"
	ColFullName         = "Full Name"
	ColGrossSalary      = "Gross Salary"
	ColEmployeeContrib  = "Employee Contrib"
	ColEmployerContrib  = "Employer Contrib"
	maxImportErrorCount = 200
)

// MLWFImportHeaders are the columns an MLWF upload must carry
var MLWFImportHeaders = []string{ColEmployeeID, ColFullName, ColGrossSalary, ColEmployeeContrib, ColEmployerContrib}

// StatementInput selects the MLWF statement period and employees
type StatementInput struct {
	Period       payroll.PeriodKind
	Date         time.Time
	UnitID       *uuid.UUID
	DepartmentID *uuid.UUID
}

// BonusInput selects the bonus register fiscal year and employees.
// Year is the April start year; zero means the current fiscal year.
type BonusInput struct {
	Year         int
	UnitID       *uuid.UUID
	DepartmentID *uuid.UUID
	Search       string
}

// MLWFImportRow is one accepted line of an MLWF upload
type MLWFImportRow struct {
	Line                 int             `json:"line"`
	EmployeeID           uuid.UUID       `json:"employee_id"`
	EmployeeCode         string          `json:"employee_code"`
	FullName             string          `json:"full_name"`
	GrossSalary          decimal.Decimal `json:"gross_salary"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Total                decimal.Decimal `json:"total"`
}

// ImportResult is the outcome of parsing an MLWF upload
type ImportResult struct {
	TotalRows  int                    `json:"total_rows"`
	ValidRows  int                    `json:"valid_rows"`
	ErrorCount int                    `json:"error_count"`
	Truncated  bool                   `json:"truncated"`
	Rows       []MLWFImportRow        `json:"rows"`
	Errors     []spreadsheet.RowError `json:"errors"`
	Totals     MLWFImportTotals       `json:"totals"`
}

// MLWFImportTotals sums the accepted rows
type MLWFImportTotals struct {
	GrossSalary          decimal.Decimal `json:"gross_salary"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Total                decimal.Decimal `json:"total"`
}

// UploadChallanInput carries one challan file
type UploadChallanInput struct {
	Year        int
	Month       time.Month
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedBy  uuid.UUID
}

// ListChallansInput filters challans; zero values widen the match
type ListChallansInput struct {
	Year  int
	Month time.Month
}

// ChallanResponse is the API view of a stored challan
type ChallanResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ToChallanResponse converts a challan
func ToChallanResponse(c *payroll.Challan) ChallanResponse {
	return ChallanResponse{
		ID:          c.ID,
		Kind:        string(c.Kind),
		Year:        c.PeriodYear,
		Month:       int(c.PeriodMonth),
		FileName:    c.FileName,
		ContentType: c.ContentType,
		Size:        c.Size,
		UploadedBy:  c.UploadedByID,
		UploadedAt:  c.UploadedAt,
	}
}

// DownloadURL is a time-limited link to a stored object
type DownloadURL struct {
	URL       string    `json:"url"`
	FileName  string    `json:"file_name"`
	ExpiresAt time.Time `json:"expires_at"`
}
