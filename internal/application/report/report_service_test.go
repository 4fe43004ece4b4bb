package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	"github.com/asnhr/hrms/internal/application/compliance"
	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/asnhr/hrms/internal/infrastructure/printing"
	"github.com/asnhr/hrms/internal/infrastructure/spreadsheet"
	"github.com/asnhr/hrms/internal/infrastructure/storage"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRenderer struct {
	last *printing.RenderRequest
	err  error
}

func (f *fakeRenderer) Render(_ context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &printing.RenderResult{PDFData: []byte("%PDF-1.4"), PageCount: 1}, nil
}

func (f *fakeRenderer) Close() error { return nil }

type staticCompany payroll.CompanyProfile

func (c staticCompany) Company(context.Context) (payroll.CompanyProfile, error) {
	return payroll.CompanyProfile(c), nil
}

type fixture struct {
	svc      *ReportService
	renderer *fakeRenderer
	emps     *testutil.EmployeeRepository
	att      *testutil.AttendanceRepository
	staff    []*employee.Employee
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		renderer: &fakeRenderer{},
		emps:     testutil.NewEmployeeRepository(),
		att:      testutil.NewAttendanceRepository(),
	}
	units := testutil.NewUnitRepository()
	depts := testutil.NewDepartmentRepository()
	leaves := testutil.NewLeaveRepository()

	u, err := organization.NewUnit("PUN", "Pune Plant")
	require.NoError(t, err)
	require.NoError(t, units.Create(ctx, u))
	d, err := organization.NewDepartment("ACC", "Accounts", &u.ID)
	require.NoError(t, err)
	require.NoError(t, depts.Create(ctx, d))

	for i := 1; i <= 2; i++ {
		e, err := employee.NewEmployee(employee.NewEmployeeInput{
			EmployeeCode: employee.FormatEmployeeCode(int64(i)),
			Username:     fmt.Sprintf("user%d", i),
			Password:     "secret123",
			FirstName:    "User",
			LastName:     fmt.Sprintf("%d", i),
			Salary:       decimal.NewFromInt(24000),
			JoinDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		e.SetDepartment(&d.ID)
		require.NoError(t, f.emps.Create(ctx, e))
		f.staff = append(f.staff, e)
	}
	rec, err := attendance.NewRecord(f.staff[0].ID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent)
	require.NoError(t, err)
	require.NoError(t, f.att.Create(ctx, rec))

	attSvc := appatt.NewAttendanceService(f.att, f.emps, leaves, units, depts, appatt.DefaultPolicy(), zap.NewNop())
	compSvc := compliance.NewComplianceService(f.emps, units, depts, testutil.NewChallanRepository(), storage.NewMemoryObjectStorage(), zap.NewNop())
	company := staticCompany{Name: "ASN HR Consultancy", HRName: "Nikita", HRDesignation: "HR Manager"}

	f.svc = NewReportService(attSvc, compSvc, company, printing.NewReportPrinter(f.renderer), time.UTC, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC) }
	return f
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

var march = compliance.StatementInput{Period: payroll.PeriodMonth, Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)}

func TestReportService_MLWFStatementXLSX(t *testing.T) {
	f := newFixture(t)

	file, err := f.svc.MLWFStatement(context.Background(), march, export.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "mlwf-statement-2025-03-01.xlsx", file.FileName)
	assert.Equal(t, export.FormatXLSX.ContentType(), file.ContentType)

	sheet, err := spreadsheet.Read(file.FileName, file.Data)
	require.NoError(t, err)
	assert.Equal(t, "Employee ID", sheet.Headers[3])
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "EMP001", sheet.Rows[0].Get("Employee ID"))
	assert.Equal(t, "24000", sheet.Rows[0].Get("Gross Wages"))
	assert.Equal(t, "100", sheet.Rows[0].Get("Total"))
}

func TestReportService_MLWFStatementPDF(t *testing.T) {
	f := newFixture(t)

	file, err := f.svc.MLWFStatement(context.Background(), march, export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), file.Data)
	assert.Equal(t, "application/pdf", file.ContentType)

	require.NotNil(t, f.renderer.last)
	html := f.renderer.last.HTML
	assert.Contains(t, html, "L.W.F. SUMMARY STATEMENT FOR THE MONTH OF MARCH 2025")
	assert.Contains(t, html, "Ref No: MLWF/2503/")
	assert.Contains(t, html, "Pune Plant / Accounts")
	assert.Contains(t, html, "Rupees Two Hundred Only")
	assert.Contains(t, html, "Authorized Signatory")
}

func TestReportService_BonusRegisterCSV(t *testing.T) {
	f := newFixture(t)

	file, err := f.svc.BonusRegister(context.Background(), compliance.BonusInput{Year: 2024}, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "bonus-register-2024-25.csv", file.FileName)

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Sr No,Unit,Department"))
	assert.Contains(t, lines[0], "Apr 2024")
	assert.Contains(t, lines[0], "Total Bonus")
	assert.Contains(t, lines[1], `"EMP001"`)
}

func TestReportService_UnitWiseAttendanceText(t *testing.T) {
	f := newFixture(t)
	input := appatt.ReportInput{Period: payroll.PeriodMonth, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}

	file, err := f.svc.UnitWiseAttendance(context.Background(), input, export.FormatTXT)
	require.NoError(t, err)
	assert.Equal(t, "attendance-unit-wise-2025-03-01.txt", file.FileName)

	text := string(file.Data)
	assert.True(t, strings.HasPrefix(text, TitleUnitWiseAttendance+" March 2025"))
	assert.Contains(t, text, "Record 1:")
	assert.Contains(t, text, "Record 2:")
	assert.Contains(t, text, "Present: 1")
}

func TestReportService_IndividualAttendancePDF(t *testing.T) {
	f := newFixture(t)
	e := f.staff[0]
	caller := employee.Principal{ID: e.ID, Role: employee.RoleEmployee}
	input := appatt.ReportInput{Period: payroll.PeriodMonth, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}

	file, err := f.svc.IndividualAttendance(context.Background(), caller, e.ID, input, export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "attendance-EMP001-2025-03-01.pdf", file.FileName)
	html := f.renderer.last.HTML
	assert.Contains(t, html, TitleIndividualAttendance)
	assert.Contains(t, html, "Ref No: IND-ATT/2503/")
	assert.Contains(t, html, "03-03-2025")

	_, err = f.svc.IndividualAttendance(context.Background(), caller, f.staff[1].ID, input, export.FormatPDF)
	requireCode(t, err, "FORBIDDEN")
}

func TestReportService_FormatAndRenderErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("json is not a file format", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.MLWFStatement(ctx, march, export.FormatJSON)
		requireCode(t, err, "INVALID_FORMAT")
	})

	t.Run("pdf without printer", func(t *testing.T) {
		f := newFixture(t)
		f.svc.printer = nil
		_, err := f.svc.MLWFStatement(ctx, march, export.FormatPDF)
		requireCode(t, err, "PDF_UNAVAILABLE")
	})

	t.Run("render timeout", func(t *testing.T) {
		f := newFixture(t)
		f.renderer.err = printing.NewRenderError(printing.ErrCodeRenderTimeout, "timed out", context.DeadlineExceeded)
		_, err := f.svc.MLWFStatement(ctx, march, export.FormatPDF)
		requireCode(t, err, "PDF_TIMEOUT")
	})

	t.Run("render failure", func(t *testing.T) {
		f := newFixture(t)
		f.renderer.err = errors.New("chrome crashed")
		_, err := f.svc.MLWFStatement(ctx, march, export.FormatPDF)
		requireCode(t, err, "PDF_RENDER_FAILED")
	})
}

func TestPeriodLabel(t *testing.T) {
	ref := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 2025", PeriodLabel(payroll.NewReportPeriod(payroll.PeriodMonth, ref)))
	assert.Equal(t, "12 March 2025", PeriodLabel(payroll.NewReportPeriod(payroll.PeriodDay, ref)))
	assert.Equal(t, "10 March 2025 to 16 March 2025", PeriodLabel(payroll.NewReportPeriod(payroll.PeriodWeek, ref)))
	assert.Equal(t, "2025", PeriodLabel(payroll.NewReportPeriod(payroll.PeriodYear, ref)))
}
