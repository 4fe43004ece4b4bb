package compliance_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/application/compliance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/spreadsheet"
	"github.com/asnhr/hrms/internal/infrastructure/storage"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingStorage remembers the keys it was asked to store
type recordingStorage struct {
	*storage.MemoryObjectStorage
	keys []string
}

func (r *recordingStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	r.keys = append(r.keys, key)
	return r.MemoryObjectStorage.Upload(ctx, key, body, size, contentType)
}

type failingStorage struct{ storage.MemoryObjectStorage }

func (*failingStorage) Upload(context.Context, string, io.Reader, int64, string) error {
	return errors.New("bucket unavailable")
}

type fixture struct {
	svc      *compliance.ComplianceService
	emps     *testutil.EmployeeRepository
	units    *testutil.UnitRepository
	depts    *testutil.DepartmentRepository
	challans *testutil.ChallanRepository
	store    *recordingStorage
	seq      int
}

func newFixture() *fixture {
	f := &fixture{
		emps:     testutil.NewEmployeeRepository(),
		units:    testutil.NewUnitRepository(),
		depts:    testutil.NewDepartmentRepository(),
		challans: testutil.NewChallanRepository(),
		store:    &recordingStorage{MemoryObjectStorage: storage.NewMemoryObjectStorage()},
	}
	f.svc = compliance.NewComplianceService(f.emps, f.units, f.depts, f.challans, f.store, zap.NewNop())
	return f
}

func (f *fixture) department(t *testing.T) *organization.Department {
	t.Helper()
	ctx := context.Background()
	u, err := organization.NewUnit("PUN", "Pune Plant")
	require.NoError(t, err)
	require.NoError(t, f.units.Create(ctx, u))
	d, err := organization.NewDepartment("PROD", "Production", &u.ID)
	require.NoError(t, err)
	require.NoError(t, f.depts.Create(ctx, d))
	return d
}

func (f *fixture) seed(t *testing.T, salary int64, joined time.Time, dept *organization.Department) *employee.Employee {
	t.Helper()
	f.seq++
	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: employee.FormatEmployeeCode(int64(f.seq)),
		Username:     fmt.Sprintf("user%d", f.seq),
		Password:     "secret123",
		FirstName:    "User",
		LastName:     fmt.Sprintf("%d", f.seq),
		Salary:       decimal.NewFromInt(salary),
		JoinDate:     joined,
	})
	require.NoError(t, err)
	if dept != nil {
		e.SetDepartment(&dept.ID)
	}
	require.NoError(t, f.emps.Create(context.Background(), e))
	return e
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComplianceService_MLWFStatement(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dept := f.department(t)
	f.seed(t, 30000, date(2025, 1, 1), dept)
	f.seed(t, 15000, date(2025, 2, 1), nil)
	f.seed(t, 30000, date(2025, 4, 1), dept)

	st, err := f.svc.MLWFStatement(ctx, compliance.StatementInput{Period: payroll.PeriodMonth, Date: date(2025, 3, 15)})
	require.NoError(t, err)

	assert.Equal(t, date(2025, 3, 1), st.Period.Start)
	assert.Equal(t, 2, st.Totals.Employees)
	require.Len(t, st.Units, 2)
	assert.Equal(t, "Pune Plant", st.Units[0].Name)
	assert.Equal(t, organization.UnassignedGroup, st.Units[1].Name)
	assert.True(t, st.Units[0].Departments[0].Rows[0].GrossWages.Equal(decimal.NewFromInt(30000)))
	assert.True(t, st.Totals.Total.Equal(decimal.NewFromInt(200)))

	filtered, err := f.svc.MLWFStatement(ctx, compliance.StatementInput{Date: date(2025, 3, 15), DepartmentID: &dept.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.Totals.Employees)
}

func TestComplianceService_MLWFStatement_LoadFailure(t *testing.T) {
	f := newFixture()
	f.emps.SetError(errors.New("connection reset"))

	_, err := f.svc.MLWFStatement(context.Background(), compliance.StatementInput{Date: date(2025, 3, 1)})
	requireCode(t, err, "INTERNAL_ERROR")
}

func TestComplianceService_BonusRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dept := f.department(t)
	f.seed(t, 20000, date(2024, 1, 1), dept)
	f.seed(t, 20000, date(2024, 10, 15), dept)

	reg, err := f.svc.BonusRegister(ctx, compliance.BonusInput{Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, 2024, reg.FiscalYear.StartYear)
	assert.Equal(t, 2, reg.Stats.EligibleEmployees)

	_, _, monthly := payroll.MonthlyBonus(decimal.NewFromInt(20000))
	rows := reg.Rows()
	require.Len(t, rows, 2)
	assert.True(t, rows[0].TotalBonus.Equal(monthly.Mul(decimal.NewFromInt(12))))
	assert.True(t, rows[1].TotalBonus.Equal(monthly.Mul(decimal.NewFromInt(6))))

	searched, err := f.svc.BonusRegister(ctx, compliance.BonusInput{Year: 2024, Search: "emp002"})
	require.NoError(t, err)
	assert.Equal(t, 1, searched.Stats.EligibleEmployees)

	_, err = f.svc.BonusRegister(ctx, compliance.BonusInput{Year: 1800})
	requireCode(t, err, "INVALID_YEAR")
}

func TestComplianceService_MLWFTemplate(t *testing.T) {
	f := newFixture()
	data, err := f.svc.MLWFTemplate()
	require.NoError(t, err)

	sheet, err := spreadsheet.Read("template.xlsx", data)
	require.NoError(t, err)
	assert.Equal(t, compliance.MLWFImportHeaders, sheet.Headers)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "EMP001", sheet.Rows[0].Get(compliance.ColEmployeeID))
	assert.Equal(t, "John Doe", sheet.Rows[0].Get(compliance.ColFullName))
	assert.Equal(t, "20000", sheet.Rows[0].Get(compliance.ColGrossSalary))
	assert.Equal(t, "75", sheet.Rows[0].Get(compliance.ColEmployerContrib))
}

func TestComplianceService_ImportMLWF(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seed(t, 20000, date(2024, 1, 1), nil)
	f.seed(t, 20000, date(2024, 1, 1), nil)

	csv := strings.Join([]string{
		"employee id,Full Name,GROSS SALARY,Employee Contrib,Employer Contrib",
		"emp001,,\"20,000\",25,75",
		"EMP999,Ghost,100,25,75",
		"EMP001,Again,1,1,1",
		"EMP002,Second,abc,25,75",
	}, "\n")

	result, err := f.svc.ImportMLWF(ctx, "mlwf.csv", []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	assert.Equal(t, 3, result.ErrorCount)

	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "EMP001", row.EmployeeCode)
	assert.Equal(t, "User 1", row.FullName)
	assert.True(t, row.GrossSalary.Equal(decimal.NewFromInt(20000)))
	assert.True(t, result.Totals.Total.Equal(decimal.NewFromInt(100)))

	codes := map[int]string{}
	for _, e := range result.Errors {
		codes[e.Row] = e.Code
	}
	assert.Equal(t, spreadsheet.ErrCodeReferenceNotFound, codes[3])
	assert.Equal(t, spreadsheet.ErrCodeDuplicateInFile, codes[4])
	assert.Equal(t, spreadsheet.ErrCodeInvalidType, codes[5])
}

func TestComplianceService_ImportMLWF_BadFiles(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.ImportMLWF(ctx, "mlwf.pdf", []byte("%PDF"))
	requireCode(t, err, "INVALID_FILE")

	_, err = f.svc.ImportMLWF(ctx, "mlwf.csv", []byte("Employee ID,Full Name\nEMP001,A\n"))
	requireCode(t, err, "MISSING_HEADERS")
}

func TestComplianceService_UploadAndDownloadChallan(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uploader := uuid.New()
	body := []byte("challan-bytes")

	resp, err := f.svc.UploadChallan(ctx, compliance.UploadChallanInput{
		Year:        2025,
		Month:       time.March,
		FileName:    "march.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(body)),
		Body:        bytes.NewReader(body),
		UploadedBy:  uploader,
	})
	require.NoError(t, err)
	assert.Equal(t, "mlwf", resp.Kind)
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, uploader, resp.UploadedBy)

	require.Len(t, f.store.keys, 1)
	key := f.store.keys[0]
	assert.True(t, strings.HasPrefix(key, "challans/mlwf/2025/03/"+resp.ID.String()+"-"))
	r, ok := f.store.Open(key)
	require.True(t, ok)
	stored, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, body, stored)

	list, err := f.svc.ListChallans(ctx, compliance.ListChallansInput{Year: 2025, Month: time.March})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.ID, list[0].ID)

	empty, err := f.svc.ListChallans(ctx, compliance.ListChallansInput{Year: 2025, Month: time.April})
	require.NoError(t, err)
	assert.Empty(t, empty)

	link, err := f.svc.ChallanDownloadURL(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, link.URL)
	assert.Equal(t, "march.pdf", link.FileName)
	assert.True(t, link.ExpiresAt.After(time.Now()))

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	http.StripPrefix("/storage/", f.store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, u.RequestURI(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.Bytes())

	_, err = f.svc.ChallanDownloadURL(ctx, uuid.New())
	requireCode(t, err, "CHALLAN_NOT_FOUND")

	require.NoError(t, f.store.DeleteObject(ctx, key))
	_, err = f.svc.ChallanDownloadURL(ctx, resp.ID)
	requireCode(t, err, "STORAGE_ERROR")
}

func TestComplianceService_UploadChallan_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("too large", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.UploadChallan(ctx, compliance.UploadChallanInput{
			Year: 2025, Month: time.March, FileName: "big.pdf", Size: payroll.MaxChallanSize + 1, Body: strings.NewReader("x"),
		})
		requireCode(t, err, "FILE_TOO_LARGE")
	})

	t.Run("storage down", func(t *testing.T) {
		f := newFixture()
		svc := compliance.NewComplianceService(f.emps, f.units, f.depts, f.challans, &failingStorage{}, zap.NewNop())
		_, err := svc.UploadChallan(ctx, compliance.UploadChallanInput{
			Year: 2025, Month: time.March, FileName: "a.pdf", Size: 1, Body: strings.NewReader("x"),
		})
		requireCode(t, err, "STORAGE_ERROR")
	})

	t.Run("record not saved removes object", func(t *testing.T) {
		f := newFixture()
		f.challans.SetError(errors.New("disk full"))
		_, err := f.svc.UploadChallan(ctx, compliance.UploadChallanInput{
			Year: 2025, Month: time.March, FileName: "a.pdf", Size: 1, Body: strings.NewReader("x"),
		})
		requireCode(t, err, "INTERNAL_ERROR")
		require.Len(t, f.store.keys, 1)
		_, ok := f.store.Open(f.store.keys[0])
		assert.False(t, ok)
	})
}
