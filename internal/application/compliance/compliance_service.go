package compliance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apporg "github.com/asnhr/hrms/internal/application/organization"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/asnhr/hrms/internal/infrastructure/spreadsheet"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ObjectStorage stores uploaded files and hands out time-limited download links
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, key string) error
}

// DownloadURLTTL is how long a challan download link stays valid
const DownloadURLTTL = 15 * time.Minute

// ComplianceService builds the statutory registers and manages MLWF uploads
type ComplianceService struct {
	empRepo     employee.Repository
	unitRepo    organization.UnitRepository
	deptRepo    organization.DepartmentRepository
	challanRepo payroll.ChallanRepository
	storage     ObjectStorage
	logger      *zap.Logger
	now         func() time.Time
}

// NewComplianceService creates a new compliance service
func NewComplianceService(
	empRepo employee.Repository,
	unitRepo organization.UnitRepository,
	deptRepo organization.DepartmentRepository,
	challanRepo payroll.ChallanRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *ComplianceService {
	return &ComplianceService{
		empRepo:     empRepo,
		unitRepo:    unitRepo,
		deptRepo:    deptRepo,
		challanRepo: challanRepo,
		storage:     storage,
		logger:      logger,
		now:         time.Now,
	}
}

// MLWFStatement builds the labour welfare fund statement for the period around input.Date
func (s *ComplianceService) MLWFStatement(ctx context.Context, input StatementInput) (*payroll.MLWFStatement, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "compliance", "MLWFStatement")
	defer span.End()

	ref := input.Date
	if ref.IsZero() {
		ref = s.now()
	}
	period := payroll.NewReportPeriod(input.Period, ref)

	emps, dir, err := s.load(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	st := payroll.BuildMLWFStatement(emps, dir, period, payroll.RegisterFilter{
		UnitID:       input.UnitID,
		DepartmentID: input.DepartmentID,
	})
	telemetry.SetAttributes(span, telemetry.SpanAttrPeriod, string(period.Kind), telemetry.SpanAttrRows, st.Totals.Employees)
	return st, nil
}

// BonusRegister builds the bonus register of one fiscal year
func (s *ComplianceService) BonusRegister(ctx context.Context, input BonusInput) (*payroll.BonusRegister, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "compliance", "BonusRegister")
	defer span.End()

	fy := payroll.FiscalYearOf(s.now())
	if input.Year != 0 {
		if input.Year < 2000 || input.Year > 2100 {
			return nil, shared.NewDomainError("INVALID_YEAR", "Year must be between 2000 and 2100")
		}
		fy = payroll.NewFiscalYear(input.Year, time.UTC)
	}

	emps, dir, err := s.load(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	reg := payroll.BuildBonusRegister(emps, dir, fy, payroll.RegisterFilter{
		UnitID:       input.UnitID,
		DepartmentID: input.DepartmentID,
		Search:       strings.TrimSpace(input.Search),
	})
	telemetry.SetAttributes(span, telemetry.SpanAttrPeriod, fy.Label(), telemetry.SpanAttrRows, reg.Stats.EligibleEmployees)
	return reg, nil
}

func (s *ComplianceService) load(ctx context.Context) ([]*employee.Employee, *organization.Directory, error) {
	dir, err := apporg.LoadDirectory(ctx, s.unitRepo, s.deptRepo)
	if err != nil {
		s.logger.Error("Failed to load organization", zap.Error(err))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build register")
	}
	emps, err := s.empRepo.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load employees", zap.Error(err))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build register")
	}
	return emps, dir, nil
}

// MLWFTemplate returns an xlsx workbook with the import headers and one sample row
func (s *ComplianceService) MLWFTemplate() ([]byte, error) {
	d := &export.Dataset{Title: "MLWF Import", Columns: MLWFImportHeaders}
	d.AddRow("EMP001", "John Doe", 20000, 25, 75)

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, d); err != nil {
		s.logger.Error("Failed to render MLWF template", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate template")
	}
	return buf.Bytes(), nil
}

// ImportMLWF parses an xlsx, xls or csv upload. Rows that reference an unknown
// employee code or carry non-numeric amounts are reported and left out of Rows.
func (s *ComplianceService) ImportMLWF(ctx context.Context, fileName string, data []byte) (*ImportResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "compliance", "ImportMLWF")
	defer span.End()

	sheet, err := spreadsheet.Read(fileName, data)
	if err != nil {
		return nil, shared.WrapDomainError("INVALID_FILE", err.Error(), err)
	}
	if missing := sheet.MissingHeaders(MLWFImportHeaders); len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_HEADERS", "Missing columns: "+strings.Join(missing, ", "))
	}
	col := make(map[string]string, len(MLWFImportHeaders))
	for _, h := range MLWFImportHeaders {
		col[h] = sheet.HeaderFor(h)
	}

	result := &ImportResult{
		TotalRows: len(sheet.Rows),
		Rows:      []MLWFImportRow{},
		Totals: MLWFImportTotals{
			GrossSalary:          decimal.Zero,
			EmployeeContribution: decimal.Zero,
			EmployerContribution: decimal.Zero,
			Total:                decimal.Zero,
		},
	}
	errs := spreadsheet.NewErrorCollection(maxImportErrorCount)
	known := make(map[string]*employee.Employee)
	seen := make(map[string]int)

	for _, row := range sheet.Rows {
		line := row.LineNumber
		code := strings.ToUpper(strings.TrimSpace(row.Get(col[ColEmployeeID])))

		var emp *employee.Employee
		switch {
		case code == "":
			errs.AddRequired(line, ColEmployeeID)
		case seen[code] != 0:
			errs.AddDuplicate(line, ColEmployeeID, code)
		default:
			seen[code] = line
			emp, err = s.lookupEmployee(ctx, known, code)
			if err != nil {
				telemetry.RecordError(span, err)
				return nil, err
			}
			if emp == nil {
				errs.AddReference(line, ColEmployeeID, "employee", code)
			}
		}

		gross := parseAmount(errs, line, ColGrossSalary, row.Get(col[ColGrossSalary]))
		empShare := parseAmount(errs, line, ColEmployeeContrib, row.Get(col[ColEmployeeContrib]))
		erShare := parseAmount(errs, line, ColEmployerContrib, row.Get(col[ColEmployerContrib]))
		if errs.RowHasErrors(line) {
			continue
		}

		name := strings.TrimSpace(row.Get(col[ColFullName]))
		if name == "" {
			name = emp.FullName()
		}
		r := MLWFImportRow{
			Line:                 line,
			EmployeeID:           emp.ID,
			EmployeeCode:         emp.EmployeeCode,
			FullName:             name,
			GrossSalary:          gross,
			EmployeeContribution: empShare,
			EmployerContribution: erShare,
			Total:                empShare.Add(erShare),
		}
		result.Rows = append(result.Rows, r)
		result.Totals.GrossSalary = result.Totals.GrossSalary.Add(r.GrossSalary)
		result.Totals.EmployeeContribution = result.Totals.EmployeeContribution.Add(r.EmployeeContribution)
		result.Totals.EmployerContribution = result.Totals.EmployerContribution.Add(r.EmployerContribution)
		result.Totals.Total = result.Totals.Total.Add(r.Total)
	}

	result.ValidRows = len(result.Rows)
	result.Errors = errs.Errors()
	result.ErrorCount = errs.TotalCount()
	result.Truncated = errs.IsTruncated()
	telemetry.SetAttributes(span, telemetry.SpanAttrRows, result.TotalRows)
	s.logger.Info("MLWF import parsed",
		zap.String("file", fileName),
		zap.Int("rows", result.TotalRows),
		zap.Int("valid", result.ValidRows),
		zap.Int("errors", result.ErrorCount),
	)
	return result, nil
}

func (s *ComplianceService) lookupEmployee(ctx context.Context, known map[string]*employee.Employee, code string) (*employee.Employee, error) {
	if e, ok := known[code]; ok {
		return e, nil
	}
	e, err := s.empRepo.FindByCode(ctx, code)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		e = nil
	case err != nil:
		s.logger.Error("Failed to look up employee", zap.String("code", code), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to import file")
	}
	known[code] = e
	return e, nil
}

func parseAmount(errs *spreadsheet.ErrorCollection, line int, column, raw string) decimal.Decimal {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		errs.AddRequired(line, column)
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		errs.AddType(line, column, "number", raw)
		return decimal.Zero
	}
	if v.IsNegative() {
		errs.AddRange(line, column, "must not be negative", raw)
		return decimal.Zero
	}
	return v
}

// UploadChallan stores a challan file and records it. The object is removed
// again when the record cannot be saved.
func (s *ComplianceService) UploadChallan(ctx context.Context, input UploadChallanInput) (*ChallanResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "compliance", "UploadChallan")
	defer span.End()

	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c, err := payroll.NewChallan(payroll.ChallanMLWF, input.Year, input.Month, input.FileName, contentType, input.Size, input.UploadedBy)
	if err != nil {
		return nil, err
	}
	if input.Body == nil {
		return nil, shared.NewDomainError("INVALID_FILE", "File is empty")
	}

	if err := s.storage.Upload(ctx, c.ObjectKey, input.Body, c.Size, c.ContentType); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to upload challan", zap.String("key", c.ObjectKey), zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to store challan file")
	}
	if err := s.challanRepo.Create(ctx, c); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to save challan", zap.String("key", c.ObjectKey), zap.Error(err))
		if delErr := s.storage.DeleteObject(ctx, c.ObjectKey); delErr != nil {
			s.logger.Warn("Failed to remove orphaned challan object", zap.String("key", c.ObjectKey), zap.Error(delErr))
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save challan")
	}

	s.logger.Info("Challan uploaded",
		zap.String("challan_id", c.ID.String()),
		zap.String("period", fmt.Sprintf("%04d-%02d", c.PeriodYear, int(c.PeriodMonth))),
		zap.Int64("size", c.Size),
	)
	resp := ToChallanResponse(c)
	return &resp, nil
}

// ListChallans returns MLWF challans, newest first
func (s *ComplianceService) ListChallans(ctx context.Context, input ListChallansInput) ([]ChallanResponse, error) {
	if input.Month < 0 || input.Month > time.December {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	challans, err := s.challanRepo.FindByPeriod(ctx, payroll.ChallanMLWF, input.Year, input.Month)
	if err != nil {
		s.logger.Error("Failed to list challans", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list challans")
	}
	out := make([]ChallanResponse, 0, len(challans))
	for _, c := range challans {
		out = append(out, ToChallanResponse(c))
	}
	return out, nil
}

// ChallanDownloadURL issues a presigned link to a stored challan
func (s *ComplianceService) ChallanDownloadURL(ctx context.Context, id uuid.UUID) (*DownloadURL, error) {
	c, err := s.challanRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CHALLAN_NOT_FOUND", "Challan not found")
		}
		s.logger.Error("Failed to load challan", zap.String("challan_id", id.String()), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load challan")
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, c.ObjectKey, DownloadURLTTL)
	if err != nil {
		s.logger.Error("Failed to sign challan URL", zap.String("key", c.ObjectKey), zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to create download link")
	}
	return &DownloadURL{URL: url, FileName: c.FileName, ExpiresAt: expiresAt}, nil
}
