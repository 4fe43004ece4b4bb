package report

import (
	"bytes"
	"context"
	"errors"
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	"github.com/asnhr/hrms/internal/application/compliance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/asnhr/hrms/internal/infrastructure/printing"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report names used in file names and metrics
const (
	ReportMLWF                 = "mlwf-statement"
	ReportBonus                = "bonus-register"
	ReportUnitWiseAttendance   = "attendance-unit-wise"
	ReportIndividualAttendance = "attendance-individual"
)

// File is a rendered report ready to be streamed
type File struct {
	FileName    string
	ContentType string
	Data        []byte
}

// CompanySource supplies the letterhead printed on PDF reports
type CompanySource interface {
	Company(ctx context.Context) (payroll.CompanyProfile, error)
}

// ReportService renders the statutory and attendance reports as files
type ReportService struct {
	attendance *appatt.AttendanceService
	compliance *compliance.ComplianceService
	company    CompanySource
	printer    *printing.ReportPrinter
	location   *time.Location
	logger     *zap.Logger
	metrics    *telemetry.HRMetrics
	now        func() time.Time
}

// NewReportService creates a new report service. printer may be nil, in which
// case PDF requests fail with PDF_UNAVAILABLE.
func NewReportService(
	attendance *appatt.AttendanceService,
	compliance *compliance.ComplianceService,
	company CompanySource,
	printer *printing.ReportPrinter,
	location *time.Location,
	logger *zap.Logger,
) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		attendance: attendance,
		compliance: compliance,
		company:    company,
		printer:    printer,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// SetMetrics enables report counters and latency histograms
func (s *ReportService) SetMetrics(m *telemetry.HRMetrics) {
	s.metrics = m
}

// MLWFStatement renders the labour welfare fund statement
func (s *ReportService) MLWFStatement(ctx context.Context, input compliance.StatementInput, format export.Format) (*File, error) {
	return s.render(ctx, ReportMLWF, format, func(ctx context.Context) (*content, error) {
		st, err := s.compliance.MLWFStatement(ctx, input)
		if err != nil {
			return nil, err
		}
		return mlwfContent(st), nil
	})
}

// BonusRegister renders the bonus register of one fiscal year
func (s *ReportService) BonusRegister(ctx context.Context, input compliance.BonusInput, format export.Format) (*File, error) {
	return s.render(ctx, ReportBonus, format, func(ctx context.Context) (*content, error) {
		reg, err := s.compliance.BonusRegister(ctx, input)
		if err != nil {
			return nil, err
		}
		return bonusContent(reg), nil
	})
}

// UnitWiseAttendance renders the attendance summary of every employee grouped by unit
func (s *ReportService) UnitWiseAttendance(ctx context.Context, input appatt.ReportInput, format export.Format) (*File, error) {
	return s.render(ctx, ReportUnitWiseAttendance, format, func(ctx context.Context) (*content, error) {
		rep, err := s.attendance.UnitWiseReport(ctx, input)
		if err != nil {
			return nil, err
		}
		return unitWiseContent(rep), nil
	})
}

// IndividualAttendance renders one employee's attendance for the period
func (s *ReportService) IndividualAttendance(ctx context.Context, caller employee.Principal, employeeID uuid.UUID, input appatt.ReportInput, format export.Format) (*File, error) {
	return s.render(ctx, ReportIndividualAttendance, format, func(ctx context.Context) (*content, error) {
		rep, err := s.attendance.IndividualReport(ctx, caller, employeeID, input)
		if err != nil {
			return nil, err
		}
		return individualContent(rep, s.location), nil
	})
}

func (s *ReportService) render(ctx context.Context, name string, format export.Format, build func(context.Context) (*content, error)) (file *File, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", name,
		telemetry.SpanAttrReport, name,
		telemetry.SpanAttrFormat, string(format),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		if err != nil {
			telemetry.RecordError(span, err)
		}
		s.metrics.RecordReport(ctx, name, string(format), time.Since(start), err)
	}()

	if format == export.FormatJSON || format == "" {
		return nil, shared.NewDomainError("INVALID_FORMAT", "Choose one of pdf, xlsx, csv or txt")
	}
	if format == export.FormatPDF && s.printer == nil {
		return nil, shared.NewDomainError("PDF_UNAVAILABLE", "PDF rendering is not configured")
	}

	c, err := build(ctx)
	if err != nil {
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrRows, len(c.dataset.Rows))

	now := s.now().In(s.location)
	var data []byte
	telemetry.WithProfilingLabels(ctx, func(ctx context.Context) {
		if format == export.FormatPDF {
			data, err = s.pdf(ctx, name, c, now)
			return
		}
		var buf bytes.Buffer
		if werr := export.Write(&buf, format, c.dataset, now); werr != nil {
			s.logger.Error("Failed to write report", zap.String("report", name), zap.String("format", string(format)), zap.Error(werr))
			err = shared.NewDomainError("INTERNAL_ERROR", "Failed to generate report")
		}
		data = buf.Bytes()
	}, telemetry.ProfilingLabelReport, name, telemetry.ProfilingLabelFormat, string(format))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Report generated",
		zap.String("report", name),
		zap.String("format", string(format)),
		zap.Int("rows", len(c.dataset.Rows)),
		zap.Int("bytes", len(data)),
	)
	return &File{
		FileName:    format.FileName(c.baseName),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func (s *ReportService) pdf(ctx context.Context, name string, c *content, now time.Time) ([]byte, error) {
	company, err := s.company.Company(ctx)
	if err != nil {
		return nil, err
	}
	doc := c.document
	doc.RefNo = printing.NewReferenceNumber(c.refPrefix, now)
	doc.Date = now

	data, err := s.printer.Print(ctx, company, doc)
	if err != nil {
		var re *printing.RenderError
		if errors.As(err, &re) {
			switch re.Code {
			case printing.ErrCodeRenderTimeout:
				s.logger.Warn("PDF rendering timed out", zap.String("report", name), zap.Error(err))
				return nil, shared.NewDomainError("PDF_TIMEOUT", "Report took too long to render, narrow the period and retry")
			case printing.ErrCodeRendererBusy:
				return nil, shared.NewDomainError("PDF_BUSY", "Too many reports are being rendered, retry shortly")
			}
		}
		s.logger.Error("Failed to render PDF", zap.String("report", name), zap.Error(err))
		return nil, shared.NewDomainError("PDF_RENDER_FAILED", "Failed to render PDF")
	}
	return data, nil
}
