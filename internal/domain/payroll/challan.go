package payroll

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// ChallanKind names the statutory payment a challan evidences
type ChallanKind string

const ChallanMLWF ChallanKind = "mlwf"

// MaxChallanSize bounds uploaded challan files
const MaxChallanSize = 10 << 20

// Challan is a stored payment receipt for a statutory period
type Challan struct {
	shared.BaseEntity
	Kind         ChallanKind
	PeriodYear   int
	PeriodMonth  time.Month
	ObjectKey    string
	FileName     string
	ContentType  string
	Size         int64
	UploadedByID uuid.UUID
	UploadedAt   time.Time
}

// NewChallan validates the upload metadata and derives the object key
// challans/<kind>/YYYY/MM/<id>-<file>.
func NewChallan(kind ChallanKind, year int, month time.Month, fileName, contentType string, size int64, uploadedBy uuid.UUID) (*Challan, error) {
	if kind != ChallanMLWF {
		return nil, shared.NewDomainError("INVALID_CHALLAN_KIND", fmt.Sprintf("Unknown challan kind: %s", kind))
	}
	if year < 2000 || year > 2100 || month < time.January || month > time.December {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Challan period is invalid")
	}
	fileName = sanitizeFileName(fileName)
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE", "File name is required")
	}
	if size <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "File is empty")
	}
	if size > MaxChallanSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "Challan file cannot exceed 10 MB")
	}
	c := &Challan{
		BaseEntity:   shared.NewBaseEntity(),
		Kind:         kind,
		PeriodYear:   year,
		PeriodMonth:  month,
		FileName:     fileName,
		ContentType:  contentType,
		Size:         size,
		UploadedByID: uploadedBy,
	}
	c.UploadedAt = c.CreatedAt
	c.ObjectKey = fmt.Sprintf("challans/%s/%04d/%02d/%s-%s", kind, year, int(month), c.ID, fileName)
	return c, nil
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
}

// ChallanRepository persists challan metadata
type ChallanRepository interface {
	Create(ctx context.Context, c *Challan) error
	FindByID(ctx context.Context, id uuid.UUID) (*Challan, error)
	// FindByPeriod lists challans of a kind; zero year or month widens the match
	FindByPeriod(ctx context.Context, kind ChallanKind, year int, month time.Month) ([]*Challan, error)
}
