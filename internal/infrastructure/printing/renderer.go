package printing

import (
	"context"
	"time"
)

// A4 dimensions in millimetres
const (
	a4WidthMM  = 210
	a4HeightMM = 297
)

// Margins in millimetres
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// DefaultMargins leaves room for the letterhead and footer
func DefaultMargins() Margins {
	return Margins{Top: 10, Right: 10, Bottom: 12, Left: 10}
}

// RenderRequest contains the parameters for rendering HTML to an A4 PDF
type RenderRequest struct {
	HTML      string
	Title     string
	Landscape bool
	Margins   Margins
	// FooterHTML is repeated on every page (optional)
	FooterHTML string
	// Timeout overrides the default rendering timeout
	Timeout time.Duration
}

// RenderResult contains the output from PDF rendering
type RenderResult struct {
	PDFData        []byte
	PageCount      int
	RenderDuration time.Duration
}

// PDFRenderer converts HTML to PDF
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

// RenderError represents an error during PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout  = "RENDER_TIMEOUT"
	ErrCodeRenderFailed   = "RENDER_FAILED"
	ErrCodeInvalidHTML    = "INVALID_HTML"
	ErrCodeRendererBusy   = "RENDERER_BUSY"
	ErrCodeTemplateFailed = "TEMPLATE_FAILED"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
