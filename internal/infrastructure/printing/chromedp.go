package printing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultChromeTimeout  = 30 * time.Second
	defaultMaxConcurrency = 2
)

// ChromedpConfig contains configuration for the chromedp renderer
type ChromedpConfig struct {
	DefaultTimeout time.Duration
	// ExecPath is the Chrome/Chromium binary; empty lets chromedp search PATH
	ExecPath string
	// RemoteURL is the DevTools URL of a running browser (optional).
	// If empty, chromedp launches a browser.
	RemoteURL string
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// MaxConcurrency caps simultaneous renders (tabs)
	MaxConcurrency int
	Logger         *zap.Logger
}

// ChromedpRenderer renders HTML to PDF using Chrome DevTools Protocol
type ChromedpRenderer struct {
	config      *ChromedpConfig
	logger      *zap.Logger
	slots       chan struct{}
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpRenderer creates a new chromedp-based PDF renderer. The browser
// is started lazily on the first render.
func NewChromedpRenderer(config *ChromedpConfig) (*ChromedpRenderer, error) {
	if config == nil {
		config = &ChromedpConfig{}
	}
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = defaultChromeTimeout
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = defaultMaxConcurrency
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ChromedpRenderer{
		config: config,
		logger: logger,
		slots:  make(chan struct{}, config.MaxConcurrency),
	}
	r.initAllocator()
	return r, nil
}

func (r *ChromedpRenderer) initAllocator() {
	if r.config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	if r.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.config.ExecPath))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Render converts HTML content to PDF
func (r *ChromedpRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if req == nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "render request is nil", nil)
	}
	if strings.TrimSpace(req.HTML) == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = r.config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case r.slots <- struct{}{}:
		defer func() { <-r.slots }()
	case <-ctx.Done():
		return nil, NewRenderError(ErrCodeRendererBusy, "no renderer slot available", ctx.Err())
	}

	startTime := time.Now()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()
	// tie the tab to the request deadline
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	html := r.buildCompleteHTML(req)
	params := r.buildPrintParams(req)

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(params.paperWidth).
				WithPaperHeight(params.paperHeight).
				WithMarginTop(params.marginTop).
				WithMarginRight(params.marginRight).
				WithMarginBottom(params.marginBottom).
				WithMarginLeft(params.marginLeft).
				WithLandscape(params.landscape).
				WithDisplayHeaderFooter(params.displayHeaderFooter).
				WithHeaderTemplate("<span></span>").
				WithFooterTemplate(params.footerTemplate).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", timeout), err)
		}
		r.logger.Error("chromedp rendering failed", zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", err)
	}
	if len(pdfData) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	pages := countPages(pdfData)
	d := time.Since(startTime)
	r.logger.Info("PDF rendered",
		zap.String("title", req.Title),
		zap.Int("bytes", len(pdfData)),
		zap.Int("pages", pages),
		zap.Duration("duration", d))

	return &RenderResult{PDFData: pdfData, PageCount: pages, RenderDuration: d}, nil
}

type printParams struct {
	paperWidth          float64
	paperHeight         float64
	marginTop           float64
	marginRight         float64
	marginBottom        float64
	marginLeft          float64
	landscape           bool
	displayHeaderFooter bool
	footerTemplate      string
}

func (r *ChromedpRenderer) buildPrintParams(req *RenderRequest) *printParams {
	p := &printParams{
		paperWidth:   mmToInches(a4WidthMM),
		paperHeight:  mmToInches(a4HeightMM),
		marginTop:    mmToInches(float64(req.Margins.Top)),
		marginRight:  mmToInches(float64(req.Margins.Right)),
		marginBottom: mmToInches(float64(req.Margins.Bottom)),
		marginLeft:   mmToInches(float64(req.Margins.Left)),
		landscape:    req.Landscape,
	}
	if req.FooterHTML != "" {
		p.displayHeaderFooter = true
		p.footerTemplate = req.FooterHTML
		if p.marginBottom < mmToInches(15) {
			p.marginBottom = mmToInches(15)
		}
	}
	return p
}

func (r *ChromedpRenderer) buildCompleteHTML(req *RenderRequest) string {
	lower := strings.ToLower(req.HTML)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return req.HTML
	}
	var buf bytes.Buffer
	buf.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8">`)
	if req.Title != "" {
		buf.WriteString("<title>")
		buf.WriteString(req.Title)
		buf.WriteString("</title>")
	}
	buf.WriteString("</head><body>")
	buf.WriteString(req.HTML)
	buf.WriteString("</body></html>")
	return buf.String()
}

// Close releases the browser
func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}

// countPages counts "/Type /Page" objects, excluding the "/Pages" tree nodes
func countPages(pdf []byte) int {
	n := bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
	n += bytes.Count(pdf, []byte("/Type/Page")) - bytes.Count(pdf, []byte("/Type/Pages"))
	if n < 1 {
		return 1
	}
	return n
}

var _ PDFRenderer = (*ChromedpRenderer)(nil)
