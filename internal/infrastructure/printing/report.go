package printing

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table is one block of a report: an optional heading, rows and a totals row
type Table struct {
	Heading string
	Columns []string
	Rows    [][]string
	Totals  []string
}

// Document is a letterhead report ready for rendering
type Document struct {
	Title    string
	Subtitle string
	RefNo    string
	Date     time.Time
	// Summary lines printed above the tables, e.g. "Employee: Asha Patil"
	Summary       []string
	Tables        []Table
	GrandTotals   *Table
	AmountInWords string
	Landscape     bool
	HideSignature bool
}

type templateData struct {
	Company   payroll.CompanyProfile
	Watermark string
	Doc       *Document
	Date      string
}

var (
	titleCaser = cases.Title(language.English)
	upperCaser = cases.Upper(language.English)

	reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
		"upper": upperCaser.String,
		"title": titleCaser.String,
	}).Parse(reportHTML))
)

// BuildHTML renders doc on the company letterhead
func BuildHTML(company payroll.CompanyProfile, doc *Document) (string, error) {
	data := templateData{
		Company:   company,
		Watermark: watermarkText(company.Name),
		Doc:       doc,
		Date:      FormatLongDate(doc.Date),
	}
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to render report template", err)
	}
	return buf.String(), nil
}

// watermarkText is the first word of the company name, upper-cased
func watermarkText(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return upperCaser.String(fields[0])
}

// footerHTML is the page footer handed to Chrome
func footerHTML(company payroll.CompanyProfile) string {
	parts := []string{template.HTMLEscapeString(company.Name)}
	if company.Email != "" {
		parts = append(parts, "Email: "+template.HTMLEscapeString(company.Email))
	}
	if company.Website != "" {
		parts = append(parts, "Website: "+template.HTMLEscapeString(company.Website))
	}
	return `<div style="width:100%;font-size:8px;color:#646464;text-align:center;border-top:0.5px solid #c8c8c8;margin:0 10mm;padding-top:2mm;">` +
		strings.Join(parts, " | ") +
		` &middot; Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
}

// ReportPrinter turns Documents into PDFs
type ReportPrinter struct {
	renderer PDFRenderer
}

// NewReportPrinter creates a printer backed by renderer
func NewReportPrinter(renderer PDFRenderer) *ReportPrinter {
	return &ReportPrinter{renderer: renderer}
}

// Print renders doc to PDF bytes
func (p *ReportPrinter) Print(ctx context.Context, company payroll.CompanyProfile, doc *Document) ([]byte, error) {
	html, err := BuildHTML(company, doc)
	if err != nil {
		return nil, err
	}
	res, err := p.renderer.Render(ctx, &RenderRequest{
		HTML:       html,
		Title:      doc.Title,
		Landscape:  doc.Landscape,
		Margins:    DefaultMargins(),
		FooterHTML: footerHTML(company),
	})
	if err != nil {
		return nil, err
	}
	return res.PDFData, nil
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Doc.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10px; color: #000; margin: 0; }
  .letterhead { display: flex; justify-content: space-between; align-items: center; border-bottom: 0.5px solid #c8c8c8; padding-bottom: 6px; }
  .logo { font-size: 22px; font-weight: bold; color: #003366; }
  .company { text-align: right; }
  .company .name { font-size: 14px; font-weight: bold; color: #003366; }
  .company .meta { font-size: 9px; color: #505050; }
  .watermark { position: fixed; top: 45%; left: 25%; font-size: 110px; font-weight: bold; color: #000; opacity: 0.06; transform: rotate(-45deg); z-index: -1; }
  h1 { font-size: 12px; text-align: center; margin: 10px 0 2px; }
  .subtitle { font-size: 9px; text-align: center; }
  .refline { display: flex; justify-content: space-between; color: #505050; margin: 8px 0; }
  .summary { margin: 4px 0 8px; }
  h2 { font-size: 10px; margin: 10px 0 4px; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 6px; }
  th { background: #003366; color: #fff; font-size: 8px; padding: 3px; border: 0.5px solid #999; }
  td { font-size: 8px; padding: 3px; border: 0.5px solid #ccc; }
  tr.totals td { font-weight: bold; background: #f0f0f0; }
  .words { margin-top: 6px; font-style: italic; }
  .signature { display: flex; justify-content: space-between; margin-top: 40px; page-break-inside: avoid; }
  .signature div { width: 60mm; border-top: 0.5px solid #000; padding-top: 3px; }
</style>
</head>
<body>
{{- with .Watermark}}<div class="watermark">{{.}}</div>{{end}}
<div class="letterhead">
  <div class="logo">{{.Watermark}}</div>
  <div class="company">
    <div class="name">{{.Company.Name}}</div>
    {{- with .Company.Tagline}}<div class="meta">{{.}}</div>{{end}}
    {{- with .Company.Address}}<div class="meta">{{.}}</div>{{end}}
    {{- with .Company.Website}}<div class="meta">{{.}}</div>{{end}}
    {{- with .Company.Email}}<div class="meta">{{.}}</div>{{end}}
  </div>
</div>
<h1>{{upper .Doc.Title}}</h1>
{{- with .Doc.Subtitle}}<div class="subtitle">{{.}}</div>{{end}}
<div class="refline"><span>Ref No: {{.Doc.RefNo}}</span><span>Date: {{.Date}}</span></div>
{{- if .Doc.Summary}}
<div class="summary">{{range .Doc.Summary}}<div>{{.}}</div>{{end}}</div>
{{- end}}
{{- range .Doc.Tables}}
{{- with .Heading}}<h2>{{.}}</h2>{{end}}
<table>
  <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
  {{- range .Rows}}
    <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{- end}}
  {{- if .Totals}}
    <tr class="totals">{{range .Totals}}<td>{{.}}</td>{{end}}</tr>
  {{- end}}
  </tbody>
</table>
{{- end}}
{{- with .Doc.GrandTotals}}
<h2>{{with .Heading}}{{.}}{{else}}Grand Total{{end}}</h2>
<table>
  <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody><tr class="totals">{{range .Totals}}<td>{{.}}</td>{{end}}</tr></tbody>
</table>
{{- end}}
{{- with .Doc.AmountInWords}}<div class="words">Amount in words: {{.}}</div>{{end}}
{{- if not .Doc.HideSignature}}
<div class="signature">
  <div>Authorized Signatory<br><b>{{.Company.HRName}}</b><br>{{.Company.HRDesignation}}</div>
  <div>Company Seal</div>
</div>
{{- end}}
</body>
</html>
`
