// Package export renders tabular report data as XLSX, CSV or plain text.
// PDF output lives in the printing package.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Format is a report output format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
)

// ParseFormat parses a format query value. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case "excel":
		return FormatXLSX, nil
	case FormatPDF, FormatXLSX, FormatCSV, FormatTXT, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatTXT:
		return "text/plain; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// FileName returns base.<ext>
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

// SheetName is the single worksheet written to every workbook
const SheetName = "Report"

// Dataset is an ordered table of records
type Dataset struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// AddRow appends a row; values are matched to Columns by position
func (d *Dataset) AddRow(values ...any) {
	d.Rows = append(d.Rows, values)
}

func (d *Dataset) cell(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Write renders d in format f. PDF and JSON are rejected here.
func Write(w io.Writer, f Format, d *Dataset, generatedAt time.Time) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, d)
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatTXT:
		return WriteText(w, d, generatedAt)
	default:
		return fmt.Errorf("export: format %q is not a tabular format", f)
	}
}

// WriteXLSX writes a workbook with one sheet: a header row, then one row per record
func WriteXLSX(w io.Writer, d *Dataset) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	header := make([]any, len(d.Columns))
	for i, c := range d.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(d.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(d.Columns), 1)
		_ = f.SetCellStyle(SheetName, "A1", last, bold)
	}

	for r, row := range d.Rows {
		values := make([]any, len(d.Columns))
		for i := range d.Columns {
			values[i] = xlsxValue(d.cell(row, i))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// xlsxValue turns values excelize cannot store natively into text
func xlsxValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case fmt.Stringer:
		if n, ok := numeric(t); ok {
			return n
		}
		return t.String()
	default:
		return v
	}
}

// WriteCSV writes a header row of column names joined by commas, then one
// line per row of JSON encoded values, so strings come out quoted and
// numbers bare.
func WriteCSV(w io.Writer, d *Dataset) error {
	var b bytes.Buffer
	b.WriteString(strings.Join(d.Columns, ","))
	b.WriteByte('\n')

	var field bytes.Buffer
	enc := json.NewEncoder(&field)
	enc.SetEscapeHTML(false)
	for _, row := range d.Rows {
		for i := range d.Columns {
			if i > 0 {
				b.WriteByte(',')
			}
			field.Reset()
			if err := enc.Encode(jsonValue(d.cell(row, i))); err != nil {
				return fmt.Errorf("export: encode %s: %w", d.Columns[i], err)
			}
			b.Write(bytes.TrimSuffix(field.Bytes(), []byte("\n")))
		}
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}

func jsonValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	if s, ok := v.(fmt.Stringer); ok {
		if n, ok := numeric(s); ok {
			return n
		}
	}
	return v
}

// WriteText writes the title, the generation date and an underline, then
// each record as "key: value" lines separated by dashes.
func WriteText(w io.Writer, d *Dataset, generatedAt time.Time) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n", d.Title)
	fmt.Fprintf(&b, "Generated on: %s\n", generatedAt.Format("02/01/2006"))
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", len(d.Title)))

	for r, row := range d.Rows {
		fmt.Fprintf(&b, "Record %d:\n", r+1)
		for i, c := range d.Columns {
			fmt.Fprintf(&b, "%s: %v\n", c, textValue(d.cell(row, i)))
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Repeat("-", 20))
	}
	_, err := w.Write(b.Bytes())
	return err
}

func textValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return v
}
