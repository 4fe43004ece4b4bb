// Package spreadsheet reads tabular uploads (CSV, XLSX, legacy XLS) into
// header-keyed rows and collects per-row validation errors.
package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// MaxRows bounds how many data rows are read from one upload
const MaxRows = 10000

var (
	ErrEmptyFile         = errors.New("file is empty")
	ErrInvalidEncoding   = errors.New("file is not valid UTF-8")
	ErrMissingHeader     = errors.New("file is missing a header row")
	ErrNoWorksheet       = errors.New("no worksheet found")
	ErrUnsupportedFormat = errors.New("unsupported file format (expected .csv, .xlsx or .xls)")
	ErrTooManyRows       = fmt.Errorf("file has more than %d data rows", MaxRows)
)

// Row is one data row keyed by header
type Row struct {
	LineNumber int
	Data       map[string]string
}

// Get returns the value under header, or ""
func (r *Row) Get(header string) string {
	return r.Data[header]
}

// IsEmpty returns true if the row has no non-empty values
func (r *Row) IsEmpty() bool {
	for _, v := range r.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// Sheet is a parsed upload
type Sheet struct {
	Headers []string
	Rows    []*Row
}

// MissingHeaders returns the required headers absent from the sheet.
// Header comparison ignores case and surrounding whitespace.
func (s *Sheet) MissingHeaders(required []string) []string {
	have := make(map[string]bool, len(s.Headers))
	for _, h := range s.Headers {
		have[normalizeHeader(h)] = true
	}
	var missing []string
	for _, h := range required {
		if !have[normalizeHeader(h)] {
			missing = append(missing, h)
		}
	}
	return missing
}

// HeaderFor returns the sheet's spelling of a header, matched like MissingHeaders
func (s *Sheet) HeaderFor(name string) string {
	want := normalizeHeader(name)
	for _, h := range s.Headers {
		if normalizeHeader(h) == want {
			return h
		}
	}
	return name
}

// Read parses data according to the extension of fileName
func Read(fileName string, data []byte) (*Sheet, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		records, err = readCSV(data)
	case ".xlsx":
		records, err = readXLSX(data)
	case ".xls":
		records, err = readXLS(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return toSheet(records)
}

func readCSV(data []byte) ([][]string, error) {
	br := bufio.NewReader(bytes.NewReader(data))
	if bom, _ := br.Peek(3); len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	r := csv.NewReader(br)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var out [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}
	return wb.ReadAllCells(MaxRows + 1), nil
}

func toSheet(records [][]string) (*Sheet, error) {
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}
	headers := make([]string, len(records[0]))
	nonEmpty := false
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
		if headers[i] != "" {
			nonEmpty = true
		}
	}
	if !nonEmpty {
		return nil, ErrMissingHeader
	}

	sheet := &Sheet{Headers: headers}
	for i, rec := range records[1:] {
		row := &Row{LineNumber: i + 2, Data: make(map[string]string, len(headers))}
		for j, h := range headers {
			if h == "" {
				continue
			}
			if j < len(rec) {
				row.Data[h] = strings.TrimSpace(rec[j])
			} else {
				row.Data[h] = ""
			}
		}
		if row.IsEmpty() {
			continue
		}
		if len(sheet.Rows) == MaxRows {
			return nil, ErrTooManyRows
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
