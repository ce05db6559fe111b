package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadTable parses an uploaded CSV or XLSX document into a Table. The first
// row is the header; remaining rows are data. Unsupported extensions and
// unreadable content are load errors. A file with only a header yields an
// empty table, not an error; the generator reports that as "no data".
func LoadTable(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return loadCSV(r)
	case ".xlsx", ".xls":
		return loadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported file format %q: upload a CSV or XLSX file", filepath.Ext(filename))
	}
}

func loadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return newTable(records[0], records[1:]), nil
}

func loadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	// First sheet only, matching single-table documents.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return newTable(rows[0], rows[1:]), nil
}

// newTable builds a Table from a header and raw rows, typing each column.
// A column is numeric when it has at least one value and every non-empty
// cell parses as a float.
func newTable(header []string, rows [][]string) *Table {
	// A data row may be wider than the header; keep those cells under
	// generated column names rather than dropping them.
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cols := make([]Column, width)
	for i := range cols {
		if i < len(header) {
			cols[i] = Column{Name: strings.TrimSpace(header[i])}
		} else {
			cols[i] = Column{Name: fmt.Sprintf("Column%d", i+1)}
		}
	}

	// Pad ragged rows so every row has one cell per column.
	padded := make([][]string, len(rows))
	for r, row := range rows {
		p := make([]string, len(cols))
		for i := range p {
			if i < len(row) {
				p[i] = strings.TrimSpace(row[i])
			}
		}
		padded[r] = p
	}

	for i := range cols {
		seen := false
		numeric := true
		for _, row := range padded {
			cell := row[i]
			if cell == "" {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
				break
			}
		}
		cols[i].Numeric = seen && numeric
	}

	return &Table{Columns: cols, Rows: padded}
}
