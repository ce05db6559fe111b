package statement

import (
	"strconv"
	"strings"
)

// Column is a named table column, typed numeric or text at load time.
type Column struct {
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}

// Table is an in-memory tabular document. It is owned by the request that
// loaded it: never shared across requests, never cached.
type Table struct {
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether there is nothing to analyze. A nil table is empty.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Text renders the table as aligned plain text, header first, preserving
// every row and column in original order. The rendering is deterministic:
// the same table always serializes to the same bytes.
func (t *Table) Text() string {
	if t == nil {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col.Name)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, w := range widths {
			if i > 0 {
				b.WriteString("  ")
			}
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if t.Columns[i].Numeric {
				b.WriteString(strings.Repeat(" ", w-len(cell)))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if i < len(widths)-1 {
					b.WriteString(strings.Repeat(" ", w-len(cell)))
				}
			}
		}
		b.WriteString("\n")
	}

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}
	writeRow(header)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}

// Series is one numeric column prepared for charting.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// NumericColumns extracts the numeric columns as ordered series. Empty cells
// chart as zero.
func (t *Table) NumericColumns() []Series {
	if t == nil {
		return nil
	}
	var out []Series
	for i, col := range t.Columns {
		if !col.Numeric {
			continue
		}
		s := Series{Name: col.Name, Values: make([]float64, 0, len(t.Rows))}
		for _, row := range t.Rows {
			var v float64
			if i < len(row) && row[i] != "" {
				v, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			}
			s.Values = append(s.Values, v)
		}
		out = append(out, s)
	}
	return out
}
