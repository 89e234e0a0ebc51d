package member

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a raw roster: a header row and data rows aligned with it.
type Table struct {
	Headers []string
	Rows    [][]string
}

// absentMarkers are the cell spellings the roster export uses for "no value".
var absentMarkers = map[string]struct{}{
	"nan": {}, "NaN": {}, "N/A": {},
}

// Clean applies the single absence rule: a trimmed cell that is empty or an
// absent marker is "" and everything else is returned trimmed.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := absentMarkers[s]; ok {
		return ""
	}
	return s
}

// Index returns the column index of f, or -1 when the table has no such column.
func (t Table) Index(f Field) int {
	for i, h := range t.Headers {
		if got, ok := FieldOf(h); ok && got == f {
			return i
		}
	}
	return -1
}

// Cell returns the cleaned cell at (row, col); out of range is absent.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return Clean(t.Rows[row][col])
}

// ReadCSV parses a roster export. Header cells are trimmed and a UTF-8 BOM is dropped.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{Headers: []string{}, Rows: [][]string{}}, nil
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.TrimSpace(h)
	}
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlankRow(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return Table{Headers: headers, Rows: rows}, nil
}

// WriteCSV writes headers and rows.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func isBlankRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
