package store

import (
	"context"
	"strings"
)

// Record is one data row keyed by trimmed header name.
type Record map[string]string

// Store is the tabular store: named tables whose first row is the header.
// Rows and columns are 1-based physical positions, header included.
type Store interface {
	// ReadAll returns every data row below the header, in sheet order. A table
	// with no data rows yields an empty slice.
	ReadAll(ctx context.Context, table string) ([]Record, error)
	// AppendRow writes values as a new row after the last one.
	AppendRow(ctx context.Context, table string, values []string) error
	// HeaderRow returns the raw first row.
	HeaderRow(ctx context.Context, table string) ([]string, error)
	// WriteCell overwrites a single cell.
	WriteCell(ctx context.Context, table string, row, col int, value string) error
}

// recordsFromGrid maps a raw grid (header first) to records. Blank header
// cells are skipped, the first of duplicate headers wins, and missing trailing
// cells read as "". Empty rows are kept so indexes stay aligned with the sheet.
func recordsFromGrid(grid [][]string) []Record {
	if len(grid) <= 1 {
		return []Record{}
	}

	header := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if _, seen := rec[name]; seen {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
