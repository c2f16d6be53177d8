package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Export copies tables from src into a fresh workbook, one worksheet per table
// with a bold header row, and writes it to w.
func Export(ctx context.Context, src Store, tables []string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(table); err != nil {
			return err
		}

		header, err := src.HeaderRow(ctx, table)
		if err != nil {
			return fmt.Errorf("export %q: %w", table, err)
		}
		records, err := src.ReadAll(ctx, table)
		if err != nil {
			return fmt.Errorf("export %q: %w", table, err)
		}
		if len(header) == 0 {
			continue
		}

		headerRow := make([]interface{}, len(header))
		for c, h := range header {
			headerRow[c] = h
		}
		if err := f.SetSheetRow(table, "A1", &headerRow); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(table, "A1", last, bold); err != nil {
			return err
		}

		for r, rec := range records {
			row := make([]interface{}, len(header))
			for c, h := range header {
				row[c] = rec[strings.TrimSpace(h)]
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(table, cell, &row); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
