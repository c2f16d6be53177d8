package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/xuri/excelize/v2"
)

// XLSXStore keeps the tables as worksheets of a local workbook. With a path,
// the file is opened on every call and saved after every write; without one
// the workbook lives in memory.
type XLSXStore struct {
	path string

	mu  sync.Mutex
	mem *excelize.File
}

// NewXLSXStore creates a workbook-backed store. The file is created on first
// write if it does not exist yet.
func NewXLSXStore(path string) *XLSXStore {
	s := &XLSXStore{path: path}
	if path == "" {
		s.mem = excelize.NewFile()
	}
	return s
}

// ReadAll implements Store.
func (s *XLSXStore) ReadAll(ctx context.Context, table string) ([]Record, error) {
	var grid [][]string
	err := s.withFile(ctx, false, func(f *excelize.File) error {
		var err error
		grid, err = readSheet(f, table)
		return err
	})
	if err != nil {
		return nil, err
	}
	return recordsFromGrid(grid), nil
}

// HeaderRow implements Store.
func (s *XLSXStore) HeaderRow(ctx context.Context, table string) ([]string, error) {
	var header []string
	err := s.withFile(ctx, false, func(f *excelize.File) error {
		grid, err := readSheet(f, table)
		if err != nil {
			return err
		}
		header = []string{}
		if len(grid) > 0 {
			header = grid[0]
		}
		return nil
	})
	return header, err
}

// AppendRow implements Store.
func (s *XLSXStore) AppendRow(ctx context.Context, table string, values []string) error {
	return s.withFile(ctx, true, func(f *excelize.File) error {
		if err := ensureSheet(f, table); err != nil {
			return err
		}
		grid, err := readSheet(f, table)
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, len(grid)+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		if err := f.SetSheetRow(table, cell, &row); err != nil {
			return fmt.Errorf("failed to append row to %q: %w", table, err)
		}
		return nil
	})
}

// WriteCell implements Store.
func (s *XLSXStore) WriteCell(ctx context.Context, table string, row, col int, value string) error {
	return s.withFile(ctx, true, func(f *excelize.File) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := ensureSheet(f, table); err != nil {
			return err
		}
		if err := f.SetCellStr(table, cell, value); err != nil {
			return fmt.Errorf("failed to write %s of %q: %w", cell, table, err)
		}
		return nil
	})
}

// withFile runs fn against the workbook while holding the store lock. When
// save is set the workbook is persisted after fn succeeds.
func (s *XLSXStore) withFile(ctx context.Context, save bool, fn func(f *excelize.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mem != nil {
		return fn(s.mem)
	}

	f, err := excelize.OpenFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		f, err = excelize.NewFile(), nil
	}
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	if save {
		if err := f.SaveAs(s.path); err != nil {
			return fmt.Errorf("failed to save workbook %s: %w", s.path, err)
		}
	}
	return nil
}

// readSheet returns the raw rows of a worksheet; a missing sheet is empty.
func readSheet(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", sheet, err)
	}
	return rows, nil
}

func ensureSheet(f *excelize.File, sheet string) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx >= 0 {
		return nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	return nil
}
