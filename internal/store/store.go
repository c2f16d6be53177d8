package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"equipment-status-backend/internal/model"
)

// gormStore keeps every table as cells in a single relational table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// ReadAll implements Store.
func (s *gormStore) ReadAll(ctx context.Context, table string) ([]Record, error) {
	grid, err := s.fetchGrid(ctx, table)
	if err != nil {
		return nil, err
	}
	return recordsFromGrid(grid), nil
}

// HeaderRow implements Store.
func (s *gormStore) HeaderRow(ctx context.Context, table string) ([]string, error) {
	var cells []model.Cell
	if err := s.db.WithContext(ctx).
		Where("sheet = ? AND row_num = ?", table, 1).
		Order("col_num").
		Find(&cells).Error; err != nil {
		return nil, fmt.Errorf("failed to read header of %q: %w", table, err)
	}
	return rowFromCells(cells), nil
}

// AppendRow implements Store. The next row number is computed inside the
// transaction that inserts the cells.
func (s *gormStore) AppendRow(ctx context.Context, table string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&model.Cell{}).
			Where("sheet = ?", table).
			Select("COALESCE(MAX(row_num), 0)").
			Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to find last row of %q: %w", table, err)
		}

		cells := make([]model.Cell, len(values))
		for i, v := range values {
			cells[i] = model.Cell{Sheet: table, RowNum: last + 1, ColNum: i + 1, Value: v}
		}
		if err := tx.Create(&cells).Error; err != nil {
			return fmt.Errorf("failed to append row %d to %q: %w", last+1, table, err)
		}
		return nil
	})
}

// WriteCell implements Store.
func (s *gormStore) WriteCell(ctx context.Context, table string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid cell position (%d, %d)", row, col)
	}
	cell := model.Cell{Sheet: table, RowNum: row, ColNum: col, Value: value}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sheet"}, {Name: "row_num"}, {Name: "col_num"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&cell).Error; err != nil {
		return fmt.Errorf("failed to write cell (%d, %d) of %q: %w", row, col, table, err)
	}
	return nil
}

func (s *gormStore) fetchGrid(ctx context.Context, table string) ([][]string, error) {
	var cells []model.Cell
	if err := s.db.WithContext(ctx).
		Where("sheet = ?", table).
		Order("row_num, col_num").
		Find(&cells).Error; err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", table, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	grid := make([][]string, cells[len(cells)-1].RowNum)
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i == len(cells) || cells[i].RowNum != cells[start].RowNum {
			grid[cells[start].RowNum-1] = rowFromCells(cells[start:i])
			start = i
		}
	}
	return grid, nil
}

// rowFromCells lays out cells of a single row by column; gaps read as "".
func rowFromCells(cells []model.Cell) []string {
	if len(cells) == 0 {
		return []string{}
	}
	width := 0
	for _, c := range cells {
		if c.ColNum > width {
			width = c.ColNum
		}
	}
	row := make([]string, width)
	for _, c := range cells {
		if c.ColNum >= 1 {
			row[c.ColNum-1] = c.Value
		}
	}
	return row
}
