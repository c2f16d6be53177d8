package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"equipment-status-backend/config"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// sheetsStore reads and writes a Google spreadsheet, one worksheet per table.
type sheetsStore struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewSheetsStore connects to the spreadsheet described by cfg. When opts is
// empty, service-account credentials are loaded from cfg. A spreadsheet given
// only by name is resolved through the Drive API.
func NewSheetsStore(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (Store, error) {
	if len(opts) == 0 {
		creds, err := loadCredentials(ctx, cfg)
		if err != nil {
			return nil, err
		}
		opts = []option.ClientOption{option.WithCredentials(creds)}
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating Google Sheets service: %w", err)
	}

	id := cfg.SpreadsheetID
	if id == "" {
		driveSvc, err := drive.NewService(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating Google Drive service: %w", err)
		}
		id, err = lookupSpreadsheetID(ctx, driveSvc, cfg.SpreadsheetName)
		if err != nil {
			return nil, err
		}
	}

	return &sheetsStore{values: svc.Spreadsheets.Values, spreadsheetID: id}, nil
}

func loadCredentials(ctx context.Context, cfg config.SheetsConfig) (*google.Credentials, error) {
	var data []byte
	switch {
	case cfg.CredentialsJSON != "":
		data = []byte(cfg.CredentialsJSON)
	case cfg.CredentialsPath != "":
		b, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("error reading credentials file: %w", err)
		}
		data = b
	default:
		return nil, fmt.Errorf("GOOGLE_SHEETS_CREDENTIALS_PATH or GOOGLE_SHEETS_CREDENTIALS_JSON must be set")
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("error loading credentials: %w", err)
	}
	return creds, nil
}

func lookupSpreadsheetID(ctx context.Context, d *drive.Service, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("spreadsheet id or name must be configured")
	}
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`), spreadsheetMimeType)
	res, err := d.Files.List().Q(q).Fields("files(id, name)").PageSize(10).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error searching spreadsheet %q: %w", name, err)
	}
	if len(res.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found or not shared with the service account", name)
	}
	return res.Files[0].Id, nil
}

// ReadAll implements Store.
func (s *sheetsStore) ReadAll(ctx context.Context, table string) ([]Record, error) {
	grid, err := s.get(ctx, sheetRange(table, ""))
	if err != nil {
		return nil, err
	}
	return recordsFromGrid(grid), nil
}

// HeaderRow implements Store.
func (s *sheetsStore) HeaderRow(ctx context.Context, table string) ([]string, error) {
	grid, err := s.get(ctx, sheetRange(table, "1:1"))
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return []string{}, nil
	}
	return grid[0], nil
}

// AppendRow implements Store. Values are written RAW so "07" stays text.
func (s *sheetsStore) AppendRow(ctx context.Context, table string, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	_, err := s.values.Append(s.spreadsheetID, sheetRange(table, ""), &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %q: %w", table, err)
	}
	return nil
}

// WriteCell implements Store.
func (s *sheetsStore) WriteCell(ctx context.Context, table string, row, col int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	_, err = s.values.Update(s.spreadsheetID, sheetRange(table, cell), &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write %s of %q: %w", cell, table, err)
	}
	return nil
}

func (s *sheetsStore) get(ctx context.Context, rng string) ([][]string, error) {
	resp, err := s.values.Get(s.spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rng, err)
	}
	grid := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			grid[i][j] = fmt.Sprint(v)
		}
	}
	return grid, nil
}

// sheetRange builds an A1 range for a worksheet; an empty cell addresses the
// whole sheet.
func sheetRange(table, cell string) string {
	quoted := "'" + strings.ReplaceAll(table, "'", "''") + "'"
	if cell == "" {
		return quoted
	}
	return quoted + "!" + cell
}
