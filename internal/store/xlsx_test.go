package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXStore_InMemory(t *testing.T) {
	testStoreContract(t, NewXLSXStore(""))
}

func TestXLSXStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equipamentos.xlsx")
	testStoreContract(t, NewXLSXStore(path))

	// A second store over the same file sees the persisted data.
	reopened := NewXLSXStore(path)
	records, err := reopened.ReadAll(context.Background(), "Equipamentos")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "INOPERANTE", records[1]["Status"])

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Equipamentos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "07", v)
}

func TestXLSXStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewXLSXStore("").ReadAll(ctx, "Equipamentos")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestXLSXStore_InvalidCell(t *testing.T) {
	err := NewXLSXStore("").WriteCell(context.Background(), "Equipamentos", 0, 1, "x")
	assert.Error(t, err)
}
