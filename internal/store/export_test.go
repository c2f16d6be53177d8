package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	ctx := context.Background()
	src := NewXLSXStore("")
	require.NoError(t, src.AppendRow(ctx, "Equipamentos", []string{"ID", "Numero_Meio", "Status"}))
	require.NoError(t, src.AppendRow(ctx, "Equipamentos", []string{"", "07", "OPERANDO"}))
	require.NoError(t, src.AppendRow(ctx, "Avarias", []string{"ID", "Numero_Meio"}))

	var buf bytes.Buffer
	require.NoError(t, Export(ctx, src, []string{"Equipamentos", "Manutencoes", "Avarias"}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Equipamentos", "Manutencoes", "Avarias"}, f.GetSheetList())

	rows, err := f.GetRows("Equipamentos")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ID", "Numero_Meio", "Status"}, {"", "07", "OPERANDO"}}, rows)

	rows, err = f.GetRows("Manutencoes")
	require.NoError(t, err)
	assert.Empty(t, rows)

	styleID, err := f.GetCellStyle("Equipamentos", "B1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}
