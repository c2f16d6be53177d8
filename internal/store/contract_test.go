package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreContract exercises the behaviour every backend must share.
func testStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	const table = "Equipamentos"

	records, err := s.ReadAll(ctx, table)
	require.NoError(t, err)
	assert.Empty(t, records, "empty table reads as no records")

	header, err := s.HeaderRow(ctx, table)
	require.NoError(t, err)
	assert.Empty(t, header)

	require.NoError(t, s.AppendRow(ctx, table, []string{"ID", " Numero_Meio ", "Marca", "Status"}))
	records, err = s.ReadAll(ctx, table)
	require.NoError(t, err)
	assert.Empty(t, records, "header only reads as no records")

	require.NoError(t, s.AppendRow(ctx, table, []string{"", "07", "CATERPILLAR", "OPERANDO"}))
	require.NoError(t, s.AppendRow(ctx, table, []string{"", "12", "TOYOTA", "OPERANDO"}))

	records, err = s.ReadAll(ctx, table)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "07", records[0]["Numero_Meio"], "header names are trimmed, leading zeros kept")
	assert.Equal(t, "", records[0]["ID"])
	assert.Equal(t, "TOYOTA", records[1]["Marca"])

	header, err = s.HeaderRow(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", " Numero_Meio ", "Marca", "Status"}, header)

	require.NoError(t, s.WriteCell(ctx, table, 3, 4, "INOPERANTE"))
	records, err = s.ReadAll(ctx, table)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "OPERANDO", records[0]["Status"])
	assert.Equal(t, "INOPERANTE", records[1]["Status"])
	assert.Equal(t, "12", records[1]["Numero_Meio"])

	other, err := s.ReadAll(ctx, "Avarias")
	require.NoError(t, err)
	assert.Empty(t, other, "tables are independent")
}
