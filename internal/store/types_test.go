package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordsFromGrid(t *testing.T) {
	assert.Empty(t, recordsFromGrid(nil))
	assert.Empty(t, recordsFromGrid([][]string{{"A", "B"}}))

	records := recordsFromGrid([][]string{
		{" Numero_Meio", "Status ", "", "Status"},
		{"07", "OPERANDO", "ignored", "shadowed"},
		{},
		{"09"},
	})
	assert.Equal(t, []Record{
		{"Numero_Meio": "07", "Status": "OPERANDO"},
		{"Numero_Meio": "", "Status": ""},
		{"Numero_Meio": "09", "Status": ""},
	}, records)
}
