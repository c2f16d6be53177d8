package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Status
		ok       bool
	}{
		{"OPERANDO", StatusOperating, true},
		{"operando", StatusOperating, true},
		{"operating", StatusOperating, true},
		{" Inoperante ", StatusInoperative, true},
		{"operando com restrições", StatusOperatingRestricted, true},
		{"OPERATING_RESTRICTED", StatusOperatingRestricted, true},
		{"provável baixa/lvad", StatusProbableWriteOff, true},
		{"probable_write_off", StatusProbableWriteOff, true},
		{"BROKEN", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, ok := ParseStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.expected, got, tc.raw)
	}
}

func TestStatusIn(t *testing.T) {
	assert.True(t, StatusOperating.In(MaintenanceOutcomes))
	assert.False(t, StatusInoperative.In(MaintenanceOutcomes))
	assert.True(t, StatusInoperative.In(DamageOutcomes))
	assert.False(t, StatusOperating.In(DamageOutcomes))
}

func TestOptionLookup(t *testing.T) {
	o, ok := ParseClassification("retrátil")
	require.True(t, ok)
	assert.Equal(t, "Retrátil", o.Label)

	o, ok = ParseClassification("STRADDLE")
	require.True(t, ok)
	assert.Equal(t, "Patolada", o.Label)

	_, ok = ParseClassification("Reach")
	assert.False(t, ok)

	o, ok = ParseSeverity("high")
	require.True(t, ok)
	assert.Equal(t, "ALTA (inoperante ou provável baixa)", o.Label)

	o, ok = ParseProcessType("Contrato de Manutenção")
	require.True(t, ok)
	assert.Equal(t, "maintenance_contract", o.Key)

	o, ok = ParseMaintenanceScope("partial")
	require.True(t, ok)
	assert.Equal(t, "Manutenção Parcial", o.Label)
}

func TestEquipment_RowMatchesHeader(t *testing.T) {
	e := Equipment{
		Number:         "07",
		Category:       CategoryForklift,
		Brand:          "CATERPILLAR",
		Model:          "X1",
		Year:           "2024",
		Classification: "RETRÁTIL",
		Chassis:        "ABC123",
		Status:         StatusOperating,
		RegisteredOn:   NewDate(time.Date(2026, 10, 16, 15, 4, 5, 0, time.UTC)),
		Active:         true,
	}
	row := e.Row()
	require.Len(t, row, len(EquipmentHeader))
	assert.Equal(t, []string{
		"", "07", "EMPILHADEIRA", "CATERPILLAR", "X1", "2024", "RETRÁTIL",
		"", "", "ABC123", "OPERANDO", "16/10/2026", "", "Sim",
	}, row)

	record := make(map[string]string, len(row))
	for i, h := range EquipmentHeader {
		record[h] = row[i]
	}
	assert.Equal(t, e, EquipmentFromRecord(record))
}

func TestMaintenanceEvent_Row(t *testing.T) {
	ev := MaintenanceEvent{
		EquipmentID:   "07",
		Date:          NewDate(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)),
		Process:       "Pregão",
		ProcessNumber: "nota de empenho nº 01/2026",
		Scope:         "Manutenção Completa",
		Company:       "acme",
		Contact:       "joão",
		Status:        StatusOperating,
	}
	row := ev.Row()
	require.Len(t, row, len(MaintenanceHeader))
	assert.Equal(t, []string{
		"", "07", "MANUTENÇÃO", "03/02/2026", "PREGÃO", "NOTA DE EMPENHO Nº 01/2026",
		"MANUTENÇÃO COMPLETA", "ACME", "JOÃO", "OPERANDO", "",
	}, row)
}

func TestDamageEvent_Row(t *testing.T) {
	ev := DamageEvent{
		EquipmentID:  "07",
		IdentifiedOn: NewDate(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)),
		Severity:     Severities[2].Label,
		Description:  "mastro empenado",
		Status:       StatusInoperative,
	}
	row := ev.Row()
	require.Len(t, row, len(DamageHeader))
	assert.Equal(t, []string{
		"", "07", "03/02/2026", "", "AVARIA", "ALTA (inoperante ou provável baixa)",
		"INOPERANTE", "MASTRO EMPENADO", "Não",
	}, row)

	record := make(map[string]string, len(row))
	for i, h := range DamageHeader {
		record[h] = row[i]
	}
	back := DamageFromRecord(record)
	assert.Equal(t, "07", back.EquipmentID)
	assert.True(t, back.IncidentOn.IsZero())
	assert.False(t, back.Resolved)
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		A Date `json:"a"`
		B Date `json:"b"`
		C Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2026-05-01","b":"01/05/2026","c":""}`), &payload))
	assert.Equal(t, "01/05/2026", payload.A.String())
	assert.True(t, payload.A.Equal(payload.B.Time))
	assert.True(t, payload.C.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"01/05/2026","b":"01/05/2026","c":""}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a":"May 1st"}`), &payload))
}
