package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment-status-backend/internal/model"
)

func TestViews_EquipmentAndFind(t *testing.T) {
	ctx := context.Background()
	inv, _ := newTestInventory(t)

	retired := equipmentRow("03", model.StatusProbableWriteOff)
	retired[13] = model.No
	seedEquipment(t, inv,
		equipmentRow("01", model.StatusOperating),
		make([]string, len(model.EquipmentHeader)),
		retired,
	)

	all, err := inv.Views.Equipment(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2, "blank rows are skipped")

	active, err := inv.Views.Equipment(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "01", active[0].Number)

	e, err := inv.Views.Find(ctx, "3")
	require.NoError(t, err)
	assert.False(t, e.Active)

	_, err = inv.Views.Find(ctx, "04")
	assertKind(t, err, KindNotFound)
}

func TestViews_HistoryFilter(t *testing.T) {
	ctx := context.Background()
	inv, _ := newTestInventory(t)
	for _, ev := range []model.MaintenanceEvent{
		{EquipmentID: "01", Date: date(2026, 1, 5), Status: model.StatusOperating},
		{EquipmentID: "02", Date: date(2026, 1, 6), Status: model.StatusOperating},
		{EquipmentID: "01", Date: date(2026, 2, 7), Status: model.StatusOperatingRestricted},
	} {
		require.NoError(t, inv.Store.AppendRow(ctx, inv.Tables.Maintenance, ev.Row()))
	}

	all, err := inv.Views.Maintenance(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	one, err := inv.Views.Maintenance(ctx, "1")
	require.NoError(t, err)
	require.Len(t, one, 2)
	assert.Equal(t, date(2026, 2, 7), one[1].Date)
	assert.Equal(t, model.StatusOperatingRestricted, one[1].Status)
}

func TestViews_StatusSummary(t *testing.T) {
	ctx := context.Background()
	inv, _ := newTestInventory(t)

	retired := equipmentRow("09", model.StatusInoperative)
	retired[13] = model.No
	seedEquipment(t, inv,
		equipmentRow("01", model.StatusOperating),
		equipmentRow("02", model.StatusOperating),
		equipmentRow("03", model.StatusInoperative),
		equipmentRow("04", "EM REVISÃO"),
		retired,
	)

	sum, err := inv.Views.StatusSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.Other)
	assert.Equal(t, []StatusCount{
		{Status: model.StatusOperating, Count: 2},
		{Status: model.StatusOperatingRestricted, Count: 0},
		{Status: model.StatusInoperative, Count: 1},
		{Status: model.StatusProbableWriteOff, Count: 0},
	}, sum.Statuses)
}

func TestViews_EventCounts(t *testing.T) {
	ctx := context.Background()
	inv, _ := newTestInventory(t)

	for _, ev := range []model.MaintenanceEvent{
		{EquipmentID: "01", Date: date(2026, 1, 1)},
		{EquipmentID: "01", Date: date(2026, 3, 31)},
		{EquipmentID: "01", Date: date(2026, 4, 1)},
		{EquipmentID: "01"},
	} {
		require.NoError(t, inv.Store.AppendRow(ctx, inv.Tables.Maintenance, ev.Row()))
	}
	for _, ev := range []model.DamageEvent{
		{EquipmentID: "02", IdentifiedOn: date(2026, 2, 10)},
		{EquipmentID: "02", IdentifiedOn: date(2025, 12, 31)},
	} {
		require.NoError(t, inv.Store.AppendRow(ctx, inv.Tables.Damage, ev.Row()))
	}

	from := time.Date(2026, 1, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)
	counts, err := inv.Views.EventCounts(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Maintenance)
	assert.Equal(t, 1, counts.Damage)
	assert.Equal(t, []MonthCount{
		{Month: "2026-01", Maintenance: 1},
		{Month: "2026-02", Damage: 1},
		{Month: "2026-03", Maintenance: 1},
	}, counts.Months)

	swapped, err := inv.Views.EventCounts(ctx, to, from)
	require.NoError(t, err)
	assert.Equal(t, counts, swapped)
}
