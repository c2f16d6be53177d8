package inventory

import (
	"context"

	"go.uber.org/zap"

	"equipment-status-backend/internal/model"
)

// Headers maps each table to the header row it is created with.
func (t Tables) Headers() map[string][]string {
	return map[string][]string{
		t.Equipment:   model.EquipmentHeader,
		t.Maintenance: model.MaintenanceHeader,
		t.Damage:      model.DamageHeader,
	}
}

// EnsureHeaders writes the header row of every table whose header is empty.
// Tables that already have a header are left untouched.
func (inv *Inventory) EnsureHeaders(ctx context.Context) error {
	headers := inv.Tables.Headers()
	for _, table := range inv.Tables.All() {
		existing, err := inv.Store.HeaderRow(ctx, table)
		if err != nil {
			return storeIO(err)
		}
		if !blank(existing) {
			continue
		}
		if err := inv.Store.AppendRow(ctx, table, headers[table]); err != nil {
			return storeIO(err)
		}
		inv.log.Info("header row created", zap.String("table", table))
	}
	return nil
}

func blank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
