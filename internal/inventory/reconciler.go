package inventory

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/store"
)

// Reconciler overwrites the Status cell of one equipment row.
type Reconciler struct {
	store store.Store
	table string
	log   *zap.Logger
}

// NewReconciler creates a Reconciler over the equipment table.
func NewReconciler(s store.Store, table string, log *zap.Logger) *Reconciler {
	return &Reconciler{store: s, table: table, log: log}
}

// SetStatus finds the first row whose Numero_Meio equals equipmentID (both
// trimmed, compared as text) and writes newStatus, upper-cased, into its
// Status cell. It performs exactly one cell write, or none on error.
//
// The row position is computed from a full read, so a row inserted by another
// writer between the read and the write shifts the target.
func (r *Reconciler) SetStatus(ctx context.Context, equipmentID, newStatus string) error {
	records, err := r.store.ReadAll(ctx, r.table)
	if err != nil {
		return storeIO(err)
	}
	if len(records) == 0 {
		return &Error{Kind: KindStoreEmpty}
	}

	id := strings.TrimSpace(equipmentID)
	index := -1
	for i, rec := range records {
		if strings.TrimSpace(rec[model.ColNumber]) == id {
			index = i
			break
		}
	}
	if index < 0 {
		return &Error{Kind: KindNotFound, Subject: id}
	}
	// One header row, 1-based.
	row := index + 2

	header, err := r.store.HeaderRow(ctx, r.table)
	if err != nil {
		return storeIO(err)
	}
	col := 0
	for i, name := range header {
		if strings.TrimSpace(name) == model.ColStatus {
			col = i + 1
			break
		}
	}
	if col == 0 {
		return &Error{Kind: KindMissingColumn, Subject: model.ColStatus}
	}

	value := strings.ToUpper(newStatus)
	if err := r.store.WriteCell(ctx, r.table, row, col, value); err != nil {
		return storeIO(err)
	}

	r.log.Info("equipment status updated",
		zap.String("equipment", id),
		zap.String("status", value),
		zap.Int("row", row),
		zap.Int("col", col))
	return nil
}
