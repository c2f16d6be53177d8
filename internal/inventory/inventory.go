// Package inventory holds the equipment tracker's business rules on top of a
// tabular store: registration, event recording and status reconciliation.
package inventory

import (
	"time"

	"go.uber.org/zap"

	"equipment-status-backend/internal/store"
)

// Tables names the three tables of the store.
type Tables struct {
	Equipment   string
	Maintenance string
	Damage      string
}

// DefaultTables returns the worksheet names of the original spreadsheet.
func DefaultTables() Tables {
	return Tables{Equipment: "Equipamentos", Maintenance: "Manutencoes", Damage: "Avarias"}
}

// All lists the tables in display order.
func (t Tables) All() []string {
	return []string{t.Equipment, t.Maintenance, t.Damage}
}

// Inventory wires the components around one store.
type Inventory struct {
	Store  store.Store
	Tables Tables

	Reconciler *Reconciler
	Validator  *Validator
	Registry   *Registry
	Recorder   *Recorder
	Views      *Views

	log *zap.Logger
}

// New builds every component over s. now supplies the registration date.
func New(s store.Store, tables Tables, now func() time.Time, log *zap.Logger) *Inventory {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	reconciler := NewReconciler(s, tables.Equipment, log)
	validator := NewValidator(s, tables.Equipment)
	return &Inventory{
		Store:      s,
		Tables:     tables,
		Reconciler: reconciler,
		Validator:  validator,
		Registry:   NewRegistry(s, tables.Equipment, validator, now, log),
		Recorder:   NewRecorder(s, tables, reconciler, log),
		Views:      NewViews(s, tables),
		log:        log,
	}
}
