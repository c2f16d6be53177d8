package inventory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/parse"
	"equipment-status-backend/internal/store"
)

// Recorder appends maintenance and damage events and moves the equipment to
// the status the event leaves behind.
type Recorder struct {
	store      store.Store
	tables     Tables
	reconciler *Reconciler
	log        *zap.Logger
}

// NewRecorder creates a Recorder.
func NewRecorder(s store.Store, tables Tables, r *Reconciler, log *zap.Logger) *Recorder {
	return &Recorder{store: s, tables: tables, reconciler: r, log: log}
}

// RecordMaintenance appends ev to the maintenance log, then updates the
// equipment status. Process and scope may be given as key or label.
func (r *Recorder) RecordMaintenance(ctx context.Context, ev model.MaintenanceEvent) (model.MaintenanceEvent, error) {
	ev.EquipmentID = strings.TrimSpace(ev.EquipmentID)
	if ev.EquipmentID == "" {
		return ev, &Error{Kind: KindMissingRequired, Subject: "equipment_id"}
	}
	ev.EquipmentID = parse.PadIdentifier(ev.EquipmentID)
	if ev.Date.IsZero() {
		return ev, &Error{Kind: KindMissingRequired, Subject: "date"}
	}
	process, ok := model.ParseProcessType(ev.Process)
	if !ok {
		return ev, &Error{Kind: KindInvalidOption, Subject: "process"}
	}
	scope, ok := model.ParseMaintenanceScope(ev.Scope)
	if !ok {
		return ev, &Error{Kind: KindInvalidOption, Subject: "scope"}
	}
	status, err := allowedStatus(string(ev.Status), model.MaintenanceOutcomes)
	if err != nil {
		return ev, err
	}
	ev.Process, ev.Scope, ev.Status = process.Label, scope.Label, status
	if err := r.checkActive(ctx, ev.EquipmentID); err != nil {
		return ev, err
	}

	if err := r.store.AppendRow(ctx, r.tables.Maintenance, ev.Row()); err != nil {
		return ev, storeIO(err)
	}
	r.log.Info("maintenance recorded", zap.String("equipment", ev.EquipmentID), zap.String("status", string(status)))

	return ev, r.reconcile(ctx, ev.EquipmentID, status)
}

// RecordDamage appends ev to the damage log as unresolved, then updates the
// equipment status. Severity may be given as key or label.
func (r *Recorder) RecordDamage(ctx context.Context, ev model.DamageEvent) (model.DamageEvent, error) {
	ev.EquipmentID = strings.TrimSpace(ev.EquipmentID)
	if ev.EquipmentID == "" {
		return ev, &Error{Kind: KindMissingRequired, Subject: "equipment_id"}
	}
	ev.EquipmentID = parse.PadIdentifier(ev.EquipmentID)
	if ev.IdentifiedOn.IsZero() {
		return ev, &Error{Kind: KindMissingRequired, Subject: "identified_on"}
	}
	severity, ok := model.ParseSeverity(ev.Severity)
	if !ok {
		return ev, &Error{Kind: KindInvalidOption, Subject: "severity"}
	}
	status, err := allowedStatus(string(ev.Status), model.DamageOutcomes)
	if err != nil {
		return ev, err
	}
	ev.Severity, ev.Status, ev.Resolved = severity.Label, status, false
	if err := r.checkActive(ctx, ev.EquipmentID); err != nil {
		return ev, err
	}

	if err := r.store.AppendRow(ctx, r.tables.Damage, ev.Row()); err != nil {
		return ev, storeIO(err)
	}
	r.log.Info("damage recorded", zap.String("equipment", ev.EquipmentID), zap.String("status", string(status)))

	return ev, r.reconcile(ctx, ev.EquipmentID, status)
}

// reconcile runs after the append succeeded, so its failure leaves the event
// row in place.
func (r *Recorder) reconcile(ctx context.Context, id string, status model.Status) error {
	if err := r.reconciler.SetStatus(ctx, id, string(status)); err != nil {
		r.log.Warn("event recorded without status update", zap.String("equipment", id), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrStatusNotUpdated, err)
	}
	return nil
}

// checkActive rejects events for equipment whose active flag is "Não".
// Identifiers absent from the table pass, the reference is not enforced.
func (r *Recorder) checkActive(ctx context.Context, id string) error {
	records, err := r.store.ReadAll(ctx, r.tables.Equipment)
	if err != nil {
		return storeIO(err)
	}
	for _, rec := range records {
		if strings.TrimSpace(rec[model.ColNumber]) != id {
			continue
		}
		if strings.TrimSpace(rec[model.ColActive]) == model.No {
			return &Error{Kind: KindInvalidOption, Subject: "equipment_id " + id + " (inactive)"}
		}
		return nil
	}
	return nil
}

func allowedStatus(raw string, allowed []model.Status) (model.Status, error) {
	st, ok := model.ParseStatus(raw)
	if !ok || !st.In(allowed) {
		return "", &Error{Kind: KindInvalidStatus, Subject: strings.TrimSpace(raw)}
	}
	return st, nil
}
