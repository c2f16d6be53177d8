package inventory

import (
	"context"
	"strings"
	"time"

	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/parse"
	"equipment-status-backend/internal/store"
)

// Views answers the read-only queries behind the listings and dashboard.
type Views struct {
	store  store.Store
	tables Tables
}

// NewViews creates Views over the three tables.
func NewViews(s store.Store, tables Tables) *Views {
	return &Views{store: s, tables: tables}
}

// Equipment lists equipment rows in sheet order, skipping blank rows.
func (v *Views) Equipment(ctx context.Context, activeOnly bool) ([]model.Equipment, error) {
	records, err := v.store.ReadAll(ctx, v.tables.Equipment)
	if err != nil {
		return nil, storeIO(err)
	}
	out := make([]model.Equipment, 0, len(records))
	for _, rec := range records {
		e := model.EquipmentFromRecord(rec)
		if e.Number == "" || (activeOnly && !e.Active) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Find returns the first equipment whose number matches id after padding.
func (v *Views) Find(ctx context.Context, id string) (model.Equipment, error) {
	all, err := v.Equipment(ctx, false)
	if err != nil {
		return model.Equipment{}, err
	}
	want := parse.PadIdentifier(id)
	for _, e := range all {
		if parse.PadIdentifier(e.Number) == want {
			return e, nil
		}
	}
	return model.Equipment{}, &Error{Kind: KindNotFound, Subject: want}
}

// Maintenance lists maintenance events, filtered by equipment unless
// equipmentID is blank.
func (v *Views) Maintenance(ctx context.Context, equipmentID string) ([]model.MaintenanceEvent, error) {
	records, err := v.store.ReadAll(ctx, v.tables.Maintenance)
	if err != nil {
		return nil, storeIO(err)
	}
	out := make([]model.MaintenanceEvent, 0, len(records))
	for _, rec := range records {
		ev := model.MaintenanceFromRecord(rec)
		if ev.EquipmentID == "" || !matches(ev.EquipmentID, equipmentID) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// Damage lists damage events, filtered by equipment unless equipmentID is
// blank.
func (v *Views) Damage(ctx context.Context, equipmentID string) ([]model.DamageEvent, error) {
	records, err := v.store.ReadAll(ctx, v.tables.Damage)
	if err != nil {
		return nil, storeIO(err)
	}
	out := make([]model.DamageEvent, 0, len(records))
	for _, rec := range records {
		ev := model.DamageFromRecord(rec)
		if ev.EquipmentID == "" || !matches(ev.EquipmentID, equipmentID) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func matches(stored, filter string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	return parse.PadIdentifier(stored) == parse.PadIdentifier(filter)
}

// StatusCount is one slice of the status distribution.
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// StatusSummary is the distribution of active equipment over statuses.
// Statuses outside the known set are counted in Other.
type StatusSummary struct {
	Total    int           `json:"total"`
	Statuses []StatusCount `json:"statuses"`
	Other    int           `json:"other"`
}

// StatusSummary counts active equipment per status.
func (v *Views) StatusSummary(ctx context.Context) (StatusSummary, error) {
	all, err := v.Equipment(ctx, true)
	if err != nil {
		return StatusSummary{}, err
	}
	counts := make(map[model.Status]int, len(model.Statuses))
	sum := StatusSummary{Total: len(all)}
	for _, e := range all {
		st, ok := model.ParseStatus(string(e.Status))
		if !ok {
			sum.Other++
			continue
		}
		counts[st]++
	}
	for _, st := range model.Statuses {
		sum.Statuses = append(sum.Statuses, StatusCount{Status: st, Count: counts[st]})
	}
	return sum, nil
}

// MonthCount holds event counts for one calendar month, keyed "YYYY-MM".
type MonthCount struct {
	Month       string `json:"month"`
	Maintenance int    `json:"maintenance"`
	Damage      int    `json:"damage"`
}

// EventCounts compares maintenance and damage activity over a period.
type EventCounts struct {
	From        model.Date   `json:"from"`
	To          model.Date   `json:"to"`
	Maintenance int          `json:"maintenance"`
	Damage      int          `json:"damage"`
	Months      []MonthCount `json:"months"`
}

// EventCounts counts events dated within [from, to], both days inclusive.
// Maintenance is dated by its maintenance date, damage by its identification
// date. Rows whose date cannot be parsed are skipped.
func (v *Views) EventCounts(ctx context.Context, from, to time.Time) (EventCounts, error) {
	lo, hi := model.NewDate(from), model.NewDate(to)
	if hi.Before(lo.Time) {
		lo, hi = hi, lo
	}
	out := EventCounts{From: lo, To: hi}

	maintenance, err := v.Maintenance(ctx, "")
	if err != nil {
		return out, err
	}
	damage, err := v.Damage(ctx, "")
	if err != nil {
		return out, err
	}

	months := monthBuckets(lo, hi)
	index := make(map[string]int, len(months))
	for i, m := range months {
		index[m.Month] = i
	}
	inRange := func(d model.Date) (int, bool) {
		if d.IsZero() || d.Before(lo.Time) || d.After(hi.Time) {
			return 0, false
		}
		i, ok := index[d.Format("2006-01")]
		return i, ok
	}

	for _, ev := range maintenance {
		if i, ok := inRange(ev.Date); ok {
			out.Maintenance++
			months[i].Maintenance++
		}
	}
	for _, ev := range damage {
		if i, ok := inRange(ev.IdentifiedOn); ok {
			out.Damage++
			months[i].Damage++
		}
	}
	out.Months = months
	return out, nil
}

func monthBuckets(lo, hi model.Date) []MonthCount {
	var out []MonthCount
	cur := time.Date(lo.Year(), lo.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(hi.Time) {
		out = append(out, MonthCount{Month: cur.Format("2006-01")})
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}
