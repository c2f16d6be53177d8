package inventory

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/store"
)

// Registry appends new equipment rows.
type Registry struct {
	store     store.Store
	table     string
	validator *Validator
	now       func() time.Time
	log       *zap.Logger
}

// NewRegistry creates a Registry. now supplies the registration date.
func NewRegistry(s store.Store, table string, v *Validator, now func() time.Time, log *zap.Logger) *Registry {
	return &Registry{store: s, table: table, validator: v, now: now, log: log}
}

// Register validates c and appends it as an active, operating forklift.
func (r *Registry) Register(ctx context.Context, c Candidate) (model.Equipment, error) {
	id, err := r.validator.Validate(ctx, c)
	if err != nil {
		return model.Equipment{}, err
	}
	class, _ := model.ParseClassification(c.Classification) // zero Option when blank

	e := model.Equipment{
		Number:         id,
		Category:       model.CategoryForklift,
		Brand:          upper(c.Brand),
		Model:          upper(c.Model),
		Year:           strings.TrimSpace(c.Year),
		Classification: upper(class.Label),
		PartNumber:     upper(c.PartNumber),
		HourMeter:      upper(c.HourMeter),
		Chassis:        upper(c.Chassis),
		Status:         model.StatusOperating,
		RegisteredOn:   model.NewDate(r.now()),
		Notes:          upper(c.Notes),
		Active:         true,
	}
	if err := r.store.AppendRow(ctx, r.table, e.Row()); err != nil {
		return model.Equipment{}, storeIO(err)
	}

	r.log.Info("equipment registered", zap.String("equipment", id), zap.String("brand", e.Brand))
	return e, nil
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
