package inventory

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"equipment-status-backend/internal/model"
	"equipment-status-backend/internal/parse"
	"equipment-status-backend/internal/store"
)

// Candidate is a registration request as typed into the form.
type Candidate struct {
	Number         string `json:"number"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	Classification string `json:"classification"`
	PartNumber     string `json:"part_number"`
	HourMeter      string `json:"hour_meter"`
	Chassis        string `json:"chassis"`
	Notes          string `json:"notes"`
}

// Validator checks a Candidate against the equipment table.
type Validator struct {
	store    store.Store
	table    string
	validate *validator.Validate
}

// NewValidator creates a Validator over the equipment table.
func NewValidator(s store.Store, table string) *Validator {
	return &Validator{store: s, table: table, validate: NewFieldValidator()}
}

// NewFieldValidator returns a validator with the "year4" tag registered.
func NewFieldValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("year4", func(fl validator.FieldLevel) bool {
		return parse.IsYear(fl.Field().String())
	})
	return v
}

// Validate runs the registration checks in order and returns the canonical
// two-digit identifier. The first failing check decides the error.
func (v *Validator) Validate(ctx context.Context, c Candidate) (string, error) {
	id, err := parse.Identifier(c.Number)
	if err != nil {
		return "", &Error{Kind: KindInvalidRange, Subject: strings.TrimSpace(c.Number), Err: err}
	}

	records, err := v.store.ReadAll(ctx, v.table)
	if err != nil {
		return "", storeIO(err)
	}
	for _, rec := range records {
		if parse.PadIdentifier(rec[model.ColNumber]) == id {
			return "", &Error{Kind: KindDuplicate, Subject: id}
		}
	}

	if err := v.validate.Var(strings.TrimSpace(c.Year), "year4"); err != nil {
		return "", &Error{Kind: KindInvalidYear, Subject: c.Year, Err: err}
	}

	for _, f := range []struct{ name, value string }{
		{"brand", c.Brand},
		{"model", c.Model},
		{"chassis", c.Chassis},
	} {
		if err := v.validate.Var(strings.TrimSpace(f.value), "required"); err != nil {
			return "", &Error{Kind: KindMissingRequired, Subject: f.name, Err: err}
		}
	}

	// Classification may be left blank; anything else must be a known option.
	if strings.TrimSpace(c.Classification) != "" {
		if _, ok := model.ParseClassification(c.Classification); !ok {
			return "", &Error{Kind: KindInvalidOption, Subject: "classification"}
		}
	}
	return id, nil
}
