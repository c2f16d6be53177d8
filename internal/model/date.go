package model

import (
	"encoding/json"
	"strings"
	"time"

	"equipment-status-backend/internal/parse"
)

// Date is a calendar day rendered as DD/MM/YYYY. The zero value renders as an
// empty string, which is how optional dates are stored.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads a stored or submitted date; unparsable input yields the zero Date.
func ParseDate(raw string) Date {
	t, err := parse.Date(raw)
	if err != nil {
		return Date{}
	}
	return NewDate(t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return parse.FormatDate(d.Time)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts DD/MM/YYYY, YYYY-MM-DD or an empty string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	t, err := parse.Date(s)
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}
