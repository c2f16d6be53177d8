package inventory

import (
	"errors"
	"fmt"
)

// Kind classifies failures of core operations so callers can render them.
type Kind string

const (
	KindStoreEmpty      Kind = "store_empty"
	KindNotFound        Kind = "not_found"
	KindMissingColumn   Kind = "missing_column"
	KindInvalidRange    Kind = "invalid_range"
	KindInvalidYear     Kind = "invalid_year"
	KindDuplicate       Kind = "duplicate"
	KindMissingRequired Kind = "missing_required"
	KindInvalidOption   Kind = "invalid_option"
	KindInvalidStatus   Kind = "invalid_status"
	KindStoreIO         Kind = "store_io"
)

// ErrStatusNotUpdated marks an event that was appended while the follow-up
// status write failed. It is joined with the reconciler's error.
var ErrStatusNotUpdated = errors.New("event recorded but equipment status was not updated")

// Error is returned by every core operation.
type Error struct {
	Kind Kind
	// Subject is the equipment number, column or field the error is about.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStoreEmpty:
		return "equipment sheet has no rows"
	case KindNotFound:
		return fmt.Sprintf("equipment %s not found", e.Subject)
	case KindMissingColumn:
		return fmt.Sprintf("column %q not found in sheet header", e.Subject)
	case KindInvalidRange:
		return "equipment number must be between 01 and 99"
	case KindInvalidYear:
		return "year must contain 4 digits"
	case KindDuplicate:
		return fmt.Sprintf("equipment number %s is already registered", e.Subject)
	case KindMissingRequired:
		return fmt.Sprintf("required field missing: %s", e.Subject)
	case KindInvalidOption:
		return fmt.Sprintf("invalid value for %s", e.Subject)
	case KindInvalidStatus:
		return fmt.Sprintf("status %q is not allowed here", e.Subject)
	case KindStoreIO:
		return fmt.Sprintf("store access failed: %v", e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind carried by err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func storeIO(err error) error {
	return &Error{Kind: KindStoreIO, Err: err}
}
