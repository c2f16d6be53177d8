package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-sheet date format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

const isoDateLayout = "2006-01-02"

var (
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	yearRe   = regexp.MustCompile(`^[0-9]{4}$`)
)

// PadIdentifier left-pads raw with zeros to two characters, the way the
// equipment number is written to the sheet. It does not validate.
func PadIdentifier(raw string) string {
	s := strings.TrimSpace(raw)
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

// Identifier normalises an equipment number to its two-digit form and checks
// it lies in [1, 99]. "7" and "007" both yield "07".
func Identifier(raw string) (string, error) {
	s := PadIdentifier(raw)
	if !digitsRe.MatchString(s) {
		return "", fmt.Errorf("equipment number %q is not numeric", raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 99 {
		return "", fmt.Errorf("equipment number %q is outside 01-99", raw)
	}
	return fmt.Sprintf("%02d", n), nil
}

// IsYear reports whether s is exactly four ASCII digits.
func IsYear(s string) bool {
	return yearRe.MatchString(s)
}

// FormatDate renders t as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Date accepts DD/MM/YYYY (sheet format) or YYYY-MM-DD (form/JSON input).
func Date(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range []string{DateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %q", raw)
}

// OptionalDate is Date for fields that may be left blank; blank yields nil.
func OptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := Date(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
