package model

import "strings"

// Status is the operational state of a piece of equipment, stored verbatim in
// the Status column.
type Status string

const (
	StatusOperating           Status = "OPERANDO"
	StatusOperatingRestricted Status = "OPERANDO COM RESTRIÇÕES"
	StatusInoperative         Status = "INOPERANTE"
	StatusProbableWriteOff    Status = "PROVÁVEL BAIXA/LVAD"
)

// Statuses lists every status in dashboard order.
var Statuses = []Status{
	StatusOperating,
	StatusOperatingRestricted,
	StatusInoperative,
	StatusProbableWriteOff,
}

// MaintenanceOutcomes are the statuses a maintenance event may leave behind.
var MaintenanceOutcomes = []Status{StatusOperating, StatusOperatingRestricted}

// DamageOutcomes are the statuses a damage report may leave behind.
var DamageOutcomes = []Status{StatusOperatingRestricted, StatusInoperative, StatusProbableWriteOff}

var statusKeys = map[string]Status{
	"OPERATING":            StatusOperating,
	"OPERATING_RESTRICTED": StatusOperatingRestricted,
	"INOPERATIVE":          StatusInoperative,
	"PROBABLE_WRITE_OFF":   StatusProbableWriteOff,
}

// ParseStatus accepts either the stored label or its English key, in any case.
func ParseStatus(raw string) (Status, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if st, ok := statusKeys[s]; ok {
		return st, true
	}
	for _, st := range Statuses {
		if s == string(st) {
			return st, true
		}
	}
	return "", false
}

// In reports whether s is one of allowed.
func (s Status) In(allowed []Status) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
