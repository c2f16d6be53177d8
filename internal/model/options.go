package model

import "strings"

// Option is a fixed choice offered by a form: a stable English key and the
// label written to the sheet.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// lookup matches raw against keys and labels, ignoring case and surrounding
// whitespace.
func lookup(options []Option, raw string) (Option, bool) {
	s := strings.TrimSpace(raw)
	for _, o := range options {
		if strings.EqualFold(s, o.Key) || strings.EqualFold(s, o.Label) {
			return o, true
		}
	}
	return Option{}, false
}

// Classifications of forklift.
var Classifications = []Option{
	{Key: "retractable", Label: "Retrátil"},
	{Key: "selector", Label: "Selecionadora"},
	{Key: "straddle", Label: "Patolada"},
}

// ProcessTypes are the procurement routes a maintenance can go through.
var ProcessTypes = []Option{
	{Key: "auction", Label: "Pregão"},
	{Key: "electronic_waiver", Label: "Dispensa Eletrônica"},
	{Key: "petty_cash", Label: "Suprimento de Fundos"},
	{Key: "warranty", Label: "Garantia"},
	{Key: "maintenance_contract", Label: "Contrato de Manutenção"},
	{Key: "other", Label: "Outro"},
}

// MaintenanceScopes.
var MaintenanceScopes = []Option{
	{Key: "full", Label: "Manutenção Completa"},
	{Key: "partial", Label: "Manutenção Parcial"},
}

// Severities carry their description in the label, as stored.
var Severities = []Option{
	{Key: "low", Label: "BAIXA (continua operando)"},
	{Key: "medium", Label: "MÉDIA (operando com restrição)"},
	{Key: "high", Label: "ALTA (inoperante ou provável baixa)"},
}

// ParseClassification resolves a classification key or label.
func ParseClassification(raw string) (Option, bool) { return lookup(Classifications, raw) }

// ParseProcessType resolves a process type key or label.
func ParseProcessType(raw string) (Option, bool) { return lookup(ProcessTypes, raw) }

// ParseMaintenanceScope resolves a maintenance scope key or label.
func ParseMaintenanceScope(raw string) (Option, bool) { return lookup(MaintenanceScopes, raw) }

// ParseSeverity resolves a severity key or label.
func ParseSeverity(raw string) (Option, bool) { return lookup(Severities, raw) }
