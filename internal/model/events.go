package model

import "strings"

// MaintenanceEvent is one row of the maintenance log.
type MaintenanceEvent struct {
	EquipmentID   string `json:"equipment_id"`
	Date          Date   `json:"date"`
	Process       string `json:"process"`
	ProcessNumber string `json:"process_number"`
	Scope         string `json:"scope"`
	Company       string `json:"company"`
	Contact       string `json:"contact"`
	Status        Status `json:"status"`
	Notes         string `json:"notes"`
}

// Row renders ev in MaintenanceHeader order. Free text is upper-cased.
func (ev MaintenanceEvent) Row() []string {
	return []string{
		"",
		ev.EquipmentID,
		KindMaintenance,
		ev.Date.String(),
		strings.ToUpper(ev.Process),
		strings.ToUpper(ev.ProcessNumber),
		strings.ToUpper(ev.Scope),
		strings.ToUpper(ev.Company),
		strings.ToUpper(ev.Contact),
		string(ev.Status),
		strings.ToUpper(ev.Notes),
	}
}

// MaintenanceFromRecord decodes a record read from the maintenance sheet.
func MaintenanceFromRecord(r map[string]string) MaintenanceEvent {
	return MaintenanceEvent{
		EquipmentID:   field(r, ColNumber),
		Date:          ParseDate(field(r, ColMaintenanceDate)),
		Process:       field(r, ColProcess),
		ProcessNumber: field(r, ColProcessNumber),
		Scope:         field(r, ColScope),
		Company:       field(r, ColCompany),
		Contact:       field(r, ColContact),
		Status:        Status(field(r, ColNewStatus)),
		Notes:         field(r, ColNotes),
	}
}

// DamageEvent is one row of the damage log.
type DamageEvent struct {
	EquipmentID  string `json:"equipment_id"`
	IdentifiedOn Date   `json:"identified_on"`
	IncidentOn   Date   `json:"incident_on"`
	Severity     string `json:"severity"`
	Description  string `json:"description"`
	Status       Status `json:"status"`
	Resolved     bool   `json:"resolved"`
}

// Row renders ev in DamageHeader order. A zero IncidentOn is left blank.
func (ev DamageEvent) Row() []string {
	return []string{
		"",
		ev.EquipmentID,
		ev.IdentifiedOn.String(),
		ev.IncidentOn.String(),
		KindDamage,
		ev.Severity,
		string(ev.Status),
		strings.ToUpper(ev.Description),
		yesNo(ev.Resolved),
	}
}

// DamageFromRecord decodes a record read from the damage sheet.
func DamageFromRecord(r map[string]string) DamageEvent {
	return DamageEvent{
		EquipmentID:  field(r, ColNumber),
		IdentifiedOn: ParseDate(field(r, ColIdentifiedOn)),
		IncidentOn:   ParseDate(field(r, ColIncidentOn)),
		Severity:     field(r, ColSeverity),
		Description:  field(r, ColDescription),
		Status:       Status(field(r, ColNewStatus)),
		Resolved:     field(r, ColResolved) == Yes,
	}
}
