package model

import "strings"

// Equipment is one row of the equipment sheet.
type Equipment struct {
	Number         string `json:"number"`
	Category       string `json:"category"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	Classification string `json:"classification"`
	PartNumber     string `json:"part_number"`
	HourMeter      string `json:"hour_meter"`
	Chassis        string `json:"chassis"`
	Status         Status `json:"status"`
	RegisteredOn   Date   `json:"registered_on"`
	Notes          string `json:"notes"`
	Active         bool   `json:"active"`
}

// Row renders e in EquipmentHeader order. The ID column is left blank.
func (e Equipment) Row() []string {
	return []string{
		"",
		e.Number,
		e.Category,
		e.Brand,
		e.Model,
		e.Year,
		e.Classification,
		e.PartNumber,
		e.HourMeter,
		e.Chassis,
		string(e.Status),
		e.RegisteredOn.String(),
		e.Notes,
		yesNo(e.Active),
	}
}

// EquipmentFromRecord decodes a record read from the equipment sheet.
func EquipmentFromRecord(r map[string]string) Equipment {
	return Equipment{
		Number:         field(r, ColNumber),
		Category:       field(r, ColCategory),
		Brand:          field(r, ColBrand),
		Model:          field(r, ColModel),
		Year:           field(r, ColYear),
		Classification: field(r, ColClassification),
		PartNumber:     field(r, ColPartNumber),
		HourMeter:      field(r, ColHourMeter),
		Chassis:        field(r, ColChassis),
		Status:         Status(field(r, ColStatus)),
		RegisteredOn:   ParseDate(field(r, ColRegisteredOn)),
		Notes:          field(r, ColNotes),
		Active:         field(r, ColActive) == Yes,
	}
}

func field(r map[string]string, name string) string {
	return strings.TrimSpace(r[name])
}

func yesNo(b bool) string {
	if b {
		return Yes
	}
	return No
}
