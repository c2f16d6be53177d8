package model

// Cell is one spreadsheet cell in the database-backed store. Rows and columns
// are 1-based, like the spreadsheet they mirror.
type Cell struct {
	Sheet  string `gorm:"primaryKey;size:128"`
	RowNum int    `gorm:"primaryKey;autoIncrement:false"`
	ColNum int    `gorm:"primaryKey;autoIncrement:false"`
	Value  string `gorm:"not null"`
}
