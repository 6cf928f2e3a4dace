package models

import (
	"time"
)

// DateLayout is the timestamp format used for date_added in both stores.
const DateLayout = "2006-01-02 15:04:05"

// StaffRecord represents one persisted staff submission.
// Field order defines the CSV column order.
type StaffRecord struct {
	ID          int64  `csv:"-" json:"id" db:"id"`
	FullName    string `csv:"Full Name" json:"full_name" db:"full_name"`
	StaffNumber string `csv:"Staff Number" json:"staff_number" db:"staff_number"`
	StaffCadre  string `csv:"Staff Cadre" json:"staff_cadre" db:"staff_cadre"`
	MealType    string `csv:"Meal Type" json:"meal_type,omitempty" db:"meal_type"`
	DateAdded   string `csv:"Date Added" json:"date_added" db:"date_added"`
}

// StaffEntry represents the raw values typed into the web form or the REPL
type StaffEntry struct {
	FullName    string `form:"full_name" json:"full_name"`
	StaffNumber string `form:"staff_number" json:"staff_number"`
	StaffCadre  string `form:"staff_cadre" json:"staff_cadre"`
	MealType    string `form:"meal_type" json:"meal_type"`
}

// NewStaffRecord builds a record from a validated entry, stamping it with now.
func NewStaffRecord(entry StaffEntry, now time.Time) *StaffRecord {
	return &StaffRecord{
		FullName:    entry.FullName,
		StaffNumber: entry.StaffNumber,
		StaffCadre:  entry.StaffCadre,
		MealType:    entry.MealType,
		DateAdded:   FormatDate(now),
	}
}

// FormatDate renders t in the process-local timezone using DateLayout.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}
