package validation

import (
	"fmt"
	"strings"

	"github.com/staff-data-intake/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is a list of validation failures usable as an error value.
type Errors []ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether a failure was recorded for field.
func (e Errors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Field labels shown to users, keyed by form field name.
var fieldLabels = map[string]string{
	"full_name":    "Full Name",
	"staff_number": "Staff Number",
	"staff_cadre":  "Staff Cadre",
	"meal_type":    "Meal Type",
}

// Label returns the human readable name of a form field.
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Validator checks staff entries before they are persisted
type Validator struct {
	requireMealType bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// RequireMealType makes meal_type a required field.
func (v *Validator) RequireMealType(required bool) *Validator {
	v.requireMealType = required
	return v
}

// Normalize trims surrounding whitespace from every field of entry.
func Normalize(entry *models.StaffEntry) {
	entry.FullName = strings.TrimSpace(entry.FullName)
	entry.StaffNumber = strings.TrimSpace(entry.StaffNumber)
	entry.StaffCadre = strings.TrimSpace(entry.StaffCadre)
	entry.MealType = strings.TrimSpace(entry.MealType)
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateEntry normalizes entry in place and validates the required fields.
// Only emptiness is checked.
func (v *Validator) ValidateEntry(entry *models.StaffEntry) Errors {
	Normalize(entry)

	var errors Errors
	errors = appendRequired(errors, "full_name", entry.FullName)
	errors = appendRequired(errors, "staff_number", entry.StaffNumber)
	errors = appendRequired(errors, "staff_cadre", entry.StaffCadre)
	if v.requireMealType {
		errors = appendRequired(errors, "meal_type", entry.MealType)
	}
	return errors
}

func appendRequired(errors Errors, field, value string) Errors {
	if value != "" {
		return errors
	}
	return append(errors, ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s cannot be empty!", Label(field)),
	})
}
