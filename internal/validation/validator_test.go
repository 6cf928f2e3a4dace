package validation

import (
	"testing"

	"github.com/staff-data-intake/internal/models"
)

func TestValidateEntry(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name       string
		entry      *models.StaffEntry
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid entry with all fields",
			entry: &models.StaffEntry{
				FullName:    "Jane Doe",
				StaffNumber: "s123",
				StaffCadre:  "Nurse",
				MealType:    "Vegetarian",
			},
			wantErrors: 0,
		},
		{
			name: "meal type is optional",
			entry: &models.StaffEntry{
				FullName:    "Jane Doe",
				StaffNumber: "s123",
				StaffCadre:  "Nurse",
			},
			wantErrors: 0,
		},
		{
			name: "missing full name",
			entry: &models.StaffEntry{
				StaffNumber: "s123",
				StaffCadre:  "Nurse",
			},
			wantErrors: 1,
			wantFields: []string{"full_name"},
		},
		{
			name: "whitespace only staff number",
			entry: &models.StaffEntry{
				FullName:    "Jane Doe",
				StaffNumber: "   \t",
				StaffCadre:  "Nurse",
			},
			wantErrors: 1,
			wantFields: []string{"staff_number"},
		},
		{
			name:       "everything empty",
			entry:      &models.StaffEntry{},
			wantErrors: 3,
			wantFields: []string{"full_name", "staff_number", "staff_cadre"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := validator.ValidateEntry(tt.entry)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateEntry() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}

			for _, wantField := range tt.wantFields {
				if !errors.Has(wantField) {
					t.Errorf("Expected error for field '%s' but not found", wantField)
				}
			}
		})
	}
}

func TestValidateEntry_TrimsInPlace(t *testing.T) {
	entry := &models.StaffEntry{
		FullName:    "  Jane Doe ",
		StaffNumber: " s123",
		StaffCadre:  "Nurse\n",
		MealType:    "  ",
	}

	if errs := NewValidator().ValidateEntry(entry); len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}

	if entry.FullName != "Jane Doe" || entry.StaffNumber != "s123" || entry.StaffCadre != "Nurse" || entry.MealType != "" {
		t.Errorf("Entry not trimmed: %+v", entry)
	}
}

func TestValidateEntry_RequireMealType(t *testing.T) {
	validator := NewValidator().RequireMealType(true)

	errors := validator.ValidateEntry(&models.StaffEntry{
		FullName:    "Jane Doe",
		StaffNumber: "s123",
		StaffCadre:  "Nurse",
	})
	if !errors.Has("meal_type") {
		t.Errorf("Expected meal_type error, got %v", errors)
	}
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{
		{Field: "full_name", Message: "Full Name cannot be empty!"},
		{Field: "staff_cadre", Message: "Staff Cadre cannot be empty!"},
	}

	want := "Full Name cannot be empty!; Staff Cadre cannot be empty!"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}
