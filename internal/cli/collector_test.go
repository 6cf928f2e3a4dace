package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/staff-data-intake/internal/mocks"
	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/service"
)

func TestPrompter_RequiredRepromptsOnEmpty(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("\n   \n\t\n  Jane Doe  \n"), &out)

	value, err := p.Required("Enter Full Name: ", "full_name")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", value)

	require.Equal(t, 4, strings.Count(out.String(), "Enter Full Name: "))
	require.Equal(t, 3, strings.Count(out.String(), "Full Name cannot be empty!"))
}

func TestPrompter_RequiredEOF(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("\n"), &out)

	_, err := p.Required("Enter Staff Number: ", "staff_number")
	require.ErrorIs(t, err, io.EOF)
	require.Contains(t, out.String(), "Staff Number cannot be empty!")
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("Nurse"), io.Discard)

	value, err := p.Required("Enter Staff Cadre: ", "staff_cadre")
	require.NoError(t, err)
	require.Equal(t, "Nurse", value)
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \r\n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), io.Discard)
			got, err := p.Confirm("? ")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func newTestCollector(input string, opts Options) (*Collector, *mocks.MockIntakeService, *mocks.MockExportService, *strings.Builder) {
	intake := mocks.NewMockIntakeService()
	export := mocks.NewMockExportService()
	out := &strings.Builder{}
	c := NewCollector(intake, export, strings.NewReader(input), out, opts, zerolog.Nop())
	return c, intake, export, out
}

func TestCollector_SingleEntry(t *testing.T) {
	c, intake, export, out := newTestCollector("Jane Doe\ns123\nNurse\nn\n", Options{ExportOnExit: true})

	require.NoError(t, c.Run(context.Background()))

	require.Equal(t, []models.StaffEntry{{FullName: "Jane Doe", StaffNumber: "s123", StaffCadre: "Nurse"}}, intake.Recorded)
	require.Equal(t, 1, export.ExportCalls)

	text := out.String()
	for _, want := range []string{
		bannerText,
		"Enter Full Name: ",
		"Enter Staff Number: ",
		"Enter Staff Cadre: ",
		savedText,
		againPrompt,
		exportText,
		goodbyeText,
	} {
		require.Contains(t, text, want)
	}
	require.NotContains(t, text, "Enter Meal Type")
}

func TestCollector_MultipleEntriesWithMealType(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe", "s123", "Nurse", "Vegetarian", "Y",
		"", "John Roe", "S456", "Doctor", "", "n",
	}, "\n") + "\n"
	c, intake, _, out := newTestCollector(input, Options{AskMealType: true})

	require.NoError(t, c.Run(context.Background()))

	require.Equal(t, []models.StaffEntry{
		{FullName: "Jane Doe", StaffNumber: "s123", StaffCadre: "Nurse", MealType: "Vegetarian"},
		{FullName: "John Roe", StaffNumber: "S456", StaffCadre: "Doctor"},
	}, intake.Recorded)
	require.Contains(t, out.String(), "Full Name cannot be empty!")
	require.NotContains(t, out.String(), exportText)
}

func TestCollector_EOFDiscardsPartialEntry(t *testing.T) {
	c, intake, export, out := newTestCollector("Jane Doe\ns123\n", Options{ExportOnExit: true})

	require.NoError(t, c.Run(context.Background()))

	require.Empty(t, intake.Recorded)
	require.Equal(t, 1, export.ExportCalls)
	require.Contains(t, out.String(), goodbyeText)
}

func TestCollector_StorageErrorStopsRun(t *testing.T) {
	c, intake, export, out := newTestCollector("Jane Doe\ns123\nNurse\ny\n", Options{ExportOnExit: true})
	boom := errors.New("disk full")
	intake.RecordFunc = func(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error) {
		return nil, boom
	}

	err := c.Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Zero(t, export.ExportCalls)
	require.NotContains(t, out.String(), savedText)
}

func TestCollector_ExportSkippedWhenSQLiteDisabled(t *testing.T) {
	c, _, export, out := newTestCollector("A\n1\nC\nn\n", Options{ExportOnExit: true})
	export.ExportFunc = func(ctx context.Context) (int, error) {
		return 0, service.ErrSQLiteDisabled
	}

	require.NoError(t, c.Run(context.Background()))
	require.NotContains(t, out.String(), exportText)
	require.Contains(t, out.String(), goodbyeText)
}

func TestCollector_ExportError(t *testing.T) {
	c, _, export, _ := newTestCollector("A\n1\nC\nn\n", Options{ExportOnExit: true})
	boom := errors.New("rename failed")
	export.ExportFunc = func(ctx context.Context) (int, error) {
		return 0, boom
	}

	require.ErrorIs(t, c.Run(context.Background()), boom)
}
