// Package cli implements the interactive staff data collection session.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/service"
)

const (
	bannerText  = "=== Staff Data Collection Form ==="
	savedText   = "Data successfully saved!"
	againPrompt = "Would you like to add another staff member? (y/n): "
	exportText  = "Data exported to CSV successfully!"
	goodbyeText = "Thank you for using Staff Data Collector!"
)

// Options controls the session
type Options struct {
	// AskMealType adds the optional meal type prompt.
	AskMealType bool
	// ExportOnExit rewrites the CSV from SQLite when the session ends.
	ExportOnExit bool
}

// Collector runs the prompt loop and saves each entry through the intake service
type Collector struct {
	intake   service.IntakeService
	export   service.ExportService
	prompter *Prompter
	out      io.Writer
	opts     Options
	log      zerolog.Logger

	bannerStyle  lipgloss.Style
	successStyle lipgloss.Style
}

// NewCollector creates a collector reading answers from in and writing to out
func NewCollector(intake service.IntakeService, export service.ExportService, in io.Reader, out io.Writer, opts Options, log zerolog.Logger) *Collector {
	r := lipgloss.NewRenderer(out)
	return &Collector{
		intake:   intake,
		export:   export,
		prompter: NewPrompter(in, out),
		out:      out,
		opts:     opts,
		log:      log.With().Str("component", "collector").Logger(),
		bannerStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
			Bold(true),
		successStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#859900", Dark: "#50fa7b"}).
			Bold(true),
	}
}

// Run collects entries until the user declines to add another or input ends.
// An entry interrupted by end of input is discarded. Storage errors end the run.
func (c *Collector) Run(ctx context.Context) error {
	saved := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, c.bannerStyle.Render(bannerText))

		entry, err := c.readEntry()
		if errors.Is(err, io.EOF) {
			c.log.Info().Msg("Input closed; discarding partial entry")
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if _, err := c.intake.Record(ctx, entry); err != nil {
			return err
		}
		saved++
		fmt.Fprintln(c.out, c.successStyle.Render(savedText))

		fmt.Fprintln(c.out)
		again, err := c.prompter.Confirm(againPrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if !again {
			break
		}
	}

	c.log.Info().Int("saved", saved).Msg("Collection session finished")

	if c.opts.ExportOnExit {
		if err := c.exportCSV(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.out, goodbyeText)
	return nil
}

func (c *Collector) readEntry() (*models.StaffEntry, error) {
	var (
		entry models.StaffEntry
		err   error
	)

	if entry.FullName, err = c.prompter.Required("Enter Full Name: ", "full_name"); err != nil {
		return nil, err
	}
	if entry.StaffNumber, err = c.prompter.Required("Enter Staff Number: ", "staff_number"); err != nil {
		return nil, err
	}
	if entry.StaffCadre, err = c.prompter.Required("Enter Staff Cadre: ", "staff_cadre"); err != nil {
		return nil, err
	}
	if c.opts.AskMealType {
		if entry.MealType, err = c.prompter.Optional("Enter Meal Type (optional): "); err != nil {
			return nil, err
		}
	}
	return &entry, nil
}

func (c *Collector) exportCSV(ctx context.Context) error {
	count, err := c.export.ExportToFile(ctx)
	if errors.Is(err, service.ErrSQLiteDisabled) {
		c.log.Info().Msg("SQLite disabled; CSV is already authoritative, skipping export")
		return nil
	}
	if err != nil {
		return err
	}

	c.log.Info().Int("count", count).Msg("Exported records to CSV")
	fmt.Fprintln(c.out, c.successStyle.Render(exportText))
	return nil
}
