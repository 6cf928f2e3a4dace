package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/validation"
)

// intakeService is the concrete implementation of IntakeService
type intakeService struct {
	writer    *recordWriter
	roster    RosterLookup
	validator *validation.Validator
	now       func() time.Time
	log       zerolog.Logger
}

func newIntakeService(writer *recordWriter, roster RosterLookup, now func() time.Time, log zerolog.Logger) *intakeService {
	return &intakeService{
		writer:    writer,
		roster:    roster,
		validator: validation.NewValidator(),
		now:       now,
		log:       log.With().Str("component", "intake").Logger(),
	}
}

// Record stores the trimmed entry as typed
func (s *intakeService) Record(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error) {
	if errs := s.validator.ValidateEntry(entry); len(errs) > 0 {
		return nil, errs
	}

	rec := models.NewStaffRecord(*entry, s.now())
	if err := s.writer.Write(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("id", rec.ID).
		Str("staff_number", rec.StaffNumber).
		Msg("Staff record saved")
	return rec, nil
}

// Submit uppercases the staff number in entry, matches it against the roster
// and stores the first match's canonical name and number
func (s *intakeService) Submit(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error) {
	if errs := s.validator.ValidateEntry(entry); len(errs) > 0 {
		return nil, errs
	}
	entry.StaffNumber = strings.ToUpper(entry.StaffNumber)

	if s.roster == nil {
		return nil, ErrNoRoster
	}

	matches := s.roster.Match(entry.FullName, entry.StaffNumber)
	if len(matches) == 0 {
		s.log.Info().
			Str("staff_number", entry.StaffNumber).
			Msg("Submission rejected: no roster match")
		return nil, ErrRosterMismatch
	}
	if len(matches) > 1 {
		rows := make([]int, len(matches))
		for i, m := range matches {
			rows[i] = m.Row
		}
		s.log.Warn().
			Int("matches", len(matches)).
			Ints("rows", rows).
			Str("staff_number", entry.StaffNumber).
			Msg("Ambiguous roster match; using first row")
	}

	canonical := *entry
	canonical.FullName = matches[0].Name
	canonical.StaffNumber = matches[0].StaffNumber

	rec := models.NewStaffRecord(canonical, s.now())
	if err := s.writer.Write(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("id", rec.ID).
		Str("staff_number", rec.StaffNumber).
		Int("roster_row", matches[0].Row).
		Msg("Web submission saved")
	return rec, nil
}
