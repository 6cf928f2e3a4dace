package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/csvstore"
	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/repository"
)

// exportService is the concrete implementation of ExportService
type exportService struct {
	repo repository.StaffRepository
	csv  CSVStore
	log  zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(repo repository.StaffRepository, csv CSVStore, log zerolog.Logger) *exportService {
	return &exportService{
		repo: repo,
		csv:  csv,
		log:  log.With().Str("component", "export").Logger(),
	}
}

// ExportToFile overwrites the CSV file with every SQLite row in id order
func (s *exportService) ExportToFile(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, ErrSQLiteDisabled
	}

	s.log.Info().Str("path", s.csv.Path()).Msg("Starting CSV export")

	count, err := s.csv.Replace(func(emit func(*models.StaffRecord) error) error {
		return s.repo.StreamAll(ctx, emit)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to export CSV: %w", err)
	}

	s.log.Info().Int("count", count).Msg("CSV export completed")
	return count, nil
}

// StreamCSV writes the CSV rendition of all records to w. Without SQLite the
// CSV file itself is the source.
func (s *exportService) StreamCSV(ctx context.Context, w io.Writer) error {
	writer := csvstore.NewWriter(w)
	if err := writer.WriteHeader(); err != nil {
		return err
	}

	count := 0
	emit := func(rec *models.StaffRecord) error {
		count++
		return writer.Write(rec)
	}

	var err error
	if s.repo != nil {
		err = s.repo.StreamAll(ctx, emit)
	} else {
		err = s.streamFile(emit)
	}
	if err != nil {
		return err
	}

	s.log.Info().Int("count", count).Msg("CSV stream completed")
	return writer.Flush()
}

func (s *exportService) streamFile(emit func(*models.StaffRecord) error) error {
	records, err := s.csv.ReadAll()
	if err != nil {
		return err
	}
	for i := range records {
		if err := emit(&records[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetCount returns the number of stored records
func (s *exportService) GetCount(ctx context.Context) (int, error) {
	if s.repo != nil {
		return s.repo.Count(ctx)
	}
	records, err := s.csv.ReadAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
