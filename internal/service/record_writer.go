package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/repository"
)

// recordWriter persists a record to SQLite and then mirrors it to the CSV file.
// SQLite is authoritative when enabled; the CSV append is best effort in that case.
type recordWriter struct {
	repo   repository.StaffRepository
	mirror CSVStore
	log    zerolog.Logger
}

func newRecordWriter(repo repository.StaffRepository, mirror CSVStore, log zerolog.Logger) *recordWriter {
	return &recordWriter{
		repo:   repo,
		mirror: mirror,
		log:    log.With().Str("component", "record_writer").Logger(),
	}
}

func (w *recordWriter) Write(ctx context.Context, rec *models.StaffRecord) error {
	if w.repo == nil && w.mirror == nil {
		return errors.New("no storage enabled")
	}

	if w.repo != nil {
		if err := w.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
	}

	if w.mirror == nil {
		return nil
	}

	if err := w.mirror.Append(rec); err != nil {
		if w.repo == nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		w.log.Warn().
			Err(err).
			Int64("id", rec.ID).
			Str("path", w.mirror.Path()).
			Msg("CSV mirror append failed; run export to rebuild it")
	}
	return nil
}
