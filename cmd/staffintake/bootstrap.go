package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/config"
	"github.com/staff-data-intake/internal/csvstore"
	"github.com/staff-data-intake/internal/database"
	"github.com/staff-data-intake/internal/repository"
	"github.com/staff-data-intake/internal/roster"
	"github.com/staff-data-intake/internal/service"
	"github.com/staff-data-intake/pkg/logger"
)

// app holds everything a subcommand needs
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	db       *database.DB
	csv      *csvstore.Store
	services *service.Services
}

// newApp loads configuration, initializes the enabled stores and builds the
// services. The roster is loaded only when withRoster is set.
func newApp(logOut io.Writer, withRoster bool) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.Log, logOut)
	a := &app{
		cfg: cfg,
		log: log,
		csv: csvstore.New(cfg.Storage.CSVPath),
	}

	if cfg.Storage.EnableCSV {
		if err := a.csv.Ensure(); err != nil {
			return nil, fmt.Errorf("failed to initialize CSV file: %w", err)
		}
		log.Info().Str("path", cfg.Storage.CSVPath).Msg("CSV store ready")
	}

	var staff repository.StaffRepository
	if cfg.Storage.EnableSQLite {
		db, err := database.Open(cfg.Storage, log)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		staff = repository.New(db).Staff
	}

	deps := service.Dependencies{
		Staff: staff,
		CSV:   a.csv,
	}

	if withRoster {
		r, err := roster.Load(cfg.Roster.Path, roster.Options{
			Sheet:        cfg.Roster.Sheet,
			NameColumn:   cfg.Roster.NameColumn,
			NumberColumn: cfg.Roster.NumberColumn,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to load staff roster: %w", err)
		}
		log.Info().
			Str("path", cfg.Roster.Path).
			Int("entries", r.Len()).
			Msg("Staff roster loaded")
		deps.Roster = r
	}

	a.services = service.NewServices(deps, cfg, log)
	return a, nil
}

// Close releases the database handle
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
