package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/config"
	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/netutil"
	"github.com/staff-data-intake/internal/qrcode"
	"github.com/staff-data-intake/internal/repository"
	"github.com/staff-data-intake/internal/roster"
)

var (
	// ErrRosterMismatch is returned when a web submission matches no roster row.
	ErrRosterMismatch = errors.New("staff details do not match the roster")
	// ErrNoRoster is returned when a web submission arrives without a loaded roster.
	ErrNoRoster = errors.New("staff roster not loaded")
	// ErrSQLiteDisabled is returned by operations that need the SQLite store.
	ErrSQLiteDisabled = errors.New("sqlite storage is disabled")
)

// IntakeService defines the submission flows
type IntakeService interface {
	// Record validates and stores an entry exactly as typed (CLI path).
	Record(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error)
	// Submit validates an entry, authorizes it against the roster and stores
	// the roster's canonical name and staff number (web path).
	Submit(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	ExportToFile(ctx context.Context) (int, error)
	StreamCSV(ctx context.Context, w io.Writer) error
	GetCount(ctx context.Context) (int, error)
}

// QRService generates the QR code image pointing at the web form
type QRService interface {
	Generate(url string) bool
	DefaultURL() string
	Path() string
}

// RosterLookup finds roster rows matching a submitted name and staff number
type RosterLookup interface {
	Match(fullName, staffNumber string) []roster.Entry
}

// CSVStore is the CSV mirror used by the record writer and the export routine
type CSVStore interface {
	Append(rec *models.StaffRecord) error
	ReadAll() ([]models.StaffRecord, error)
	Replace(fill func(emit func(*models.StaffRecord) error) error) (int, error)
	Path() string
}

// Dependencies carries the stores and collaborators services are built from.
// Staff is nil when SQLite is disabled; CSV is always set so exports have a target.
type Dependencies struct {
	Staff  repository.StaffRepository
	CSV    CSVStore
	Roster RosterLookup
	Clock  func() time.Time
}

// Services holds all service interfaces
type Services struct {
	Intake IntakeService
	Export ExportService
	QR     QRService
}

// NewServices creates all services
func NewServices(deps Dependencies, cfg *config.Config, log zerolog.Logger) *Services {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	var mirror CSVStore
	if cfg.Storage.EnableCSV {
		mirror = deps.CSV
	}
	writer := newRecordWriter(deps.Staff, mirror, log)

	return &Services{
		Intake: newIntakeService(writer, deps.Roster, deps.Clock, log),
		Export: newExportService(deps.Staff, deps.CSV, log),
		QR: newQRService(cfg.Static.QRPath(), qrcode.DefaultOptions(), func() string {
			return netutil.AppURL(cfg.Server.PublicURL, cfg.Server.Port)
		}, log),
	}
}
