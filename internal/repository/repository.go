package repository

import (
	"context"

	"github.com/staff-data-intake/internal/database"
	"github.com/staff-data-intake/internal/models"
)

// StaffRepository defines the interface for staff record operations
type StaffRepository interface {
	Create(ctx context.Context, record *models.StaffRecord) error
	GetByID(ctx context.Context, id int64) (*models.StaffRecord, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.StaffRecord) error) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Staff StaffRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Staff: NewStaffRepo(db),
	}
}
