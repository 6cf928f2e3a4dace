package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/staff-data-intake/internal/database"
	"github.com/staff-data-intake/internal/models"
)

const staffColumns = `id, full_name, staff_number, staff_cadre, meal_type, date_added`

// staffRepo is the concrete implementation of StaffRepository
type staffRepo struct {
	db *database.DB
}

// NewStaffRepo creates a new staff repository
func NewStaffRepo(db *database.DB) StaffRepository {
	return &staffRepo{db: db}
}

// Create inserts a record and sets its ID
func (r *staffRepo) Create(ctx context.Context, record *models.StaffRecord) error {
	query := `
		INSERT INTO staff (full_name, staff_number, staff_cadre, meal_type, date_added)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		record.FullName, record.StaffNumber, record.StaffCadre, record.MealType, record.DateAdded,
	)
	if err != nil {
		return fmt.Errorf("insert staff record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted id: %w", err)
	}
	record.ID = id
	return nil
}

// GetByID retrieves a record by ID. A missing row returns nil, nil.
func (r *staffRepo) GetByID(ctx context.Context, id int64) (*models.StaffRecord, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = ?`

	var record models.StaffRecord
	err := scanStaff(r.db.QueryRowContext(ctx, query, id), &record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Count returns the total number of records
func (r *staffRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM staff").Scan(&count)
	return count, err
}

// StreamAll streams every record in insertion order.
// The pool holds one connection, so callback must not use the database.
func (r *staffRepo) StreamAll(ctx context.Context, callback func(*models.StaffRecord) error) error {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var record models.StaffRecord
		if err := scanStaff(rows, &record); err != nil {
			return err
		}

		if err := callback(&record); err != nil {
			return err
		}
	}

	return rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStaff(s scanner, record *models.StaffRecord) error {
	return s.Scan(
		&record.ID, &record.FullName, &record.StaffNumber, &record.StaffCadre,
		&record.MealType, &record.DateAdded,
	)
}
