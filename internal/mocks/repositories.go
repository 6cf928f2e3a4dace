package mocks

import (
	"context"
	"sync"

	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/repository"
)

// MockStaffRepository is an in-memory implementation of StaffRepository
type MockStaffRepository struct {
	mu          sync.Mutex
	Records     []*models.StaffRecord
	InsertError error
	StreamError error
	CreateCalls int
}

// Verify interface compliance
var _ repository.StaffRepository = (*MockStaffRepository)(nil)

func NewMockStaffRepository() *MockStaffRepository {
	return &MockStaffRepository{
		Records: make([]*models.StaffRecord, 0),
	}
}

func (m *MockStaffRepository) Create(ctx context.Context, record *models.StaffRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	record.ID = int64(len(m.Records) + 1)
	stored := *record
	m.Records = append(m.Records, &stored)
	return nil
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.Records {
		if r.ID == id {
			found := *r
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockStaffRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records), nil
}

func (m *MockStaffRepository) StreamAll(ctx context.Context, callback func(*models.StaffRecord) error) error {
	m.mu.Lock()
	records := make([]*models.StaffRecord, len(m.Records))
	copy(records, m.Records)
	m.mu.Unlock()

	if m.StreamError != nil {
		return m.StreamError
	}
	for _, r := range records {
		rec := *r
		if err := callback(&rec); err != nil {
			return err
		}
	}
	return nil
}
