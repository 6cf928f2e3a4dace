package mocks

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/roster"
	"github.com/staff-data-intake/internal/service"
)

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	mu         sync.Mutex
	RecordFunc func(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error)
	SubmitFunc func(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error)
	Recorded   []models.StaffEntry
	Submitted  []models.StaffEntry
}

// Verify interface compliance
var _ service.IntakeService = (*MockIntakeService)(nil)

func NewMockIntakeService() *MockIntakeService {
	return &MockIntakeService{}
}

func (m *MockIntakeService) Record(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error) {
	m.mu.Lock()
	m.Recorded = append(m.Recorded, *entry)
	m.mu.Unlock()

	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, entry)
	}
	return &models.StaffRecord{
		FullName:    entry.FullName,
		StaffNumber: entry.StaffNumber,
		StaffCadre:  entry.StaffCadre,
		MealType:    entry.MealType,
	}, nil
}

func (m *MockIntakeService) Submit(ctx context.Context, entry *models.StaffEntry) (*models.StaffRecord, error) {
	m.mu.Lock()
	m.Submitted = append(m.Submitted, *entry)
	m.mu.Unlock()

	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, entry)
	}
	return &models.StaffRecord{
		FullName:    entry.FullName,
		StaffNumber: entry.StaffNumber,
		StaffCadre:  entry.StaffCadre,
		MealType:    entry.MealType,
	}, nil
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	ExportFunc  func(ctx context.Context) (int, error)
	CSV         string
	StreamError error
	Count       int
	CountError  error
	ExportCalls int
}

// Verify interface compliance
var _ service.ExportService = (*MockExportService)(nil)

func NewMockExportService() *MockExportService {
	return &MockExportService{}
}

func (m *MockExportService) ExportToFile(ctx context.Context) (int, error) {
	m.ExportCalls++
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	return m.Count, nil
}

func (m *MockExportService) StreamCSV(ctx context.Context, w io.Writer) error {
	if m.StreamError != nil {
		return m.StreamError
	}
	_, err := io.Copy(w, strings.NewReader(m.CSV))
	return err
}

func (m *MockExportService) GetCount(ctx context.Context) (int, error) {
	return m.Count, m.CountError
}

// MockQRService is a mock implementation of QRService
type MockQRService struct {
	Succeed   bool
	URL       string
	ImagePath string
	Generated []string
}

// Verify interface compliance
var _ service.QRService = (*MockQRService)(nil)

func NewMockQRService() *MockQRService {
	return &MockQRService{
		Succeed:   true,
		URL:       "http://127.0.0.1:5000",
		ImagePath: "static/qr_code.png",
	}
}

func (m *MockQRService) Generate(url string) bool {
	m.Generated = append(m.Generated, url)
	return m.Succeed
}

func (m *MockQRService) DefaultURL() string {
	return m.URL
}

func (m *MockQRService) Path() string {
	return m.ImagePath
}

// MockRoster is a RosterLookup returning fixed matches
type MockRoster struct {
	Matches map[string][]roster.Entry
	Calls   int
}

// Verify interface compliance
var _ service.RosterLookup = (*MockRoster)(nil)

func NewMockRoster() *MockRoster {
	return &MockRoster{Matches: make(map[string][]roster.Entry)}
}

// Add registers matches returned for the given name and number, compared as typed.
func (m *MockRoster) Add(fullName, staffNumber string, entries ...roster.Entry) {
	m.Matches[fullName+"|"+staffNumber] = entries
}

func (m *MockRoster) Match(fullName, staffNumber string) []roster.Entry {
	m.Calls++
	return m.Matches[fullName+"|"+staffNumber]
}
