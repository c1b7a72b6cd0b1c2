package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hospsys/patient-registry/internal/models"
)

// MockPatientStore is an in-memory PatientStore for testing. It records
// every call so tests can assert on search and submission counts.
type MockPatientStore struct {
	mu sync.Mutex

	SearchResults []models.DuplicateCandidate
	SearchErr     error
	CreateErr     error
	UpdateErr     error

	// SearchHook and CreateHook, when set, run at call entry before any
	// internal locking. Tests use them to hold a call open while
	// asserting on concurrent behavior.
	SearchHook func()
	CreateHook func()

	searchCalls  int
	createCalls  int
	updateCalls  int
	lastCriteria models.SearchCriteria
	lastIdentity models.PatientIdentity
	records      map[string]*models.StoredRecord
}

// NewMockPatientStore creates an empty MockPatientStore
func NewMockPatientStore() *MockPatientStore {
	return &MockPatientStore{
		records: make(map[string]*models.StoredRecord),
	}
}

// Search implements PatientStore for MockPatientStore
func (m *MockPatientStore) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.DuplicateCandidate, error) {
	if m.SearchHook != nil {
		m.SearchHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	m.lastCriteria = criteria
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.SearchResults, nil
}

// Create implements PatientStore for MockPatientStore
func (m *MockPatientStore) Create(ctx context.Context, identity models.PatientIdentity) (*models.StoredRecord, error) {
	if m.CreateHook != nil {
		m.CreateHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	m.lastIdentity = identity
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	now := time.Now().UTC()
	record := &models.StoredRecord{
		ID:        uuid.NewString(),
		Identity:  identity,
		Status:    models.RecordStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.records[record.ID] = record
	return record, nil
}

// Update implements PatientStore for MockPatientStore
func (m *MockPatientStore) Update(ctx context.Context, id string, identity models.PatientIdentity) (*models.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	m.lastIdentity = identity
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	record, ok := m.records[id]
	if !ok {
		return nil, models.ErrRecordNotFound
	}
	record.Identity = identity
	record.UpdatedAt = time.Now().UTC()
	return record, nil
}

// Get implements PatientStore for MockPatientStore
func (m *MockPatientStore) Get(ctx context.Context, id string) (*models.StoredRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return nil, models.ErrRecordNotFound
	}
	return record, nil
}

// Seed stores a record directly, bypassing call counters
func (m *MockPatientStore) Seed(record *models.StoredRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
}

// SearchCalls returns how many times Search was invoked
func (m *MockPatientStore) SearchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchCalls
}

// CreateCalls returns how many times Create was invoked
func (m *MockPatientStore) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// UpdateCalls returns how many times Update was invoked
func (m *MockPatientStore) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

// LastCriteria returns the criteria of the most recent Search call
func (m *MockPatientStore) LastCriteria() models.SearchCriteria {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCriteria
}

// LastIdentity returns the identity of the most recent Create or Update call
func (m *MockPatientStore) LastIdentity() models.PatientIdentity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastIdentity
}
