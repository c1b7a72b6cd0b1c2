package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/observability"
	"github.com/hospsys/patient-registry/internal/store"
	"github.com/hospsys/patient-registry/internal/utils"
)

// SessionState is the lifecycle state of a registration session
type SessionState string

const (
	// StateEditing means the identity is still being entered or corrected
	StateEditing SessionState = "editing"
	// StateDuplicatesFound means submission is suspended until the operator
	// resolves the pending duplicate candidates
	StateDuplicatesFound SessionState = "duplicates_found"
	// StateSubmitting means a store call is in flight
	StateSubmitting SessionState = "submitting"
	// StateDone means the record was stored or handed off to an existing one
	StateDone SessionState = "done"
)

// RegistrationSession drives a single registration attempt: field entry,
// validation, duplicate resolution and submission. A session is bound to
// one operator filling one form; methods are still safe to call from the
// transport layer's goroutines.
type RegistrationSession struct {
	store        store.PatientStore
	searcher     *DuplicateSearcher
	debounced    *DebouncedSearcher
	storeTimeout time.Duration
	logger       *logging.SafeLogger

	mu           sync.Mutex
	state        SessionState
	identity     models.PatientIdentity
	editRecordID string
	candidates   []models.DuplicateCandidate
	confirmedNew bool
	isSubmitting bool
	closed       bool
	validation   *utils.ValidationResult
	lastError    error
	result       *models.StoredRecord
}

// NewRegistrationSession creates a session for registering a new patient.
// Edits to name and birth date fields schedule a debounced duplicate
// search against the store.
func NewRegistrationSession(patientStore store.PatientStore, searcher *DuplicateSearcher, debounceDelay, storeTimeout time.Duration, logger *logging.SafeLogger) *RegistrationSession {
	if storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
	}
	s := &RegistrationSession{
		store:        patientStore,
		searcher:     searcher,
		storeTimeout: storeTimeout,
		logger:       logger,
		state:        StateEditing,
	}
	s.debounced = NewDebouncedSearcher(searcher, debounceDelay, s.applyCandidates)
	return s
}

// NewEditSession creates a session for updating an existing record.
// Duplicate search is disabled: the record already exists, so similarity
// against the rest of the store is not a blocker.
func NewEditSession(patientStore store.PatientStore, recordID string, storeTimeout time.Duration, logger *logging.SafeLogger) *RegistrationSession {
	if storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
	}
	return &RegistrationSession{
		store:        patientStore,
		storeTimeout: storeTimeout,
		logger:       logger,
		state:        StateEditing,
		editRecordID: recordID,
	}
}

// UpdateIdentity replaces the in-progress identity with the given form
// values. In registration mode this restarts the debounced duplicate
// search and discards any prior duplicate resolution, since the decision
// was made against different data.
func (s *RegistrationSession) UpdateIdentity(ctx context.Context, identity models.PatientIdentity) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.ErrSessionClosed
	}
	identity = utils.SanitizePatientIdentity(identity)
	watchedChanged := s.identity.FirstName != identity.FirstName ||
		s.identity.LastName != identity.LastName ||
		s.identity.DateOfBirth != identity.DateOfBirth
	s.identity = identity
	if watchedChanged {
		s.confirmedNew = false
		s.candidates = nil
		if s.state == StateDuplicatesFound {
			s.state = StateEditing
		}
	}
	s.validation = utils.ValidatePatientIdentity(identity)
	debounced := s.debounced
	s.mu.Unlock()

	if debounced != nil && watchedChanged {
		debounced.Trigger(ctx, identity)
	}
	return nil
}

// applyCandidates receives the debounced search result
func (s *RegistrationSession) applyCandidates(candidates []models.DuplicateCandidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state == StateSubmitting || s.state == StateDone {
		return
	}
	s.candidates = candidates
}

// Validation returns the field validation result for the current identity
func (s *RegistrationSession) Validation() *utils.ValidationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validation
}

// Candidates returns the duplicate candidates of the last completed search
func (s *RegistrationSession) Candidates() []models.DuplicateCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidates
}

// State returns the current session state
func (s *RegistrationSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the store error of the most recent failed submission
func (s *RegistrationSession) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Identity returns the current in-progress identity. After a failed
// submission the entered data is preserved here for retry.
func (s *RegistrationSession) Identity() models.PatientIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Result returns the stored record of a completed submission, nil otherwise
func (s *RegistrationSession) Result() *models.StoredRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Submit validates the identity, gates on unresolved duplicates and
// issues the store call. It returns ErrValidationFailed when any field
// rule fails, ErrDuplicatesPending when candidates await resolution, and
// ErrSubmitInFlight when a previous Submit has not finished.
func (s *RegistrationSession) Submit(ctx context.Context) (*models.StoredRecord, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, models.ErrSessionClosed
	}
	if s.isSubmitting {
		s.mu.Unlock()
		return nil, models.ErrSubmitInFlight
	}

	identity := s.identity
	validation := utils.ValidatePatientIdentity(identity)
	s.validation = validation
	if !validation.IsValid {
		for _, e := range validation.Errors {
			observability.ValidationFailures.WithLabelValues(e.Field).Inc()
		}
		s.mu.Unlock()
		return nil, models.ErrValidationFailed
	}

	editRecordID := s.editRecordID
	needsResolution := editRecordID == "" && !s.confirmedNew
	debounced := s.debounced
	candidates := s.candidates
	s.mu.Unlock()

	if needsResolution {
		// run any still-pending search now so the gate sees current data
		if debounced != nil {
			candidates = debounced.Flush(ctx, identity)
		}
		s.mu.Lock()
		s.candidates = candidates
		if len(candidates) > 0 {
			s.state = StateDuplicatesFound
			s.mu.Unlock()
			observability.Registrations.WithLabelValues("create", "duplicates_pending").Inc()
			return nil, models.ErrDuplicatesPending
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	if s.isSubmitting {
		s.mu.Unlock()
		return nil, models.ErrSubmitInFlight
	}
	s.isSubmitting = true
	s.state = StateSubmitting
	s.mu.Unlock()

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var (
		record    *models.StoredRecord
		err       error
		operation = "create"
	)
	if editRecordID != "" {
		operation = "update"
		record, err = s.store.Update(storeCtx, editRecordID, identity)
	} else {
		record, err = s.store.Create(storeCtx, identity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false
	if err != nil {
		s.state = StateEditing
		s.lastError = err
		observability.Registrations.WithLabelValues(operation, "failed").Inc()
		s.logger.Error("patient submission failed",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	s.state = StateDone
	s.result = record
	s.lastError = nil
	s.candidates = nil
	s.confirmedNew = false
	s.identity = models.PatientIdentity{}
	observability.Registrations.WithLabelValues(operation, "success").Inc()
	s.logger.Info("patient submission succeeded",
		zap.String("operation", operation),
		zap.String("record_id", record.ID))
	return record, nil
}

// ConfirmNew records the operator's decision to register a new record
// despite the pending duplicate candidates. The next Submit proceeds
// past the duplicate gate.
func (s *RegistrationSession) ConfirmNew() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.ErrSessionClosed
	}
	s.confirmedNew = true
	if s.state == StateDuplicatesFound {
		s.state = StateEditing
	}
	return nil
}

// UseExisting resolves the duplicate gate by adopting an existing record:
// this registration attempt is abandoned and the chosen record is handed
// off to the caller
func (s *RegistrationSession) UseExisting(ctx context.Context, recordID string) (*models.StoredRecord, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, models.ErrSessionClosed
	}
	s.mu.Unlock()

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	record, err := s.store.Get(storeCtx, recordID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDone
	s.result = record
	s.candidates = nil
	s.confirmedNew = false
	s.identity = models.PatientIdentity{}
	observability.Registrations.WithLabelValues("adopt_existing", "success").Inc()
	return record, nil
}

// Close tears the session down and cancels any pending duplicate search
// so a stray timer cannot fire against a discarded form
func (s *RegistrationSession) Close() {
	s.mu.Lock()
	debounced := s.debounced
	s.closed = true
	s.mu.Unlock()
	if debounced != nil {
		debounced.Close()
	}
}
