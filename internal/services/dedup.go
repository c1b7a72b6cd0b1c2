package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/observability"
	"github.com/hospsys/patient-registry/internal/store"
	"github.com/hospsys/patient-registry/internal/utils"
)

// minNameLength is the minimum trimmed length of each name part before a
// duplicate search is worth running
const minNameLength = 2

// DuplicateSearcher finds existing records that may belong to the same
// person as the identity being typed in. Store failures degrade to an
// empty candidate list so registration is never blocked by the search.
type DuplicateSearcher struct {
	store   store.PatientStore
	cache   *store.CandidateCache
	limiter *RateLimiter
	logger  *logging.SafeLogger
}

// NewDuplicateSearcher creates a DuplicateSearcher. The cache may be nil,
// in which case every search hits the store.
func NewDuplicateSearcher(patientStore store.PatientStore, cache *store.CandidateCache, logger *logging.SafeLogger) *DuplicateSearcher {
	return &DuplicateSearcher{
		store:  patientStore,
		cache:  cache,
		logger: logger,
	}
}

// WithRateLimiter caps how often the store is queried. Throttled searches
// degrade to an empty candidate list.
func (s *DuplicateSearcher) WithRateLimiter(limiter *RateLimiter) *DuplicateSearcher {
	s.limiter = limiter
	return s
}

// CriteriaFrom builds search criteria from an identity. It returns an
// empty criteria when the identity does not yet carry enough data for a
// meaningful search.
func (s *DuplicateSearcher) CriteriaFrom(identity models.PatientIdentity) models.SearchCriteria {
	firstName := strings.TrimSpace(identity.FirstName)
	lastName := strings.TrimSpace(identity.LastName)
	if len([]rune(firstName)) < minNameLength || len([]rune(lastName)) < minNameLength {
		return models.SearchCriteria{}
	}
	if identity.DateOfBirth == "" || !utils.ValidateDateOfBirth(identity.DateOfBirth) {
		return models.SearchCriteria{}
	}
	return models.SearchCriteria{
		FirstName:       firstName,
		LastName:        lastName,
		DateOfBirthFrom: identity.DateOfBirth,
		DateOfBirthTo:   identity.DateOfBirth,
	}
}

// Search returns duplicate candidates for the identity. An identity
// without enough data yields an empty list without touching the store.
func (s *DuplicateSearcher) Search(ctx context.Context, identity models.PatientIdentity) []models.DuplicateCandidate {
	criteria := s.CriteriaFrom(identity)
	if criteria.Empty() {
		observability.DuplicateSearches.WithLabelValues("skipped").Inc()
		return nil
	}

	ctx, span := utils.TraceDuplicateSearch(ctx, criteria.FirstName, criteria.LastName)
	defer span.End()

	if cached, ok := s.cache.Get(ctx, criteria); ok {
		observability.DuplicateSearches.WithLabelValues("cached").Inc()
		return cached
	}

	if s.limiter != nil && !s.limiter.Allow("duplicate_search") {
		observability.DuplicateSearches.WithLabelValues("throttled").Inc()
		return nil
	}

	candidates, err := s.store.Search(ctx, criteria)
	if err != nil {
		s.logger.Warn("duplicate search failed, continuing without candidates",
			zap.String("first_name", utils.MaskName(criteria.FirstName)),
			zap.Error(err))
		utils.RecordErrorInSpan(span, err, nil)
		observability.DuplicateSearches.WithLabelValues("error").Inc()
		return nil
	}

	s.cache.Set(ctx, criteria, candidates)
	if len(candidates) > 0 {
		observability.DuplicateSearches.WithLabelValues("found").Inc()
	} else {
		observability.DuplicateSearches.WithLabelValues("none").Inc()
	}
	return candidates
}

// DebouncedSearcher coalesces rapid identity edits into a single Search
// call. Each Trigger restarts the debounce timer; only the most recent
// identity is searched, and results from a superseded trigger are
// discarded even if its search is already in flight.
type DebouncedSearcher struct {
	searcher *DuplicateSearcher
	delay    time.Duration
	onResult func([]models.DuplicateCandidate)

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	closed     bool
}

// NewDebouncedSearcher creates a DebouncedSearcher that invokes onResult
// with the candidate list after the debounce delay elapses without
// further triggers
func NewDebouncedSearcher(searcher *DuplicateSearcher, delay time.Duration, onResult func([]models.DuplicateCandidate)) *DebouncedSearcher {
	if delay <= 0 {
		delay = 800 * time.Millisecond
	}
	return &DebouncedSearcher{
		searcher: searcher,
		delay:    delay,
		onResult: onResult,
	}
}

// Trigger schedules a search for the identity, replacing any pending one
func (d *DebouncedSearcher) Trigger(ctx context.Context, identity models.PatientIdentity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.generation++
	gen := d.generation
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.run(ctx, gen, identity)
	})
}

// Flush runs any pending search immediately instead of waiting out the
// debounce delay. Used when the operator submits before the timer fires.
func (d *DebouncedSearcher) Flush(ctx context.Context, identity models.PatientIdentity) []models.DuplicateCandidate {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	return d.searcher.Search(ctx, identity)
}

// Cancel stops any pending search and marks superseded in-flight results
// for discard
func (d *DebouncedSearcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels pending work and rejects further triggers
func (d *DebouncedSearcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *DebouncedSearcher) run(ctx context.Context, gen uint64, identity models.PatientIdentity) {
	candidates := d.searcher.Search(ctx, identity)

	d.mu.Lock()
	stale := d.closed || gen != d.generation
	d.mu.Unlock()
	if stale {
		return
	}
	if d.onResult != nil {
		d.onResult(candidates)
	}
}
