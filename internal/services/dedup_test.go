package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/store"
)

func testIdentity() models.PatientIdentity {
	return models.PatientIdentity{
		FirstName:   "João",
		LastName:    "Silva",
		DateOfBirth: "1990-05-10",
		MotherName:  "Maria Silva",
		CPF:         "52998224725",
		Gender:      models.GenderMale,
		RaceColor:   models.RaceColorBrown,
	}
}

func TestDuplicateSearcher_CriteriaFrom(t *testing.T) {
	searcher := NewDuplicateSearcher(store.NewMockPatientStore(), nil, nil)

	tests := []struct {
		name      string
		mutate    func(*models.PatientIdentity)
		wantEmpty bool
	}{
		{name: "complete identity", mutate: func(i *models.PatientIdentity) {}, wantEmpty: false},
		{name: "first name too short", mutate: func(i *models.PatientIdentity) { i.FirstName = "J" }, wantEmpty: true},
		{name: "last name too short", mutate: func(i *models.PatientIdentity) { i.LastName = "S" }, wantEmpty: true},
		{name: "missing birth date", mutate: func(i *models.PatientIdentity) { i.DateOfBirth = "" }, wantEmpty: true},
		{name: "malformed birth date", mutate: func(i *models.PatientIdentity) { i.DateOfBirth = "10/05/1990" }, wantEmpty: true},
		{name: "whitespace-only names", mutate: func(i *models.PatientIdentity) { i.FirstName = "   " }, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := testIdentity()
			tt.mutate(&identity)
			criteria := searcher.CriteriaFrom(identity)
			assert.Equal(t, tt.wantEmpty, criteria.Empty())
		})
	}
}

func TestDuplicateSearcher_Search_SkipsIncompleteIdentity(t *testing.T) {
	mock := store.NewMockPatientStore()
	searcher := NewDuplicateSearcher(mock, nil, nil)

	identity := testIdentity()
	identity.FirstName = "J"

	candidates := searcher.Search(context.Background(), identity)
	assert.Empty(t, candidates)
	assert.Zero(t, mock.SearchCalls())
}

func TestDuplicateSearcher_Search_ReturnsCandidates(t *testing.T) {
	mock := store.NewMockPatientStore()
	mock.SearchResults = []models.DuplicateCandidate{
		{ID: "abc", DisplayName: "João Silva", Status: models.RecordStatusActive},
	}
	searcher := NewDuplicateSearcher(mock, nil, nil)

	candidates := searcher.Search(context.Background(), testIdentity())
	require.Len(t, candidates, 1)
	assert.Equal(t, "abc", candidates[0].ID)
	assert.Equal(t, 1, mock.SearchCalls())

	criteria := mock.LastCriteria()
	assert.Equal(t, "João", criteria.FirstName)
	assert.Equal(t, "Silva", criteria.LastName)
	assert.Equal(t, "1990-05-10", criteria.DateOfBirthFrom)
	assert.Equal(t, "1990-05-10", criteria.DateOfBirthTo)
}

func TestDuplicateSearcher_Search_StoreFailureDegradesToEmpty(t *testing.T) {
	mock := store.NewMockPatientStore()
	mock.SearchErr = errors.New("connection refused")
	searcher := NewDuplicateSearcher(mock, nil, nil)

	candidates := searcher.Search(context.Background(), testIdentity())
	assert.Empty(t, candidates)
	assert.Equal(t, 1, mock.SearchCalls())
}

func TestDebouncedSearcher_CoalescesRapidEdits(t *testing.T) {
	mock := store.NewMockPatientStore()
	searcher := NewDuplicateSearcher(mock, nil, nil)

	var mu sync.Mutex
	var results [][]models.DuplicateCandidate
	debounced := NewDebouncedSearcher(searcher, 50*time.Millisecond, func(c []models.DuplicateCandidate) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, c)
	})
	defer debounced.Close()

	ctx := context.Background()
	first := testIdentity()
	first.FirstName = "Jo"
	second := testIdentity()
	second.FirstName = "Joã"
	final := testIdentity()

	debounced.Trigger(ctx, first)
	debounced.Trigger(ctx, second)
	debounced.Trigger(ctx, final)

	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, 1, mock.SearchCalls(), "rapid edits must coalesce into one search")
	assert.Equal(t, "João", mock.LastCriteria().FirstName, "the surviving search must use the final values")
	mu.Lock()
	assert.Len(t, results, 1)
	mu.Unlock()
}

func TestDebouncedSearcher_CancelStopsPendingSearch(t *testing.T) {
	mock := store.NewMockPatientStore()
	searcher := NewDuplicateSearcher(mock, nil, nil)
	debounced := NewDebouncedSearcher(searcher, 50*time.Millisecond, nil)

	debounced.Trigger(context.Background(), testIdentity())
	debounced.Cancel()

	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, mock.SearchCalls())
}

func TestDebouncedSearcher_CloseRejectsFurtherTriggers(t *testing.T) {
	mock := store.NewMockPatientStore()
	searcher := NewDuplicateSearcher(mock, nil, nil)
	debounced := NewDebouncedSearcher(searcher, 10*time.Millisecond, nil)

	debounced.Close()
	debounced.Trigger(context.Background(), testIdentity())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, mock.SearchCalls())
}

func TestDebouncedSearcher_SupersededInFlightResultDiscarded(t *testing.T) {
	mock := store.NewMockPatientStore()
	mock.SearchResults = []models.DuplicateCandidate{{ID: "x"}}

	// hold only the first search open so a newer trigger overtakes it
	started := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool
	first.Store(true)
	mock.SearchHook = func() {
		if first.CompareAndSwap(true, false) {
			close(started)
			<-release
		}
	}

	searcher := NewDuplicateSearcher(mock, nil, nil)
	var mu sync.Mutex
	var results [][]models.DuplicateCandidate
	debounced := NewDebouncedSearcher(searcher, 10*time.Millisecond, func(c []models.DuplicateCandidate) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, c)
	})
	defer debounced.Close()

	ctx := context.Background()
	stale := testIdentity()
	stale.FirstName = "Joana"
	debounced.Trigger(ctx, stale)
	<-started

	debounced.Trigger(ctx, testIdentity())
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) == 1
	}, time.Second, 5*time.Millisecond, "the newer search must deliver its result")

	// let the overtaken search finish; its result must be dropped
	close(release)
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, 2, mock.SearchCalls())
	mu.Lock()
	assert.Len(t, results, 1, "an overtaken in-flight search must not deliver")
	mu.Unlock()
}

func TestDebouncedSearcher_FlushRunsImmediately(t *testing.T) {
	mock := store.NewMockPatientStore()
	mock.SearchResults = []models.DuplicateCandidate{{ID: "x"}}
	searcher := NewDuplicateSearcher(mock, nil, nil)
	debounced := NewDebouncedSearcher(searcher, time.Hour, nil)
	defer debounced.Close()

	candidates := debounced.Flush(context.Background(), testIdentity())
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, mock.SearchCalls())
}
