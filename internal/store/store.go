// Package store abstracts the external patient record store behind the
// create/update/search operations the registration workflow needs.
package store

import (
	"context"

	"github.com/hospsys/patient-registry/internal/models"
)

// PatientStore is the record store the validation and deduplication core
// talks to. The similarity-matching algorithm behind Search is the store's
// responsibility; callers only decide when to search and how to gate on
// the result.
type PatientStore interface {
	// Search returns stored records similar to the given partial identity,
	// in store order
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.DuplicateCandidate, error)

	// Create persists a new patient record
	Create(ctx context.Context, identity models.PatientIdentity) (*models.StoredRecord, error)

	// Update replaces the identity of an existing record
	Update(ctx context.Context, id string, identity models.PatientIdentity) (*models.StoredRecord, error)

	// Get fetches a stored record by id
	Get(ctx context.Context, id string) (*models.StoredRecord, error)
}
