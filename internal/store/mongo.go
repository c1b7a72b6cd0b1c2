package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/observability"
	"github.com/hospsys/patient-registry/internal/utils"
)

// patientDocument is the persisted shape of a patient record. Normalized
// name fields back the similarity-search index.
type patientDocument struct {
	ID                  string                 `bson:"_id"`
	Identity            models.PatientIdentity `bson:",inline"`
	FirstNameNormalized string                 `bson:"first_name_normalized"`
	LastNameNormalized  string                 `bson:"last_name_normalized"`
	PhoneE164           string                 `bson:"phone_e164,omitempty"`
	Status              models.RecordStatus    `bson:"status"`
	CreatedAt           time.Time              `bson:"created_at"`
	UpdatedAt           time.Time              `bson:"updated_at"`
}

// phoneE164 returns the canonical E.164 form of a contact phone, or the
// empty string when the number cannot be parsed
func phoneE164(phone string) string {
	if phone == "" {
		return ""
	}
	components, err := utils.ParsePhoneNumber(phone)
	if err != nil {
		return ""
	}
	return components.E164
}

// MongoPatientStore implements PatientStore over a MongoDB collection
type MongoPatientStore struct {
	collection *mongo.Collection
	timeout    time.Duration
	maxResults int64
	logger     *logging.SafeLogger
}

// NewMongoPatientStore creates a MongoPatientStore with a bounded per-call
// timeout and a cap on search results
func NewMongoPatientStore(collection *mongo.Collection, timeout time.Duration, maxResults int64, logger *logging.SafeLogger) *MongoPatientStore {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &MongoPatientStore{
		collection: collection,
		timeout:    timeout,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Search finds stored records whose normalized names prefix-match the
// criteria, optionally bounded by a birth date range
func (s *MongoPatientStore) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.DuplicateCandidate, error) {
	ctx, span := utils.TraceDuplicateSearch(ctx, criteria.FirstName, criteria.LastName)
	defer span.End()

	filter := bson.M{}
	if criteria.FirstName != "" {
		filter["first_name_normalized"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(utils.NormalizeName(criteria.FirstName)),
		}
	}
	if criteria.LastName != "" {
		filter["last_name_normalized"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(utils.NormalizeName(criteria.LastName)),
		}
	}
	dateRange := bson.M{}
	if criteria.DateOfBirthFrom != "" {
		dateRange["$gte"] = criteria.DateOfBirthFrom
	}
	if criteria.DateOfBirthTo != "" {
		dateRange["$lte"] = criteria.DateOfBirthTo
	}
	if len(dateRange) > 0 {
		filter["date_of_birth"] = dateRange
	}

	cursor, err := utils.FindWithLimitAndTimeout(ctx, s.collection, filter, s.maxResults, s.timeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to search patient records: %w", err)
	}
	defer cursor.Close(ctx)

	var candidates []models.DuplicateCandidate
	for cursor.Next(ctx) {
		var doc patientDocument
		if err := cursor.Decode(&doc); err != nil {
			s.logger.Warn("failed to decode patient document during search", zap.Error(err))
			continue
		}
		candidates = append(candidates, doc.toCandidate())
	}
	if err := cursor.Err(); err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to iterate patient records: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	utils.AddSpanAttribute(span, "search.candidates", len(candidates))
	return candidates, nil
}

// Create persists a new patient record
func (s *MongoPatientStore) Create(ctx context.Context, identity models.PatientIdentity) (*models.StoredRecord, error) {
	now := time.Now().UTC()
	doc := patientDocument{
		ID:                  uuid.NewString(),
		Identity:            identity,
		FirstNameNormalized: utils.NormalizeName(identity.FirstName),
		LastNameNormalized:  utils.NormalizeName(identity.LastName),
		PhoneE164:           phoneE164(identity.Phone),
		Status:              models.RecordStatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := utils.InsertOneWithTimeout(ctx, s.collection, doc, s.timeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err, identity)
		}
		return nil, fmt.Errorf("failed to create patient record: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
	s.logger.Info("patient record created",
		zap.String("record_id", doc.ID),
		zap.String("cpf", observability.MaskCPF(identity.CPF)),
		zap.String("cns", observability.MaskCNS(identity.CNS)))

	record := doc.toRecord()
	return &record, nil
}

// Update replaces the identity of an existing record
func (s *MongoPatientStore) Update(ctx context.Context, id string, identity models.PatientIdentity) (*models.StoredRecord, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"first_name":            identity.FirstName,
			"last_name":             identity.LastName,
			"date_of_birth":         identity.DateOfBirth,
			"mother_name":           identity.MotherName,
			"father_name":           identity.FatherName,
			"cpf":                   identity.CPF,
			"cns":                   identity.CNS,
			"rg":                    identity.RG,
			"gender":                identity.Gender,
			"race_color":            identity.RaceColor,
			"marital_status":        identity.MaritalStatus,
			"education_level":       identity.EducationLevel,
			"phone":                 identity.Phone,
			"email":                 identity.Email,
			"zip_code":              identity.ZipCode,
			"address":               identity.Address,
			"allergies":             identity.Allergies,
			"medical_history":       identity.MedicalHistory,
			"has_health_insurance":  identity.HasHealthInsurance,
			"insurance_provider":    identity.InsuranceProvider,
			"insurance_number":      identity.InsuranceNumber,
			"first_name_normalized": utils.NormalizeName(identity.FirstName),
			"last_name_normalized":  utils.NormalizeName(identity.LastName),
			"phone_e164":            phoneE164(identity.Phone),
			"updated_at":            now,
		},
	}

	result, err := utils.UpdateOneWithTimeout(ctx, s.collection, bson.M{"_id": id}, update, s.timeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("update", "error").Inc()
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err, identity)
		}
		return nil, fmt.Errorf("failed to update patient record: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, models.ErrRecordNotFound
	}

	observability.DatabaseOperations.WithLabelValues("update", "success").Inc()
	return s.Get(ctx, id)
}

// Get fetches a stored record by id
func (s *MongoPatientStore) Get(ctx context.Context, id string) (*models.StoredRecord, error) {
	ctx, span := utils.TraceDatabaseFind(ctx, s.collection.Name(), "_id")
	defer span.End()

	var doc patientDocument
	err := utils.FindOneWithTimeout(ctx, s.collection, bson.M{"_id": id}, &doc, s.timeout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrRecordNotFound
		}
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return nil, fmt.Errorf("failed to get patient record: %w", err)
	}

	record := doc.toRecord()
	return &record, nil
}

func (d patientDocument) toRecord() models.StoredRecord {
	return models.StoredRecord{
		ID:        d.ID,
		Identity:  d.Identity,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d patientDocument) toCandidate() models.DuplicateCandidate {
	return models.DuplicateCandidate{
		ID:          d.ID,
		Identity:    d.Identity,
		Status:      d.Status,
		DisplayName: d.Identity.FirstName + " " + d.Identity.LastName,
	}
}

func duplicateKeyError(err error, identity models.PatientIdentity) error {
	// The unique sparse indexes cover cpf and cns; tell the caller which
	// identifier collided when the message makes it clear
	msg := err.Error()
	switch {
	case identity.CPF != "" && strings.Contains(msg, "idx_cpf"):
		return models.ErrCPFAlreadyExists
	case identity.CNS != "" && strings.Contains(msg, "idx_cns"):
		return models.ErrCNSAlreadyExists
	default:
		return fmt.Errorf("duplicate key on patient record: %w", err)
	}
}
