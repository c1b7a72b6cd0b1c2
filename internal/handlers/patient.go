package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/observability"
	"github.com/hospsys/patient-registry/internal/redisclient"
	"github.com/hospsys/patient-registry/internal/services"
	"github.com/hospsys/patient-registry/internal/store"
	"github.com/hospsys/patient-registry/internal/utils"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the field errors of a rejected identity
type ValidationErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []utils.ValidationError `json:"fields"`
}

// DuplicatesResponse carries the candidates that suspended a submission
type DuplicatesResponse struct {
	Error      string                      `json:"error"`
	Candidates []models.DuplicateCandidate `json:"candidates"`
}

// RegisterPatientRequest is the body of a registration submission
type RegisterPatientRequest struct {
	models.PatientIdentity
	// ConfirmNew acknowledges previously returned duplicate candidates and
	// asks for a new record anyway
	ConfirmNew bool `json:"confirm_new,omitempty"`
}

// CheckDuplicatesRequest is the body of an explicit duplicate search
type CheckDuplicatesRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// ValidateResponse is the body of a validation dry run
type ValidateResponse struct {
	IsValid       bool                    `json:"is_valid"`
	Errors        []utils.ValidationError `json:"errors,omitempty"`
	VisibleFields map[string]bool         `json:"visible_fields"`
}

// PatientHandler serves the patient registration endpoints
type PatientHandler struct {
	store        store.PatientStore
	searcher     *services.DuplicateSearcher
	cache        *redisclient.Client
	cacheTTL     time.Duration
	storeTimeout time.Duration
	logger       *logging.SafeLogger
}

// NewPatientHandler creates a PatientHandler. The cache may be nil, in
// which case record reads always hit the store.
func NewPatientHandler(patientStore store.PatientStore, searcher *services.DuplicateSearcher, cache *redisclient.Client, cacheTTL, storeTimeout time.Duration, logger *logging.SafeLogger) *PatientHandler {
	return &PatientHandler{
		store:        patientStore,
		searcher:     searcher,
		cache:        cache,
		cacheTTL:     cacheTTL,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// RegisterPatient godoc
// @Summary Registrar paciente
// @Description Valida os dados do paciente, procura possíveis duplicatas e cria um novo registro
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body RegisterPatientRequest true "Dados do paciente"
// @Success 201 {object} models.StoredRecord
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} DuplicatesResponse "Duplicatas pendentes de resolução ou documento já cadastrado"
// @Failure 422 {object} ValidationErrorResponse
// @Router /v1/patients [post]
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RegisterPatient")
	defer span.End()

	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session := services.NewRegistrationSession(h.store, h.searcher, 0, h.storeTimeout, h.logger)
	defer session.Close()

	if err := session.UpdateIdentity(ctx, req.PatientIdentity); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	if req.ConfirmNew {
		if err := session.ConfirmNew(); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
	}

	record, err := session.Submit(ctx)
	if err != nil {
		h.writeSubmitError(c, session, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdatePatient godoc
// @Summary Atualizar paciente
// @Description Atualiza os dados de um registro existente; a busca de duplicatas não se aplica a edições
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "ID do registro"
// @Param patient body models.PatientIdentity true "Dados do paciente"
// @Success 200 {object} models.StoredRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /v1/patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePatient")
	defer span.End()

	id := c.Param("id")
	var identity models.PatientIdentity
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session := services.NewEditSession(h.store, id, h.storeTimeout, h.logger)
	defer session.Close()

	if err := session.UpdateIdentity(ctx, identity); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	record, err := session.Submit(ctx)
	if err != nil {
		h.writeSubmitError(c, session, err)
		return
	}

	h.invalidateRecordCache(c, record.ID)
	c.JSON(http.StatusOK, record)
}

// GetPatient godoc
// @Summary Obter paciente
// @Description Obtém um registro de paciente pelo ID
// @Tags patients
// @Produce json
// @Param id path string true "ID do registro"
// @Success 200 {object} models.StoredRecord
// @Failure 404 {object} ErrorResponse
// @Router /v1/patients/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPatient")
	defer span.End()

	id := c.Param("id")
	cacheKey := fmt.Sprintf("patient:%s", id)

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, cacheKey).Result(); err == nil {
			var record models.StoredRecord
			if err := json.Unmarshal([]byte(cached), &record); err == nil {
				observability.CacheHits.WithLabelValues("hit").Inc()
				c.JSON(http.StatusOK, record)
				return
			}
		}
		observability.CacheHits.WithLabelValues("miss").Inc()
	}

	record, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
			return
		}
		h.logger.Error("failed to get patient", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(record); err == nil {
			if err := h.cache.Set(ctx, cacheKey, payload, h.cacheTTL).Err(); err != nil {
				h.logger.Warn("failed to cache patient record", zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, record)
}

// CheckDuplicates godoc
// @Summary Buscar possíveis duplicatas
// @Description Procura registros existentes semelhantes ao nome e data de nascimento informados
// @Tags patients
// @Accept json
// @Produce json
// @Param criteria body CheckDuplicatesRequest true "Critérios de busca"
// @Success 200 {array} models.DuplicateCandidate
// @Failure 400 {object} ErrorResponse
// @Router /v1/patients/check-duplicates [post]
func (h *PatientHandler) CheckDuplicates(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CheckDuplicates")
	defer span.End()

	var req CheckDuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	candidates := h.searcher.Search(ctx, models.PatientIdentity{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	})
	if candidates == nil {
		candidates = []models.DuplicateCandidate{}
	}
	c.JSON(http.StatusOK, candidates)
}

// ValidatePatient godoc
// @Summary Validar dados do paciente
// @Description Executa as regras de validação sem criar um registro
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.PatientIdentity true "Dados do paciente"
// @Success 200 {object} ValidateResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/patients/validate [post]
func (h *PatientHandler) ValidatePatient(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidatePatient")
	defer span.End()

	var identity models.PatientIdentity
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	_, validationSpan := utils.TraceInputValidation(ctx, "patient_identity", "all")
	identity = utils.SanitizePatientIdentity(identity)
	result := utils.ValidatePatientIdentity(identity)
	validationSpan.End()
	for _, e := range result.Errors {
		observability.ValidationFailures.WithLabelValues(e.Field).Inc()
	}
	c.JSON(http.StatusOK, ValidateResponse{
		IsValid:       result.IsValid,
		Errors:        result.Errors,
		VisibleFields: models.VisibleFields(identity),
	})
}

// writeSubmitError maps a session submission error to an HTTP response
func (h *PatientHandler) writeSubmitError(c *gin.Context, session *services.RegistrationSession, err error) {
	switch {
	case errors.Is(err, models.ErrValidationFailed):
		validation := session.Validation()
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: validation.Errors,
		})
	case errors.Is(err, models.ErrDuplicatesPending):
		c.JSON(http.StatusConflict, DuplicatesResponse{
			Error:      "Possible duplicate records found, resolution required",
			Candidates: session.Candidates(),
		})
	case errors.Is(err, models.ErrCPFAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "A record with this CPF already exists"})
	case errors.Is(err, models.ErrCNSAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "A record with this CNS already exists"})
	case errors.Is(err, models.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
	default:
		h.logger.Error("patient submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// invalidateRecordCache drops the cached copy of a record after an update
func (h *PatientHandler) invalidateRecordCache(c *gin.Context, id string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Del(c.Request.Context(), fmt.Sprintf("patient:%s", id)).Err(); err != nil {
		h.logger.Warn("failed to invalidate patient cache", zap.String("id", id), zap.Error(err))
	}
}
