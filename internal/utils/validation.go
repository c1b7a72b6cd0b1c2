package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hospsys/patient-registry/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result. Only the first error per
// field is kept, so the caller can render one message next to each field.
func (vr *ValidationResult) AddError(field, message string) {
	for _, e := range vr.Errors {
		if e.Field == field {
			return
		}
	}
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// ErrorMap returns the errors as a field -> message map
func (vr *ValidationResult) ErrorMap() map[string]string {
	m := make(map[string]string, len(vr.Errors))
	for _, e := range vr.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// nameRegex accepts letters (including accented), spaces, hyphen, apostrophe
var nameRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s'-]+$`)

const (
	nameMinLen           = 2
	nameMaxLen           = 100
	motherNameMinLen     = 5
	allergiesMaxLen      = 1000
	medicalHistoryMaxLen = 2000
	addressMaxLen        = 200
	insuranceMaxLen      = 100
)

// ValidatePatientIdentity runs the whole field validation schema over a
// patient identity. Every violated rule is reported at once, one message
// per field; the record-level CPF-or-CNS rule is attached to the cpf field.
func ValidatePatientIdentity(input models.PatientIdentity) *ValidationResult {
	result := NewValidationResult()

	validateName(result, "first_name", input.FirstName, nameMinLen, true)
	validateName(result, "last_name", input.LastName, nameMinLen, true)
	validateName(result, "mother_name", input.MotherName, motherNameMinLen, true)
	validateName(result, "father_name", input.FatherName, nameMinLen, false)

	if strings.TrimSpace(input.DateOfBirth) == "" {
		result.AddError("date_of_birth", "Date of birth is required")
	} else if !ValidateDateOfBirth(input.DateOfBirth) {
		result.AddError("date_of_birth", "Date of birth must be a valid past date (max age 150 years)")
	}

	if strings.TrimSpace(string(input.Gender)) == "" {
		result.AddError("gender", "Gender is required")
	} else if !models.IsValidGender(string(input.Gender)) {
		result.AddError("gender", fmt.Sprintf("Invalid gender. Valid options are: %s",
			strings.Join(models.ValidGenderOptions(), ", ")))
	}

	// Race/color is mandatory for death-certificate completeness
	if strings.TrimSpace(string(input.RaceColor)) == "" {
		result.AddError("race_color", "Race/color is required")
	} else if !models.IsValidRaceColor(string(input.RaceColor)) {
		result.AddError("race_color", fmt.Sprintf("Invalid race/color. Valid options are: %s",
			strings.Join(models.ValidRaceColorOptions(), ", ")))
	}

	if input.MaritalStatus != "" && !models.IsValidMaritalStatus(string(input.MaritalStatus)) {
		result.AddError("marital_status", fmt.Sprintf("Invalid marital status. Valid options are: %s",
			strings.Join(models.ValidMaritalStatusOptions(), ", ")))
	}

	if input.EducationLevel != "" && !models.IsValidEducationLevel(string(input.EducationLevel)) {
		result.AddError("education_level", fmt.Sprintf("Invalid education level. Valid options are: %s",
			strings.Join(models.ValidEducationLevelOptions(), ", ")))
	}

	if input.CPF != "" && !ValidateCPF(input.CPF) {
		result.AddError("cpf", "Invalid CPF")
	}

	if input.CNS != "" && !ValidateCNS(input.CNS) {
		result.AddError("cns", "Invalid CNS")
	}

	// Record-level rule: at least one national identifier must be present
	if strings.TrimSpace(input.CPF) == "" && strings.TrimSpace(input.CNS) == "" {
		result.AddError("cpf", "Either CPF or CNS must be informed")
	}

	if input.Phone != "" && !ValidatePhone(input.Phone) {
		result.AddError("phone", "Phone number must have 10 or 11 digits")
	}

	if input.Email != "" && !ValidateEmail(input.Email) {
		result.AddError("email", "Invalid email format")
	}

	if input.ZipCode != "" && !ValidateCEP(input.ZipCode) {
		result.AddError("zip_code", "CEP must have 8 digits")
	}

	if utf8.RuneCountInString(input.Allergies) > allergiesMaxLen {
		result.AddError("allergies", fmt.Sprintf("Allergies must not exceed %d characters", allergiesMaxLen))
	}

	if utf8.RuneCountInString(input.MedicalHistory) > medicalHistoryMaxLen {
		result.AddError("medical_history", fmt.Sprintf("Medical history must not exceed %d characters", medicalHistoryMaxLen))
	}

	if utf8.RuneCountInString(input.Address) > addressMaxLen {
		result.AddError("address", fmt.Sprintf("Address must not exceed %d characters", addressMaxLen))
	}

	if input.HasHealthInsurance {
		if utf8.RuneCountInString(input.InsuranceProvider) > insuranceMaxLen {
			result.AddError("insurance_provider", fmt.Sprintf("Insurance provider must not exceed %d characters", insuranceMaxLen))
		}
		if utf8.RuneCountInString(input.InsuranceNumber) > insuranceMaxLen {
			result.AddError("insurance_number", fmt.Sprintf("Insurance number must not exceed %d characters", insuranceMaxLen))
		}
	}

	return result
}

func validateName(result *ValidationResult, field, value string, minLen int, required bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			result.AddError(field, fieldLabel(field)+" is required")
		}
		return
	}

	length := utf8.RuneCountInString(trimmed)
	if length < minLen || length > nameMaxLen {
		result.AddError(field, fmt.Sprintf("%s must have between %d and %d characters",
			fieldLabel(field), minLen, nameMaxLen))
		return
	}

	if !nameRegex.MatchString(trimmed) {
		result.AddError(field, fieldLabel(field)+" contains invalid characters")
	}
}

func fieldLabel(field string) string {
	switch field {
	case "first_name":
		return "First name"
	case "last_name":
		return "Last name"
	case "mother_name":
		return "Mother's name"
	case "father_name":
		return "Father's name"
	default:
		return field
	}
}

// SanitizeString removes leading/trailing whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// SanitizePatientIdentity trims free-text fields and normalizes documents
// to bare digits, so validation and storage see canonical values
func SanitizePatientIdentity(input models.PatientIdentity) models.PatientIdentity {
	input.FirstName = SanitizeString(input.FirstName)
	input.LastName = SanitizeString(input.LastName)
	input.MotherName = SanitizeString(input.MotherName)
	input.FatherName = SanitizeString(input.FatherName)
	input.DateOfBirth = SanitizeString(input.DateOfBirth)
	input.CPF = RemoveFormatting(input.CPF)
	input.CNS = RemoveFormatting(input.CNS)
	input.RG = SanitizeString(input.RG)
	input.Phone = RemoveFormatting(input.Phone)
	input.Email = strings.ToLower(SanitizeString(input.Email))
	input.ZipCode = RemoveFormatting(input.ZipCode)
	input.Address = SanitizeString(input.Address)
	input.Allergies = SanitizeString(input.Allergies)
	input.MedicalHistory = SanitizeString(input.MedicalHistory)
	input.InsuranceProvider = SanitizeString(input.InsuranceProvider)
	input.InsuranceNumber = SanitizeString(input.InsuranceNumber)
	return input
}
