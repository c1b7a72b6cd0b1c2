package models

import "time"

// PatientIdentity is the subset of a patient record relevant to validation
// and duplicate detection. It is built transiently from form input; dates
// travel as ISO strings (2006-01-02) until the store persists them.
type PatientIdentity struct {
	FirstName   string `json:"first_name" bson:"first_name"`
	LastName    string `json:"last_name" bson:"last_name"`
	DateOfBirth string `json:"date_of_birth" bson:"date_of_birth"`
	MotherName  string `json:"mother_name" bson:"mother_name"`
	FatherName  string `json:"father_name,omitempty" bson:"father_name,omitempty"`

	CPF string `json:"cpf,omitempty" bson:"cpf,omitempty"`
	CNS string `json:"cns,omitempty" bson:"cns,omitempty"`
	RG  string `json:"rg,omitempty" bson:"rg,omitempty"`

	Gender         Gender         `json:"gender" bson:"gender"`
	RaceColor      RaceColor      `json:"race_color" bson:"race_color"`
	MaritalStatus  MaritalStatus  `json:"marital_status,omitempty" bson:"marital_status,omitempty"`
	EducationLevel EducationLevel `json:"education_level,omitempty" bson:"education_level,omitempty"`

	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	Allergies      string `json:"allergies,omitempty" bson:"allergies,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty" bson:"medical_history,omitempty"`

	HasHealthInsurance bool   `json:"has_health_insurance" bson:"has_health_insurance"`
	InsuranceProvider  string `json:"insurance_provider,omitempty" bson:"insurance_provider,omitempty"`
	InsuranceNumber    string `json:"insurance_number,omitempty" bson:"insurance_number,omitempty"`
}

// StoredRecord is a PatientIdentity as persisted by the record store
type StoredRecord struct {
	ID        string          `json:"id" bson:"_id"`
	Identity  PatientIdentity `json:"identity" bson:"identity"`
	Status    RecordStatus    `json:"status" bson:"status"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

// DuplicateCandidate is a previously stored record similar enough to the
// in-progress entry to warrant human review before creating a new record
type DuplicateCandidate struct {
	ID          string          `json:"id" bson:"_id"`
	Identity    PatientIdentity `json:"identity" bson:"identity"`
	Status      RecordStatus    `json:"status" bson:"status"`
	DisplayName string          `json:"display_name" bson:"-"`
}

// SearchCriteria is the partial identity a duplicate search runs on.
// Date bounds are inclusive ISO date strings.
type SearchCriteria struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	DateOfBirthFrom string `json:"date_of_birth_from,omitempty"`
	DateOfBirthTo   string `json:"date_of_birth_to,omitempty"`
}

// Empty reports whether no criteria field is set
func (c SearchCriteria) Empty() bool {
	return c.FirstName == "" && c.LastName == "" && c.DateOfBirthFrom == "" && c.DateOfBirthTo == ""
}
