package models

// Gender is the administrative sex/gender of a patient record
type Gender string

const (
	GenderFemale      Gender = "feminino"
	GenderMale        Gender = "masculino"
	GenderOther       Gender = "outro"
	GenderNotInformed Gender = "nao_informado"
)

var genderLabels = map[Gender]string{
	GenderFemale:      "Feminino",
	GenderMale:        "Masculino",
	GenderOther:       "Outro",
	GenderNotInformed: "Não informado",
}

// ValidGenderOptions returns the accepted gender values
func ValidGenderOptions() []string {
	return []string{
		string(GenderFemale),
		string(GenderMale),
		string(GenderOther),
		string(GenderNotInformed),
	}
}

// IsValidGender checks if a given gender value is valid
func IsValidGender(value string) bool {
	_, ok := genderLabels[Gender(value)]
	return ok
}

// Label returns the display label for a gender value
func (g Gender) Label() string {
	if label, ok := genderLabels[g]; ok {
		return label
	}
	return string(g)
}

// RaceColor follows the IBGE race/color classification. It is mandatory on
// registration because the death certificate (Declaração de Óbito) requires it.
type RaceColor string

const (
	RaceColorWhite      RaceColor = "branca"
	RaceColorBlack      RaceColor = "preta"
	RaceColorBrown      RaceColor = "parda"
	RaceColorYellow     RaceColor = "amarela"
	RaceColorIndigenous RaceColor = "indigena"
	RaceColorOther      RaceColor = "outra"
)

var raceColorLabels = map[RaceColor]string{
	RaceColorWhite:      "Branca",
	RaceColorBlack:      "Preta",
	RaceColorBrown:      "Parda",
	RaceColorYellow:     "Amarela",
	RaceColorIndigenous: "Indígena",
	RaceColorOther:      "Outra",
}

// ValidRaceColorOptions returns the accepted race/color values
func ValidRaceColorOptions() []string {
	return []string{
		string(RaceColorWhite),
		string(RaceColorBlack),
		string(RaceColorBrown),
		string(RaceColorYellow),
		string(RaceColorIndigenous),
		string(RaceColorOther),
	}
}

// IsValidRaceColor checks if a given race/color value is valid
func IsValidRaceColor(value string) bool {
	_, ok := raceColorLabels[RaceColor(value)]
	return ok
}

// Label returns the display label for a race/color value
func (r RaceColor) Label() string {
	if label, ok := raceColorLabels[r]; ok {
		return label
	}
	return string(r)
}

// MaritalStatus is the civil status of a patient
type MaritalStatus string

const (
	MaritalSingle      MaritalStatus = "solteiro"
	MaritalMarried     MaritalStatus = "casado"
	MaritalSeparated   MaritalStatus = "separado"
	MaritalDivorced    MaritalStatus = "divorciado"
	MaritalWidowed     MaritalStatus = "viuvo"
	MaritalStableUnion MaritalStatus = "uniao_estavel"
)

var maritalStatusLabels = map[MaritalStatus]string{
	MaritalSingle:      "Solteiro(a)",
	MaritalMarried:     "Casado(a)",
	MaritalSeparated:   "Separado(a)",
	MaritalDivorced:    "Divorciado(a)",
	MaritalWidowed:     "Viúvo(a)",
	MaritalStableUnion: "União estável",
}

// ValidMaritalStatusOptions returns the accepted marital status values
func ValidMaritalStatusOptions() []string {
	return []string{
		string(MaritalSingle),
		string(MaritalMarried),
		string(MaritalSeparated),
		string(MaritalDivorced),
		string(MaritalWidowed),
		string(MaritalStableUnion),
	}
}

// IsValidMaritalStatus checks if a given marital status value is valid
func IsValidMaritalStatus(value string) bool {
	_, ok := maritalStatusLabels[MaritalStatus(value)]
	return ok
}

// Label returns the display label for a marital status value
func (m MaritalStatus) Label() string {
	if label, ok := maritalStatusLabels[m]; ok {
		return label
	}
	return string(m)
}

// EducationLevel is the schooling level of a patient
type EducationLevel string

const (
	EducationNone         EducationLevel = "sem_escolaridade"
	EducationElementary   EducationLevel = "fundamental"
	EducationHighSchool   EducationLevel = "medio"
	EducationHigher       EducationLevel = "superior"
	EducationPostGraduate EducationLevel = "pos_graduacao"
)

var educationLevelLabels = map[EducationLevel]string{
	EducationNone:         "Sem escolaridade",
	EducationElementary:   "Ensino fundamental",
	EducationHighSchool:   "Ensino médio",
	EducationHigher:       "Ensino superior",
	EducationPostGraduate: "Pós-graduação",
}

// ValidEducationLevelOptions returns the accepted education level values
func ValidEducationLevelOptions() []string {
	return []string{
		string(EducationNone),
		string(EducationElementary),
		string(EducationHighSchool),
		string(EducationHigher),
		string(EducationPostGraduate),
	}
}

// IsValidEducationLevel checks if a given education level value is valid
func IsValidEducationLevel(value string) bool {
	_, ok := educationLevelLabels[EducationLevel(value)]
	return ok
}

// Label returns the display label for an education level value
func (e EducationLevel) Label() string {
	if label, ok := educationLevelLabels[e]; ok {
		return label
	}
	return string(e)
}

// RecordStatus is the storage status of a stored patient record,
// shown next to duplicate candidates
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
	RecordStatusDeceased RecordStatus = "deceased"
)

var recordStatusLabels = map[RecordStatus]string{
	RecordStatusActive:   "Ativo",
	RecordStatusInactive: "Inativo",
	RecordStatusDeceased: "Óbito",
}

// ValidRecordStatusOptions returns the accepted record status values
func ValidRecordStatusOptions() []string {
	return []string{
		string(RecordStatusActive),
		string(RecordStatusInactive),
		string(RecordStatusDeceased),
	}
}

// IsValidRecordStatus checks if a given record status value is valid
func IsValidRecordStatus(value string) bool {
	_, ok := recordStatusLabels[RecordStatus(value)]
	return ok
}

// Label returns the display label for a record status value
func (s RecordStatus) Label() string {
	if label, ok := recordStatusLabels[s]; ok {
		return label
	}
	return string(s)
}
