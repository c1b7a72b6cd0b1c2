package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// RemoveFormatting strips every non-digit character from a document string
func RemoveFormatting(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// ValidateCPF validates a CPF number
// It checks if the CPF has 11 digits and validates both check digits
func ValidateCPF(cpf string) bool {
	cpf = RemoveFormatting(cpf)

	if len(cpf) != 11 {
		return false
	}

	// All-equal digits pass the checksum but are not valid CPFs
	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// First check digit
	sum := 0
	for i := 0; i < 9; i++ {
		digit, err := strconv.Atoi(string(cpf[i]))
		if err != nil {
			return false
		}
		sum += digit * (10 - i)
	}
	remainder := sum % 11
	expected := 0
	if remainder >= 2 {
		expected = 11 - remainder
	}
	if int(cpf[9]-'0') != expected {
		return false
	}

	// Second check digit
	sum = 0
	for i := 0; i < 10; i++ {
		digit, err := strconv.Atoi(string(cpf[i]))
		if err != nil {
			return false
		}
		sum += digit * (11 - i)
	}
	remainder = sum % 11
	expected = 0
	if remainder >= 2 {
		expected = 11 - remainder
	}
	return int(cpf[10]-'0') == expected
}

// ValidateCNS validates a CNS (Cartão Nacional de Saúde) number.
// Definitive cards start with 1 or 2, provisional cards with 7, 8 or 9;
// both variants use the same position-weighted mod-11 checksum. Any other
// leading digit is invalid.
func ValidateCNS(cns string) bool {
	cns = RemoveFormatting(cns)

	if len(cns) != 15 {
		return false
	}

	switch cns[0] {
	case '1', '2', '7', '8', '9':
	default:
		return false
	}

	sum := 0
	for i := 0; i < 15; i++ {
		digit := int(cns[i] - '0')
		sum += digit * (15 - i)
	}
	return sum%11 == 0
}

// ValidateCEP validates a Brazilian postal code (8 digits)
func ValidateCEP(cep string) bool {
	return len(RemoveFormatting(cep)) == 8
}

// ValidatePhone validates a Brazilian phone number
// (10 digits for landlines, 11 for mobiles, area code included)
func ValidatePhone(phone string) bool {
	digits := len(RemoveFormatting(phone))
	return digits == 10 || digits == 11
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address shape
func ValidateEmail(email string) bool {
	if !emailRegex.MatchString(email) {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// MaxPatientAgeYears bounds how far back a birth date may lie
const MaxPatientAgeYears = 150

// ValidateDateOfBirth validates an ISO birth date (2006-01-02).
// The date must parse, must not be in the future and must not imply an age
// above MaxPatientAgeYears at evaluation time.
func ValidateDateOfBirth(raw string) bool {
	return validateDateOfBirthAt(raw, time.Now())
}

func validateDateOfBirthAt(raw string, now time.Time) bool {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return false
	}

	oldest := today.AddDate(-MaxPatientAgeYears, 0, 0)
	return !date.Before(oldest)
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00.
// Inputs with any other digit count are returned unchanged.
func FormatCPF(cpf string) string {
	digits := RemoveFormatting(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FormatCNS renders a 15-digit CNS as 000 0000 0000 0000.
// Inputs with any other digit count are returned unchanged.
func FormatCNS(cns string) string {
	digits := RemoveFormatting(cns)
	if len(digits) != 15 {
		return cns
	}
	return digits[:3] + " " + digits[3:7] + " " + digits[7:11] + " " + digits[11:]
}

// FormatCEP renders an 8-digit postal code as 00000-000.
// Inputs with any other digit count are returned unchanged.
func FormatCEP(cep string) string {
	digits := RemoveFormatting(cep)
	if len(digits) != 8 {
		return cep
	}
	return digits[:5] + "-" + digits[5:]
}

// FormatPhone renders a 10 or 11-digit phone number as (00) 0000-0000 or
// (00) 00000-0000. Inputs with any other digit count are returned unchanged.
func FormatPhone(phone string) string {
	digits := RemoveFormatting(phone)
	switch len(digits) {
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	default:
		return phone
	}
}
