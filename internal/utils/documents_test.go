package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{
			name:  "Valid CPF without formatting",
			cpf:   "12345678909",
			valid: true,
		},
		{
			name:  "Valid CPF with formatting",
			cpf:   "123.456.789-09",
			valid: true,
		},
		{
			name:  "Valid CPF - real example 1",
			cpf:   "11144477735",
			valid: true,
		},
		{
			name:  "Valid CPF - real example 2",
			cpf:   "52998224725",
			valid: true,
		},
		{
			name:  "Invalid CPF - wrong check digit",
			cpf:   "12345678900",
			valid: false,
		},
		{
			name:  "Invalid CPF - all zeros",
			cpf:   "00000000000",
			valid: false,
		},
		{
			name:  "Invalid CPF - all ones",
			cpf:   "11111111111",
			valid: false,
		},
		{
			name:  "Invalid CPF - sequential digits",
			cpf:   "12345678910",
			valid: false,
		},
		{
			name:  "Invalid CPF - too short",
			cpf:   "123456789",
			valid: false,
		},
		{
			name:  "Invalid CPF - too long",
			cpf:   "123456789012",
			valid: false,
		},
		{
			name:  "Invalid CPF - empty string",
			cpf:   "",
			valid: false,
		},
		{
			name:  "Invalid CPF - only letters",
			cpf:   "abcdefghijk",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCPF(tt.cpf)
			assert.Equal(t, tt.valid, result, "ValidateCPF(%q) should be %v", tt.cpf, tt.valid)
		})
	}
}

func TestValidateCPF_AllSameDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := ""
		for i := 0; i < 11; i++ {
			cpf += string(d)
		}
		t.Run("All "+string(d), func(t *testing.T) {
			assert.False(t, ValidateCPF(cpf), "CPF %s should be invalid", cpf)
		})
	}
}

func TestValidateCPF_SingleDigitMutations(t *testing.T) {
	// Every single-digit mutation of a valid CPF must fail the checksum
	const base = "52998224725"
	assert.True(t, ValidateCPF(base))

	for i := 0; i < len(base); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if base[i] == d {
				continue
			}
			mutated := base[:i] + string(d) + base[i+1:]
			assert.False(t, ValidateCPF(mutated), "mutation %s of %s should be invalid", mutated, base)
		}
	}
}

func TestValidateCNS(t *testing.T) {
	tests := []struct {
		name  string
		cns   string
		valid bool
	}{
		{
			name:  "Valid definitive CNS starting with 1",
			cns:   "152601815908304",
			valid: true,
		},
		{
			name:  "Valid definitive CNS starting with 2",
			cns:   "262819482199303",
			valid: true,
		},
		{
			name:  "Valid provisional CNS starting with 7",
			cns:   "775749118625207",
			valid: true,
		},
		{
			name:  "Valid provisional CNS starting with 8",
			cns:   "850752917034204",
			valid: true,
		},
		{
			name:  "Valid provisional CNS starting with 9",
			cns:   "907924402685903",
			valid: true,
		},
		{
			name:  "Valid CNS with formatting",
			cns:   "152 6018 1590 8304",
			valid: true,
		},
		{
			name:  "Invalid CNS - leading 0 despite zero checksum",
			cns:   "012345678901002",
			valid: false,
		},
		{
			name:  "Invalid CNS - leading 3 despite zero checksum",
			cns:   "312345678901001",
			valid: false,
		},
		{
			name:  "Invalid CNS - leading 5 despite zero checksum",
			cns:   "512345678901004",
			valid: false,
		},
		{
			name:  "Invalid CNS - bad checksum",
			cns:   "152601815908305",
			valid: false,
		},
		{
			name:  "Invalid CNS - too short",
			cns:   "15260181590830",
			valid: false,
		},
		{
			name:  "Invalid CNS - too long",
			cns:   "1526018159083041",
			valid: false,
		},
		{
			name:  "Invalid CNS - empty string",
			cns:   "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCNS(tt.cns)
			assert.Equal(t, tt.valid, result, "ValidateCNS(%q) should be %v", tt.cns, tt.valid)
		})
	}
}

func TestValidateCEP(t *testing.T) {
	assert.True(t, ValidateCEP("20040-020"))
	assert.True(t, ValidateCEP("20040020"))
	assert.False(t, ValidateCEP("2004002"))
	assert.False(t, ValidateCEP("200400201"))
	assert.False(t, ValidateCEP(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("21987654321"), "11-digit mobile")
	assert.True(t, ValidatePhone("2133334444"), "10-digit landline")
	assert.True(t, ValidatePhone("(21) 98765-4321"), "formatted mobile")
	assert.False(t, ValidatePhone("987654321"), "9 digits")
	assert.False(t, ValidatePhone("552198765432"), "12 digits")
	assert.False(t, ValidatePhone(""))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"joao.silva@example.com", true},
		{"maria+consulta@hospital.org.br", true},
		{"a@b.co", true},
		{"no-at-sign.com", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"missing-tld@example", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateEmail(tt.email))
		})
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	today := time.Now()
	format := "2006-01-02"

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"today is valid (age 0)", today.Format(format), true},
		{"tomorrow is invalid", today.AddDate(0, 0, 1).Format(format), false},
		{"exactly 150 years ago is valid", today.AddDate(-150, 0, 0).Format(format), true},
		{"151 years ago is invalid", today.AddDate(-151, 0, 0).Format(format), false},
		{"ordinary adult birth date", "1990-05-10", true},
		{"unparseable date", "10/05/1990", false},
		{"empty string", "", false},
		{"nonsense", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateDateOfBirth(tt.raw), "ValidateDateOfBirth(%q)", tt.raw)
		})
	}
}

func TestValidateDateOfBirth_Boundaries(t *testing.T) {
	// Fixed evaluation time keeps the boundary checks deterministic
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	assert.True(t, validateDateOfBirthAt("2026-08-29", now), "same day")
	assert.False(t, validateDateOfBirthAt("2026-08-30", now), "next day")
	assert.True(t, validateDateOfBirthAt("1876-08-29", now), "150 years to the day")
	assert.False(t, validateDateOfBirthAt("1876-08-28", now), "150 years and one day")
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatCPF("529.982.247-25"))
	assert.Equal(t, "5299822472", FormatCPF("5299822472"), "short input unchanged")

	assert.Equal(t, "152 6018 1590 8304", FormatCNS("152601815908304"))
	assert.Equal(t, "12345", FormatCNS("12345"), "short input unchanged")

	assert.Equal(t, "20040-020", FormatCEP("20040020"))
	assert.Equal(t, "123", FormatCEP("123"), "short input unchanged")

	assert.Equal(t, "(21) 98765-4321", FormatPhone("21987654321"))
	assert.Equal(t, "(21) 3333-4444", FormatPhone("2133334444"))
	assert.Equal(t, "12345", FormatPhone("12345"), "short input unchanged")
}

func TestFormatCPF_RoundTrip(t *testing.T) {
	inputs := []string{"52998224725", "11144477735", "12345678909", "00000000191"}
	for _, cpf := range inputs {
		t.Run(cpf, func(t *testing.T) {
			formatted := FormatCPF(cpf)
			again := FormatCPF(RemoveFormatting(formatted))
			assert.Equal(t, formatted, again, "formatting should be idempotent")
		})
	}
}

func TestRemoveFormatting(t *testing.T) {
	assert.Equal(t, "52998224725", RemoveFormatting("529.982.247-25"))
	assert.Equal(t, "20040020", RemoveFormatting("20040-020"))
	assert.Equal(t, "", RemoveFormatting("abc"))
	assert.Equal(t, "", RemoveFormatting(""))
}
