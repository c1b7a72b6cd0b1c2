package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"accents stripped", "João", "joao"},
		{"uppercase lowered", "SILVA", "silva"},
		{"whitespace collapsed", "  Maria   da  Silva ", "maria da silva"},
		{"mixed accents", "Conceição Araújo", "conceicao araujo"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeName_EquivalentSpellingsAgree(t *testing.T) {
	assert.Equal(t, NormalizeName("João"), NormalizeName("joao"))
	assert.Equal(t, NormalizeName("ANDRÉ"), NormalizeName("andre"))
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "João S**** S*****", MaskName("João Silva Santos"))
	assert.Equal(t, "Maria", MaskName("Maria"))
	assert.Equal(t, "", MaskName(""))
}
