package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName lowercases a name, strips accents and collapses internal
// whitespace. The duplicate-search index stores this form so that
// "João" and "joao" compare equal.
func NormalizeName(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return ""
	}

	if stripped, _, err := transform.String(stripAccents, cleaned); err == nil {
		cleaned = stripped
	}

	return strings.Join(strings.Fields(cleaned), " ")
}

// MaskName masks a full name for privacy (e.g. "João Silva Santos" -> "João S**** Santos")
func MaskName(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return ""
	}

	masked := make([]string, len(parts))
	for i, part := range parts {
		if i == 0 || len(part) <= 1 {
			masked[i] = part
			continue
		}
		masked[i] = part[:1] + strings.Repeat("*", len(part)-1)
	}

	return strings.Join(masked, " ")
}
