package utils

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims and HTML-escapes a free-text field before it is
// stored (addresses, names, notes).
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeCIN normalizes a national identity number: trimmed,
// uppercased, alphanumerics only.
func SanitizeCIN(cin string) string {
	var result strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(cin)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// SanitizePhone keeps only the characters a phone number can carry.
func SanitizePhone(phone string) string {
	var result strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		if unicode.IsDigit(r) || r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
