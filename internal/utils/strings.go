package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MockEmail derives a deterministic address: first.last@company.com,
// lowercased with spaces stripped from the company part.
func MockEmail(first, last, company string) string {
	domain := strings.ToLower(strings.ReplaceAll(company, " ", ""))
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain + ".com"
}
