package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeRepository lower cases an owner/name pair.
// Repository identity is compared and stored in this form
func NormalizeRepository(s string) string {
	// a Caser keeps state so each call gets its own
	return cases.Lower(language.Und).String(s)
}

// SameRepository compares two owner/name pairs ignoring case
func SameRepository(a, b string) bool { return NormalizeRepository(a) == NormalizeRepository(b) }
