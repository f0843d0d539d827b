// Package strings has the small guards module wiring uses
package strings

import std "strings"

// IfEmpty is def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<what> is required" when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix turns " webhook/ " into "/webhook". A prefix of only slashes
// or spaces panics
func MustPrefix(s string) string {
	trimmed := std.Trim(s, " /")
	if trimmed == "" {
		panic("route prefix is required")
	}
	return "/" + trimmed
}
