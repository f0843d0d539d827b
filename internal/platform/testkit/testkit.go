// Package testkit holds assertions and seam helpers shared by tests
package testkit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails t unless needle is in haystack. Long haystacks are kept
// in a temp file so the failure message stays readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	dump := filepath.Join(t.TempDir(), "haystack.txt")
	_ = os.WriteFile(dump, []byte(haystack), 0o600)
	t.Fatalf("missing %q, output in %s", needle, dump)
}

// MustJSONEqual compares two JSON documents by value
func MustJSONEqual(t *testing.T, got, want []byte) {
	t.Helper()
	canon := func(name string, b []byte) []byte {
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			t.Fatalf("%s is not JSON: %v\n%s", name, err, b)
		}
		out, _ := json.Marshal(v)
		return out
	}
	if g, w := canon("got", got), canon("want", want); !bytes.Equal(g, w) {
		t.Fatalf("JSON mismatch\n got: %s\nwant: %s", g, w)
	}
}

// Swap sets *target to v until the test ends
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}

var serial sync.Mutex

// Serial holds a process wide lock for the rest of the test. Tests that
// Swap package state or set env vars read by other packages take it
func Serial(t *testing.T) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
