package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " modhook ")
	t.Setenv("LOG_FORMAT", " JSON ")

	root := New()
	log := root.Prefix("LOG_")

	if got := root.Get("APP_NAME", "x"); got != "modhook" {
		t.Fatalf("Get(APP_NAME) = %q", got)
	}
	if got := log.Get("MISSING", "defv"); got != "defv" {
		t.Fatalf("missing should return default, got %q", got)
	}
	if got := log.Lower("FORMAT", "console"); got != "json" {
		t.Fatalf("Lower(FORMAT) = %q, want json", got)
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")
	t.Setenv("B_T1", "true")
	t.Setenv("B_T2", "1")
	t.Setenv("B_T3", "YES")
	t.Setenv("B_F1", "no")
	t.Setenv("B_WS", "   true   ")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"F1", true, false},
		{"WS", false, true},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetBool(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("SYS_")
	t.Setenv("SYS_OK", "42")
	t.Setenv("SYS_WS", "  7  ")
	t.Setenv("SYS_NONNUM", "12x")
	t.Setenv("SYS_NEG", "-5")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"NONNUM", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetInt(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
