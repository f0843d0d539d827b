package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	pnet "modhook/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"DEBUG":     zerolog.DebugLevel,
		"warn":      zerolog.WarnLevel,
		" warning ": zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"":          zerolog.InfoLevel,
		"loud":      zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// The root logger is process wide; this is the only test that initializes it
func TestInit_ChildLoggersCarryContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "info",
		Service:      "modhook-api",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})
	Init(Options{Level: "error"}) // ignored

	Named("webhook").Info().Msg("named")

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-123")
	ctx = pnet.WithDelivery(ctx, "72d3162e-cc78-11e3-81ab-4c9367dc0958", "ping")
	C(ctx).Info().Msg("scoped")
	C(context.Background()).Info().Msg("bare")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	parse := func(s string) map[string]any {
		t.Helper()
		m := map[string]any{}
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			t.Fatalf("line is not json: %v\n%s", err, s)
		}
		return m
	}

	named := parse(lines[0])
	if named["component"] != "webhook" || named["service"] != "modhook-api" || named["build"] != "test" {
		t.Fatalf("named line = %v", named)
	}
	scoped := parse(lines[1])
	if scoped["request_id"] != "req-123" || scoped["event"] != "ping" ||
		scoped["delivery_id"] != "72d3162e-cc78-11e3-81ab-4c9367dc0958" {
		t.Fatalf("scoped line = %v", scoped)
	}
	if bare := parse(lines[2]); bare["request_id"] != nil || bare["event"] != nil {
		t.Fatalf("bare line = %v", bare)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_SERVICE", "modhook-test")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	got := FromEnv()
	want := Options{Level: "warn", Format: "console", Service: "modhook-test", WithCaller: true, SampleEvery: 5}
	if got.Level != want.Level || got.Format != want.Format || got.Service != want.Service ||
		got.WithCaller != want.WithCaller || got.SampleEvery != want.SampleEvery || got.Component != "" {
		t.Fatalf("FromEnv = %+v", got)
	}
}
