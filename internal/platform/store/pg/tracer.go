package pg

import (
	"context"
	"strings"

	"modhook/internal/platform/logger"
	pnet "modhook/internal/platform/net"

	"github.com/rs/zerolog"
)

// QueryEvent is one executed statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer is told about every statement the store runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements under component=pg. It logs at info even when the
// root logger is quieter, since turning it on is the opt-in
func Tracer(root logger.Logger) QueryTracer {
	return sqlLog{root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type sqlLog struct{ l logger.Logger }

func (s sqlLog) OnQuery(ctx context.Context, ev QueryEvent) {
	lvl := zerolog.InfoLevel
	if ev.Slow || ev.Err != nil {
		lvl = zerolog.WarnLevel
	}
	e := s.l.WithLevel(lvl).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err)
	if id := pnet.RequestID(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	e.Msg("pg query")
}

// compact folds whitespace runs so multi line statements log on one line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
