package errors

// Redis helpers that map go-redis errors onto project error codes

import (
	"context"
	stderrs "errors"
	"net"

	goredis "github.com/redis/go-redis/v9"
)

// FromRedis wraps a go-redis error with a mapped ErrorCode and message
// goredis.Nil is a miss, not a failure, and callers must test for it before mapping
func FromRedis(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, goredis.Nil) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	var netErr net.Error
	if stderrs.As(err, &netErr) || stderrs.Is(err, goredis.ErrClosed) ||
		stderrs.Is(err, context.DeadlineExceeded) || stderrs.Is(err, context.Canceled) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
