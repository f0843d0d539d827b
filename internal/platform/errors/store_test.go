package errors

import (
	"context"
	stderrs "errors"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestFromMongo(t *testing.T) {
	if FromMongo(nil, "x") != nil {
		t.Fatalf("FromMongo(nil) should be nil")
	}
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"no documents", mongo.ErrNoDocuments, ErrorCodeNotFound},
		{"duplicate", mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "dup"}}}, ErrorCodeDuplicateKey},
		{"deadline", context.DeadlineExceeded, ErrorCodeUnavailable},
		{"other", stderrs.New("boom"), ErrorCodeDB},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CodeOf(FromMongo(c.err, "find")); got != c.want {
				t.Fatalf("FromMongo(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestFromRedis(t *testing.T) {
	if FromRedis(nil, "x") != nil {
		t.Fatalf("FromRedis(nil) should be nil")
	}
	if got := CodeOf(FromRedis(goredis.Nil, "get")); got != ErrorCodeNotFound {
		t.Fatalf("redis nil = %v, want not found", got)
	}
	if got := CodeOf(FromRedis(goredis.ErrClosed, "get")); got != ErrorCodeUnavailable {
		t.Fatalf("closed client = %v, want unavailable", got)
	}
	if got := CodeOf(FromRedis(stderrs.New("WRONGTYPE"), "get")); got != ErrorCodeDB {
		t.Fatalf("generic = %v, want DB", got)
	}
}
