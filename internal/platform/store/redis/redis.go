// Package redis opens a go-redis client and checks it answers
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// Config configures the client
type Config struct {
	Addr       string
	DB         int
	Password   string
	ClientName string
}

// Open returns a pinged client; the caller owns Close
func Open(ctx context.Context, cfg Config) (goredis.UniversalClient, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: empty addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:       cfg.Addr,
		DB:         cfg.DB,
		Password:   cfg.Password,
		ClientName: cfg.ClientName,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
