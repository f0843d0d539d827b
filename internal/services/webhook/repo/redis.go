package repo

import (
	"context"
	"errors"

	perr "modhook/internal/platform/errors"
	"modhook/internal/services/webhook/domain"

	goredis "github.com/redis/go-redis/v9"
)

// MetaKey is the blob key of name's metadata entry, e.g. ltest2/meta/versions.json
func MetaKey(name, key string) string { return name + "/meta/" + key }

// Redis stores metadata blobs as plain string values
type Redis struct {
	rdb goredis.UniversalClient
}

// NewRedis wraps a connected client
func NewRedis(rdb goredis.UniversalClient) *Redis {
	if rdb == nil {
		panic("webhook repo: nil redis client")
	}
	return &Redis{rdb: rdb}
}

var _ domain.Metadata = (*Redis)(nil)

func (r *Redis) ReadMetadata(ctx context.Context, name, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, MetaKey(name, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, perr.FromRedis(err, "read metadata")
	}
	return b, true, nil
}

func (r *Redis) WriteMetadata(ctx context.Context, name, key string, data []byte) error {
	if err := r.rdb.Set(ctx, MetaKey(name, key), data, 0).Err(); err != nil {
		return perr.FromRedis(err, "write metadata")
	}
	return nil
}
