package modkit

import (
	"modhook/internal/modkit/repokit"
	"modhook/internal/platform/config"
	"modhook/internal/platform/logger"
	mongox "modhook/internal/platform/store/mongo"

	goredis "github.com/redis/go-redis/v9"
)

// Deps are the shared dependencies every module is built with
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// backends, nil when not configured
	PG    repokit.TxRunner
	Mongo *mongox.Client
	Redis goredis.UniversalClient
}

// Backends lists the configured backends by name
func (d Deps) Backends() []string {
	var out []string
	if d.PG != nil {
		out = append(out, "pg")
	}
	if d.Mongo != nil {
		out = append(out, "mongo")
	}
	if d.Redis != nil {
		out = append(out, "redis")
	}
	return out
}
