package module

import (
	"modhook/internal/modkit/httpkit"
	"modhook/internal/platform/config"
	"modhook/internal/platform/store"
	whttp "modhook/internal/services/webhook/http"
)

// Registry and metadata backends
const (
	BackendPG     = "pg"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects the gateways and tunes the transport
type Options struct {
	RegistryBackend string // pg, mongo or memory
	MetaBackend     string // redis or memory

	StatusBaseURL string
	MaxBodyBytes  int64
}

// FromConfig reads WEBHOOK_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	wc := cfg.Prefix("WEBHOOK_")
	return Options{
		RegistryBackend: wc.MayEnum("REGISTRY_BACKEND", BackendPG, BackendPG, BackendMongo, BackendMemory),
		MetaBackend:     wc.MayEnum("META_BACKEND", BackendRedis, BackendRedis, BackendMemory),
		StatusBaseURL:   wc.MayURLPrefix("STATUS_BASE_URL", httpkit.APIV1),
		MaxBodyBytes:    wc.MayInt64("MAX_BODY_BYTES", whttp.DefaultMaxBody),
	}
}

// Enable turns on exactly the store backends the selection needs
func (o Options) Enable(sc store.Config) store.Config {
	sc.PG.Enabled = o.RegistryBackend == BackendPG
	sc.Mongo.Enabled = o.RegistryBackend == BackendMongo
	sc.Redis.Enabled = o.MetaBackend == BackendRedis
	return sc
}
