// Package module wires the webhook receiver into the API using modkit
package module

import (
	modkit "modhook/internal/modkit"
	"modhook/internal/modkit/httpkit"
	"modhook/internal/modkit/repokit"
	"modhook/internal/modkit/swaggerkit"
	"modhook/internal/platform/net/middleware"
	str "modhook/internal/platform/strings"
	"modhook/internal/services/webhook/domain"
	whttp "modhook/internal/services/webhook/http"
	whrepo "modhook/internal/services/webhook/repo"
	whsvc "modhook/internal/services/webhook/service"
)

// Module receives GitHub deliveries under /webhook and lends its gateways
type Module struct {
	built   modkit.Built
	maxBody int64
	svc     whsvc.Service
	ports   Ports
}

// New builds the webhook module over the gateways opt selects. A selected
// backend missing from deps panics
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	defaults := []modkit.Option{
		modkit.WithName("webhook"),
		modkit.WithPrefix("/webhook"),
		modkit.WithMiddlewares(middleware.Delivery),
	}
	reg := registryFor(deps, opt.RegistryBackend)
	meta := metadataFor(deps, opt.MetaBackend)
	svc := whsvc.New(reg, meta, whsvc.Options{StatusBaseURL: opt.StatusBaseURL})

	swaggerkit.Register(whttp.DocPaths)
	return &Module{
		built:   modkit.Build(append(defaults, opts...)...),
		maxBody: opt.MaxBodyBytes,
		svc:     svc,
		ports:   Ports{Registry: reg, Metadata: meta, Service: svc},
	}
}

func registryFor(deps modkit.Deps, backend string) domain.Registry {
	switch backend {
	case BackendMongo:
		return whrepo.NewMongo(deps.Mongo)
	case BackendMemory:
		deps.Log.Warn().Msg("webhook registry is in memory, records are lost on restart")
		return whrepo.NewMemory()
	default:
		return repokit.MustBind(whrepo.NewPG(), deps.PG)
	}
}

func metadataFor(deps modkit.Deps, backend string) domain.Metadata {
	if backend == BackendMemory {
		deps.Log.Warn().Msg("webhook metadata is in memory, blobs are lost on restart")
		return whrepo.NewMemoryMetadata()
	}
	return whrepo.NewRedis(deps.Redis)
}

// MountRoutes mounts the receiver outside /api so slash stripping never applies
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { whttp.Register(rr, m.svc, m.maxBody) })
}

func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }
