// Package module mounts the meta endpoints
package module

import (
	"context"
	"time"

	"modhook/internal/core/version"
	modkit "modhook/internal/modkit"
	"modhook/internal/modkit/httpkit"
	str "modhook/internal/platform/strings"

	metahttp "modhook/internal/services/api/meta/http"
)

type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New builds the meta module; readiness checks cover every backend in deps
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	defaults := []modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}
	return &Module{
		built: modkit.Build(append(defaults, opts...)...),
		deps: metahttp.Deps{
			ServiceName: version.ServiceName,
			StartedAt:   time.Now(),
			Checks:      checks(deps),
		},
	}
}

// checks collects a pinger per configured backend
func checks(deps modkit.Deps) map[string]metahttp.Pinger {
	out := map[string]metahttp.Pinger{}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		out["pg"] = p
	}
	if deps.Mongo != nil {
		out["mongo"] = deps.Mongo
	}
	if rdb := deps.Redis; rdb != nil {
		out["redis"] = metahttp.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	return out
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Ports is nil, meta lends nothing
func (m *Module) Ports() any { return nil }
