// Package module mounts the registry read endpoints over the webhook gateways
package module

import (
	modkit "modhook/internal/modkit"
	"modhook/internal/modkit/httpkit"
	str "modhook/internal/platform/strings"
	reghttp "modhook/internal/services/api/registry/http"
	regsvc "modhook/internal/services/api/registry/service"
)

type Module struct {
	built modkit.Built
	svc   regsvc.Service
}

// New builds the registry module. The webhook gateways are injected with
// modkit.WithPorts(Ports{...}); without them it panics
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("registry")}, opts...)...)
	p, ok := b.Ports.(Ports)
	if !ok {
		panic("registry module requires modkit.WithPorts(registry.Ports{...})")
	}
	return &Module{built: b, svc: regsvc.New(p.Registry, p.Metadata)}
}

// MountRoutes puts /modules and /builds at the scope root
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { reghttp.Register(rr, m.svc) })
}

func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Ports lends the read service
func (m *Module) Ports() any { return m.svc }
