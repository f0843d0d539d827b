// Package api composes the HTTP surface: the webhook receiver at the root and
// the read API under /api/v1
package api

import (
	"modhook/internal/platform/config"
	"modhook/internal/platform/logger"
	phttp "modhook/internal/platform/net/http"
	"modhook/internal/platform/store"

	"modhook/internal/modkit"
	"modhook/internal/modkit/httpkit"
	"modhook/internal/modkit/swaggerkit"

	metamod "modhook/internal/services/api/meta/module"
	registrymod "modhook/internal/services/api/registry/module"
	webhookmod "modhook/internal/services/webhook/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Webhook        webhookmod.Options
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.Mongo = opt.Store.Mongo
		deps.Redis = opt.Store.Redis
	}

	logger.Named("api").Info().Strs("backends", deps.Backends()).Msg("mounting api")

	// the webhook module owns the gateways, the read module borrows them
	webhook := webhookmod.New(deps, opt.Webhook)
	wp := modkit.MustPortsOf[webhookmod.Ports](webhook)
	registry := registrymod.New(deps, modkit.WithPorts(registrymod.Ports{
		Registry: wp.Registry,
		Metadata: wp.Metadata,
	}))

	r.Use(httpkit.CommonStack()...)
	webhook.MountRoutes(r)

	swaggerkit.Mount(r, opt.EnableSwagger, opt.Webhook.StatusBaseURL)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	mods := []modkit.Module{
		metamod.New(deps),
		registry,
	}
	httpkit.MountAPIV1(r, httpkit.APIStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
