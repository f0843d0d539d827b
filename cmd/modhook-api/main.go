// @title         Module Registry Webhook API
// @version       0.1.0
// @description   GitHub webhook receiver and read endpoints for registered modules

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modhook/internal/core/version"
	"modhook/internal/modkit/repokit"
	"modhook/internal/platform/config"
	"modhook/internal/platform/logger"
	phttp "modhook/internal/platform/net/http"
	"modhook/internal/platform/store"

	"modhook/internal/services/api"
	webhookmod "modhook/internal/services/webhook/module"
	whrepo "modhook/internal/services/webhook/repo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early; LOG_SERVICE overrides the binary name
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = version.ServiceName
	}
	logger.Init(opts)
	l := logger.Get()
	l.Info().Interface("build", version.Info()).Msg("starting")

	// only the backends the webhook selection needs are opened
	whOpts := webhookmod.FromConfig(root)
	st, err := store.Open(ctx, whOpts.Enable(store.ConfigFromEnv(root, version.ServiceName)), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	bootCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	repokit.MustGuard(bootCtx, st)
	if st.PG != nil {
		if err := whrepo.BootstrapPG(bootCtx, st.PG); err != nil {
			l.Panic().Err(err).Msg("postgres schema bootstrap failed")
		}
	}
	if st.Mongo != nil {
		if err := whrepo.BootstrapMongo(bootCtx, st.Mongo); err != nil {
			l.Panic().Err(err).Msg("mongo index bootstrap failed")
		}
	}
	cancel()

	l.Info().
		Str("registry", whOpts.RegistryBackend).
		Str("metadata", whOpts.MetaBackend).
		Msg("webhook backends ready")

	// http server (reads CORE_API_API_PORT etc)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Webhook:        whOpts,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT/SIGTERM, then drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("shutdown complete")
}
