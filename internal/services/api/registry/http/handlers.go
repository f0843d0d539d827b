// Package http provides http transport for registry reads
package http

import (
	stdhttp "net/http"

	"modhook/internal/modkit/httpkit"
	svc "modhook/internal/services/api/registry/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts the registry read endpoints
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/modules/{name}", h.module)
	httpkit.Get(r, "/modules/{name}/builds", h.builds)
	httpkit.Get(r, "/builds/{id}", h.build)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /modules/{name} Registry registryModule
// @Summary Registered module with its versions
// @Tags Registry
// @Produce json
// @Param name path string true "Module name"
// @Success 200 {object} domain.ModuleView "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /modules/{name} [get]
func (h *handlers) module(r *stdhttp.Request) (any, error) {
	return h.svc.Module(r.Context(), chi.URLParam(r, "name"))
}

// @Summary Queued builds of a module, oldest first
// @Tags Registry
// @Produce json
// @Param name path string true "Module name"
// @Success 200 {array} whdom.Build "ok"
// @Router /modules/{name}/builds [get]
func (h *handlers) builds(r *stdhttp.Request) (any, error) {
	return h.svc.Builds(r.Context(), chi.URLParam(r, "name"))
}

// swagger:route GET /builds/{id} Registry registryBuild
// @Summary Queued build by id
// @Tags Registry
// @Produce json
// @Param id path string true "Build id"
// @Success 200 {object} whdom.Build "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /builds/{id} [get]
func (h *handlers) build(r *stdhttp.Request) (any, error) {
	return h.svc.Build(r.Context(), chi.URLParam(r, "id"))
}
