// Package http provides the webhook http transport
package http

import (
	"errors"
	"io"
	stdhttp "net/http"
	"net/url"
	"strings"

	corewh "modhook/internal/core/webhook"
	"modhook/internal/modkit/httpkit"
	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/logger"
	phttp "modhook/internal/platform/net/http"
	"modhook/internal/platform/net/middleware"
	"modhook/internal/services/webhook/domain"
	svc "modhook/internal/services/webhook/service"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxBody caps a delivery body when no limit is configured
const DefaultMaxBody int64 = 1 << 20

// Register mounts the GitHub webhook routes. The empty name route is
// explicit so a delivery to /gh/ is answered with the missing name error
func Register(r httpkit.Router, s svc.Service, maxBody int64) {
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	h := &handlers{svc: s, maxBody: maxBody}
	r.Post("/gh", h.deliver)
	r.Post("/gh/", h.deliver)
	r.Post("/gh/{name}", h.deliver)
	r.NotFound(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		phttp.WriteResult(w, stdhttp.StatusNotFound, phttp.Failed("not found"))
	})
	r.MethodNotAllowed(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		phttp.WriteResult(w, stdhttp.StatusMethodNotAllowed, phttp.Failed("method not allowed"))
	})
}

type handlers struct {
	svc     svc.Service
	maxBody int64
}

// swagger:route POST /webhook/gh/{name} Webhook webhookDeliver
// @Summary Receive a GitHub webhook delivery for a module
// @Tags Webhook
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name path string true "Module name"
// @Param X-GitHub-Event header string true "ping, create or push"
// @Param subdir query string false "Module subdirectory, ends with /"
// @Param version_prefix query string false "Prefix stripped from tag names"
// @Success 200 {object} httpkit.Result "accepted or ignored"
// @Failure 400 {object} httpkit.Result "rejected"
// @Router /webhook/gh/{name} [post]
func (h *handlers) deliver(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	body, err := io.ReadAll(stdhttp.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooBig *stdhttp.MaxBytesError
		if errors.As(err, &tooBig) {
			phttp.WriteResult(w, stdhttp.StatusRequestEntityTooLarge, phttp.Failed("payload too large"))
			return
		}
		writeError(w, r, perr.Wrap(err, perr.ErrorCodeJSON, corewh.ErrMalformedPayload.Error()))
		return
	}

	q := r.URL.Query()
	out, err := h.svc.Handle(r.Context(), domain.Delivery{
		Name:          pathName(r),
		Kind:          r.Header.Get(middleware.HeaderEvent),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          body,
		Subdir:        q.Get("subdir"),
		VersionPrefix: q.Get("version_prefix"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if out.Info != "" {
		phttp.WriteResult(w, stdhttp.StatusOK, phttp.Ignored(out.Info))
		return
	}
	phttp.WriteResult(w, stdhttp.StatusOK, phttp.Succeeded(out.Data))
}

// pathName is the module name segment, unescaped. A malformed escape is
// passed through and fails name validation
func pathName(r *stdhttp.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// writeError maps err onto the webhook envelope. Client errors carry their
// message, server errors only the status text
func writeError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, msg := Classify(err)
	switch {
	case status >= stdhttp.StatusInternalServerError:
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("webhook delivery failed")
	case corewh.IsMalformed(err):
		// the client only sees "malformed payload"
		logger.C(r.Context()).Debug().Err(errors.Unwrap(err)).Msg("undecodable webhook body")
	}
	phttp.WriteResult(w, status, phttp.Failed(msg))
}

// Classify returns the status and user facing message for err
func Classify(err error) (int, string) {
	status := perr.HTTPStatus(err)
	if status < stdhttp.StatusInternalServerError {
		if e, ok := perr.As(err); ok {
			return status, e.Message()
		}
	}
	return status, strings.ToLower(stdhttp.StatusText(status))
}
