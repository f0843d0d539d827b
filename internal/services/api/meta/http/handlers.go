// Package http serves /meta: liveness, readiness against the configured
// backends, and build info
package http

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"modhook/internal/core/version"
	"modhook/internal/modkit/httpkit"
)

// readyBudget bounds all backend pings of one /meta/ready call
const readyBudget = 2 * time.Second

type Pinger interface {
	Ping(context.Context) error
}

// PingFunc lets a plain func stand in for a backend
type PingFunc func(context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type Deps struct {
	ServiceName string
	StartedAt   time.Time

	// Checks is keyed by backend name; unconfigured backends are left out
	Checks map[string]Pinger
}

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	routes := map[string]func(*http.Request) (any, error){
		"/health":  d.health,
		"/ready":   d.ready,
		"/version": d.version,
		"/service": d.service,
	}
	for path, fn := range routes {
		r.Get(path, httpkit.Call(fn))
	}
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"modhook-api"`
	Started string `json:"started"  example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-19T13:05:00Z"`
}

// ReadyCheck is the outcome of one backend ping
type ReadyCheck struct {
	Name   string `json:"name"   example:"redis"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:6379: connect: connection refused"`
}

// ReadyResponse lists every check sorted by name
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

type ServiceResponse struct {
	Name    string `json:"name"    example:"modhook-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (d Deps) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: d.ServiceName, Started: stamp(d.StartedAt), Now: stamp(time.Now())}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness, pings every configured backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "a backend failed"
// @Router /meta/ready [get]
func (d Deps) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), readyBudget)
	defer cancel()

	names := slices.Sorted(maps.Keys(d.Checks))
	checks := make([]ReadyCheck, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Go(func() {
			checks[i] = ReadyCheck{Name: name, Status: "ok"}
			if err := d.Checks[name].Ping(ctx); err != nil {
				checks[i].Status, checks[i].Error = "fail", err.Error()
			}
		})
	}
	wg.Wait()

	out := ReadyResponse{Status: "ok", Checks: checks, Now: stamp(time.Now())}
	if slices.ContainsFunc(checks, func(c ReadyCheck) bool { return c.Status != "ok" }) {
		out.Status = "fail"
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (Deps) version(*http.Request) (any, error) { return version.Info(), nil }

// swagger:route GET /meta/service Meta metaService
// @Summary Service name and uptime in seconds
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (d Deps) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    d.ServiceName,
		Started: stamp(d.StartedAt),
		Uptime:  int64(time.Since(d.StartedAt) / time.Second),
	}, nil
}
