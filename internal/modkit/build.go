package modkit

import (
	"net/http"
	"slices"

	"modhook/internal/modkit/httpkit"
	str "modhook/internal/platform/strings"
)

// Built is the result of applying options
type Built struct {
	Name        string
	Prefix      string
	Middlewares []func(http.Handler) http.Handler
	Ports       any
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:        c.name,
		Prefix:      c.prefix,
		Middlewares: slices.Clone(c.mw),
		Ports:       c.ports,
	}
}

// Mount runs register under the module prefix, or in a group at the current
// scope when there is none. The module middlewares see only these routes
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	if b.Prefix == "" {
		r.Group(func(g httpkit.Router) {
			if len(b.Middlewares) > 0 {
				g.Use(b.Middlewares...)
			}
			register(g)
		})
		return
	}
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Middlewares, register)
}
