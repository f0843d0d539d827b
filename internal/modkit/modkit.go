// Package modkit is the module contract and the options, deps and mounting
// helpers modules are built from
package modkit

import (
	"fmt"

	"modhook/internal/modkit/httpkit"
)

// Module is what the API composer mounts. Ports is whatever a module lends
// to the others; its concrete type belongs to the lending module
type Module interface {
	MountRoutes(r httpkit.Router)
	Ports() any
	Name() string
}

// PortsOf returns the ports of m as T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf is PortsOf for boot wiring
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("modkit: module %q lends %T, not %T", m.Name(), m.Ports(), p))
	}
	return p
}
