package module

import "modhook/internal/services/webhook/domain"

// Ports are what the webhook module lends to other modules
type Ports struct {
	Registry domain.Registry
	Metadata domain.Metadata
	Service  domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
