package module

import whdom "modhook/internal/services/webhook/domain"

// Ports are the injected webhook gateways this module reads from
type Ports struct {
	Registry whdom.Registry
	Metadata whdom.Metadata
}
