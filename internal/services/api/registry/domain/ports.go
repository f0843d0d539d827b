package domain

import (
	"context"

	whdom "modhook/internal/services/webhook/domain"
)

// ServicePort is the read contract exposed over http
type ServicePort interface {
	Module(ctx context.Context, name string) (ModuleView, error)
	Builds(ctx context.Context, name string) ([]whdom.Build, error)
	Build(ctx context.Context, id string) (whdom.Build, error)
}
