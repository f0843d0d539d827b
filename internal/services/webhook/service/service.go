// Package service holds the webhook registration and build queueing workflows
package service

import (
	"context"
	"time"

	corewh "modhook/internal/core/webhook"
	"modhook/internal/platform/net/http/bind"
	"modhook/internal/services/webhook/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for webhooks
type Service interface{ domain.ServicePort }

// Options tune the service
type Options struct {
	// StatusBaseURL prefixes the status url of queued builds, e.g. /api/v1
	StatusBaseURL string
}

// Svc implements the Service interface
type Svc struct {
	Registry domain.Registry
	Meta     domain.Metadata

	statusBase string
	now        func() time.Time
	newID      func() string
}

// New creates a webhook service over the two gateways
func New(reg domain.Registry, meta domain.Metadata, opt Options) *Svc {
	if reg == nil {
		panic("webhook.Service requires a non nil Registry")
	}
	if meta == nil {
		panic("webhook.Service requires a non nil Metadata store")
	}
	return &Svc{
		Registry:   reg,
		Meta:       meta,
		statusBase: opt.StatusBaseURL,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// ValidateName checks presence then syntax of a path supplied module name
func ValidateName(name string) error {
	switch bind.Var(name, "required,"+bind.TagModuleName) {
	case "":
		return nil
	case "required":
		return domain.ErrMissingName
	default:
		return domain.ErrInvalidName
	}
}

// Handle validates the name, decodes the body and dispatches on the event kind
func (s *Svc) Handle(ctx context.Context, d domain.Delivery) (domain.Outcome, error) {
	if err := ValidateName(d.Name); err != nil {
		return domain.Outcome{}, err
	}

	switch d.Kind {
	case corewh.KindPing, corewh.KindCreate, corewh.KindPush:
	default:
		return domain.Outcome{}, domain.ErrUnsupportedEvent
	}

	ev, err := corewh.Decode(d.Kind, corewh.EncodingOf(d.ContentType), d.Body)
	if err != nil {
		return domain.Outcome{}, err
	}

	if ev.Kind == corewh.KindPing {
		res, err := s.Ping(ctx, d.Name, ev)
		if err != nil {
			return domain.Outcome{}, err
		}
		return domain.Outcome{Data: res}, nil
	}
	return s.Tag(ctx, d.Name, ev, TagParams{Subdir: d.Subdir, VersionPrefix: d.VersionPrefix})
}
