// Package service reads module registrations and queued builds
package service

import (
	"context"
	"encoding/json"

	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/net/http/bind"
	"modhook/internal/services/api/registry/domain"
	whdom "modhook/internal/services/webhook/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for registry reads
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Registry whdom.Registry
	Meta     whdom.Metadata
}

// New creates a read service over the webhook gateways
func New(reg whdom.Registry, meta whdom.Metadata) *Svc {
	if reg == nil || meta == nil {
		panic("registry.Service requires a Registry and a Metadata store")
	}
	return &Svc{Registry: reg, Meta: meta}
}

func validName(name string) error {
	if tag := bind.Var(name, "required,"+bind.TagModuleName); tag != "" {
		return perr.WithField(perr.Validationf("module name is not valid"), "name")
	}
	return nil
}

// Module returns the record and versions of name. A record without a
// versions blob is reported as uninitialized
func (s *Svc) Module(ctx context.Context, name string) (domain.ModuleView, error) {
	if err := validName(name); err != nil {
		return domain.ModuleView{}, err
	}
	rec, err := s.Registry.GetModule(ctx, name)
	if err != nil {
		return domain.ModuleView{}, err
	}
	if rec == nil {
		return domain.ModuleView{}, perr.NotFoundf("module %q not found", name)
	}

	view := domain.ModuleView{ModuleRecord: *rec, MetadataStatus: domain.MetadataUninitialized}
	raw, ok, err := s.Meta.ReadMetadata(ctx, name, whdom.VersionsKey)
	if err != nil {
		return domain.ModuleView{}, err
	}
	if !ok {
		return view, nil
	}
	var v whdom.VersionsMetadata
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.ModuleView{}, perr.Wrap(err, perr.ErrorCodeDB, "decode versions metadata")
	}
	if v.Versions == nil {
		v.Versions = []string{}
	}
	view.MetadataStatus = domain.MetadataOK
	view.Versions = &v
	return view, nil
}

// Builds lists the queued builds of name, oldest first
func (s *Svc) Builds(ctx context.Context, name string) ([]whdom.Build, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	out, err := s.Registry.ListBuilds(ctx, name)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []whdom.Build{}
	}
	return out, nil
}

// Build returns one queued build by id
func (s *Svc) Build(ctx context.Context, id string) (whdom.Build, error) {
	if err := uuid.Validate(id); err != nil {
		return whdom.Build{}, perr.WithField(perr.Validationf("build id is not valid"), "id")
	}
	b, err := s.Registry.GetBuild(ctx, id)
	if err != nil {
		return whdom.Build{}, err
	}
	if b == nil {
		return whdom.Build{}, perr.NotFoundf("build %s not found", id)
	}
	return *b, nil
}
