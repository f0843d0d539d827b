package service

import (
	"context"
	"encoding/json"
	"strings"

	corewh "modhook/internal/core/webhook"
	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/logger"
	"modhook/internal/services/webhook/domain"
)

// TagParams come from the webhook url query
type TagParams struct {
	Subdir        string
	VersionPrefix string
}

const tagRefPrefix = "refs/tags/"

// tagOf returns the tag name carried by a create or push event
func tagOf(ev corewh.Event) (string, bool) {
	switch ev.Kind {
	case corewh.KindCreate:
		if ev.RefType == "tag" {
			return ev.Ref, true
		}
	case corewh.KindPush:
		if strings.HasPrefix(ev.Ref, tagRefPrefix) {
			return strings.TrimPrefix(ev.Ref, tagRefPrefix), true
		}
	}
	return "", false
}

// Tag queues a build for a new tag of an already registered module
func (s *Svc) Tag(ctx context.Context, name string, ev corewh.Event, p TagParams) (domain.Outcome, error) {
	if p.Subdir != "" {
		if strings.HasPrefix(p.Subdir, "/") {
			return domain.Outcome{}, domain.ErrAbsoluteSubdir
		}
		if !strings.HasSuffix(p.Subdir, "/") {
			return domain.Outcome{}, domain.ErrInvalidSubdir
		}
	}

	tag, ok := tagOf(ev)
	if !ok {
		return domain.Outcome{Info: domain.InfoNotTag}, nil
	}

	existing, err := s.Registry.GetModule(ctx, name)
	if err != nil {
		return domain.Outcome{}, err
	}
	if existing == nil {
		return domain.Outcome{}, domain.ErrModuleNotFound
	}
	if !domain.SameRepository(existing.Repository, ev.Repository) {
		return domain.Outcome{}, domain.ErrRepositoryMismatch
	}

	version := tag
	if p.VersionPrefix != "" {
		if !strings.HasPrefix(tag, p.VersionPrefix) {
			return domain.Outcome{Info: domain.InfoPrefixMismatch}, nil
		}
		version = strings.TrimPrefix(tag, p.VersionPrefix)
	}

	versions, err := s.versions(ctx, name)
	if err != nil {
		return domain.Outcome{}, err
	}
	if versions.Has(version) {
		return domain.Outcome{}, domain.ErrVersionExists
	}

	b := domain.Build{
		ID:         s.newID(),
		Module:     name,
		Repository: domain.NormalizeRepository(ev.Repository),
		Ref:        tag,
		Version:    version,
		Subdir:     p.Subdir,
		Status:     domain.BuildQueued,
		CreatedAt:  s.now(),
	}
	if err := s.Registry.QueueBuild(ctx, b); err != nil {
		return domain.Outcome{}, err
	}
	logger.C(ctx).Info().Str("module", name).Str("version", version).Str("build_id", b.ID).Msg("build queued")

	return domain.Outcome{Data: domain.BuildResult{
		Module:     name,
		Version:    version,
		Repository: b.Repository,
		StatusURL:  s.statusBase + "/builds/" + b.ID,
	}}, nil
}

// versions reads the versions blob, writing an empty one when the
// registration never got that far
func (s *Svc) versions(ctx context.Context, name string) (domain.VersionsMetadata, error) {
	raw, ok, err := s.Meta.ReadMetadata(ctx, name, domain.VersionsKey)
	if err != nil {
		return domain.VersionsMetadata{}, err
	}
	if !ok {
		empty := domain.EmptyVersions()
		if err := s.Meta.WriteMetadata(ctx, name, domain.VersionsKey, empty.Encode()); err != nil {
			return domain.VersionsMetadata{}, err
		}
		logger.C(ctx).Warn().Str("module", name).Msg("versions metadata missing, initialized")
		return empty, nil
	}
	var v domain.VersionsMetadata
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.VersionsMetadata{}, perr.Wrap(err, perr.ErrorCodeDB, "decode versions metadata")
	}
	return v, nil
}
