package service

import (
	"context"

	corewh "modhook/internal/core/webhook"
	"modhook/internal/platform/logger"
	"modhook/internal/services/webhook/domain"
)

// Ping registers name to the event's repository, or refreshes an existing
// registration bound to the same repository. All checks run before any write
func (s *Svc) Ping(ctx context.Context, name string, ev corewh.Event) (domain.PingResult, error) {
	log := logger.C(ctx).With().Str("module", name).Str("repository", ev.Repository).Logger()

	existing, err := s.Registry.GetModule(ctx, name)
	if err != nil {
		return domain.PingResult{}, err
	}

	if existing != nil && !domain.SameRepository(existing.Repository, ev.Repository) {
		log.Info().Str("bound_to", existing.Repository).Msg("ping rejected: repository mismatch")
		return domain.PingResult{}, domain.ErrRepositoryMismatch
	}

	if existing == nil {
		n, err := s.Registry.CountByRepository(ctx, ev.Repository)
		if err != nil {
			return domain.PingResult{}, err
		}
		// soft limit, a concurrent ping for the same repository can pass this check
		if n >= domain.MaxModulesPerRepository {
			log.Info().Int("count", n).Msg("ping rejected: repository quota reached")
			return domain.PingResult{}, domain.ErrQuotaExceeded
		}
	}

	repository := domain.NormalizeRepository(ev.Repository)
	rec := domain.ModuleRecord{
		Name:        name,
		Type:        domain.SourceGitHub,
		Repository:  repository,
		Description: ev.Description,
		StarCount:   ev.Stars,
	}
	if err := s.Registry.SaveModule(ctx, rec); err != nil {
		return domain.PingResult{}, err
	}

	if existing == nil {
		if err := s.Meta.WriteMetadata(ctx, name, domain.VersionsKey, domain.EmptyVersions().Encode()); err != nil {
			return domain.PingResult{}, err
		}
		log.Info().Msg("module registered")
	} else {
		log.Info().Msg("module refreshed")
	}

	return domain.PingResult{Module: name, Repository: repository}, nil
}
