// Package repo holds the registry and metadata gateways
package repo

import (
	"context"

	"modhook/internal/modkit/repokit"
	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/store"
	"modhook/internal/services/webhook/domain"
)

type (
	// PG binds the registry to a postgres Queryer
	PG struct{}

	// queries holds the registry statements
	queries struct{ q repokit.Queryer }
)

// NewPG creates a postgres registry binder
func NewPG() repokit.Binder[domain.Registry] { return PG{} }

// Bind binds a postgres queryer to the registry
func (PG) Bind(q repokit.Queryer) domain.Registry { return &queries{q: q} }

const moduleCols = `name, type, repository, description, star_count`

func scanModule(r store.Row) (domain.ModuleRecord, error) {
	var m domain.ModuleRecord
	err := r.Scan(&m.Name, &m.Type, &m.Repository, &m.Description, &m.StarCount)
	return m, err
}

const buildCols = `id::text, module, repository, ref, version, subdir, status, created_at`

func scanBuild(r store.Row) (domain.Build, error) {
	var b domain.Build
	err := r.Scan(&b.ID, &b.Module, &b.Repository, &b.Ref, &b.Version, &b.Subdir, &b.Status, &b.CreatedAt)
	return b, err
}

func (r *queries) GetModule(ctx context.Context, name string) (*domain.ModuleRecord, error) {
	m, err := store.One(ctx, r.q, scanModule, `select `+moduleCols+` from modules where name = $1`, name)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "get module")
	}
	return &m, nil
}

func (r *queries) SaveModule(ctx context.Context, rec domain.ModuleRecord) error {
	const sql = `
insert into modules (` + moduleCols + `)
values ($1, $2, $3, $4, $5)
on conflict (name) do update set
  type = excluded.type,
  repository = excluded.repository,
  description = excluded.description,
  star_count = excluded.star_count,
  updated_at = now()
`
	err := store.ExecOne(ctx, r.q, sql, rec.Name, rec.Type, rec.Repository, rec.Description, rec.StarCount)
	return perr.FromPostgres(err, "save module")
}

func (r *queries) CountByRepository(ctx context.Context, repository string) (int, error) {
	n, err := store.Scalar[int64](ctx, r.q, `select count(*) from modules where lower(repository) = lower($1)`, repository)
	if err != nil {
		return 0, perr.FromPostgres(err, "count modules")
	}
	return int(n), nil
}

func (r *queries) QueueBuild(ctx context.Context, b domain.Build) error {
	const sql = `
insert into builds (id, module, repository, ref, version, subdir, status, created_at)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
`
	err := store.ExecOne(ctx, r.q, sql, b.ID, b.Module, b.Repository, b.Ref, b.Version, b.Subdir, b.Status, b.CreatedAt)
	if perr.IsDuplicateKey(err) {
		return domain.ErrBuildQueued
	}
	return perr.FromPostgres(err, "queue build")
}

func (r *queries) GetBuild(ctx context.Context, id string) (*domain.Build, error) {
	b, err := store.One(ctx, r.q, scanBuild, `select `+buildCols+` from builds where id::text = $1`, id)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "get build")
	}
	return &b, nil
}

func (r *queries) ListBuilds(ctx context.Context, module string) ([]domain.Build, error) {
	out, err := store.Many(ctx, r.q, scanBuild,
		`select `+buildCols+` from builds where ($1 = '' or module = $1) order by created_at`, module)
	if err != nil {
		return nil, perr.FromPostgres(err, "list builds")
	}
	if out == nil {
		out = []domain.Build{}
	}
	return out, nil
}
