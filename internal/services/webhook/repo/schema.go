package repo

import (
	"context"
	"fmt"

	"modhook/internal/modkit/repokit"
	perr "modhook/internal/platform/errors"
	mongox "modhook/internal/platform/store/mongo"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Schema is the postgres registry layout; every statement is idempotent
const Schema = `
create table if not exists modules (
  name        text primary key,
  type        text not null,
  repository  text not null,
  description text not null default '',
  star_count  integer not null default 0,
  created_at  timestamptz not null default now(),
  updated_at  timestamptz not null default now()
);
create index if not exists modules_repository_lower_idx on modules (lower(repository));

create table if not exists builds (
  id         uuid primary key,
  module     text not null,
  repository text not null,
  ref        text not null,
  version    text not null,
  subdir     text not null default '',
  status     text not null,
  created_at timestamptz not null default now()
);
create index if not exists builds_module_idx on builds (module, created_at);
create unique index if not exists builds_module_version_idx on builds (module, version);
`

// lockTimeout keeps schema bootstrap from queueing behind a long lived lock
func lockTimeout(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, `set local lock_timeout = '5s'`)
	return err
}

// BootstrapPG applies Schema in one transaction
func BootstrapPG(ctx context.Context, tx repokit.TxRunner) error {
	err := repokit.WithTx(ctx, repokit.WithBeginHooks(tx, lockTimeout), func(q repokit.Queryer) error {
		_, err := q.Exec(ctx, Schema)
		return err
	})
	return perr.FromPostgres(err, "bootstrap schema")
}

// Collection names of the document registry
const (
	ColModules = "modules"
	ColBuilds  = "builds"
)

func mongoIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		ColModules: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "repository", Value: 1}}},
		},
		ColBuilds: {
			{Keys: bson.D{{Key: "module", Value: 1}, {Key: "created_at", Value: 1}}},
			{
				Keys:    bson.D{{Key: "module", Value: 1}, {Key: "version", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}
}

// BootstrapMongo creates the registry indexes
func BootstrapMongo(ctx context.Context, c *mongox.Client) error {
	for col, models := range mongoIndexes() {
		if _, err := c.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return perr.FromMongo(err, fmt.Sprintf("create %s indexes", col))
		}
	}
	return nil
}
