package repo

import (
	"context"
	"errors"
	"regexp"

	perr "modhook/internal/platform/errors"
	mongox "modhook/internal/platform/store/mongo"
	"modhook/internal/services/webhook/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo is the document registry
type Mongo struct {
	modules *mongo.Collection
	builds  *mongo.Collection
}

// NewMongo binds the registry collections of c
func NewMongo(c *mongox.Client) *Mongo {
	if c == nil {
		panic("webhook repo: nil mongo client")
	}
	return &Mongo{modules: c.Collection(ColModules), builds: c.Collection(ColBuilds)}
}

var _ domain.Registry = (*Mongo)(nil)

// repositoryFilter matches repository exactly, ignoring case
func repositoryFilter(repository string) bson.M {
	return bson.M{"repository": bson.Regex{Pattern: "^" + regexp.QuoteMeta(repository) + "$", Options: "i"}}
}

func (m *Mongo) GetModule(ctx context.Context, name string) (*domain.ModuleRecord, error) {
	var rec domain.ModuleRecord
	err := m.modules.FindOne(ctx, bson.M{"name": name}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromMongo(err, "get module")
	}
	return &rec, nil
}

func (m *Mongo) SaveModule(ctx context.Context, rec domain.ModuleRecord) error {
	_, err := m.modules.UpdateOne(ctx,
		bson.M{"name": rec.Name},
		bson.M{"$set": rec},
		options.UpdateOne().SetUpsert(true),
	)
	return perr.FromMongo(err, "save module")
}

func (m *Mongo) CountByRepository(ctx context.Context, repository string) (int, error) {
	n, err := m.modules.CountDocuments(ctx, repositoryFilter(repository))
	if err != nil {
		return 0, perr.FromMongo(err, "count modules")
	}
	return int(n), nil
}

func (m *Mongo) QueueBuild(ctx context.Context, b domain.Build) error {
	_, err := m.builds.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrBuildQueued
	}
	return perr.FromMongo(err, "queue build")
}

func (m *Mongo) GetBuild(ctx context.Context, id string) (*domain.Build, error) {
	var b domain.Build
	err := m.builds.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromMongo(err, "get build")
	}
	return &b, nil
}

func (m *Mongo) ListBuilds(ctx context.Context, module string) ([]domain.Build, error) {
	filter := bson.M{}
	if module != "" {
		filter["module"] = module
	}
	cur, err := m.builds.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, perr.FromMongo(err, "list builds")
	}
	out := []domain.Build{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, perr.FromMongo(err, "list builds")
	}
	return out, nil
}
