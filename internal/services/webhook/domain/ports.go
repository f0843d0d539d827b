package domain

import "context"

// Registry reads and writes module records and the build queue
type Registry interface {
	// GetModule returns nil without error when name is not registered
	GetModule(ctx context.Context, name string) (*ModuleRecord, error)
	// SaveModule upserts by name
	SaveModule(ctx context.Context, rec ModuleRecord) error
	// CountByRepository counts records whose repository equals repository ignoring case
	CountByRepository(ctx context.Context, repository string) (int, error)

	QueueBuild(ctx context.Context, b Build) error
	GetBuild(ctx context.Context, id string) (*Build, error)
	ListBuilds(ctx context.Context, module string) ([]Build, error)
}

// Metadata reads and writes per module blobs
type Metadata interface {
	// ReadMetadata returns ok false when the blob was never written
	ReadMetadata(ctx context.Context, name, key string) (data []byte, ok bool, err error)
	WriteMetadata(ctx context.Context, name, key string, data []byte) error
}

// ServicePort is the webhook service contract
type ServicePort interface {
	Handle(ctx context.Context, d Delivery) (Outcome, error)
}
