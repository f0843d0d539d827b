// Package mongo opens a MongoDB client bound to a single database
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Config configures the client
type Config struct {
	URI      string
	Database string
	AppName  string
	Timeout  time.Duration // connect and ping budget, default 10s
}

// Client pairs the driver client with the selected database
type Client struct {
	Client *mongo.Client
	DB     *mongo.Database
}

var connect = mongo.Connect

// Open connects and pings the primary once before returning
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo: empty uri")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo: empty database")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	mc, err := connect(opts)
	if err != nil {
		return nil, err
	}

	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := mc.Ping(pctx, readpref.Primary()); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, err
	}
	return &Client{Client: mc, DB: mc.Database(cfg.Database)}, nil
}

// Collection returns a handle on the named collection
func (c *Client) Collection(name string) *mongo.Collection { return c.DB.Collection(name) }

// Ping checks the primary is reachable
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return errors.New("mongo: nil client")
	}
	return c.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Disconnect(ctx)
}
