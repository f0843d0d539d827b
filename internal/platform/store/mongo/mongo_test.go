package mongo

import (
	"context"
	"testing"
)

func TestOpen_RejectsEmptyConfig(t *testing.T) {
	if _, err := Open(context.Background(), Config{Database: "registry"}); err == nil {
		t.Fatalf("expected error for empty uri")
	}
	if _, err := Open(context.Background(), Config{URI: "mongodb://localhost"}); err == nil {
		t.Fatalf("expected error for empty database")
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("nil client should fail ping")
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("nil client close: %v", err)
	}
}
