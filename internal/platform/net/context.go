// Package net keeps request scoped values and the read API envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey uint8

const (
	deliveryKey ctxKey = iota
	eventKey
)

// WithDelivery stores the delivery id and event kind GitHub sends with each
// webhook. Empty values are skipped
func WithDelivery(ctx context.Context, deliveryID, event string) context.Context {
	if deliveryID != "" {
		ctx = context.WithValue(ctx, deliveryKey, deliveryID)
	}
	if event != "" {
		ctx = context.WithValue(ctx, eventKey, event)
	}
	return ctx
}

// RequestID is the id set by the request id middleware
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

func DeliveryID(ctx context.Context) string { return str(ctx, deliveryKey) }

func Event(ctx context.Context) string { return str(ctx, eventKey) }

func str(ctx context.Context, k ctxKey) string {
	s, _ := ctx.Value(k).(string)
	return s
}
