package errors

// MongoDB helpers that map driver errors onto project error codes

import (
	"context"
	stderrs "errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FromMongo wraps a mongo driver error with a mapped ErrorCode and message
func FromMongo(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case stderrs.Is(err, mongo.ErrNoDocuments):
		return Wrap(err, ErrorCodeNotFound, msg)
	case mongo.IsDuplicateKeyError(err):
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err),
		stderrs.Is(err, context.DeadlineExceeded), stderrs.Is(err, mongo.ErrClientDisconnected):
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
