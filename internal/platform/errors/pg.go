package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// pgCodes classifies the SQLSTATEs the registry can run into.
// Any other server error is ErrorCodeDB
var pgCodes = map[string]ErrorCode{
	pgUniqueViolation: ErrorCodeDuplicateKey,
	"23502":           ErrorCodeValidation,      // not_null_violation
	"23514":           ErrorCodeValidation,      // check_violation
	"22001":           ErrorCodeInvalidArgument, // string_data_right_truncation
	"25006":           ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P01":           ErrorCodeUnavailable,     // admin_shutdown
	"57P03":           ErrorCodeUnavailable,     // cannot_connect_now
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	ok := stderrs.As(err, &pe)
	return pe, ok
}

// DBErrorCode classifies a Postgres server error; ok is false when err carries none
func DBErrorCode(err error) (ErrorCode, bool) {
	pe, ok := pgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, known := pgCodes[pe.Code]; known {
		return c, true
	}
	return ErrorCodeDB, true
}

// IsDuplicateKey reports a unique violation anywhere in err's chain
func IsDuplicateKey(err error) bool {
	pe, ok := pgError(err)
	return ok && pe.Code == pgUniqueViolation
}

// FromPostgres wraps err under msg with a code from the server error.
// Without one, dial failures and expired contexts are Unavailable
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
		var dial *pgconn.ConnectError
		if stderrs.As(err, &dial) || pgconn.SafeToRetry(err) ||
			stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
			code = ErrorCodeUnavailable
		}
	}
	return Wrap(err, code, msg)
}
