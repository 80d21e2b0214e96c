package eval

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrRetryExhausted is returned by RequeueFailed when the record has
	// already been retried MaxRetries times.
	ErrRetryExhausted = errors.New("retry_exhausted")

	// ErrUnknownTask is returned when a result refers to a task whose
	// partial-results hash is gone and whose record cannot be located.
	ErrUnknownTask = errors.New("unknown task")
)

// QueueError wraps a broker failure with the operation and queue it hit.
type QueueError struct {
	Op    string // "append", "pop", "hset", ...
	Queue string
	Err   error
}

func (e QueueError) Error() string {
	return fmt.Sprintf("queue %s on %s: %v", e.Op, e.Queue, e.Err)
}

func (e QueueError) Unwrap() error {
	return e.Err
}

// StoreError wraps a store failure with the operation that caused it.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e StoreError) Unwrap() error {
	return e.Err
}

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The finaliser uses this to tell "already finalised" apart from
// genuine store failures.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
