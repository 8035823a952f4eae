package storage

import (
	"context"
	"errors"

	"hourtrack/internal/core"
)

// ErrMissingStore reports that a user's record file does not exist yet.
// Read paths treat it as "no activity logged", not as a failure: the full
// read surfaces it so the caller can warn, the today read swallows it.
var ErrMissingStore = errors.New("record store not found")

// RecordStore is the port for durable per-user activity records. A user's
// records form a single ordered sequence; append order is insertion order
// and every mutation beyond append rewrites the whole sequence.
type RecordStore interface {
	// Initialize ensures the user's store exists, creating it with only
	// the column header when absent. Idempotent.
	Initialize(ctx context.Context, userID string) error

	// ReadAll returns every record in stored order. A missing store
	// returns ErrMissingStore alongside an empty sequence.
	ReadAll(ctx context.Context, userID string) ([]core.Record, error)

	// ReadToday returns the subset of ReadAll dated today. A missing
	// store yields an empty sequence with no error.
	ReadToday(ctx context.Context, userID string) ([]core.Record, error)

	// Append adds one record to the end of the sequence without reading
	// the rest. An empty category is replaced with the default label.
	Append(ctx context.Context, userID string, rec core.Record) error

	// WriteAll replaces the entire persisted sequence, preserving order.
	WriteAll(ctx context.Context, userID string, records []core.Record) error

	// Clear truncates the sequence to empty (header only).
	Clear(ctx context.Context, userID string) error
}
