// Package store defines the persistence port for ledger snapshots and the
// flat-file and in-memory implementations. SQLite lives in internal/storage.
package store

import (
	"context"
	"errors"

	"kudi/internal/core"
)

// ErrNoSavedData reports that the configured source holds no saved ledger
// yet. Loading then is a no-op with a warning, not a failure.
var ErrNoSavedData = errors.New("no saved transaction data")

// SkippedRow records one stored row that failed validation during a load.
type SkippedRow struct {
	Row []string
	Err error
}

// Store persists and rehydrates a full ledger snapshot. Load isolates
// per-row failures: malformed rows come back as skipped warnings and never
// abort the rest of the load.
type Store interface {
	Save(ctx context.Context, records []core.Record) error
	Load(ctx context.Context) (records []core.Record, skipped []SkippedRow, err error)
}
