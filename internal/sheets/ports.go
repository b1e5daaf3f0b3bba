package sheets

import (
	"context"

	"kudi/internal/core"
)

// RecordWriter is the outbound port for the sync export target.
type RecordWriter interface {
	// Append writes one record and returns a reference to the written row.
	Append(ctx context.Context, r core.Record) (rowRef string, err error)
}
