package worker

import (
	"context"
	"fmt"
	"log/slog"

	"kudi/internal/amqp"
	"kudi/internal/sheets"
)

// SyncWorker appends ledger records delivered over AMQP to a spreadsheet.
// Messages carry the full record, so the worker needs no store access.
type SyncWorker struct {
	sheets sheets.RecordWriter
}

func NewSyncWorker(sheets sheets.RecordWriter) *SyncWorker {
	return &SyncWorker{sheets: sheets}
}

// HandleRecordMessage processes a single record sync message from AMQP.
// A message that fails validation is a permanent error: redelivery cannot
// fix it, so the consumer drops it instead of requeueing.
func (w *SyncWorker) HandleRecordMessage(ctx context.Context, msg *amqp.RecordMessage) error {
	slog.InfoContext(ctx, "Processing record sync message",
		"description", msg.Description,
		"date", msg.Date)

	record, err := msg.ToRecord()
	if err != nil {
		return fmt.Errorf("invalid record in message: %w", err)
	}

	ref, err := w.sheets.Append(ctx, record)
	if err != nil {
		return fmt.Errorf("append to sheets: %w", err)
	}

	slog.InfoContext(ctx, "Successfully synced record",
		"sheets_ref", ref,
		"description", record.Description,
		"amount_cents", record.Amount.Cents)

	return nil
}
