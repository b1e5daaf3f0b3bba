// Package services orchestrates the ledger session: the in-memory ledger,
// its persistence store, the budget tracker and the optional record sync
// publisher.
package services

import (
	"bufio"
	"context"
	"os"

	"github.com/pkg/errors"

	"kudi/internal/amqp"
	"kudi/internal/budget"
	"kudi/internal/core"
	"kudi/internal/ledger"
	applog "kudi/internal/log"
	"kudi/internal/store"
)

// LedgerService owns one ledger session. A nil AMQP client disables sync;
// publish failures are logged and never fail the local operation.
type LedgerService struct {
	ledger     *ledger.Ledger
	store      store.Store
	amqpClient *amqp.Client
	logger     *applog.Logger
}

func NewLedgerService(st store.Store, amqpClient *amqp.Client, logger *applog.Logger) *LedgerService {
	return &LedgerService{
		ledger:     ledger.New(),
		store:      st,
		amqpClient: amqpClient,
		logger:     logger.WithComponent(applog.ComponentService),
	}
}

// Ledger exposes the session's ledger for aggregate queries and display.
func (s *LedgerService) Ledger() *ledger.Ledger {
	return s.ledger
}

// Append validates and appends one record, then hands it to the sync
// pipeline best-effort.
func (s *LedgerService) Append(ctx context.Context, r core.Record) error {
	if err := s.ledger.Append(r); err != nil {
		return errors.Wrap(err, "append record")
	}
	s.logger.Info("Record added",
		applog.FieldOperation, applog.OpAppend,
		applog.FieldDate, r.Date.String(),
		applog.FieldDescription, r.Description,
		applog.FieldKind, string(r.Kind),
		applog.FieldAmountCents, r.Amount.Cents)

	s.publish(ctx, r)
	return nil
}

func (s *LedgerService) publish(ctx context.Context, r core.Record) {
	if s.amqpClient == nil {
		return
	}
	if err := s.amqpClient.PublishRecord(ctx, amqp.NewRecordMessage(r)); err != nil {
		// Sync is best-effort: the record is in the ledger regardless.
		s.logger.Error("Failed to publish record sync message",
			applog.FieldOperation, applog.OpSync,
			applog.FieldError, err,
			applog.FieldDescription, r.Description)
	}
}

// RemoveAt removes the record at index. An out-of-range index is logged as
// a warning and the ledger is left unchanged.
func (s *LedgerService) RemoveAt(index int) (core.Record, error) {
	removed, err := s.ledger.RemoveAt(index)
	if err != nil {
		s.logger.Warn("Invalid index, no record removed",
			applog.FieldOperation, applog.OpRemove,
			applog.FieldIndex, index)
		return core.Record{}, err
	}
	s.logger.Info("Record removed",
		applog.FieldOperation, applog.OpRemove,
		applog.FieldIndex, index,
		applog.FieldDescription, removed.Description)
	return removed, nil
}

// ImportLines bulk-imports raw lines, logging one warning per skipped line.
func (s *LedgerService) ImportLines(ctx context.Context, lines []string) (int, []ledger.SkippedLine) {
	added, skipped := s.ledger.ImportLines(lines)
	for _, sk := range skipped {
		s.logger.Warn("Skipped invalid line",
			applog.FieldOperation, applog.OpImport,
			applog.FieldLine, sk.Line,
			applog.FieldError, sk.Err)
	}
	s.logger.Info("Import finished",
		applog.FieldOperation, applog.OpImport,
		applog.FieldCount, added,
		applog.FieldSkipped, len(skipped))
	return added, skipped
}

// ImportFile reads raw lines from path and imports them. Unlike loading
// saved data, a missing import file is a hard error: the caller named it
// explicitly.
func (s *LedgerService) ImportFile(ctx context.Context, path string) (int, []ledger.SkippedLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return 0, nil, errors.Wrapf(err, "read %s", path)
	}

	added, skipped := s.ImportLines(ctx, lines)
	return added, skipped, nil
}

// Save persists the current ledger snapshot through the store.
func (s *LedgerService) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ledger.Records()); err != nil {
		return errors.Wrap(err, "save ledger")
	}
	s.logger.Info("Ledger saved",
		applog.FieldOperation, applog.OpSave,
		applog.FieldCount, s.ledger.Len())
	return nil
}

// Load hydrates the ledger from the store. No saved data yet is a warning
// and leaves the ledger empty; malformed rows are skipped with warnings.
func (s *LedgerService) Load(ctx context.Context) error {
	records, skipped, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoSavedData) {
			s.logger.Warn("No saved transaction data found yet")
			return nil
		}
		return errors.Wrap(err, "load ledger")
	}
	for _, sk := range skipped {
		s.logger.Warn("Skipped invalid row",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldError, sk.Err)
	}
	s.ledger.Replace(records)
	s.logger.Info("Ledger loaded",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldCount, len(records),
		applog.FieldSkipped, len(skipped))
	return nil
}

// CategoryStatus is one category's spend joined with its budget position.
type CategoryStatus struct {
	Category string
	Spent    core.Money
	Status   string
}

// BudgetReport joins the ledger's per-category expense totals with the
// tracker's statuses. The tracker never reads the ledger itself; this is
// the orchestration point between the two.
func (s *LedgerService) BudgetReport(tracker *budget.Tracker) []CategoryStatus {
	summary := s.ledger.CategorySummary()
	out := make([]CategoryStatus, 0, len(summary))
	for _, ca := range summary {
		out = append(out, CategoryStatus{
			Category: ca.Name,
			Spent:    ca.Amount,
			Status:   tracker.Status(ca.Name, ca.Amount),
		})
	}
	return out
}

// Close releases the sync connection, if any. The store's lifetime is
// owned by whoever created it.
func (s *LedgerService) Close() error {
	if s.amqpClient == nil {
		return nil
	}
	if err := s.amqpClient.Close(); err != nil {
		return errors.Wrap(err, "close amqp client")
	}
	return nil
}
