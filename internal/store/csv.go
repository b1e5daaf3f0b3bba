package store

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"kudi/internal/core"
)

// CSVStore persists the ledger as a strict comma-delimited table with a
// header row: date, description, amount, category, type. This is the
// durable format; the noise-tolerant cleanup of raw-line import does not
// apply here.
type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Save writes the header and one row per record, replacing the file.
func (s *CSVStore) Save(ctx context.Context, records []core.Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, "create data directory")
	}
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "create %s", s.path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(core.Header()); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flush rows")
	}
	return errors.Wrapf(f.Close(), "close %s", s.path)
}

// Load reads every stored row back into records. A missing file is
// ErrNoSavedData. Header and blank rows are skipped; a malformed row is
// skipped with a warning and the rest of the load continues.
func (s *CSVStore) Load(ctx context.Context) ([]core.Record, []SkippedRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNoSavedData
		}
		return nil, nil, errors.Wrapf(err, "open %s", s.path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var records []core.Record
	var skipped []SkippedRow
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped = append(skipped, SkippedRow{Err: err})
			continue
		}
		if isHeaderRow(row) || isBlankRow(row) {
			continue
		}
		rec, err := core.RecordFromRow(row)
		if err != nil {
			skipped = append(skipped, SkippedRow{Row: row, Err: err})
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date")
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

var _ Store = (*CSVStore)(nil)
