// Package ledger holds the ordered in-memory collection of Records for one
// session and the aggregate queries over it. The ledger is not safe for
// concurrent mutation; the model is a single interactive session.
package ledger

import (
	"errors"
	"iter"
	"strings"

	"kudi/internal/core"
	"kudi/internal/parser"
)

// ErrIndexOutOfRange reports a positional operation on an index the ledger
// does not have. It is a warning, not a failure: the ledger is unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

// SkippedLine records one raw line that a bulk import rejected.
type SkippedLine struct {
	Line string
	Err  error
}

// Ledger is an append-ordered collection of Records. It owns its records
// exclusively: values go in and out by copy, never by shared reference.
type Ledger struct {
	records []core.Record
}

func New() *Ledger {
	return &Ledger{}
}

// Append adds a record at the end. Duplicates are allowed; order is
// insertion order. The record must be valid.
func (l *Ledger) Append(r core.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	l.records = append(l.records, r)
	return nil
}

// RemoveAt removes the record at index and returns it. An out-of-range
// index is a no-op reported as ErrIndexOutOfRange.
func (l *Ledger) RemoveAt(index int) (core.Record, error) {
	if index < 0 || index >= len(l.records) {
		return core.Record{}, ErrIndexOutOfRange
	}
	removed := l.records[index]
	l.records = append(l.records[:index], l.records[index+1:]...)
	return removed, nil
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// All returns a restartable sequence of (index, record) pairs in insertion
// order, for display.
func (l *Ledger) All() iter.Seq2[int, core.Record] {
	return func(yield func(int, core.Record) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// TotalIncome sums the amounts of all Income records, cent-exact.
func (l *Ledger) TotalIncome() core.Money {
	return l.totalByKind(core.Income)
}

// TotalExpense sums the amounts of all Expense records, cent-exact.
func (l *Ledger) TotalExpense() core.Money {
	return l.totalByKind(core.Expense)
}

func (l *Ledger) totalByKind(kind core.Kind) core.Money {
	var total core.Money
	for _, r := range l.records {
		if r.Kind == kind {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense. It may be negative.
func (l *Ledger) Balance() core.Money {
	return l.TotalIncome().Sub(l.TotalExpense())
}

// CategorySummary aggregates expense amounts per category in one pass.
// Categories appear in first-encountered order; income records do not
// contribute.
func (l *Ledger) CategorySummary() []core.CategoryAmount {
	var order []string
	totals := make(map[string]core.Money)
	for _, r := range l.records {
		if r.Kind != core.Expense {
			continue
		}
		if _, seen := totals[r.Category]; !seen {
			order = append(order, r.Category)
		}
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}
	out := make([]core.CategoryAmount, 0, len(order))
	for _, name := range order {
		out = append(out, core.CategoryAmount{Name: name, Amount: totals[name]})
	}
	return out
}

// ImportLines parses each raw line independently and appends the results.
// Blank lines and header lines are skipped silently; a line that fails to
// parse is skipped with a warning and never aborts the batch, so records
// appended from earlier lines stand. Returns the appended count and the
// skipped lines.
func (l *Ledger) ImportLines(lines []string) (int, []SkippedLine) {
	added := 0
	var skipped []SkippedLine
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || isHeader(line) {
			continue
		}
		rec, err := parser.ParseLine(line)
		if err != nil {
			skipped = append(skipped, SkippedLine{Line: strings.TrimSpace(line), Err: err})
			continue
		}
		l.records = append(l.records, rec)
		added++
	}
	return added, skipped
}

// isHeader treats any line containing the literal "date" token as a header
// row from a previous save.
func isHeader(line string) bool {
	return strings.Contains(strings.ToLower(line), "date")
}

// Records returns a copy of the backing slice, for persistence.
func (l *Ledger) Records() []core.Record {
	out := make([]core.Record, len(l.records))
	copy(out, l.records)
	return out
}

// Replace hydrates the ledger from a loaded batch, discarding current
// contents. The records are copied in.
func (l *Ledger) Replace(records []core.Record) {
	l.records = make([]core.Record, len(records))
	copy(l.records, records)
}
