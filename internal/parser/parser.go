// Package parser converts loosely-structured raw text lines into validated
// Records. Input comes from bank exports and manually typed receipts, which
// are inconsistent about delimiters (comma vs semicolon), date separators
// (2025/10/23 vs 2025-10-23) and amount formatting (currency symbols,
// thousands separators).
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"kudi/internal/core"
)

var (
	ErrEmptyLine     = errors.New("empty line")
	ErrInvalidFormat = errors.New("invalid format")
)

// ParseError reports a raw line that could not become a Record. It carries
// the offending line for diagnostics and unwraps to the underlying cause.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid line %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// thousandsSep matches a comma acting as a thousands separator: a digit,
// a comma, then exactly three digits.
var thousandsSep = regexp.MustCompile(`(\d),(\d\d\d)`)

// ParseLine parses one raw line into a Record. It never returns a partial
// result: any failure is a *ParseError.
//
// Tokenization attempts run in order until one yields exactly 5 fields:
// comma-delimited on the line as written, comma-delimited on a copy with
// thousands-separator commas collapsed (so "₦50,000" does not inflate the
// field count), then semicolon-delimited on the original. The plain comma
// parse goes first so a description legitimately ending in a digit next to
// a numeric amount is never merged across the field boundary.
func ParseLine(raw string) (core.Record, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return core.Record{}, &ParseError{Line: raw, Err: ErrEmptyLine}
	}

	// Tolerate 2025/10/23-style dates before any field splitting.
	line = strings.ReplaceAll(line, "/", "-")

	fields, err := tokenize(line, ',')
	if err != nil || len(fields) != 5 {
		if collapsed := collapseThousands(line); collapsed != line {
			fields, err = tokenize(collapsed, ',')
		}
	}
	if err != nil || len(fields) != 5 {
		fields, err = tokenize(line, ';')
		if err != nil {
			return core.Record{}, &ParseError{Line: line, Err: ErrInvalidFormat}
		}
	}

	// Trailing delimiters produce empty fields; drop them before counting.
	kept := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			kept = append(kept, f)
		}
	}
	if len(kept) != 5 {
		return core.Record{}, &ParseError{Line: line, Err: ErrInvalidFormat}
	}

	amount, err := core.CleanAmount(kept[2])
	if err != nil {
		return core.Record{}, &ParseError{Line: line, Err: err}
	}
	kind, err := core.ParseKind(kept[4])
	if err != nil {
		return core.Record{}, &ParseError{Line: line, Err: err}
	}
	date, err := core.ParseDate(kept[0])
	if err != nil {
		return core.Record{}, &ParseError{Line: line, Err: err}
	}
	rec, err := core.NewRecord(date, kept[1], amount, kept[3], kind)
	if err != nil {
		return core.Record{}, &ParseError{Line: line, Err: err}
	}
	return rec, nil
}

// tokenize splits one line as a delimiter-separated, double-quote-aware row.
func tokenize(line string, delim rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	return r.Read()
}

// collapseThousands removes commas sitting between a digit and a group of
// three digits. Applied repeatedly so "1,000,000" fully collapses.
func collapseThousands(line string) string {
	for {
		next := thousandsSep.ReplaceAllString(line, "$1$2")
		if next == line {
			return line
		}
		line = next
	}
}
