package core

import (
	"fmt"
	"strings"
)

// Kind is the direction of a transaction.
type Kind string

const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// ParseKind canonicalizes a type string case-insensitively: first letter
// upper, rest lower, so "INCOME" and "income" both become Income. Anything
// that does not land on one of the two kinds is ErrInvalidKind.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidKind
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	switch k := Kind(s); k {
	case Income, Expense:
		return k, nil
	}
	return "", ErrInvalidKind
}

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	}
	return ErrInvalidKind
}

// Record is one validated transaction. It is a value: once constructed it
// is never mutated, a correction is modeled as remove plus re-add.
type Record struct {
	Date        Date
	Description string
	Amount      Money
	Category    string
	Kind        Kind
}

// NewRecord builds a validated Record. Construction is pure: it fails fast
// on any invariant violation and has no side effects, callers own logging.
func NewRecord(date Date, description string, amount Money, category string, kind Kind) (Record, error) {
	r := Record{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r Record) Validate() error {
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// String renders one display line: date | description | category | kind | amount.
func (r Record) String() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		r.Date, r.Description, r.Category, r.Kind, r.Amount)
}

// CategoryAmount is an amount aggregated under one category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}
