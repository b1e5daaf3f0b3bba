// Package budget tracks per-category spending limits. The tracker is
// independent of any ledger: callers compute spend elsewhere and pass it in.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"kudi/internal/core"
)

var (
	ErrEmptyCategory = errors.New("empty category")
	ErrNegativeLimit = errors.New("negative limit")
)

// Limit is one category's configured spending limit.
type Limit struct {
	Category string
	Amount   core.Money
}

// Tracker maps category names to spending limits. Keys are unique and
// iterate in the order they were first defined. Not safe for concurrent
// mutation.
type Tracker struct {
	order  []string
	limits map[string]core.Money
}

func NewTracker() *Tracker {
	return &Tracker{limits: make(map[string]core.Money)}
}

// SetLimit sets or overwrites the limit for a category. The category must
// be non-empty and the limit non-negative.
func (t *Tracker) SetLimit(category string, limit core.Money) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if limit.Cents < 0 {
		return ErrNegativeLimit
	}
	if _, seen := t.limits[category]; !seen {
		t.order = append(t.order, category)
	}
	t.limits[category] = limit
	return nil
}

// GetLimit returns the configured limit, or zero when none is set.
// Absence here means "no limit configured", not an error.
func (t *Tracker) GetLimit(category string) core.Money {
	return t.limits[category]
}

// Remaining returns limit minus spent and whether a limit exists at all.
// The second return distinguishes "no budget configured" from "zero
// remaining"; callers must not conflate the two.
func (t *Tracker) Remaining(category string, spent core.Money) (core.Money, bool) {
	limit, ok := t.limits[category]
	if !ok {
		return core.Money{}, false
	}
	return limit.Sub(spent), true
}

// Status renders the budget position for a category given its spend.
func (t *Tracker) Status(category string, spent core.Money) string {
	remaining, ok := t.Remaining(category, spent)
	if !ok {
		return "no budget set"
	}
	if remaining.Cents >= 0 {
		return fmt.Sprintf("within budget, remaining = %s", remaining)
	}
	return fmt.Sprintf("over budget by %s", remaining.Abs())
}

// All returns every category/limit pair in definition order.
func (t *Tracker) All() []Limit {
	out := make([]Limit, 0, len(t.order))
	for _, category := range t.order {
		out = append(out, Limit{Category: category, Amount: t.limits[category]})
	}
	return out
}
