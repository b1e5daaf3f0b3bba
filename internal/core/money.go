// Package core holds the validated transaction model and the money and
// date value types shared by the parser, the ledger and the stores.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a currency-agnostic monetary magnitude in integer cents.
// Sums and balances stay exact; floats appear only at display boundaries.
type Money struct {
	Cents int64
}

// ParseAmount converts a plain decimal string to Money with half-up
// rounding on the third decimal place. Zero is a valid amount; negative
// values are ErrNegativeAmount.
//
// Examples:
//
//	ParseAmount("400") -> 40000 cents
//	ParseAmount("12.5") -> 1250 cents
//	ParseAmount("12.345") -> 1234 cents (rounds down)
//	ParseAmount("12.346") -> 1235 cents (rounds up)
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}
	s = strings.TrimPrefix(s, "+")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return Money{}, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	// Guard iv*100 + fracCents below; fracCents can reach 99.
	const maxSafeUnits = ((1<<63 - 1) - 99) / 100
	if iv > maxSafeUnits {
		return Money{}, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return Money{Cents: iv*100 + fracCents}, nil
}

// CleanAmount parses an amount that may carry input noise: a leading
// currency symbol, thousands-separator commas, embedded whitespace.
// "₦50,000" and "$ 1,234.56" both parse; the stripped remainder must
// still be a valid non-negative decimal.
func CleanAmount(s string) (Money, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '₦' || r == '$' || r == '€' || r == '£':
		case r == ',':
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}
	return ParseAmount(b.String())
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns m - o. The result may be negative (an overdrawn balance).
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// Abs returns the magnitude of m.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Units returns the amount in whole currency units for display purposes.
// Use cents for calculations to avoid floating-point drift.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// String renders the shortest exact decimal form: "400", "12.5", "12.34".
// A written amount always parses back to the identical cents value.
func (m Money) String() string {
	sign := ""
	c := m.Cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	switch {
	case c%100 == 0:
		return fmt.Sprintf("%s%d", sign, c/100)
	case c%10 == 0:
		return fmt.Sprintf("%s%d.%d", sign, c/100, (c%100)/10)
	default:
		return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
	}
}
