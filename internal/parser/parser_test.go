package parser

import (
	"errors"
	"testing"

	"kudi/internal/core"
)

func TestParseLineCommaWithCurrencyNoise(t *testing.T) {
	rec, err := ParseLine("2025/10/23, Salary, ₦50,000, Work, Income")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if rec.Date.String() != "2025-10-23" {
		t.Fatalf("unexpected date %q", rec.Date)
	}
	if rec.Description != "Salary" || rec.Category != "Work" {
		t.Fatalf("unexpected fields: %+v", rec)
	}
	if rec.Amount.Cents != 5000000 {
		t.Fatalf("unexpected amount %d", rec.Amount.Cents)
	}
	if rec.Kind != core.Income {
		t.Fatalf("unexpected kind %q", rec.Kind)
	}
}

func TestParseLineSemicolonLowercaseKind(t *testing.T) {
	rec, err := ParseLine("2025-10-26; Internet Subscription; ₦10,000; Utilities; expense")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if rec.Kind != core.Expense {
		t.Fatalf("unexpected kind %q", rec.Kind)
	}
	if rec.Amount.Cents != 1000000 {
		t.Fatalf("unexpected amount %d", rec.Amount.Cents)
	}
	if rec.Description != "Internet Subscription" {
		t.Fatalf("unexpected description %q", rec.Description)
	}
}

func TestParseLineDelimiterCommutative(t *testing.T) {
	comma, err := ParseLine("2025-03-01, Bus fare, 250, Transport, Expense")
	if err != nil {
		t.Fatalf("comma line: %v", err)
	}
	semi, err := ParseLine("2025-03-01; Bus fare; 250; Transport; Expense")
	if err != nil {
		t.Fatalf("semicolon line: %v", err)
	}
	if comma != semi {
		t.Fatalf("delimiter choice changed the record: %+v vs %+v", comma, semi)
	}
}

func TestParseLineQuotedDescription(t *testing.T) {
	rec, err := ParseLine(`2025-04-05,"Dinner, drinks",₦7,500,Eating Out,Expense`)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if rec.Description != "Dinner, drinks" {
		t.Fatalf("unexpected description %q", rec.Description)
	}
	if rec.Amount.Cents != 750000 {
		t.Fatalf("unexpected amount %d", rec.Amount.Cents)
	}
}

func TestParseLineDescriptionEndingInDigit(t *testing.T) {
	// A digit at the end of the description sits right next to the amount
	// field; thousands-separator collapsing must not merge them.
	rec, err := ParseLine("2025-01-01,Chapter 1,100,Books,Expense")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if rec.Description != "Chapter 1" {
		t.Fatalf("unexpected description %q", rec.Description)
	}
	if rec.Amount.Cents != 10000 {
		t.Fatalf("unexpected amount %d", rec.Amount.Cents)
	}
}

func TestParseLineTrailingSemicolon(t *testing.T) {
	rec, err := ParseLine("2025-05-01; Rent; 1200; Housing; Expense;")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if rec.Category != "Housing" {
		t.Fatalf("unexpected category %q", rec.Category)
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"empty", "", ErrEmptyLine},
		{"whitespace", "   ", ErrEmptyLine},
		{"four fields", "not,a,valid,line", ErrInvalidFormat},
		{"six fields", "a,b,c,d,e,f", ErrInvalidFormat},
		{"bad amount", "2025-01-01, Lunch, abc, Food, Expense", core.ErrInvalidAmount},
		{"negative amount", "2025-01-01, Lunch, -5, Food, Expense", core.ErrNegativeAmount},
		{"bad kind", "2025-01-01, Lunch, 5, Food, Loan", core.ErrInvalidKind},
		{"bad date", "01-02-2025, Lunch, 5, Food, Expense", core.ErrBadDateFormat},
	}
	for _, tc := range cases {
		_, err := ParseLine(tc.line)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%s: expected *ParseError, got %T", tc.name, err)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected cause %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestParseErrorCarriesLine(t *testing.T) {
	_, err := ParseLine("not,a,valid,line")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != "not,a,valid,line" {
		t.Fatalf("unexpected line %q", pe.Line)
	}
}
