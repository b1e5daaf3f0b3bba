package core

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Income", Income, true},
		{"income", Income, true},
		{"INCOME", Income, true},
		{"eXpEnSe", Expense, true},
		{"expense", Expense, true},
		{" Expense ", Expense, true},
		{"Transfer", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.want, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidKind) {
				t.Fatalf("%q expected ErrInvalidKind, got %v", tc.in, err)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-10-23", true},
		{" 2025-01-01 ", true},
		{"2025/10/23", false},
		{"2025-1-2", false},
		{"2025-13-01", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if d.String() != "2025-10-23" && d.String() != "2025-01-01" {
				t.Fatalf("%q rendered as %q", tc.in, d.String())
			}
		} else {
			if !errors.Is(err, ErrBadDateFormat) {
				t.Fatalf("%q expected ErrBadDateFormat, got %v", tc.in, err)
			}
		}
	}
}

func TestNewRecordValidation(t *testing.T) {
	date := NewDate(2025, 10, 23)

	good, err := NewRecord(date, "Salary", Money{Cents: 5000000}, "Work", Income)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if good.Kind != Income || good.Amount.Cents != 5000000 {
		t.Fatalf("unexpected record: %+v", good)
	}

	cases := []struct {
		name string
		date Date
		desc string
		amt  Money
		kind Kind
		want error
	}{
		{"negative amount", date, "Salary", Money{Cents: -1}, Income, ErrNegativeAmount},
		{"invalid kind", date, "Salary", Money{Cents: 1}, Kind("Transfer"), ErrInvalidKind},
		{"zero date", Date{}, "Salary", Money{Cents: 1}, Income, ErrBadDateFormat},
		{"empty description", date, "  ", Money{Cents: 1}, Income, ErrEmptyDescription},
	}
	for _, tc := range cases {
		_, err := NewRecord(tc.date, tc.desc, tc.amt, "Work", tc.kind)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if !IsValidation(err) {
			t.Fatalf("%s: expected a validation error, got %v", tc.name, err)
		}
	}
}

func TestRecordRowRoundTrip(t *testing.T) {
	records := []Record{
		mustRecord(t, "2025-10-23", "Salary", 5000000, "Work", Income),
		mustRecord(t, "2025-10-26", "Internet Subscription", 1000000, "Utilities", Expense),
		mustRecord(t, "2025-02-14", "Groceries, weekly", 1250, "Food", Expense),
		mustRecord(t, "2025-01-01", "Refund", 0, "Misc", Income),
	}
	for _, want := range records {
		got, err := RecordFromRow(want.Row())
		if err != nil {
			t.Fatalf("%v did not round-trip: %v", want, err)
		}
		if got != want {
			t.Fatalf("round-trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestRecordFromRowRejects(t *testing.T) {
	cases := []struct {
		name string
		row  []string
		want error
	}{
		{"wrong arity", []string{"2025-01-01", "x", "1"}, ErrInvalidRow},
		{"bad date", []string{"01-01-2025", "x", "1", "c", "Income"}, ErrBadDateFormat},
		{"noisy amount", []string{"2025-01-01", "x", "₦1,000", "c", "Income"}, ErrInvalidAmount},
		{"negative amount", []string{"2025-01-01", "x", "-1", "c", "Income"}, ErrNegativeAmount},
		{"bad kind", []string{"2025-01-01", "x", "1", "c", "Loan"}, ErrInvalidKind},
	}
	for _, tc := range cases {
		if _, err := RecordFromRow(tc.row); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func mustRecord(t *testing.T, date, desc string, cents int64, category string, kind Kind) Record {
	t.Helper()
	d, err := ParseDate(date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	r, err := NewRecord(d, desc, Money{Cents: cents}, category, kind)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return r
}
