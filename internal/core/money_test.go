package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"0", 0, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"50000", 5000000, true},
		{"-1", 0, false},
		{"-0.01", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{".", 0, false},
		{"", 0, false},
		// int64 cents boundary: 92233720368547757.99 is the largest
		// representable amount, one unit more must not wrap negative.
		{"92233720368547757.99", 9223372036854775799, true},
		{"92233720368547758.99", 0, false},
		{"92233720368547758", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseAmountNegativeError(t *testing.T) {
	_, err := ParseAmount("-0.01")
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestCleanAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"₦50,000", 5000000, true},
		{"₦10,000", 1000000, true},
		{"$ 1,234.56", 123456, true},
		{"€99", 9900, true},
		{"£ 12.5", 1250, true},
		{"1 000", 100000, true},
		{"400", 40000, true},
		{"₦", 0, false},
		{"₦-5", 0, false},
		{"fifty", 0, false},
	}
	for _, tc := range cases {
		got, err := CleanAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{40000, "400"},
		{1250, "12.5"},
		{1234, "12.34"},
		{5, "0.05"},
		{0, "0"},
		{-1234, "-12.34"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("%d cents expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyStringRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 10, 99, 100, 12345, 5000000} {
		m := Money{Cents: cents}
		back, err := ParseAmount(m.String())
		if err != nil || back.Cents != cents {
			t.Fatalf("%d cents did not round-trip through %q (got %d, err=%v)",
				cents, m.String(), back.Cents, err)
		}
	}
}
