package money

import (
	"errors"
	"testing"
)

func TestFromDollars(t *testing.T) {
	tests := []struct {
		name    string
		dollars float64
		cents   int64
		wantErr bool
	}{
		{"whole dollars", 25, 2500, false},
		{"two decimals", 25.50, 2550, false},
		{"one decimal", 10.5, 1050, false},
		{"single cent", 0.01, 1, false},
		{"large amount", 99999.99, 9999999, false},
		{"very large amount", 123456789.12, 12345678912, false},
		{"zero", 0, 0, true},
		{"negative", -5.00, 0, true},
		{"three decimals", 1.005, 0, true},
		{"sub cent", 0.001, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := FromDollars(tt.dollars)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("FromDollars(%v) err = %v, want ErrInvalidAmount", tt.dollars, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromDollars(%v) unexpected error: %v", tt.dollars, err)
			}
			if cents != tt.cents {
				t.Errorf("FromDollars(%v) = %d, want %d", tt.dollars, cents, tt.cents)
			}
		})
	}
}

func TestParseDollars(t *testing.T) {
	tests := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{"25.50", 2550, false},
		{"10", 1000, false},
		{"10.5", 1050, false},
		{"0.01", 1, false},
		{" 12.00 ", 1200, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5.00", 0, true},
		{"-0.50", 0, true},
		{"92233720368547759", 0, true},
		{"1.005", 0, true},
		{"10.", 0, true},
		{".50", 0, true},
		{"+1.00", 0, true},
		{"1.-5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cents, err := ParseDollars(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDollars(%q) = %d, want error", tt.in, cents)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDollars(%q) unexpected error: %v", tt.in, err)
			}
			if cents != tt.cents {
				t.Errorf("ParseDollars(%q) = %d, want %d", tt.in, cents, tt.cents)
			}
		})
	}
}

func TestToDollarsRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 2550, 1000000} {
		back, err := FromDollars(ToDollars(cents))
		if err != nil {
			t.Fatalf("round trip of %d cents failed: %v", cents, err)
		}
		if back != cents {
			t.Errorf("round trip of %d cents = %d", cents, back)
		}
	}
}
