// Package money converts between the wire representation of payment amounts
// (decimal dollars, e.g. 25.50) and the storage representation (integer
// cents, e.g. 2550). All arithmetic elsewhere in the application happens on
// cents; this package is the only place the two representations meet.
package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for amounts that are not positive or cannot
// be represented as an exact number of cents.
var ErrInvalidAmount = errors.New("amount must be a positive value with at most two decimal places")

// floatSlack absorbs binary float noise when scaling by 100 (25.50 arrives
// as 25.499999... or 25.500000...01 depending on the decoder). For large
// amounts the representation error grows with the magnitude, so the
// tolerance scales with it; see exactnessTolerance. An input that is off by
// a real third decimal place is off by at least 0.5 cents, far above either
// bound.
const floatSlack = 1e-6

func exactnessTolerance(scaled float64) float64 {
	if rel := math.Abs(scaled) * 1e-12; rel > floatSlack {
		return rel
	}
	return floatSlack
}

// FromDollars converts a decimal dollar amount to cents. It rejects values
// that are not strictly positive or that carry more than two decimal places
// of precision, e.g. 1.005.
func FromDollars(dollars float64) (int64, error) {
	if dollars <= 0 || math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrInvalidAmount
	}
	scaled := dollars * 100
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > exactnessTolerance(scaled) {
		return 0, ErrInvalidAmount
	}
	if cents > math.MaxInt64 {
		return 0, ErrInvalidAmount
	}
	return int64(cents), nil
}

// ParseDollars converts the string form used by query parameters ("25.50",
// "10") to cents. Parsing is done on the decimal text itself so no float
// precision is involved.
func ParseDollars(s string) (int64, error) {
	s = strings.TrimSpace(s)
	// Reject sign characters outright; "-0.50" would otherwise slip through
	// because its whole part parses to zero.
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	whole, frac, found := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 || (found && frac == "") {
		return 0, ErrInvalidAmount
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 || units > (math.MaxInt64-99)/100 {
		return 0, ErrInvalidAmount
	}
	cents := units * 100
	if frac != "" {
		n, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			n *= 10
		}
		cents += int64(n)
	}
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// ToDollars converts stored cents back to the decimal dollar value reported
// on the wire.
func ToDollars(cents int64) float64 {
	return float64(cents) / 100
}
