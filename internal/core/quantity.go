// Package core provides the meal planning domain model.
//
// This file contains quantity parsing and formatting. Quantities are held
// as an integer count of thousandths so that shopping list totals are exact
// sums, free of floating-point accumulation drift.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Quantity is an exact decimal amount stored in thousandths of a unit.
type Quantity struct {
	Milli int64
}

// QuantityFromMilli builds a Quantity from a raw thousandths count.
func QuantityFromMilli(milli int64) Quantity {
	return Quantity{Milli: milli}
}

func (q Quantity) Validate() error {
	if q.Milli <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Add returns the exact sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{Milli: q.Milli + other.Milli}
}

// String renders the quantity with up to three decimals, trailing zeros
// trimmed ("0.5", "1.25", "2").
func (q Quantity) String() string {
	milli := q.Milli
	neg := milli < 0
	if neg {
		milli = -milli
	}
	whole := milli / 1000
	frac := milli % 1000
	s := strconv.FormatInt(whole, 10)
	if frac != 0 {
		f := strconv.FormatInt(frac, 10)
		for len(f) < 3 {
			f = "0" + f
		}
		f = strings.TrimRight(f, "0")
		s += "." + f
	}
	if neg {
		return "-" + s
	}
	return s
}

// ParseQuantity converts a decimal string to thousandths with half-up
// rounding on the fourth decimal place.
//
// It accepts both dot (1.5) and comma (1,5) decimal separators and only
// positive values. Returns an error for invalid formats, signs, or zero.
//
// Examples:
//   ParseQuantity("1.5")    -> 1500, nil
//   ParseQuantity("0,25")   -> 250, nil
//   ParseQuantity("1.2345") -> 1235, nil (rounds up)
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, ErrInvalidQuantity
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only positive values allowed
		return Quantity{}, ErrInvalidQuantity
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Quantity{}, ErrInvalidQuantity
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" {
		return Quantity{}, ErrInvalidQuantity
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return Quantity{}, ErrInvalidQuantity
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return Quantity{}, ErrInvalidQuantity
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Quantity{}, ErrInvalidQuantity
	}
	// Prevent overflow when multiplying by 1000
	const maxSafeInt64 = (1<<63 - 1) / 1000
	if iv > maxSafeInt64 {
		return Quantity{}, ErrInvalidQuantity
	}
	// Take the first three fractional digits, half-up rounding on the fourth.
	var fracMilli int64
	if len(fracPart) > 0 {
		scale := int64(100)
		for i := 0; i < len(fracPart) && i < 3; i++ {
			fracMilli += int64(fracPart[i]-'0') * scale
			scale /= 10
		}
		if len(fracPart) > 3 && fracPart[3] >= '5' {
			fracMilli++
		}
	}
	milli := iv*1000 + fracMilli
	if milli <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{Milli: milli}, nil
}
