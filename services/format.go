package services

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
)

// FormatINR formats an amount using the Indian numbering system, where the
// rightmost 3 digits form one group and every 2 digits group after that
// (e.g. ₹1,23,45,678.90). Always renders exactly 2 decimal places.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart, decPart := parts[0], parts[1]

	result := "₹" + groupIndianDigits(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndianDigits inserts commas: last 3 digits together, then pairs.
func groupIndianDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	out := s[len(s)-3:]
	rest := s[:len(s)-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	return rest + "," + out
}

// Round2 rounds a monetary or weight value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CoerceFloat normalizes free-text numeric input to a float64. Blank input
// normalizes to 0 silently; non-numeric input also normalizes to 0 but is
// logged, so typos are not absorbed without a trace.
func CoerceFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("format: coercing non-numeric input %q to 0", s)
		return 0
	}
	return v
}

// ParsePercent parses a signed percentage out of free text. A trailing "%"
// is optional: "10%", "10" and "-2.5" are all accepted. Returns a
// *ParseError for anything that is not a number.
func ParsePercent(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	value := strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	pct, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Input: text}
	}
	return pct, nil
}

// FormatQty renders quantities without decimals when whole, 2 decimals otherwise.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
