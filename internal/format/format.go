// Package format renders metric values for chart labels, cards and tables.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Func renders a value for display. Chart mappers take one for gridline
// and bar labels.
type Func func(float64) string

var tag = language.AmericanEnglish

// message.Printer keeps per-call state, so each call gets its own.
func printer() *message.Printer { return message.NewPrinter(tag) }

// Currency renders v as US dollars with grouping, e.g. $1,234.56.
func Currency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + printer().Sprintf("%.2f", d.Neg().InexactFloat64())
	}
	return "$" + printer().Sprintf("%.2f", d.InexactFloat64())
}

// Percent renders a 0-100 value with two decimals, e.g. 3.45%.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// Number renders integers with grouping and fractions with at most two
// decimals, e.g. 12,345 or 1,234.5.
func Number(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsInteger() {
		return printer().Sprintf("%d", d.IntPart())
	}
	s := printer().Sprintf("%.2f", d.InexactFloat64())
	// drop a trailing zero in the hundredths
	if n := len(s); n > 0 && s[n-1] == '0' {
		s = s[:n-1]
	}
	return s
}

// Integer renders a count with grouping.
func Integer(v int64) string {
	return printer().Sprintf("%d", v)
}
