// Package cli implements the goalctl command line interface.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatMoney renders an amount with two decimals and thousands separators.
// e.g., 15000 -> "$15,000.00"
func formatMoney(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(whole) + "." + fraction
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}

// formatPercent renders a percentage with at most one decimal.
// e.g., 56.6667 -> "56.7%", 100 -> "100%"
func formatPercent(pct decimal.Decimal) string {
	return pct.Round(1).String() + "%"
}

func formatDays(days int) string {
	switch {
	case days < 0:
		return "overdue"
	case days == 1:
		return "1 day"
	default:
		return strconv.Itoa(days) + " days"
	}
}
