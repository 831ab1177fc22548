package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonAmountChars = regexp.MustCompile(`[^\d.,]`)
	leadingAmount  = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// ParseCurrency normalizes a display amount such as "₹1,500.00" or "$ 12.5" into a
// non-negative value rounded to two decimals. Anything without a leading number parses as zero.
//
// Every character other than digits, dots and commas is dropped and commas are treated as
// thousands separators. Only the leading numeric run is read, so "1.500.00" parses as 1.50.
func ParseCurrency(amount string) decimal.Decimal {
	if amount == "" {
		return decimal.Zero
	}

	cleaned := nonAmountChars.ReplaceAllString(amount, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	match := leadingAmount.FindString(cleaned)
	if match == "" {
		return decimal.Zero
	}
	if strings.HasSuffix(match, ".") {
		match = strings.TrimSuffix(match, ".")
	}

	value, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}

	return value.Round(2)
}
