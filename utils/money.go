package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySuffix is the Albanian lek marker printed after amounts.
const DefaultCurrencySuffix = "L"

// FormatAmount formats an amount as "<amount> <suffix>", e.g. "200 L".
// The amount keeps its natural precision: 12.5 prints as "12.5", 50 as "50".
func FormatAmount(amount decimal.Decimal, suffix string) string {
	if suffix == "" {
		return amount.String()
	}
	return amount.String() + " " + suffix
}

// ParseAmount parses a non-negative price typed by a user or read from a source.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q must not be negative", raw)
	}
	return amount, nil
}
