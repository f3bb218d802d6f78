package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinPrice is the price threshold used when none is given
var DefaultMinPrice = decimal.NewFromInt(20)

var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate parses an order date filter. Dates without an offset are UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required, use YYYY-MM-DD: %w", ErrInvalidArgument)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", raw, ErrInvalidArgument)
}

// ParsePrice parses a price filter, falling back to DefaultMinPrice when empty
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultMinPrice, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", raw, ErrInvalidArgument)
	}
	return price, nil
}
