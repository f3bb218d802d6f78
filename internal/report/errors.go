package report

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for missing or malformed report input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoResults is returned when a valid report matches nothing
	ErrNoResults = errors.New("no results")

	// ErrNoOrders is returned by the most-orders report when no order exists
	ErrNoOrders = fmt.Errorf("no orders registered: %w", ErrNoResults)
)
