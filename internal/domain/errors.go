package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrQueueNotFound = errors.New("queue not found")
)

// UnknownItemError means a cart line referenced an id absent from the catalog.
type UnknownItemError struct{ ItemID string }

func (e UnknownItemError) Error() string {
	return fmt.Sprintf("unknown menu item: %s", e.ItemID)
}

// InvalidQuantityError means a cart line carried a quantity below 1.
type InvalidQuantityError struct{ ItemID string }

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for item: %s", e.ItemID)
}

// ValidationError is a request-shape failure surfaced as HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err belongs to the 400 family.
func IsValidation(err error) bool {
	var ve ValidationError
	var ui UnknownItemError
	var iq InvalidQuantityError
	return errors.As(err, &ve) || errors.As(err, &ui) || errors.As(err, &iq)
}
