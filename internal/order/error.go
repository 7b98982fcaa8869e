package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnauthorized = errors.New("authorization failed, check the API key")
)

// APIError is a non-success response from the orders endpoint, carrying the
// server's message when one was decodable. Write failures are surfaced with
// it and never retried.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("orders api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("orders api: status %d", e.StatusCode)
}
