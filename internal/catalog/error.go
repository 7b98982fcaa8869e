package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("authorization failed, check the API key")
	ErrProductNotFound = errors.New("product not found")
)

// APIError carries a non-success HTTP status and the server's error message
// when one was decodable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("goods api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("goods api: status %d", e.StatusCode)
}
