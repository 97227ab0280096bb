package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a 404 on fetch-by-id: the vanish never existed,
	// expired, or was a one-time link that has already been viewed.
	ErrNotFound = errors.New("vanish not found")

	// ErrPayloadTooLarge marks a 413 on creation. The client pre-validates
	// file sizes, but the server is the authority and may still reject.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// APIError is a non-2xx response that is neither a 404 on fetch nor a 413 on
// creation.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("api error: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %d", e.Status)
}

// NetworkError is a transport failure: no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
