package console

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the backend rejects the stored token.
	// The token has already been cleared when it is returned.
	ErrUnauthorized = errors.New("not authenticated, run linkctl login")
	// ErrDuplicateSlug rejects a medium or content whose slug already exists
	// in the same source.
	ErrDuplicateSlug = errors.New("slug already exists")
	// ErrUnknownSource is returned for a source slug missing from the store.
	ErrUnknownSource = errors.New("unknown source")
	// ErrUnknownOption is returned for a medium or content that is not
	// among the current options.
	ErrUnknownOption = errors.New("unknown option")
	// ErrNothingToExport refuses an export of zero links.
	ErrNothingToExport = errors.New("no links to export")
)

// TransportError is a request that never got an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer of the backend.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend answered %d", e.Status)
	}
	return fmt.Sprintf("backend answered %d: %s", e.Status, e.Detail)
}
