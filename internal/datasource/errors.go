package datasource

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by fetchers and the source.
var (
	// ErrNotFound indicates the document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidDocument indicates a document that could not be decoded.
	ErrInvalidDocument = errors.New("invalid document")
)

// StatusError is a non-2xx response from a remote data source.
type StatusError struct {
	Name       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: HTTP %d", e.Name, e.StatusCode)
}

// Is makes a 404 match ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err means the document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
