package backend

import (
	"errors"
	"fmt"
)

// ErrNetwork matches every *NetworkError via errors.Is.
var ErrNetwork = errors.New("catalog backend request failed")

// Operation names carried by NetworkError.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// NetworkError is the single failure kind of the repository client. Non-2xx
// statuses, transport failures (timeout, DNS, refused connection) and
// undecodable response bodies all collapse into it.
type NetworkError struct {
	// Resource is the collection the request targeted.
	Resource Resource

	// Op is one of OpList, OpCreate, OpUpdate, OpDelete.
	Op string

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Err is the underlying cause, if any. Nil for plain status failures.
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("%s %s: status %d: %v", e.Resource, e.Op, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Resource, e.Op, e.Err)
	default:
		return fmt.Sprintf("%s %s: unexpected status %d", e.Resource, e.Op, e.Status)
	}
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNetwork) true for every NetworkError.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// StatusCode returns the HTTP status, or 0 for transport failures.
func (e *NetworkError) StatusCode() int {
	return e.Status
}
