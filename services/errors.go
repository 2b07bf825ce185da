package services

import (
	"errors"
	"fmt"
)

// Error taxonomy for the booking core. All conditions are local and
// recoverable; controllers map them onto HTTP statuses. Validation always
// happens before any state mutation, so a rejected operation never leaves
// a room partially updated.
var (
	ErrAlreadyOccupied     = errors.New("already_occupied")
	ErrNotOccupied         = errors.New("not_occupied")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrUnknownItem         = errors.New("unknown_item")
	ErrNonPositiveQuantity = errors.New("non_positive_quantity")
	ErrInvalidCredentials  = errors.New("invalid_credentials")
)

// PersistenceError reports a failed ledger write. Op names the ledger call
// and Target identifies the record (room number or bill reference) so the
// caller can retry the operation.
type PersistenceError struct {
	Op     string
	Target string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %s (%s): %v", e.Op, e.Target, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
