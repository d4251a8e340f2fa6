package gateway

import (
    "errors"
    "fmt"
)

// ErrConflict signals that the backend rejected a booking because the slot
// overlaps an existing reservation.  The backend reports this on the create
// call only; the front-end performs no overlap checking of its own.
var ErrConflict = errors.New("booking slot already taken")

// FetchFailure describes a failed backend call: either the request itself
// failed (Status 0) or the backend answered outside the 2xx range.  Err, when
// set, carries the transport error or a sentinel such as ErrConflict.
type FetchFailure struct {
    Op     string // operation name, e.g. "list rooms"
    Status int    // HTTP status, 0 when the request never completed
    Err    error  // underlying cause, may be nil
}

// Error implements the error interface.
func (f *FetchFailure) Error() string {
    if f.Status == 0 && f.Err != nil {
        return fmt.Sprintf("%s: %v", f.Op, f.Err)
    }
    return fmt.Sprintf("%s: backend returned %d", f.Op, f.Status)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (f *FetchFailure) Unwrap() error { return f.Err }
