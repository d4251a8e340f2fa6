package booking

import "time"

// CancelNotice is the minimum lead time for cancelling a reservation.
const CancelNotice = 30 * time.Minute

// CanCancel reports whether a reservation starting at start may still be
// cancelled at the instant now.  Cancellation requires at least 30 minutes
// of notice; exactly 30 minutes before the start is still allowed.
func CanCancel(now, start time.Time) bool {
    return start.Sub(now) >= CancelNotice
}

// CanDelete reports whether a reservation ending at end may be removed from
// the list at the instant now.  Deletion is only allowed once the booking is
// strictly in the past.
func CanDelete(now, end time.Time) bool {
    return now.After(end)
}
