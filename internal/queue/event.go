// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names on the default exchange.
const (
    QueueBookingCreated   = "booking.created"
    QueueBookingCancelled = "booking.cancelled"
)

// BookingCreatedEvent is published after the backend accepts a new
// reservation.  It carries enough information for downstream consumers to
// notify attendees or feed usage analytics without calling the backend.
type BookingCreatedEvent struct {
    EventID   string `json:"event_id"`
    BookingID int    `json:"booking_id"`
    UserID    int    `json:"user_id"`
    RoomID    int    `json:"room_id"`
    RoomName  string `json:"room_name"`
    StartsAt  string `json:"starts_at"`
    EndsAt    string `json:"ends_at"`
    BookedNum int    `json:"booked_num"`
    CreatedAt string `json:"created_at"`
}

// BookingCancelledEvent is published after a reservation is cancelled or an
// expired one is deleted from the list.  Reason distinguishes the two flows.
type BookingCancelledEvent struct {
    EventID     string `json:"event_id"`
    BookingID   int    `json:"booking_id"`
    Reason      string `json:"reason"` // "cancel" or "delete"
    CancelledAt string `json:"cancelled_at"`
}
