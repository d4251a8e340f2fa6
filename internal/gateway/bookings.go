package gateway

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"

    "go.uber.org/zap"

    "github.com/example/meeting-room-web/internal/model"
)

// ListBookings returns every booking known to the backend (GET /bookings).
// Filtering to a single room happens caller-side; the backend exposes no
// per-room listing.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
    var bookings []model.Booking
    if err := c.getJSON(ctx, "list bookings", "/bookings", "", &bookings); err != nil {
        return nil, err
    }
    return bookings, nil
}

// ListParticipants returns the attendees of one booking
// (GET /bookings/{id}/participants).
func (c *Client) ListParticipants(ctx context.Context, bookingID int) ([]model.Participant, error) {
    var parts []model.Participant
    path := fmt.Sprintf("/bookings/%d/participants", bookingID)
    if err := c.getJSON(ctx, "list participants", path, "", &parts); err != nil {
        return nil, err
    }
    return parts, nil
}

// CreateBooking submits a new reservation (POST /bookings) and returns the
// backend's echo of the stored booking.  A 404 or 409 answer means the slot
// overlaps an existing reservation and is reported as ErrConflict wrapped in
// the failure.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
    raw, err := c.do(ctx, "create booking", http.MethodPost, "/bookings", "", req)
    if err != nil {
        var ff *FetchFailure
        if errors.As(err, &ff) && (ff.Status == http.StatusNotFound || ff.Status == http.StatusConflict) {
            ff.Err = ErrConflict
        }
        return nil, err
    }
    var booking model.Booking
    if err := json.Unmarshal(raw, &booking); err != nil {
        return nil, &FetchFailure{Op: "create booking", Err: err}
    }
    return &booking, nil
}

// CancelBooking removes a booking (DELETE /bookings/{id}).  Unlike every
// other operation it reports plain success or failure: true on a 2xx answer,
// false otherwise, with the underlying error logged and swallowed.  Callers
// must check the boolean.
func (c *Client) CancelBooking(ctx context.Context, bookingID int) bool {
    path := fmt.Sprintf("/bookings/%d", bookingID)
    if _, err := c.do(ctx, "cancel booking", http.MethodDelete, path, "", nil); err != nil {
        c.log.Warn("cancel booking failed", zap.Int("booking_id", bookingID), zap.Error(err))
        return false
    }
    return true
}
