package booking // package booking holds the pure reservation business rules

import (
    "time"

    "github.com/example/meeting-room-web/internal/model"
)

// Daily operating window.  Reservations must start no earlier than opening
// and end no later than closing, evaluated in the local zone of the booking
// date.
const (
    OpeningHour = 9
    ClosingHour = 20
)

// Code identifies which validation rule a proposed reservation violated.
type Code string

const (
    CodeRoomMissing             Code = "room_missing"
    CodeTimeOrderInvalid        Code = "time_order_invalid"
    CodeOutsideOperatingHours   Code = "outside_operating_hours"
    CodeCapacityExceeded        Code = "capacity_exceeded"
    CodeExecutiveRoomRestricted Code = "executive_room_restricted"
)

// ValidationError reports the first rule a proposed reservation violated.
// Message is suitable for inline display next to the form.
type ValidationError struct {
    Code    Code
    Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

func fail(code Code, msg string) *ValidationError {
    return &ValidationError{Code: code, Message: msg}
}

// Validate checks a proposed reservation against the business rules and
// returns nil when it may be submitted.  Checks run in a fixed order and the
// first failure wins; no errors are aggregated.  The checks are advisory
// only: the backend re-validates every booking (in particular the overlap
// with existing reservations, which is not checked here at all) and remains
// the authority when two clients race for the same slot.
//
// participantCount is the number of selected registered users; a non-empty
// guestEmail counts as one more seat.  The operating-hours window is
// evaluated in the location carried by start, which the handlers compose in
// the configured display zone.
func Validate(room *model.Room, reserver *model.User, start, end time.Time, participantCount int, guestEmail string) *ValidationError {
    if room == nil {
        return fail(CodeRoomMissing, "Room details are not available.")
    }
    if !start.Before(end) {
        return fail(CodeTimeOrderInvalid, "The start time must be before the end time.")
    }
    y, m, d := start.Date()
    opening := time.Date(y, m, d, OpeningHour, 0, 0, 0, start.Location())
    closing := time.Date(y, m, d, ClosingHour, 0, 0, 0, start.Location())
    if start.Before(opening) || end.After(closing) {
        return fail(CodeOutsideOperatingHours, "Rooms are available from 09:00 to 20:00.")
    }
    seats := participantCount
    if guestEmail != "" {
        seats++
    }
    if seats > room.Capacity {
        return fail(CodeCapacityExceeded, "The number of participants exceeds the room capacity.")
    }
    if room.RoomType == model.RoomTypeExecutive && (reserver == nil || !reserver.IsExecutive) {
        return fail(CodeExecutiveRoomRestricted, "This room can only be reserved by executives.")
    }
    return nil
}
