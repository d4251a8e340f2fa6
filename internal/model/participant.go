package model

// Participant is an attendee attached to a booking.  Either a registered
// user reference (UserID set, IsGuest false) or an external guest (UserID
// nil, IsGuest true, GuestEmail required).
//
// Fields:
//  ParticipantID – backend identifier.
//  UserID        – registered user, nil for guests.
//  IsGuest       – guest marker.
//  GuestEmail    – contact address, only meaningful for guests.
type Participant struct {
    ParticipantID int     `json:"participant_id"`
    UserID        *int    `json:"user_id"`
    IsGuest       bool    `json:"is_guest"`
    GuestEmail    *string `json:"guest_email"`
}

// ParticipantRequest is the participant shape sent inside a BookingRequest.
type ParticipantRequest struct {
    UserID     *int    `json:"user_id"`
    IsGuest    bool    `json:"is_guest"`
    GuestEmail *string `json:"guest_email"`
}
