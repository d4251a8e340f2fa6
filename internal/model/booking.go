package model

// Booking records a confirmed room reservation as reported by the backend.
// Start and end are carried as the backend's datetime strings; the wire
// format gives no timezone guarantee, so parsing and comparison go through
// the booking package which applies the configured zone policy.
//
// Fields:
//  BookingID     – backend identifier.
//  UserID        – user who made the reservation.
//  RoomID        – reserved room.
//  BookedNum     – number of registered participants booked.
//  StartDatetime – reservation start, backend datetime string.
//  EndDatetime   – reservation end, backend datetime string.
type Booking struct {
    BookingID     int    `json:"booking_id"`
    UserID        int    `json:"user_id"`
    RoomID        int    `json:"room_id"`
    BookedNum     int    `json:"booked_num"`
    StartDatetime string `json:"start_datetime"`
    EndDatetime   string `json:"end_datetime"`
}

// BookingRequest is the payload sent to POST /bookings.  It mirrors Booking
// plus the participant list; the backend echoes the stored Booking back.
type BookingRequest struct {
    UserID        int                  `json:"user_id"`
    RoomID        int                  `json:"room_id"`
    BookedNum     int                  `json:"booked_num"`
    StartDatetime string               `json:"start_datetime"`
    EndDatetime   string               `json:"end_datetime"`
    Participants  []ParticipantRequest `json:"participants"`
}
