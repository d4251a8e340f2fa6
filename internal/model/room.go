package model

// Room types with special booking rules.  The set is open: the backend may
// introduce further categories, and anything unrecognised behaves like a
// standard room.
const (
    // RoomTypeExecutive marks rooms reserved for executive users.  Both the
    // reserver and the selectable participants must carry the executive flag.
    RoomTypeExecutive = "executive"
    // RoomTypeGuestRoom marks rooms that may host an external guest
    // identified only by email address.
    RoomTypeGuestRoom = "guest_room"
)

// Room describes a bookable meeting room.  Rooms are immutable from the
// front-end's perspective; the backend owns the catalogue.
//
// Fields:
//  RoomID    – backend identifier.
//  RoomName  – display name.
//  Capacity  – maximum number of participants (>= 1).
//  RoomImage – image file reference for the listing page.
//  RoomType  – category governing access rules (see constants above).
type Room struct {
    RoomID    int    `json:"room_id"`
    RoomName  string `json:"room_name"`
    Capacity  int    `json:"capacity"`
    RoomImage string `json:"room_image"`
    RoomType  string `json:"room_type"`
}
