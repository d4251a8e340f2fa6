package model

// User represents a registered account on the reservation backend.  The
// front-end only ever holds read-only copies fetched per page load; user
// management lives entirely on the backend.
//
// Fields:
//  UserID      – backend identifier.
//  UserName    – display name shown in participant pickers and lists.
//  IsExecutive – whether the user may reserve executive-only rooms.
type User struct {
    UserID      int    `json:"user_id"`
    UserName    string `json:"user_name"`
    IsExecutive bool   `json:"is_executive"`
}
