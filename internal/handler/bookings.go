package handler

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/example/meeting-room-web/internal/booking"
    "github.com/example/meeting-room-web/internal/gateway"
    "github.com/example/meeting-room-web/internal/model"
    "github.com/example/meeting-room-web/internal/queue"
    "github.com/example/meeting-room-web/internal/service"
)

// BookingHandler serves the reservation list with its cancel/delete actions
// and the post-reservation confirmation page.
type BookingHandler struct {
    Gateway *gateway.Client
    Events  *service.Publisher
    Loc     *time.Location
    Log     *zap.Logger
    Now     func() time.Time // injectable for the eligibility rules
}

func NewBookingHandler(gw *gateway.Client, events *service.Publisher, loc *time.Location, log *zap.Logger) *BookingHandler {
    if loc == nil {
        loc = time.UTC
    }
    if log == nil {
        log = zap.NewNop()
    }
    return &BookingHandler{Gateway: gw, Events: events, Loc: loc, Log: log, Now: time.Now}
}

// bookingItem is one row of the reservation list with everything joined in
// for display.
type bookingItem struct {
    BookingID    int
    UserName     string
    RoomName     string
    Start        string
    End          string
    Participants string
    CanCancel    bool
    CanDelete    bool
}

type bookingListPage struct {
    Page
    Items []bookingItem
    Error string
}

// buildList fans out the three collection reads, then joins user and room
// names onto each booking and resolves its participant display names.  Read
// failures degrade the affected slice to empty; the page always renders.
func (h *BookingHandler) buildList(ctx context.Context) []bookingItem {
    var (
        bookings []model.Booking
        users    []model.User
        rooms    []model.Room
        wg       sync.WaitGroup
    )
    wg.Add(3)
    go func() {
        defer wg.Done()
        bs, err := h.Gateway.ListBookings(ctx)
        if err != nil {
            h.Log.Warn("load bookings failed", zap.Error(err))
            return
        }
        bookings = bs
    }()
    go func() {
        defer wg.Done()
        us, err := h.Gateway.ListUsers(ctx)
        if err != nil {
            h.Log.Warn("load users failed", zap.Error(err))
            return
        }
        users = us
    }()
    go func() {
        defer wg.Done()
        rs, err := h.Gateway.ListRooms(ctx)
        if err != nil {
            h.Log.Warn("load rooms failed", zap.Error(err))
            return
        }
        rooms = rs
    }()
    wg.Wait()

    usersByID := make(map[int]model.User, len(users))
    for _, u := range users {
        usersByID[u.UserID] = u
    }
    roomsByID := make(map[int]model.Room, len(rooms))
    for _, r := range rooms {
        roomsByID[r.RoomID] = r
    }

    now := h.Now()
    items := make([]bookingItem, 0, len(bookings))
    for _, b := range bookings {
        item := bookingItem{
            BookingID:    b.BookingID,
            UserName:     "unknown",
            RoomName:     "unknown",
            Start:        b.StartDatetime,
            End:          b.EndDatetime,
            Participants: "none",
        }
        if u, ok := usersByID[b.UserID]; ok {
            item.UserName = u.UserName
        }
        if r, ok := roomsByID[b.RoomID]; ok {
            item.RoomName = r.RoomName
        }
        start, err1 := booking.ParseStamp(b.StartDatetime, h.Loc)
        end, err2 := booking.ParseStamp(b.EndDatetime, h.Loc)
        if err1 == nil && err2 == nil {
            item.Start = booking.FormatLocal(start, h.Loc)
            item.End = booking.FormatLocal(end, h.Loc)
            item.CanCancel = booking.CanCancel(now, start)
            item.CanDelete = booking.CanDelete(now, end)
        } else {
            h.Log.Warn("booking with bad timestamps", zap.Int("booking_id", b.BookingID))
        }
        if names := h.participantNames(ctx, b.BookingID, usersByID); len(names) > 0 {
            item.Participants = strings.Join(names, ", ")
        }
        items = append(items, item)
    }
    return items
}

// participantNames resolves the display names of a booking's attendees from
// the already-fetched user list.  Guests, and registered ids that no longer
// resolve, show up under the "guest" label.
func (h *BookingHandler) participantNames(ctx context.Context, bookingID int, usersByID map[int]model.User) []string {
    parts, err := h.Gateway.ListParticipants(ctx, bookingID)
    if err != nil {
        h.Log.Warn("load participants failed", zap.Int("booking_id", bookingID), zap.Error(err))
        return nil
    }
    names := make([]string, 0, len(parts))
    for _, p := range parts {
        name := "guest"
        if p.UserID != nil {
            if u, ok := usersByID[*p.UserID]; ok {
                name = u.UserName
            }
        }
        names = append(names, name)
    }
    return names
}

// List renders the reservation list.  The route guard has already run, so
// the page is always in the logged-in state.
func (h *BookingHandler) List(c echo.Context) error {
    return c.Render(http.StatusOK, "bookings.html", bookingListPage{
        Page:  Page{LoggedIn: true},
        Items: h.buildList(c.Request().Context()),
    })
}

// Reserved renders the confirmation page shown after a successful
// reservation; it sends the visitor back to the list after a short pause.
func (h *BookingHandler) Reserved(c echo.Context) error {
    return c.Render(http.StatusOK, "reserved.html", bookingListPage{Page: Page{LoggedIn: true}})
}

// Cancel removes an upcoming reservation.  Eligibility is enforced here as
// well as in the rendering, since the form can be submitted stale: the
// booking must still start at least 30 minutes from now.
func (h *BookingHandler) Cancel(c echo.Context) error {
    return h.remove(c, "cancel")
}

// Delete removes a reservation whose end time has passed.
func (h *BookingHandler) Delete(c echo.Context) error {
    return h.remove(c, "delete")
}

// remove implements both actions; they differ only in the eligibility rule
// and share the backend's single DELETE operation.
func (h *BookingHandler) remove(c echo.Context, reason string) error {
    bookingID, err := strconv.Atoi(c.Param("id"))
    if err != nil {
        return c.Redirect(http.StatusSeeOther, "/")
    }
    ctx := c.Request().Context()

    rerender := func(msg string) error {
        return c.Render(http.StatusOK, "bookings.html", bookingListPage{
            Page:  Page{LoggedIn: true},
            Items: h.buildList(ctx),
            Error: msg,
        })
    }

    bookings, err := h.Gateway.ListBookings(ctx)
    if err != nil {
        h.Log.Warn("load bookings failed", zap.Error(err))
        return rerender("Could not load the reservation.")
    }
    var target *model.Booking
    for i := range bookings {
        if bookings[i].BookingID == bookingID {
            target = &bookings[i]
            break
        }
    }
    if target == nil {
        return c.Redirect(http.StatusSeeOther, "/")
    }

    now := h.Now()
    switch reason {
    case "cancel":
        start, err := booking.ParseStamp(target.StartDatetime, h.Loc)
        if err != nil || !booking.CanCancel(now, start) {
            return rerender("Reservations cannot be cancelled within 30 minutes of the start time.")
        }
    case "delete":
        end, err := booking.ParseStamp(target.EndDatetime, h.Loc)
        if err != nil || !booking.CanDelete(now, end) {
            return rerender("Reservations can only be deleted after they have ended.")
        }
    }

    if ok := h.Gateway.CancelBooking(ctx, bookingID); !ok {
        // The gateway has already logged the cause; no success state is
        // surfaced and the list is not reloaded from a redirect.
        return rerender("Failed to remove the reservation.")
    }

    _ = h.Events.BookingCancelled(ctx, queue.BookingCancelledEvent{
        EventID:     uuid.NewString(),
        BookingID:   bookingID,
        Reason:      reason,
        CancelledAt: now.UTC().Format(time.RFC3339),
    })
    return c.Redirect(http.StatusSeeOther, "/")
}
