package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
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
    "github.com/example/meeting-room-web/internal/session"
)

// RoomHandler serves the room list and the room detail page with its
// reservation form.
type RoomHandler struct {
    Gateway  *gateway.Client
    Sessions *session.Manager
    Events   *service.Publisher
    Loc      *time.Location
    Log      *zap.Logger
}

func NewRoomHandler(gw *gateway.Client, sm *session.Manager, events *service.Publisher, loc *time.Location, log *zap.Logger) *RoomHandler {
    if loc == nil {
        loc = time.UTC
    }
    if log == nil {
        log = zap.NewNop()
    }
    return &RoomHandler{Gateway: gw, Sessions: sm, Events: events, Loc: loc, Log: log}
}

type roomListPage struct {
    Page
    Rooms []model.Room
}

// List renders the room catalogue.  A backend failure degrades to an empty
// list rather than an error page.
func (h *RoomHandler) List(c echo.Context) error {
    rooms, err := h.Gateway.ListRooms(c.Request().Context())
    if err != nil {
        h.Log.Warn("load rooms failed", zap.Error(err))
    }
    return c.Render(http.StatusOK, "rooms.html", roomListPage{
        Page:  pageFor(c, h.Sessions),
        Rooms: rooms,
    })
}

type slotView struct {
    Start string
    End   string
}

type reserveForm struct {
    Date       string
    StartTime  string
    EndTime    string
    GuestEmail string
    Selected   map[int]bool
}

type roomDetailPage struct {
    Page
    RoomID      int
    Room        *model.Room
    Slots       []slotView
    Options     []model.User
    IsGuestRoom bool
    Error       string
    Form        reserveForm
}

// loadDetail fans out the three independent reads the detail page needs and
// waits for all of them.  Each failure is logged and leaves its slice empty;
// the page stays usable with whatever arrived.
func (h *RoomHandler) loadDetail(ctx context.Context, roomID int) roomDetailPage {
    var (
        room     *model.Room
        bookings []model.Booking
        users    []model.User
        wg       sync.WaitGroup
    )
    wg.Add(3)
    go func() {
        defer wg.Done()
        r, err := h.Gateway.GetRoom(ctx, roomID)
        if err != nil {
            h.Log.Warn("load room failed", zap.Int("room_id", roomID), zap.Error(err))
            return
        }
        room = r
    }()
    go func() {
        defer wg.Done()
        all, err := h.Gateway.ListBookings(ctx)
        if err != nil {
            h.Log.Warn("load bookings failed", zap.Int("room_id", roomID), zap.Error(err))
            return
        }
        bookings = all
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
    wg.Wait()

    page := roomDetailPage{
        RoomID: roomID,
        Room:   room,
        Form:   reserveForm{Selected: map[int]bool{}},
    }
    for _, b := range bookings {
        if b.RoomID != roomID {
            continue
        }
        start, err1 := booking.ParseStamp(b.StartDatetime, h.Loc)
        end, err2 := booking.ParseStamp(b.EndDatetime, h.Loc)
        if err1 != nil || err2 != nil {
            h.Log.Warn("skip booking with bad timestamps", zap.Int("booking_id", b.BookingID))
            continue
        }
        page.Slots = append(page.Slots, slotView{
            Start: booking.FormatLocal(start, h.Loc),
            End:   booking.FormatLocal(end, h.Loc),
        })
    }
    if room != nil {
        page.IsGuestRoom = room.RoomType == model.RoomTypeGuestRoom
    }
    // Executive rooms only admit executive participants, so the picker hides
    // everyone else.
    for _, u := range users {
        if room != nil && room.RoomType == model.RoomTypeExecutive && !u.IsExecutive {
            continue
        }
        page.Options = append(page.Options, u)
    }
    return page
}

// Detail renders the room detail page with the reservation form.
func (h *RoomHandler) Detail(c echo.Context) error {
    roomID, err := strconv.Atoi(c.Param("id"))
    if err != nil {
        return c.Redirect(http.StatusSeeOther, "/rooms")
    }
    page := h.loadDetail(c.Request().Context(), roomID)
    page.Page = pageFor(c, h.Sessions)
    return c.Render(http.StatusOK, "room_detail.html", page)
}

// Reserve handles the reservation form.  The flow is: resolve the current
// user from the session token, validate the proposal, submit it to the
// backend, then redirect to the confirmation page.  Any failure re-renders
// the form with an inline message and makes no backend write.
func (h *RoomHandler) Reserve(c echo.Context) error {
    roomID, err := strconv.Atoi(c.Param("id"))
    if err != nil {
        return c.Redirect(http.StatusSeeOther, "/rooms")
    }
    ctx := c.Request().Context()

    form := reserveForm{
        Date:       c.FormValue("date"),
        StartTime:  c.FormValue("start_time"),
        EndTime:    c.FormValue("end_time"),
        GuestEmail: c.FormValue("guest_email"),
        Selected:   map[int]bool{},
    }
    params, err := c.FormParams()
    if err != nil {
        return c.Redirect(http.StatusSeeOther, "/rooms")
    }
    var participantIDs []int
    for _, raw := range params["participants"] {
        id, err := strconv.Atoi(raw)
        if err != nil {
            continue
        }
        participantIDs = append(participantIDs, id)
        form.Selected[id] = true
    }

    rerender := func(msg string) error {
        page := h.loadDetail(ctx, roomID)
        page.Page = pageFor(c, h.Sessions)
        page.Error = msg
        page.Form = form
        return c.Render(http.StatusOK, "room_detail.html", page)
    }

    s := session.FromContext(c)
    if s == nil {
        return c.Redirect(http.StatusSeeOther, "/login")
    }
    reserver, err := h.Gateway.CurrentUser(ctx, s.Token)
    if err != nil {
        h.Log.Warn("current user lookup failed", zap.Error(err))
        return rerender("Please log in again.")
    }

    start, err1 := booking.ComposeLocal(form.Date, form.StartTime, h.Loc)
    end, err2 := booking.ComposeLocal(form.Date, form.EndTime, h.Loc)
    if err1 != nil || err2 != nil {
        return rerender("Enter a valid date and time.")
    }

    room, err := h.Gateway.GetRoom(ctx, roomID)
    if err != nil {
        h.Log.Warn("load room failed", zap.Int("room_id", roomID), zap.Error(err))
        room = nil
    }
    if verr := booking.Validate(room, reserver, start, end, len(participantIDs), form.GuestEmail); verr != nil {
        return rerender(verr.Message)
    }

    req := model.BookingRequest{
        UserID:        reserver.UserID,
        RoomID:        roomID,
        BookedNum:     len(participantIDs),
        StartDatetime: form.Date + "T" + form.StartTime,
        EndDatetime:   form.Date + "T" + form.EndTime,
    }
    for _, id := range participantIDs {
        uid := id
        req.Participants = append(req.Participants, model.ParticipantRequest{UserID: &uid})
    }
    if room != nil && room.RoomType == model.RoomTypeGuestRoom && form.GuestEmail != "" {
        email := form.GuestEmail
        req.Participants = append(req.Participants, model.ParticipantRequest{IsGuest: true, GuestEmail: &email})
    }

    created, err := h.Gateway.CreateBooking(ctx, req)
    if err != nil {
        if errors.Is(err, gateway.ErrConflict) {
            return rerender("That time slot is already reserved.")
        }
        h.Log.Warn("create booking failed", zap.Int("room_id", roomID), zap.Error(err))
        return rerender("Reservation failed.")
    }

    event := queue.BookingCreatedEvent{
        EventID:   uuid.NewString(),
        BookingID: created.BookingID,
        UserID:    reserver.UserID,
        RoomID:    roomID,
        StartsAt:  req.StartDatetime,
        EndsAt:    req.EndDatetime,
        BookedNum: req.BookedNum,
        CreatedAt: time.Now().UTC().Format(time.RFC3339),
    }
    if room != nil {
        event.RoomName = room.RoomName
    }
    _ = h.Events.BookingCreated(ctx, event)

    return c.Redirect(http.StatusSeeOther, "/reserved")
}
