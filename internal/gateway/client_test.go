package gateway

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/example/meeting-room-web/internal/model"
)

func testClient(t *testing.T, h http.Handler) *Client {
    t.Helper()
    srv := httptest.NewServer(h)
    t.Cleanup(srv.Close)
    return New(srv.URL, 2*time.Second, nil, nil)
}

func TestListRooms(t *testing.T) {
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path != "/rooms" {
            t.Errorf("unexpected path %s", r.URL.Path)
        }
        _ = json.NewEncoder(w).Encode([]model.Room{
            {RoomID: 1, RoomName: "Alpha", Capacity: 4, RoomType: "standard"},
            {RoomID: 2, RoomName: "Board", Capacity: 8, RoomType: model.RoomTypeExecutive},
        })
    }))
    rooms, err := c.ListRooms(context.Background())
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(rooms) != 2 || rooms[1].RoomType != model.RoomTypeExecutive {
        t.Fatalf("unexpected rooms: %+v", rooms)
    }
}

func TestFetchFailureCarriesOperationAndStatus(t *testing.T) {
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "boom", http.StatusInternalServerError)
    }))
    _, err := c.GetRoom(context.Background(), 7)
    if err == nil {
        t.Fatal("expected error")
    }
    var ff *FetchFailure
    if !errors.As(err, &ff) {
        t.Fatalf("expected FetchFailure, got %T", err)
    }
    if ff.Op != "get room" || ff.Status != http.StatusInternalServerError {
        t.Fatalf("unexpected failure: %+v", ff)
    }
}

func TestFetchFailureOnUnreachableBackend(t *testing.T) {
    c := New("http://127.0.0.1:1", 200*time.Millisecond, nil, nil)
    _, err := c.ListUsers(context.Background())
    var ff *FetchFailure
    if !errors.As(err, &ff) {
        t.Fatalf("expected FetchFailure, got %v", err)
    }
    if ff.Status != 0 || ff.Err == nil {
        t.Fatalf("transport failure should have status 0 and a cause: %+v", ff)
    }
}

func TestCurrentUserSendsBearerToken(t *testing.T) {
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path != "/users/me" {
            t.Errorf("unexpected path %s", r.URL.Path)
        }
        if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
            w.WriteHeader(http.StatusUnauthorized)
            return
        }
        _ = json.NewEncoder(w).Encode(model.User{UserID: 5, UserName: "sato", IsExecutive: true})
    }))
    u, err := c.CurrentUser(context.Background(), "tok-123")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if u.UserID != 5 || !u.IsExecutive {
        t.Fatalf("unexpected user: %+v", u)
    }

    if _, err := c.CurrentUser(context.Background(), "wrong"); err == nil {
        t.Fatal("expected failure for rejected token")
    }
}

func TestLogin(t *testing.T) {
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodPost || r.URL.Path != "/login" {
            t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
        }
        var body struct {
            UserID   int    `json:"user_id"`
            Password string `json:"password"`
        }
        _ = json.NewDecoder(r.Body).Decode(&body)
        if body.UserID != 5 || body.Password != "secret" {
            w.WriteHeader(http.StatusUnauthorized)
            return
        }
        _ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
    }))
    token, err := c.Login(context.Background(), 5, "secret")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if token != "tok-123" {
        t.Fatalf("unexpected token %q", token)
    }

    if _, err := c.Login(context.Background(), 5, "nope"); err == nil {
        t.Fatal("expected failure for bad credentials")
    }
}

func TestCreateBookingMapsConflict(t *testing.T) {
    for _, status := range []int{http.StatusNotFound, http.StatusConflict} {
        c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            w.WriteHeader(status)
        }))
        _, err := c.CreateBooking(context.Background(), model.BookingRequest{RoomID: 1})
        if !errors.Is(err, ErrConflict) {
            t.Fatalf("status %d: expected ErrConflict, got %v", status, err)
        }
    }
}

func TestCreateBookingEchoesBooking(t *testing.T) {
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        var req model.BookingRequest
        _ = json.NewDecoder(r.Body).Decode(&req)
        _ = json.NewEncoder(w).Encode(model.Booking{
            BookingID:     42,
            UserID:        req.UserID,
            RoomID:        req.RoomID,
            BookedNum:     req.BookedNum,
            StartDatetime: req.StartDatetime,
            EndDatetime:   req.EndDatetime,
        })
    }))
    got, err := c.CreateBooking(context.Background(), model.BookingRequest{
        UserID: 5, RoomID: 1, BookedNum: 2,
        StartDatetime: "2030-03-12T10:00", EndDatetime: "2030-03-12T11:00",
    })
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if got.BookingID != 42 || got.RoomID != 1 {
        t.Fatalf("unexpected echo: %+v", got)
    }
}

func TestCancelBookingReturnsBoolean(t *testing.T) {
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodDelete {
            t.Errorf("unexpected method %s", r.Method)
        }
        if r.URL.Path == "/bookings/1" {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        w.WriteHeader(http.StatusNotFound)
    }))
    if !c.CancelBooking(context.Background(), 1) {
        t.Fatal("expected true for 2xx")
    }
    if c.CancelBooking(context.Background(), 2) {
        t.Fatal("expected false for non-2xx")
    }

    down := New("http://127.0.0.1:1", 200*time.Millisecond, nil, nil)
    if down.CancelBooking(context.Background(), 1) {
        t.Fatal("expected false when the request never completes")
    }
}

func TestListParticipants(t *testing.T) {
    guestMail := "visitor@example.com"
    uid := 3
    c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path != "/bookings/9/participants" {
            t.Errorf("unexpected path %s", r.URL.Path)
        }
        _ = json.NewEncoder(w).Encode([]model.Participant{
            {ParticipantID: 1, UserID: &uid},
            {ParticipantID: 2, IsGuest: true, GuestEmail: &guestMail},
        })
    }))
    parts, err := c.ListParticipants(context.Background(), 9)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(parts) != 2 || parts[1].UserID != nil || !parts[1].IsGuest {
        t.Fatalf("unexpected participants: %+v", parts)
    }
}
