package handler_test

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strconv"
    "strings"
    "sync"
    "testing"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/example/meeting-room-web/internal/gateway"
    "github.com/example/meeting-room-web/internal/handler"
    "github.com/example/meeting-room-web/internal/model"
    "github.com/example/meeting-room-web/internal/router"
    "github.com/example/meeting-room-web/internal/service"
    "github.com/example/meeting-room-web/internal/session"
    "github.com/example/meeting-room-web/internal/view"
)

// fakeBackend implements the backend REST contract in-process and records
// the write calls the pages make.
type fakeBackend struct {
    mu           sync.Mutex
    rooms        []model.Room
    users        []model.User
    bookings     []model.Booking
    participants map[int][]model.Participant

    token string     // bearer accepted by /users/me
    me    model.User // account behind the token

    loginStatus  int // 0 issues the token, anything else is returned as-is
    createStatus int // 0 accepts, anything else is returned as-is
    createCalls  int
    lastCreate   model.BookingRequest

    cancelStatus int // 0 answers 204
    cancelCalls  []int
}

func (f *fakeBackend) handler() http.Handler {
    // Method+wildcard ServeMux patterns need Go 1.22; route by hand so the
    // tests also build on Go 1.21.
    mux := http.NewServeMux()
    writeJSON := func(w http.ResponseWriter, v any) {
        w.Header().Set("Content-Type", "application/json")
        _ = json.NewEncoder(w).Encode(v)
    }
    requireMethod := func(w http.ResponseWriter, r *http.Request, method string) bool {
        if r.Method != method {
            w.WriteHeader(http.StatusMethodNotAllowed)
            return false
        }
        return true
    }
    mux.HandleFunc("/rooms", func(w http.ResponseWriter, r *http.Request) {
        if !requireMethod(w, r, http.MethodGet) {
            return
        }
        writeJSON(w, f.rooms)
    })
    mux.HandleFunc("/rooms/", func(w http.ResponseWriter, r *http.Request) {
        if !requireMethod(w, r, http.MethodGet) {
            return
        }
        id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/rooms/"))
        for _, room := range f.rooms {
            if room.RoomID == id {
                writeJSON(w, room)
                return
            }
        }
        w.WriteHeader(http.StatusNotFound)
    })
    mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
        if !requireMethod(w, r, http.MethodGet) {
            return
        }
        writeJSON(w, f.users)
    })
    mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
        if !requireMethod(w, r, http.MethodGet) {
            return
        }
        if r.Header.Get("Authorization") != "Bearer "+f.token {
            w.WriteHeader(http.StatusUnauthorized)
            return
        }
        writeJSON(w, f.me)
    })
    mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
        switch r.Method {
        case http.MethodGet:
            f.mu.Lock()
            defer f.mu.Unlock()
            writeJSON(w, f.bookings)
        case http.MethodPost:
            f.mu.Lock()
            defer f.mu.Unlock()
            f.createCalls++
            _ = json.NewDecoder(r.Body).Decode(&f.lastCreate)
            if f.createStatus != 0 {
                w.WriteHeader(f.createStatus)
                return
            }
            writeJSON(w, model.Booking{
                BookingID:     100 + f.createCalls,
                UserID:        f.lastCreate.UserID,
                RoomID:        f.lastCreate.RoomID,
                BookedNum:     f.lastCreate.BookedNum,
                StartDatetime: f.lastCreate.StartDatetime,
                EndDatetime:   f.lastCreate.EndDatetime,
            })
        default:
            w.WriteHeader(http.StatusMethodNotAllowed)
        }
    })
    mux.HandleFunc("/bookings/", func(w http.ResponseWriter, r *http.Request) {
        rest := strings.TrimPrefix(r.URL.Path, "/bookings/")
        switch {
        case r.Method == http.MethodGet && strings.HasSuffix(rest, "/participants"):
            id, _ := strconv.Atoi(strings.TrimSuffix(rest, "/participants"))
            parts := f.participants[id]
            if parts == nil {
                parts = []model.Participant{}
            }
            writeJSON(w, parts)
        case r.Method == http.MethodDelete && !strings.Contains(rest, "/"):
            f.mu.Lock()
            defer f.mu.Unlock()
            id, _ := strconv.Atoi(rest)
            f.cancelCalls = append(f.cancelCalls, id)
            if f.cancelStatus != 0 {
                w.WriteHeader(f.cancelStatus)
                return
            }
            w.WriteHeader(http.StatusNoContent)
        default:
            w.WriteHeader(http.StatusNotFound)
        }
    })
    mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
        if !requireMethod(w, r, http.MethodPost) {
            return
        }
        if f.loginStatus != 0 {
            w.WriteHeader(f.loginStatus)
            return
        }
        writeJSON(w, map[string]string{"token": f.token})
    })
    return mux
}

// testApp is the fully wired application under test, backed by a fake
// backend and a fixed clock.
type testApp struct {
    e        *echo.Echo
    sessions *session.Manager
    bookings *handler.BookingHandler
}

var testNow = time.Date(2030, time.March, 12, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, f *fakeBackend) *testApp {
    t.Helper()
    srv := httptest.NewServer(f.handler())
    t.Cleanup(srv.Close)
    return newAppAt(t, srv.URL)
}

// newAppAt wires the full application against a backend base URL, which
// need not be reachable.
func newAppAt(t *testing.T, baseURL string) *testApp {
    t.Helper()

    gw := gateway.New(baseURL, 2*time.Second, nil, nil)
    sessions := session.NewManager("test-secret", time.Hour)
    events := service.NewPublisher("", nil) // no broker in tests

    renderer, err := view.NewRenderer()
    if err != nil {
        t.Fatalf("renderer: %v", err)
    }

    e := echo.New()
    e.Renderer = renderer

    auth := handler.NewAuthHandler(gw, sessions, nil)
    rooms := handler.NewRoomHandler(gw, sessions, events, time.UTC, nil)
    bookings := handler.NewBookingHandler(gw, events, time.UTC, nil)
    bookings.Now = func() time.Time { return testNow }
    router.Register(e, auth, rooms, bookings, sessions)

    return &testApp{e: e, sessions: sessions, bookings: bookings}
}

// loginCookie mints a session cookie the way the login handler would.
func loginCookie(t *testing.T, m *session.Manager, token string) *http.Cookie {
    t.Helper()
    e := echo.New()
    rec := httptest.NewRecorder()
    c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
    if err := m.Issue(c, token); err != nil {
        t.Fatalf("issue session: %v", err)
    }
    return rec.Result().Cookies()[0]
}
