// Package session keeps the authenticated state of a browser.  The backend
// bearer token obtained at login is wrapped in a signed JWT and stored in an
// HttpOnly cookie; presence of a correctly signed, unexpired cookie counts
// as "logged in".  The token is never validated against the backend here: a
// stale or forged backend token simply makes the first gated API call fail.
package session

import (
    "errors"
    "net/http"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// CookieName is the single piece of persisted client state.
const CookieName = "mrw_session"

// ErrNoSession is returned by Read when the request carries no usable
// session cookie.
var ErrNoSession = errors.New("no active session")

// Session is the decoded per-request authentication state.
type Session struct {
    Token string // opaque backend bearer token
}

// Manager mints, reads and clears session cookies.  It is shared by the
// login/logout handlers and the route guard middleware.
type Manager struct {
    secret []byte
    ttl    time.Duration
}

// NewManager builds a Manager signing cookies with secret.  ttl bounds the
// cookie and the embedded JWT alike.
func NewManager(secret string, ttl time.Duration) *Manager {
    return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the backend token into a session cookie on the response.
// Called exactly once per login.
func (m *Manager) Issue(c echo.Context, token string) error {
    now := time.Now().UTC()
    exp := now.Add(m.ttl)
    claims := jwt.MapClaims{
        "tok": token,
        "exp": exp.Unix(),
        "iat": now.Unix(),
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
    if err != nil {
        return err
    }
    c.SetCookie(&http.Cookie{
        Name:     CookieName,
        Value:    signed,
        Path:     "/",
        Expires:  exp,
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    })
    return nil
}

// Clear expires the session cookie.  Logging out of the backend itself is
// not possible: the backend exposes no token revocation.
func (m *Manager) Clear(c echo.Context) {
    c.SetCookie(&http.Cookie{
        Name:     CookieName,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    })
}

// Read decodes the session cookie on the request.  Missing, malformed,
// tampered and expired cookies all come back as ErrNoSession.
func (m *Manager) Read(c echo.Context) (*Session, error) {
    ck, err := c.Cookie(CookieName)
    if err != nil || ck.Value == "" {
        return nil, ErrNoSession
    }
    tok, err := jwt.Parse(ck.Value, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrNoSession
        }
        return m.secret, nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrNoSession
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return nil, ErrNoSession
    }
    backendToken, ok := claims["tok"].(string)
    if !ok || backendToken == "" {
        return nil, ErrNoSession
    }
    return &Session{Token: backendToken}, nil
}
