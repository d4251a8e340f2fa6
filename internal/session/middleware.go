package session

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// contextKey is where RequireSession stores the decoded session for handlers.
const contextKey = "session"

// RequireSession is the single route guard for authenticated pages.  It
// decodes the session cookie, stores the result in the request context and
// redirects anonymous visitors to the login page.  Pages never duplicate
// this check themselves.
func (m *Manager) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
    return func(c echo.Context) error {
        s, err := m.Read(c)
        if err != nil {
            return c.Redirect(http.StatusSeeOther, "/login")
        }
        c.Set(contextKey, s)
        return next(c)
    }
}

// FromContext returns the session placed by RequireSession, or nil on
// ungated routes.
func FromContext(c echo.Context) *Session {
    s, _ := c.Get(contextKey).(*Session)
    return s
}
