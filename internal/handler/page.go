package handler

import (
    "github.com/labstack/echo/v4"

    "github.com/example/meeting-room-web/internal/session"
)

// Page carries the template state shared by every page (the header needs to
// know whether to offer the logout link).
type Page struct {
    LoggedIn bool
}

// pageFor derives the shared page state from the request's session cookie.
func pageFor(c echo.Context, m *session.Manager) Page {
    if m == nil {
        return Page{}
    }
    _, err := m.Read(c)
    return Page{LoggedIn: err == nil}
}
