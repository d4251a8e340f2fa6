package handler

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/example/meeting-room-web/internal/gateway"
    "github.com/example/meeting-room-web/internal/session"
)

// AuthHandler serves the login and logout pages.  Credential verification
// and token issuance belong to the backend; this handler only forwards the
// form and stores the returned token in the session cookie.
type AuthHandler struct {
    Gateway  *gateway.Client
    Sessions *session.Manager
    Log      *zap.Logger
}

func NewAuthHandler(gw *gateway.Client, sm *session.Manager, log *zap.Logger) *AuthHandler {
    if log == nil {
        log = zap.NewNop()
    }
    return &AuthHandler{Gateway: gw, Sessions: sm, Log: log}
}

type loginPage struct {
    Page
    Error string
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
    return c.Render(http.StatusOK, "login.html", loginPage{Page: pageFor(c, h.Sessions)})
}

// Login handles the credential form.  On success the backend token is
// wrapped into the session cookie and the visitor lands on the room list; on
// failure the form re-renders with a message and nothing is persisted.
func (h *AuthHandler) Login(c echo.Context) error {
    userID, err := strconv.Atoi(strings.TrimSpace(c.FormValue("user_id")))
    password := c.FormValue("password")
    if err != nil || password == "" {
        return c.Render(http.StatusBadRequest, "login.html", loginPage{
            Page:  pageFor(c, h.Sessions),
            Error: "Enter your numeric user ID and password.",
        })
    }
    token, err := h.Gateway.Login(c.Request().Context(), userID, password)
    if err != nil {
        h.Log.Warn("login rejected", zap.Int("user_id", userID), zap.Error(err))
        return c.Render(http.StatusUnauthorized, "login.html", loginPage{
            Page:  pageFor(c, h.Sessions),
            Error: "Login failed. Check your user ID and password.",
        })
    }
    if err := h.Sessions.Issue(c, token); err != nil {
        h.Log.Error("issue session failed", zap.Error(err))
        return c.Render(http.StatusInternalServerError, "login.html", loginPage{
            Page:  pageFor(c, h.Sessions),
            Error: "Login failed. Please try again.",
        })
    }
    return c.Redirect(http.StatusSeeOther, "/rooms")
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
    h.Sessions.Clear(c)
    return c.Redirect(http.StatusSeeOther, "/login")
}
