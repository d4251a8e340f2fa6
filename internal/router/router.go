package router // router defines how HTTP routes are registered for the app

import (
    "github.com/labstack/echo/v4"

    "github.com/example/meeting-room-web/internal/handler"
    "github.com/example/meeting-room-web/internal/session"
)

// Register wires every page route.  Authentication is enforced once here,
// on the protected group, instead of inside individual pages: the room
// catalogue and the login page are public, everything that reads the
// session or writes through the gateway sits behind RequireSession.
func Register(e *echo.Echo, auth *handler.AuthHandler, rooms *handler.RoomHandler, bookings *handler.BookingHandler, sessions *session.Manager) {
    e.GET("/healthz", handler.Health)

    e.GET("/login", auth.LoginForm)
    e.POST("/login", auth.Login)
    e.GET("/logout", auth.Logout)

    e.GET("/rooms", rooms.List)

    g := e.Group("", sessions.RequireSession)
    g.GET("/", bookings.List)
    g.GET("/reserved", bookings.Reserved)
    g.POST("/bookings/:id/cancel", bookings.Cancel)
    g.POST("/bookings/:id/delete", bookings.Delete)
    g.GET("/rooms/:id", rooms.Detail)
    g.POST("/rooms/:id/reserve", rooms.Reserve)
}
