// Package main runs the meeting-room reservation web front-end.
package main

import (
    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "go.uber.org/zap"

    "github.com/example/meeting-room-web/internal/config"
    "github.com/example/meeting-room-web/internal/gateway"
    "github.com/example/meeting-room-web/internal/handler"
    "github.com/example/meeting-room-web/internal/middleware"
    "github.com/example/meeting-room-web/internal/router"
    "github.com/example/meeting-room-web/internal/service"
    "github.com/example/meeting-room-web/internal/session"
    "github.com/example/meeting-room-web/internal/view"
)

func main() {
    _ = godotenv.Load()

    logger := newLogger()
    defer func() { _ = logger.Sync() }()

    cfg := config.Load()
    loc := cfg.Location()

    cacheCfg := config.LoadCacheConfig()
    cache := gateway.NewCache(config.NewRedisClient(), cacheCfg.Enabled, cacheCfg.TTL, cacheCfg.Prefix, logger)
    if cache == nil {
        logger.Info("gateway cache disabled")
    }

    gw := gateway.New(cfg.APIBaseURL, cfg.APITimeout, logger, cache)
    sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
    events := service.NewPublisher(cfg.AMQPURL, logger)

    renderer, err := view.NewRenderer()
    if err != nil {
        logger.Fatal("parse templates", zap.Error(err))
    }

    e := echo.New()
    e.HideBanner = true
    e.Renderer = renderer
    e.Use(middleware.RequestLogger(logger))
    e.Use(echomw.Recover())

    auth := handler.NewAuthHandler(gw, sessions, logger)
    rooms := handler.NewRoomHandler(gw, sessions, events, loc, logger)
    bookings := handler.NewBookingHandler(gw, events, loc, logger)
    router.Register(e, auth, rooms, bookings, sessions)

    addr := ":" + cfg.Port
    logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("api", cfg.APIBaseURL))
    if err := e.Start(addr); err != nil {
        logger.Fatal("server stopped", zap.Error(err))
    }
}

func newLogger() *zap.Logger {
    logger, err := zap.NewProduction()
    if err != nil {
        panic(err)
    }
    return logger
}
