// Package service provides the booking event publisher.  Errors are logged
// and returned so callers can ignore failures without interrupting the page
// flow; publishing never blocks a reservation.
package service

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    "github.com/example/meeting-room-web/internal/queue"
)

// Publisher sends booking lifecycle events to RabbitMQ.  With an empty URL
// every publish is a no-op, so deployments without a broker need no special
// casing.
type Publisher struct {
    url string
    log *zap.Logger
}

// NewPublisher builds a Publisher for the broker at url.  An empty url
// disables publishing.
func NewPublisher(url string, log *zap.Logger) *Publisher {
    if log == nil {
        log = zap.NewNop()
    }
    return &Publisher{url: url, log: log}
}

// BookingCreated publishes event to the booking.created queue.
func (p *Publisher) BookingCreated(ctx context.Context, event queue.BookingCreatedEvent) error {
    return p.publish(ctx, queue.QueueBookingCreated, event)
}

// BookingCancelled publishes event to the booking.cancelled queue.
func (p *Publisher) BookingCancelled(ctx context.Context, event queue.BookingCancelledEvent) error {
    return p.publish(ctx, queue.QueueBookingCancelled, event)
}

// publish dials the broker, declares the durable queue (idempotent) and
// sends one persistent JSON message.  A short-lived connection per event is
// deliberate: pages publish at human frequency, not in a hot loop.
func (p *Publisher) publish(ctx context.Context, name string, event any) error {
    if p.url == "" {
        return nil
    }
    conn, err := amqp.Dial(p.url)
    if err != nil {
        p.log.Warn("rabbitmq dial failed", zap.Error(err))
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.log.Warn("rabbitmq channel open failed", zap.Error(err))
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        name,  // name
        true,  // durable
        false, // autoDelete
        false, // exclusive
        false, // noWait
        nil,   // args
    ); err != nil {
        p.log.Warn("rabbitmq queue declare failed", zap.String("queue", name), zap.Error(err))
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        p.log.Warn("rabbitmq marshal event failed", zap.Error(err))
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx,
        "",    // default exchange
        name,  // routing key = queue name
        false, // mandatory
        false, // immediate
        pub,
    ); err != nil {
        p.log.Warn("rabbitmq publish failed", zap.String("queue", name), zap.Error(err))
        return err
    }
    return nil
}
