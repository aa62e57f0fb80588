// Package queue provides the RabbitMQ-backed implementation of the event publisher.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"comfortstay/config"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publisher implements service.EventPublisher using a RabbitMQ queue. The
// channel is guarded by a mutex; amqp channels are not safe for concurrent
// publishing.
type publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger

	mu sync.Mutex
}

// NewPublisher dials RabbitMQ, declares the durable event queue and returns
// a ready publisher. The queue is declared idempotently so publisher and
// worker can start in any order.
func NewPublisher(cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.RabbitMQ == nil {
		return nil, errors.New("rabbitmq config must be provided")
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	if _, err := channel.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to declare event queue")
	}

	return &publisher{
		conn:    conn,
		channel: channel,
		queue:   cfg.RabbitMQ.Queue,
		logger:  logger,
	}, nil
}

// PublishHostelEvent publishes a lifecycle event for async processing.
func (p *publisher) PublishHostelEvent(ctx context.Context, event *service.HostelEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal hostel event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	); err != nil {
		return errors.Wrap(err, "failed to publish hostel event")
	}

	p.logger.LogAttrs(ctx, slog.LevelDebug, "published hostel event",
		slog.String("type", string(event.Type)),
		slog.String("residentId", event.ResidentID),
	)

	return nil
}

// Close releases the channel and connection.
func (p *publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()

		return errors.Wrap(err, "failed to close RabbitMQ channel")
	}

	return p.conn.Close()
}
