// Package worker contains the queue consumer delivery. It drains hostel
// lifecycle events published by the API and fans them out to email and
// in-app notifications.
package worker

import (
	"context"
	"log/slog"
	"time"

	"comfortstay/config"
	"comfortstay/internal/delivery"
	"comfortstay/internal/delivery/worker/handler"
	"comfortstay/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	// prefetchCount bounds unacked messages per consumer.
	prefetchCount = 8

	// reconnectDelay is the pause between broker reconnect attempts.
	reconnectDelay = 5 * time.Second
)

// ServerParams defines the dependencies for the worker server.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	EventHandler *handler.EventHandler
}

type amqpWorker struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler *handler.EventHandler

	stop chan struct{}
}

// NewServer creates the queue consumer delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Config.RabbitMQ == nil {
		return nil, errors.New("rabbitmq config must be provided")
	}

	worker := &amqpWorker{
		cfg:     params.Config,
		logger:  params.Logger,
		handler: params.EventHandler,
		stop:    make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: worker.shutdown,
	})

	return worker, nil
}

// Serve consumes the event queue until shutdown, reconnecting with a fixed
// delay when the broker connection drops.
func (w *amqpWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting event worker", slog.String("queue", w.cfg.RabbitMQ.Queue))

	for {
		if err := w.consume(ctx); err != nil {
			w.logger.Error("Event consumer stopped", slog.Any("error", err))
		}

		select {
		case <-w.stop:
			return nil
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

// consume runs one connection's consume loop. It returns nil on orderly
// shutdown and an error when the connection breaks.
func (w *amqpWorker) consume(ctx context.Context) error {
	conn, err := amqp.Dial(w.cfg.RabbitMQ.URL)
	if err != nil {
		return errors.Wrap(err, "failed to connect to RabbitMQ")
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open RabbitMQ channel")
	}
	defer channel.Close()

	// Same idempotent declaration as the publisher, so either side may start first.
	if _, err := channel.QueueDeclare(
		w.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return errors.Wrap(err, "failed to declare event queue")
	}

	if err := channel.Qos(prefetchCount, 0, false); err != nil {
		return errors.Wrap(err, "failed to set channel QoS")
	}

	deliveries, err := channel.Consume(
		w.cfg.RabbitMQ.Queue,
		"",    // consumer tag, broker-generated
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "failed to start consuming")
	}

	for {
		select {
		case <-w.stop:
			return nil
		case <-ctx.Done():
			return nil
		case message, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			w.process(ctx, &message)
		}
	}
}

// process handles one message and decides its acknowledgement. Malformed
// payloads are dropped; everything else is acked because notification side
// effects are best effort and must not loop forever.
func (w *amqpWorker) process(ctx context.Context, message *amqp.Delivery) {
	err := w.handler.Handle(ctx, message.Body)
	switch {
	case err == nil:
		if ackErr := message.Ack(false); ackErr != nil {
			w.logger.Error("Failed to ack message", slog.Any("error", ackErr))
		}
	case errors.Is(err, handler.ErrBadEvent):
		w.logger.Warn("Dropping malformed event", slog.Any("error", err))
		if nackErr := message.Nack(false, false); nackErr != nil {
			w.logger.Error("Failed to nack message", slog.Any("error", nackErr))
		}
	default:
		// Requeue once on transient failures (e.g. database hiccup); a
		// redelivered message that fails again is dropped.
		requeue := !message.Redelivered
		w.logger.Error("Failed to process event",
			slog.Bool("requeue", requeue),
			slog.Any("error", err),
		)
		if nackErr := message.Nack(false, requeue); nackErr != nil {
			w.logger.Error("Failed to nack message", slog.Any("error", nackErr))
		}
	}
}

func (w *amqpWorker) shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down event worker")
	close(w.stop)

	return nil
}
