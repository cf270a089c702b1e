package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/orangeot/backoffice-api/internal/worker/domain"
)

// setupConsumer sets up RabbitMQ consumer with QoS and returns delivery channel
func (w *Worker) setupConsumer(ctx context.Context) (<-chan amqp.Delivery, error) {
	channel := w.rabbitClient.GetChannel()
	if channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is nil")
	}

	// prefetch_count caps unacknowledged messages per consumer;
	// prefetch_size 0 means no byte limit, global false keeps the
	// limit per-consumer.
	err := channel.Qos(
		w.prefetchCount,
		0,
		false,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	w.logger.Info("RabbitMQ QoS configured",
		slog.Int("prefetch_count", w.prefetchCount),
	)

	// Manual acknowledgment: an event is only acked once it is in
	// Postgres.
	deliveries, err := w.rabbitClient.Consume(w.workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	w.logger.Info("RabbitMQ consumer started",
		slog.String("consumer_tag", w.workerID),
		slog.String("queue", w.queueName),
	)

	return deliveries, nil
}

// startMessageDispatcher listens to RabbitMQ deliveries, validates the
// event envelope and dispatches work to the pool. Malformed messages
// are nacked without requeue so they cannot wedge the queue.
func (w *Worker) startMessageDispatcher(ctx context.Context, deliveries <-chan amqp.Delivery) {
	w.logger.Info("Message dispatcher started",
		slog.String("worker_id", w.workerID),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Message dispatcher stopped - context canceled")
			return

		case delivery, ok := <-deliveries:
			if !ok {
				w.logger.Warn("RabbitMQ delivery channel closed")
				return
			}

			var event domain.AuditEvent
			if err := json.Unmarshal(delivery.Body, &event); err != nil {
				w.logger.Error("Failed to parse event JSON",
					slog.String("error", err.Error()),
					slog.String("body", string(delivery.Body)),
				)
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					w.logger.Error("Failed to NACK malformed message",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if err := validateEvent(&event); err != nil {
				w.logger.Error("Invalid audit event",
					slog.String("event_id", event.EventID),
					slog.String("kind", event.Kind),
					slog.String("error", err.Error()),
				)
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					w.logger.Error("Failed to NACK invalid event",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			msg := &domain.EventMessage{
				Event:       event,
				DeliveryTag: delivery.DeliveryTag,
			}

			select {
			case w.jobsChan <- msg:
				w.logger.Debug("Event dispatched to worker pool",
					slog.String("event_id", event.EventID),
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
				)
			case <-ctx.Done():
				w.logger.Info("Message dispatcher stopped while dispatching event")
				// Requeue so the event is recorded after restart.
				if nackErr := delivery.Nack(false, true); nackErr != nil {
					w.logger.Error("Failed to NACK message on shutdown",
						slog.String("error", nackErr.Error()),
					)
				}
				return
			}
		}
	}
}

// validateEvent checks the envelope fields the table constraints rely on
func validateEvent(event *domain.AuditEvent) error {
	if _, err := uuid.Parse(event.EventID); err != nil {
		return fmt.Errorf("%w: event_id must be a valid UUID", domain.ErrInvalidEvent)
	}
	if event.Kind == "" {
		return fmt.Errorf("%w: kind is required", domain.ErrInvalidEvent)
	}
	if event.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", domain.ErrInvalidEvent)
	}
	return nil
}
