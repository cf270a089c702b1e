package careers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Audit event kinds published after each submission attempt. The
// worker-service persists them for operator visibility; publishing is
// best-effort and never affects the user-facing outcome.
const (
	EventApplicationReceived = "application_received"
	EventApplicationDegraded = "application_degraded"
	EventApplicationFailed   = "application_failed"
	EventContactReceived     = "contact_received"
	EventContactFailed       = "contact_failed"
)

// SubmissionEvent is the audit record published to the message broker
type SubmissionEvent struct {
	EventID    string            `json:"event_id"`
	Kind       string            `json:"kind"`
	OccurredAt time.Time         `json:"occurred_at"`
	Detail     map[string]string `json:"detail,omitempty"`
}

// EventPublisher publishes audit events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, body []byte, contentType string) error
}

// publishEvent emits an audit event without letting broker trouble
// leak into the submission outcome.
func publishEvent(ctx context.Context, publisher EventPublisher, logger *slog.Logger, kind string, now time.Time, detail map[string]string) {
	if publisher == nil {
		return
	}

	event := SubmissionEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		OccurredAt: now,
		Detail:     detail,
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal submission event",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := publisher.PublishWithRetry(ctx, body, "application/json"); err != nil {
		logger.Error("Failed to publish submission event",
			slog.String("kind", kind),
			slog.String("event_id", event.EventID),
			slog.String("error", err.Error()),
		)
	}
}
