package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/orangeot/backoffice-api/internal/worker/domain"
)

// processEvent records one audit event. A duplicate event is treated
// as success so the redelivered message gets acked; a database error
// is wrapped retryable so the message is requeued.
func (w *Worker) processEvent(ctx context.Context, msg *domain.EventMessage) error {
	event := msg.Event

	w.logger.Info("Recording audit event",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.String("worker_id", w.workerID),
	)

	err := w.storage.InsertEvent(ctx, &event)
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrDuplicateEvent) {
		w.logger.Warn("Audit event already recorded, acking redelivery",
			slog.String("event_id", event.EventID),
		)
		return nil
	}

	return domain.NewRetryableError(fmt.Errorf("failed to record event: %w", err))
}
