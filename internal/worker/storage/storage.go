package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/orangeot/backoffice-api/internal/worker/domain"
)

// uniqueViolation is the Postgres error code for a unique constraint hit
const uniqueViolation = "23505"

// Storage handles all database operations for the worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// InsertEvent records one audit event. Inserting the same event_id
// twice returns ErrDuplicateEvent, which makes redeliveries harmless.
func (s *Storage) InsertEvent(ctx context.Context, event *domain.AuditEvent) error {
	query := `
		INSERT INTO submission_events (
			event_id, kind, occurred_at, detail, recorded_at
		) VALUES (
			$1, $2, $3, $4, NOW()
		)
	`

	var detailJSON []byte
	if len(event.Detail) > 0 {
		var err error
		detailJSON, err = json.Marshal(event.Detail)
		if err != nil {
			return fmt.Errorf("failed to marshal event detail: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx, query, event.EventID, event.Kind, event.OccurredAt, detailJSON)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	s.logger.Debug("Audit event recorded",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
	)

	return nil
}

// CountEventsByKind reports how many events of each kind are recorded.
// Used by the worker's startup log to show backlog shape.
func (s *Storage) CountEventsByKind(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT kind, COUNT(*) AS total
		FROM submission_events
		GROUP BY kind
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var total int
		if err := rows.Scan(&kind, &total); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[kind] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event counts: %w", err)
	}

	return counts, nil
}
