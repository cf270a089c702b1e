package worker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orangeot/backoffice-api/internal/worker/domain"
)

func TestValidateEvent(t *testing.T) {
	valid := domain.AuditEvent{
		EventID:    "9f0c2b9e-3a94-4f0f-9f6b-1f9d3f6a7b10",
		Kind:       "application_received",
		OccurredAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		modify  func(*domain.AuditEvent)
		wantErr bool
	}{
		{
			name:    "valid event",
			modify:  func(*domain.AuditEvent) {},
			wantErr: false,
		},
		{
			name: "event_id not a UUID",
			modify: func(e *domain.AuditEvent) {
				e.EventID = "not-a-uuid"
			},
			wantErr: true,
		},
		{
			name: "missing kind",
			modify: func(e *domain.AuditEvent) {
				e.Kind = ""
			},
			wantErr: true,
		},
		{
			name: "zero occurred_at",
			modify: func(e *domain.AuditEvent) {
				e.OccurredAt = time.Time{}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := valid
			tt.modify(&event)

			err := validateEvent(&event)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidEvent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShouldRequeueEvent(t *testing.T) {
	w := &Worker{}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "duplicate event is not requeued",
			err:  domain.ErrDuplicateEvent,
			want: false,
		},
		{
			name: "invalid event is not requeued",
			err:  domain.ErrInvalidEvent,
			want: false,
		},
		{
			name: "retryable error is requeued",
			err:  domain.NewRetryableError(errors.New("connection reset")),
			want: true,
		},
		{
			name: "wrapped retryable error is requeued",
			err:  domain.NewRetryableError(errors.New("deadline exceeded")),
			want: true,
		},
		{
			name: "unknown error is not requeued",
			err:  errors.New("something else"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.shouldRequeueEvent(tt.err))
		})
	}
}
