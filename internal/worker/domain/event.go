package domain

import "time"

// AuditEvent is one submission audit record to persist
type AuditEvent struct {
	EventID    string            `json:"event_id"`
	Kind       string            `json:"kind"`
	OccurredAt time.Time         `json:"occurred_at"`
	Detail     map[string]string `json:"detail,omitempty"`
}

// EventMessage pairs a parsed audit event with its broker delivery tag
type EventMessage struct {
	Event       AuditEvent
	DeliveryTag uint64
}
