package careers

import (
	"context"
	"log/slog"
	"sync"
)

// Message is one outbound notification, shaped for the mail-relay
// providers. Fields carries the named form fields; Body is the
// assembled message text; CC is an optional extra destination passed
// through to relays that support it.
type Message struct {
	Subject  string
	Template string
	Body     string
	Fields   map[string]string
	CC       string
}

// Relay delivers a message to one destination mailbox via a
// third-party mail-relay endpoint.
type Relay interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// DeliveryReport aggregates the outcome of a broadcast. Delivery is
// best-effort: overall success means at least one relay accepted the
// message.
type DeliveryReport struct {
	Attempted int
	Delivered int
	Errs      []error
}

// Ok reports whether at least one destination accepted the message
func (r DeliveryReport) Ok() bool {
	return r.Delivered > 0
}

// Degraded reports a partial delivery: some destinations accepted the
// message, some did not.
func (r DeliveryReport) Degraded() bool {
	return r.Delivered > 0 && r.Delivered < r.Attempted
}

// Notifier fans a message out to every configured relay
type Notifier struct {
	relays []Relay
	logger *slog.Logger
}

// NewNotifier creates a notifier over the given relays
func NewNotifier(logger *slog.Logger, relays ...Relay) *Notifier {
	return &Notifier{
		relays: relays,
		logger: logger,
	}
}

// Broadcast sends msg to every relay concurrently and waits for all of
// them to settle. One relay's failure never cancels another; completion
// order is not assumed anywhere. Per-relay errors are logged with
// provider detail and collected into the report.
func (n *Notifier) Broadcast(ctx context.Context, msg Message) DeliveryReport {
	report := DeliveryReport{Attempted: len(n.relays)}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, relay := range n.relays {
		wg.Add(1)
		go func(relay Relay) {
			defer wg.Done()

			if err := relay.Send(ctx, msg); err != nil {
				n.logger.Error("Relay delivery failed",
					slog.String("relay", relay.Name()),
					slog.String("subject", msg.Subject),
					slog.String("error", err.Error()),
				)
				mu.Lock()
				report.Errs = append(report.Errs, err)
				mu.Unlock()
				return
			}

			n.logger.Info("Relay delivery succeeded",
				slog.String("relay", relay.Name()),
				slog.String("subject", msg.Subject),
			)
			mu.Lock()
			report.Delivered++
			mu.Unlock()
		}(relay)
	}

	wg.Wait()
	return report
}
