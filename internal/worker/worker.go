package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/orangeot/backoffice-api/internal/worker/domain"
	"github.com/orangeot/backoffice-api/internal/worker/storage"
	"github.com/orangeot/backoffice-api/shared/rabbitmq"
)

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	Storage       *storage.Storage
	RabbitClient  *rabbitmq.Client
	QueueName     string
	Concurrency   int
	PrefetchCount int
}

// Worker consumes submission audit events from the broker and records
// them in Postgres.
type Worker struct {
	logger        *slog.Logger
	storage       *storage.Storage
	rabbitClient  *rabbitmq.Client
	queueName     string
	concurrency   int
	prefetchCount int
	workerID      string
	jobsChan      chan *domain.EventMessage
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	prefetch := cfg.PrefetchCount
	if prefetch <= 0 {
		prefetch = cfg.Concurrency * 2
	}

	return &Worker{
		logger:        cfg.Logger,
		storage:       cfg.Storage,
		rabbitClient:  cfg.RabbitClient,
		queueName:     cfg.QueueName,
		concurrency:   cfg.Concurrency,
		prefetchCount: prefetch,
		workerID:      fmt.Sprintf("audit-worker-%s", uuid.New().String()[:8]),
		jobsChan:      make(chan *domain.EventMessage, cfg.Concurrency),
		stopChan:      make(chan struct{}),
	}
}

// Start begins consuming audit events. Blocks until the context is
// canceled or the delivery channel closes.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting audit worker",
		slog.String("worker_id", w.workerID),
		slog.String("queue", w.queueName),
		slog.Int("concurrency", w.concurrency),
	)

	if counts, err := w.storage.CountEventsByKind(ctx); err != nil {
		w.logger.Warn("Failed to read recorded event counts",
			slog.String("error", err.Error()),
		)
	} else {
		w.logger.Info("Recorded audit events", slog.Any("counts", counts))
	}

	deliveries, err := w.setupConsumer(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up consumer: %w", err)
	}

	w.spawnWorkerPool(ctx)
	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping audit worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Audit worker stopped")
}
