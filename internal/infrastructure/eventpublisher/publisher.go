package eventpublisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

// Worker drains the transfer outbox and hands events to a sink. It is
// the only component that marks events published, so each event is
// delivered at least once.
type Worker struct {
	outboxRepo usecase.OutboxRepository
	sink       Sink
	logger     *slog.Logger
	batchSize  int
	interval   time.Duration
}

// Sink receives events drained from the outbox.
type Sink interface {
	Deliver(ctx context.Context, event *domain.OutboxEvent) error
}

// Config for Worker.
type Config struct {
	OutboxRepo usecase.OutboxRepository
	Sink       Sink
	Logger     *slog.Logger
	BatchSize  int           // Number of events to fetch per batch
	Interval   time.Duration // Polling interval
}

// NewWorker creates an outbox worker.
func NewWorker(cfg Config) *Worker {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Worker{
		outboxRepo: cfg.OutboxRepo,
		sink:       cfg.Sink,
		logger:     cfg.Logger,
		batchSize:  cfg.BatchSize,
		interval:   cfg.Interval,
	}
}

// Start runs the worker until the context is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("outbox worker started",
		slog.Int("batch_size", w.batchSize),
		slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Drain whatever accumulated before the worker came up.
	if err := w.drain(ctx); err != nil {
		w.logger.Error("error draining outbox on start", slog.String("error", err.Error()))
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := w.drain(ctx); err != nil {
				w.logger.Error("error draining outbox", slog.String("error", err.Error()))
			}
		}
	}
}

// drain fetches and delivers one batch of unpublished events.
func (w *Worker) drain(ctx context.Context) error {
	events, err := w.outboxRepo.GetUnpublished(ctx, w.batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	w.logger.Info("draining outbox", slog.Int("count", len(events)))

	for _, event := range events {
		if err := w.sink.Deliver(ctx, event); err != nil {
			w.logger.Error("failed to deliver event",
				slog.String("event_id", event.ID),
				slog.String("event_type", event.EventType),
				slog.String("error", err.Error()))
			// A failed event stays unpublished and is retried next tick.
			continue
		}

		if err := w.outboxRepo.MarkPublished(ctx, event.ID, time.Now()); err != nil {
			w.logger.Error("failed to mark event as published",
				slog.String("event_id", event.ID),
				slog.String("error", err.Error()))
			// The event will be re-delivered; sinks must tolerate duplicates.
		}
	}

	return nil
}

// LogSink writes events to the log. It is the default sink until a
// real broker is attached.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Deliver logs the event.
func (s *LogSink) Deliver(ctx context.Context, event *domain.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	s.logger.Info("EVENT PUBLISHED",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.EventType),
		slog.String("aggregate_type", event.AggregateType),
		slog.String("aggregate_id", event.AggregateID),
		slog.String("payload", string(payload)))

	return nil
}
