package eventpublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

func TestDrainDeliversAndMarks(t *testing.T) {
	repo := &stubOutboxRepo{
		events: []*domain.OutboxEvent{{ID: "evt-1", EventType: domain.EventTypeTransferSubmitted}},
	}
	sink := &stubSink{}
	w := newTestWorker(repo, sink)

	if err := w.drain(context.Background()); err != nil {
		t.Fatalf("drain failed: %v", err)
	}

	if len(sink.delivered) != 1 {
		t.Fatalf("expected one delivered event, got %d", len(sink.delivered))
	}
	if len(repo.marked) != 1 || repo.marked[0] != "evt-1" {
		t.Fatalf("expected event to be marked published, got %#v", repo.marked)
	}
}

func TestDrainContinuesOnDeliveryError(t *testing.T) {
	repo := &stubOutboxRepo{
		events: []*domain.OutboxEvent{
			{ID: "evt-1", EventType: domain.EventTypeTransferSubmitted},
			{ID: "evt-2", EventType: domain.EventTypeTransferSubmitted},
		},
	}
	sink := &stubSink{
		errorsByID: map[string]error{"evt-1": errors.New("fail")},
	}
	w := newTestWorker(repo, sink)

	if err := w.drain(context.Background()); err != nil {
		t.Fatalf("drain returned error: %v", err)
	}

	if len(sink.delivered) != 1 || sink.delivered[0].ID != "evt-2" {
		t.Fatalf("expected only evt-2 to be delivered, got %#v", sink.delivered)
	}
	if len(repo.marked) != 1 || repo.marked[0] != "evt-2" {
		t.Fatalf("expected only evt-2 to be marked, got %#v", repo.marked)
	}
}

func TestStartStopsOnContextCancellation(t *testing.T) {
	repo := &stubOutboxRepo{}
	sink := &stubSink{}
	w := newTestWorker(repo, sink)
	w.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func newTestWorker(repo *stubOutboxRepo, sink *stubSink) *Worker {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return NewWorker(Config{
		OutboxRepo: repo,
		Sink:       sink,
		Logger:     logger,
		BatchSize:  10,
		Interval:   5 * time.Millisecond,
	})
}

type stubOutboxRepo struct {
	events []*domain.OutboxEvent
	marked []string
}

func (s *stubOutboxRepo) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	return nil
}

func (s *stubOutboxRepo) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if len(s.events) <= limit {
		return append([]*domain.OutboxEvent(nil), s.events...), nil
	}
	return append([]*domain.OutboxEvent(nil), s.events[:limit]...), nil
}

func (s *stubOutboxRepo) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	s.marked = append(s.marked, id)
	return nil
}

type stubSink struct {
	delivered  []*domain.OutboxEvent
	errorsByID map[string]error
}

func (s *stubSink) Deliver(ctx context.Context, event *domain.OutboxEvent) error {
	if err := s.errorsByID[event.ID]; err != nil {
		return err
	}
	s.delivered = append(s.delivered, event)
	return nil
}
