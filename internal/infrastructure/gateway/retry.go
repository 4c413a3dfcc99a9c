package gateway

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/akosua/remitgh/internal/usecase"
)

// RetryingGateway wraps a payment gateway with exponential backoff on
// transient failures. Declines are final and never retried; only
// transport-level errors are. Every attempt carries the same
// idempotency key, so the provider deduplicates on its side.
type RetryingGateway struct {
	inner           usecase.PaymentGateway
	maxRetries      uint
	initialInterval time.Duration
	maxInterval     time.Duration
	logger          zerolog.Logger
}

// NewRetryingGateway wraps inner with retry behaviour.
func NewRetryingGateway(inner usecase.PaymentGateway, maxRetries uint, logger zerolog.Logger) *RetryingGateway {
	return &RetryingGateway{
		inner:           inner,
		maxRetries:      maxRetries,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     2 * time.Second,
		logger:          logger,
	}
}

// Initiate calls the wrapped gateway, retrying transient errors.
func (g *RetryingGateway) Initiate(ctx context.Context, req usecase.PaymentRequest) (*usecase.PaymentResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.initialInterval
	b.MaxInterval = g.maxInterval

	var result *usecase.PaymentResult

	operation := func() error {
		res, err := g.inner.Initiate(ctx, req)
		if err != nil {
			if !isTransient(err) {
				return backoff.Permanent(err)
			}
			g.logger.Warn().
				Err(err).
				Str("idempotency_key", req.IdempotencyKey).
				Msg("transient gateway error, retrying")
			return err
		}

		result = res
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, uint64(g.maxRetries)), ctx))
	if err != nil {
		return nil, err
	}

	return result, nil
}

// isTransient reports whether a gateway error is worth retrying.
// Context cancellation means the caller gave up and must not be retried.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

var _ usecase.PaymentGateway = (*RetryingGateway)(nil)
