package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/usecase"
)

// SandboxGateway is an in-process payment service provider used in
// development and tests. It charges nothing and settles every request
// after a configurable latency.
type SandboxGateway struct {
	latency      time.Duration
	declineAbove decimal.Decimal
	logger       zerolog.Logger
	sequence     func() string
}

// SandboxConfig configures the sandbox provider.
type SandboxConfig struct {
	// Latency simulates the provider's round trip.
	Latency time.Duration
	// DeclineAbove declines any charge strictly greater than this
	// amount. Zero disables declines.
	DeclineAbove decimal.Decimal
	Logger       zerolog.Logger
	// Sequence supplies provider references. Defaults to a timestamp.
	Sequence func() string
}

// NewSandboxGateway creates a sandbox payment gateway.
func NewSandboxGateway(cfg SandboxConfig) *SandboxGateway {
	seq := cfg.Sequence
	if seq == nil {
		seq = func() string {
			return fmt.Sprintf("sbx-%d", time.Now().UnixNano())
		}
	}

	return &SandboxGateway{
		latency:      cfg.Latency,
		declineAbove: cfg.DeclineAbove,
		logger:       cfg.Logger,
		sequence:     seq,
	}
}

// Initiate simulates charging the sender's payment instrument.
func (g *SandboxGateway) Initiate(ctx context.Context, req usecase.PaymentRequest) (*usecase.PaymentResult, error) {
	if req.IdempotencyKey == "" {
		return nil, fmt.Errorf("sandbox gateway: missing idempotency key")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("sandbox gateway: bad amount %q: %w", req.Amount, err)
	}

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("sandbox gateway: %w", ctx.Err())
		case <-timer.C:
		}
	}

	if !g.declineAbove.IsZero() && amount.GreaterThan(g.declineAbove) {
		g.logger.Info().
			Str("idempotency_key", req.IdempotencyKey).
			Str("amount", req.Amount).
			Msg("sandbox gateway declined charge")
		return &usecase.PaymentResult{Outcome: usecase.PaymentDeclined}, nil
	}

	ref := g.sequence()
	g.logger.Debug().
		Str("idempotency_key", req.IdempotencyKey).
		Str("amount", req.Amount).
		Str("currency", req.Currency).
		Str("payment_method", string(req.PaymentMethod)).
		Str("reference", ref).
		Msg("sandbox gateway accepted charge")

	return &usecase.PaymentResult{Outcome: usecase.PaymentAccepted, Reference: ref}, nil
}

var _ usecase.PaymentGateway = (*SandboxGateway)(nil)
