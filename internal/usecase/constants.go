package usecase

import "time"

const (
	// RateCacheTTL is how long a fetched rate board stays fresh.
	RateCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// GatewayTimeout bounds a single payment initiation call. A payment
	// must never be left unresolved from the caller's perspective.
	GatewayTimeout = 15 * time.Second

	// OTPTTL is how long a registration verification code stays valid.
	OTPTTL = 10 * time.Minute
)
