package usecase

import (
	"context"
	"time"

	"github.com/akosua/remitgh/internal/domain"
)

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// RecipientRepository defines data access for saved recipients.
type RecipientRepository interface {
	Create(ctx context.Context, recipient *domain.Recipient) error
	GetByID(ctx context.Context, id string) (*domain.Recipient, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Recipient, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepository defines data access for submitted transfers.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus, completedAt *time.Time) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// RateProvider supplies exchange rates from an upstream source.
type RateProvider interface {
	FetchRates(ctx context.Context) ([]*domain.ExchangeRate, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// PaymentGateway initiates the outbound payment for a submitted transfer.
type PaymentGateway interface {
	// Initiate charges the sender's instrument. The idempotency key makes
	// retries safe on the provider side.
	Initiate(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// PaymentRequest is the payload sent to the payment gateway.
type PaymentRequest struct {
	IdempotencyKey string
	UserID         string
	Amount         string
	Currency       string
	PaymentMethod  domain.PaymentMethod
}

// PaymentOutcome classifies a gateway response.
type PaymentOutcome string

const (
	PaymentAccepted PaymentOutcome = "accepted"
	PaymentDeclined PaymentOutcome = "declined"
)

// PaymentResult is the typed gateway response. Timeouts and transport
// failures surface as errors, not results.
type PaymentResult struct {
	Outcome   PaymentOutcome
	Reference string
}

// TokenIssuer mints session tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
