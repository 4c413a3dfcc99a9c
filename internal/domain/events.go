package domain

import "time"

// Event types
const (
	EventTypeTransferSubmitted = "transfer.submitted"
	EventTypeTransferCompleted = "transfer.completed"
	EventTypeTransferFailed    = "transfer.failed"
	EventTypeUserRegistered    = "user.registered"
	EventTypeKYCVerified       = "user.kyc_verified"
)

// Aggregate types
const (
	AggregateTypeTransaction = "transaction"
	AggregateTypeUser        = "user"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// TransferSubmittedEvent payload
type TransferSubmittedEvent struct {
	TransactionID   string `json:"transaction_id"`
	UserID          string `json:"user_id"`
	SendAmount      string `json:"send_amount"`
	SendCurrency    string `json:"send_currency"`
	ReceiveAmount   string `json:"receive_amount"`
	ReceiveCurrency string `json:"receive_currency"`
	Method          string `json:"method"`
}

// UserRegisteredEvent payload
type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
