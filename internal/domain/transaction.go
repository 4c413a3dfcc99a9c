package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a submitted transfer.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

// Transaction is a submitted transfer. It snapshots the recipient and the
// pricing at submission time so later edits to the saved recipient or the
// rate board do not rewrite history.
type Transaction struct {
	ID              string
	UserID          string
	RecipientName   string
	RecipientPhone  string
	Method          TransferMethod
	PaymentMethod   PaymentMethod
	SendAmount      decimal.Decimal
	SendCurrency    string
	ReceiveAmount   decimal.Decimal
	ReceiveCurrency string
	ExchangeRate    decimal.Decimal
	Fee             decimal.Decimal
	Status          TransactionStatus
	GatewayRef      string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// Validate validates a transaction before it is persisted.
func (t *Transaction) Validate() error {
	if !t.SendAmount.IsPositive() {
		return ErrInvalidAmount
	}

	if t.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}

	if !t.Method.IsValid() {
		return ErrInvalidTransferMethod
	}

	if !t.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}

	return nil
}

// Total is the amount debited from the sender.
func (t *Transaction) Total() decimal.Decimal {
	return t.SendAmount.Add(t.Fee)
}
