package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod is the instrument funding a transfer on the sender's side.
type PaymentMethod string

const (
	PaymentApplePay            PaymentMethod = "apple_pay"
	PaymentDebitCard           PaymentMethod = "debit_card"
	PaymentInstantBankTransfer PaymentMethod = "instant_bank_transfer"
)

// IsValid checks if the payment method is supported.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentApplePay, PaymentDebitCard, PaymentInstantBankTransfer:
		return true
	}
	return false
}

// FeePolicy computes the sender fee for a given send amount.
type FeePolicy func(sendAmount decimal.Decimal) decimal.Decimal

// ZeroFeePolicy charges no fee. Placeholder until a tiered schedule ships.
func ZeroFeePolicy(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// TransferDraft accumulates an in-progress transfer across the send flow.
// The invariant ReceiveAmount == SendAmount * ExchangeRate holds after any
// amount-setting operation. The transfer method is derived from the
// recipient variant rather than stored separately.
type TransferDraft struct {
	SendAmount    decimal.Decimal
	ReceiveAmount decimal.Decimal
	ExchangeRate  decimal.Decimal
	Fee           decimal.Decimal
	SendCurrency  string
	Recipient     *Recipient
	PaymentMethod PaymentMethod

	feePolicy FeePolicy
}

// NewTransferDraft returns an empty draft priced under the given policy.
// A nil policy means no fee.
func NewTransferDraft(policy FeePolicy) *TransferDraft {
	if policy == nil {
		policy = ZeroFeePolicy
	}

	d := &TransferDraft{feePolicy: policy}
	d.Reset()

	return d
}

// SetSendAmount stores the send amount and derives the receive amount from
// the rate. Amount must be non-negative, rate strictly positive.
func (d *TransferDraft) SetSendAmount(amount, rate decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}

	d.SendAmount = amount
	d.ReceiveAmount = amount.Mul(rate)
	d.ExchangeRate = rate
	d.Fee = d.feePolicy(amount)

	return nil
}

// SetReceiveAmount is the inverse of SetSendAmount: it stores the receive
// amount and derives the send amount. The rate guard makes division safe.
func (d *TransferDraft) SetReceiveAmount(amount, rate decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}

	send := amount.Div(rate)

	d.ReceiveAmount = amount
	d.SendAmount = send
	d.ExchangeRate = rate
	d.Fee = d.feePolicy(send)

	return nil
}

// SetRecipient replaces the stored recipient unconditionally.
func (d *TransferDraft) SetRecipient(r *Recipient) error {
	if err := r.Validate(); err != nil {
		return err
	}

	d.Recipient = r

	return nil
}

// SetPaymentMethod records the funding instrument.
func (d *TransferDraft) SetPaymentMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}

	d.PaymentMethod = method

	return nil
}

// Method returns the payout rail, derived from the recipient variant.
func (d *TransferDraft) Method() TransferMethod {
	if d.Recipient == nil {
		return ""
	}
	return d.Recipient.Method
}

// Total returns the amount debited from the sender: send amount plus fee.
func (d *TransferDraft) Total() decimal.Decimal {
	return d.SendAmount.Add(d.Fee)
}

// ReadyToSubmit checks the submission preconditions: a valid recipient, a
// positive send amount and a chosen payment method.
func (d *TransferDraft) ReadyToSubmit() error {
	if d.Recipient == nil || !d.SendAmount.IsPositive() || !d.PaymentMethod.IsValid() {
		return ErrDraftIncomplete
	}

	return d.Recipient.Validate()
}

// Reset restores the draft to its empty state for the next transfer.
func (d *TransferDraft) Reset() {
	d.SendAmount = decimal.Zero
	d.ReceiveAmount = decimal.Zero
	d.ExchangeRate = decimal.NewFromInt(1)
	d.Fee = decimal.Zero
	d.SendCurrency = ""
	d.Recipient = nil
	d.PaymentMethod = ""
}
