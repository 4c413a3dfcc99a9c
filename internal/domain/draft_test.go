package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func usdRate() decimal.Decimal {
	return decimal.RequireFromString("16.25")
}

func TestTransferDraft_SetSendAmount(t *testing.T) {
	d := NewTransferDraft(nil)

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.ReceiveAmount.Equal(decimal.RequireFromString("1625")) {
		t.Errorf("expected receive amount 1625, got %s", d.ReceiveAmount)
	}
	if !d.Total().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected total 100 under zero fee, got %s", d.Total())
	}
}

func TestTransferDraft_RoundTrip(t *testing.T) {
	d := NewTransferDraft(nil)

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receive := d.ReceiveAmount
	if err := d.SetReceiveAmount(receive, usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.SendAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("round trip lost precision: send amount %s", d.SendAmount)
	}
}

func TestTransferDraft_QuoteScenario(t *testing.T) {
	// 250 USD at 16.25 buys 4062.5 GHS with no fee.
	d := NewTransferDraft(nil)

	if err := d.SetSendAmount(decimal.NewFromInt(250), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.ReceiveAmount.Equal(decimal.RequireFromString("4062.5")) {
		t.Errorf("expected receive amount 4062.5, got %s", d.ReceiveAmount)
	}
	if !d.Fee.IsZero() {
		t.Errorf("expected zero fee, got %s", d.Fee)
	}
	if !d.Total().Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected total 250, got %s", d.Total())
	}
}

func TestTransferDraft_ZeroReceiveAmount(t *testing.T) {
	d := NewTransferDraft(nil)

	if err := d.SetReceiveAmount(decimal.Zero, usdRate()); err != nil {
		t.Fatalf("zero is a valid boundary, got error: %v", err)
	}

	if !d.SendAmount.IsZero() {
		t.Errorf("expected send amount 0, got %s", d.SendAmount)
	}
}

func TestTransferDraft_RejectsBadInputs(t *testing.T) {
	tests := []struct {
		name        string
		apply       func(d *TransferDraft) error
		expectError error
	}{
		{
			name: "negative send amount",
			apply: func(d *TransferDraft) error {
				return d.SetSendAmount(decimal.NewFromInt(-5), usdRate())
			},
			expectError: ErrInvalidAmount,
		},
		{
			name: "zero rate on send side",
			apply: func(d *TransferDraft) error {
				return d.SetSendAmount(decimal.NewFromInt(100), decimal.Zero)
			},
			expectError: ErrInvalidRate,
		},
		{
			name: "zero rate on receive side",
			apply: func(d *TransferDraft) error {
				return d.SetReceiveAmount(decimal.NewFromInt(100), decimal.Zero)
			},
			expectError: ErrInvalidRate,
		},
		{
			name: "negative rate",
			apply: func(d *TransferDraft) error {
				return d.SetSendAmount(decimal.NewFromInt(100), decimal.NewFromInt(-1))
			},
			expectError: ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTransferDraft(nil)
			if err := tt.apply(d); !errors.Is(err, tt.expectError) {
				t.Errorf("expected %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestTransferDraft_SetSendAmountIdempotent(t *testing.T) {
	d := NewTransferDraft(nil)

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := *d

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.SendAmount.Equal(first.SendAmount) || !d.ReceiveAmount.Equal(first.ReceiveAmount) ||
		!d.ExchangeRate.Equal(first.ExchangeRate) || !d.Fee.Equal(first.Fee) {
		t.Error("repeated SetSendAmount with identical arguments changed state")
	}
}

func TestTransferDraft_Reset(t *testing.T) {
	d := NewTransferDraft(nil)

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := NewMobileMoneyRecipient("rec-1", "user-1", "Ama Mensah", "2412345678", "mtn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetRecipient(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetPaymentMethod(PaymentDebitCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d.Reset()

	if !d.SendAmount.IsZero() || !d.ReceiveAmount.IsZero() || !d.Fee.IsZero() {
		t.Error("reset did not zero the amounts")
	}
	if !d.ExchangeRate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("reset should restore rate 1, got %s", d.ExchangeRate)
	}
	if d.Recipient != nil || d.PaymentMethod != "" {
		t.Error("reset did not clear recipient and payment method")
	}
}

func TestTransferDraft_ReadyToSubmit(t *testing.T) {
	d := NewTransferDraft(nil)

	if err := d.ReadyToSubmit(); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("empty draft must not be submittable, got %v", err)
	}

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.ReadyToSubmit(); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("draft without recipient must not be submittable, got %v", err)
	}

	r, err := NewMobileMoneyRecipient("rec-1", "user-1", "Ama Mensah", "2412345678", "mtn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetRecipient(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.ReadyToSubmit(); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("draft without payment method must not be submittable, got %v", err)
	}

	if err := d.SetPaymentMethod(PaymentApplePay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.ReadyToSubmit(); err != nil {
		t.Fatalf("complete draft should be submittable, got %v", err)
	}

	if got := d.Method(); got != MethodMobileMoney {
		t.Errorf("method should derive from recipient variant, got %q", got)
	}
}

func TestTransferDraft_CustomFeePolicy(t *testing.T) {
	// A flat-fee policy must flow into Total without touching the rate math.
	flat := func(decimal.Decimal) decimal.Decimal { return decimal.NewFromInt(3) }
	d := NewTransferDraft(flat)

	if err := d.SetSendAmount(decimal.NewFromInt(100), usdRate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.Total().Equal(decimal.NewFromInt(103)) {
		t.Errorf("expected total 103, got %s", d.Total())
	}
	if !d.ReceiveAmount.Equal(decimal.RequireFromString("1625")) {
		t.Errorf("fee must not change the receive amount, got %s", d.ReceiveAmount)
	}
}
