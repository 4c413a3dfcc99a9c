package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/domain"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Email:       "kwame@example.com",
		Password:    "Sup3rSecret",
		FirstName:   "Kwame",
		LastName:    "Osei",
		CountryCode: "US",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r *RegisterRequest)
	}{
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }},
		{"bad country code", func(r *RegisterRequest) { r.CountryCode = "USA" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if err := req.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestVerifyOTPRequest_Validate(t *testing.T) {
	if err := (&VerifyOTPRequest{Code: "123456"}).Validate(); err != nil {
		t.Fatalf("expected valid code, got %v", err)
	}

	for _, code := range []string{"", "12345", "1234567", "12345a"} {
		if err := (&VerifyOTPRequest{Code: code}).Validate(); err == nil {
			t.Fatalf("expected %q to be rejected", code)
		}
	}
}

func TestCreateRecipientRequest_Validate_VariantFields(t *testing.T) {
	momo := CreateRecipientRequest{
		Name:     "Ama Serwaa",
		Phone:    "0244123456",
		Method:   "mobile_money",
		Provider: "mtn",
	}
	if err := momo.Validate(); err != nil {
		t.Fatalf("expected valid mobile money request, got %v", err)
	}

	momo.Provider = ""
	if err := momo.Validate(); err == nil {
		t.Fatal("mobile money without provider must be rejected")
	}

	bank := CreateRecipientRequest{
		Name:          "Ama Serwaa",
		Phone:         "0244123456",
		Method:        "bank",
		AccountNumber: "0012345678901",
		BankName:      "gcb",
	}
	if err := bank.Validate(); err != nil {
		t.Fatalf("expected valid bank request, got %v", err)
	}

	bank.AccountNumber = ""
	if err := bank.Validate(); err == nil {
		t.Fatal("bank without account number must be rejected")
	}

	cash := CreateRecipientRequest{Name: "Ama", Phone: "0244123456", Method: "cash"}
	if err := cash.Validate(); err == nil {
		t.Fatal("unknown method must be rejected")
	}
}

func TestCreateRecipientRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateRecipientRequest{
		Name:     "Ama Serwaa",
		Phone:    "0244123456",
		Method:   "mobile_money",
		Provider: "mtn",
	}

	got := req.ToUseCaseInput("user-1")

	if got.UserID != "user-1" || got.Method != domain.MethodMobileMoney || got.Provider != "mtn" {
		t.Fatalf("unexpected input %+v", got)
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	for _, side := range []string{"send", "receive"} {
		req := QuoteRequest{Amount: decimal.NewFromInt(100), Side: side}
		if err := req.Validate(); err != nil {
			t.Fatalf("expected side %q to be valid, got %v", side, err)
		}
	}

	req := QuoteRequest{Amount: decimal.NewFromInt(100), Side: "both"}
	if err := req.Validate(); err == nil {
		t.Fatal("expected unknown side to be rejected")
	}
}

func TestQuoteRequest_ToUseCaseInput(t *testing.T) {
	req := &QuoteRequest{Amount: decimal.RequireFromString("250.50"), Side: "receive"}

	got := req.ToUseCaseInput("user-1")

	if got.UserID != "user-1" || got.Side != "receive" || !got.Amount.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("unexpected input %+v", got)
	}
}

func TestSetPaymentMethodRequest_Validate(t *testing.T) {
	for _, method := range []string{"apple_pay", "debit_card", "instant_bank_transfer"} {
		req := SetPaymentMethodRequest{PaymentMethod: method}
		if err := req.Validate(); err != nil {
			t.Fatalf("expected %q to be valid, got %v", method, err)
		}
	}

	req := SetPaymentMethodRequest{PaymentMethod: "cash"}
	if err := req.Validate(); err == nil {
		t.Fatal("expected unsupported payment method to be rejected")
	}
}
