package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

var validate = validator.New()

// RegisterRequest represents a signup request.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code" validate:"omitempty,len=2"`
}

// Validate checks field constraints.
func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		CountryCode: r.CountryCode,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks field constraints.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// VerifyOTPRequest carries the one-time code from onboarding.
type VerifyOTPRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// Validate checks field constraints.
func (r *VerifyOTPRequest) Validate() error {
	return validate.Struct(r)
}

// KYCRequest carries identity documents.
type KYCRequest struct {
	IDType   string `json:"id_type" validate:"required"`
	IDNumber string `json:"id_number" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// Validate checks field constraints.
func (r *KYCRequest) Validate() error {
	return validate.Struct(r)
}

// ToSubmission converts to the domain KYC submission.
func (r *KYCRequest) ToSubmission() domain.KYCSubmission {
	return domain.KYCSubmission{
		IDType:   r.IDType,
		IDNumber: r.IDNumber,
		Address:  r.Address,
	}
}

// SelectCountryRequest switches the sending corridor.
type SelectCountryRequest struct {
	CountryCode string `json:"country_code" validate:"required,len=2"`
}

// Validate checks field constraints.
func (r *SelectCountryRequest) Validate() error {
	return validate.Struct(r)
}

// CreateRecipientRequest represents a request to save a payee.
type CreateRecipientRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Method        string `json:"method" validate:"required,oneof=mobile_money bank"`
	Provider      string `json:"provider" validate:"required_if=Method mobile_money"`
	AccountNumber string `json:"account_number" validate:"required_if=Method bank"`
	BankName      string `json:"bank_name" validate:"required_if=Method bank"`
}

// Validate checks field constraints.
func (r *CreateRecipientRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *CreateRecipientRequest) ToUseCaseInput(userID string) usecase.CreateRecipientInput {
	return usecase.CreateRecipientInput{
		UserID:        userID,
		Name:          r.Name,
		Phone:         r.Phone,
		Method:        domain.TransferMethod(r.Method),
		Provider:      r.Provider,
		AccountNumber: r.AccountNumber,
		BankName:      r.BankName,
	}
}

// QuoteRequest prices one side of the draft.
type QuoteRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Side   string          `json:"side" validate:"required,oneof=send receive"`
}

// Validate checks field constraints.
func (r *QuoteRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *QuoteRequest) ToUseCaseInput(userID string) usecase.QuoteInput {
	return usecase.QuoteInput{
		UserID: userID,
		Amount: r.Amount,
		Side:   r.Side,
	}
}

// SetDraftRecipientRequest attaches a saved recipient to the draft.
type SetDraftRecipientRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

// Validate checks field constraints.
func (r *SetDraftRecipientRequest) Validate() error {
	return validate.Struct(r)
}

// SetPaymentMethodRequest selects how the sender pays.
type SetPaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=apple_pay debit_card instant_bank_transfer"`
}

// Validate checks field constraints.
func (r *SetPaymentMethodRequest) Validate() error {
	return validate.Struct(r)
}

// SubmitTransferRequest submits the current draft.
type SubmitTransferRequest struct {
	// IdempotencyKey is optional; the Idempotency-Key header takes
	// precedence when both are present.
	IdempotencyKey string `json:"idempotency_key"`
}
