package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/domain"
)

// UserResponse represents a user in API responses. The password hash
// never leaves the persistence layer.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Currency  string `json:"currency"`
	Verified  bool   `json:"verified"`
	KYCStatus string `json:"kyc_status"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Country:   u.Country.Code,
		Currency:  u.Country.Currency,
		Verified:  u.Verified,
		KYCStatus: string(u.KYCStatus),
	}
}

// AuthResponse is returned from login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// RegisterResponse is returned from signup. The OTP is delivered out of
// band in production; the sandbox returns it inline.
type RegisterResponse struct {
	User *UserResponse `json:"user"`
	OTP  string        `json:"otp,omitempty"`
}

// RateResponse represents an exchange rate quote.
type RateResponse struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"last_updated"`
}

// RateFromDomain converts a domain rate to a response.
func RateFromDomain(r *domain.ExchangeRate) *RateResponse {
	return &RateResponse{
		From:        r.From,
		To:          r.To,
		Rate:        r.Rate,
		LastUpdated: r.LastUpdated,
	}
}

// RatesFromDomain converts domain rates to responses.
func RatesFromDomain(rates []*domain.ExchangeRate) []*RateResponse {
	result := make([]*RateResponse, len(rates))
	for i, r := range rates {
		result[i] = RateFromDomain(r)
	}
	return result
}

// RecipientResponse represents a saved payee.
type RecipientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Method        string    `json:"method"`
	Provider      string    `json:"provider,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	BankName      string    `json:"bank_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecipientFromDomain converts a domain recipient to a response.
func RecipientFromDomain(r *domain.Recipient) *RecipientResponse {
	resp := &RecipientResponse{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Method:    string(r.Method),
		CreatedAt: r.CreatedAt,
	}

	if r.MobileMoney != nil {
		resp.Provider = r.MobileMoney.Provider
	}
	if r.Bank != nil {
		resp.AccountNumber = r.Bank.AccountNumber
		resp.BankName = r.Bank.BankName
	}

	return resp
}

// RecipientsFromDomain converts domain recipients to responses.
func RecipientsFromDomain(recipients []*domain.Recipient) []*RecipientResponse {
	result := make([]*RecipientResponse, len(recipients))
	for i, r := range recipients {
		result[i] = RecipientFromDomain(r)
	}
	return result
}

// DraftResponse represents the transfer being assembled.
type DraftResponse struct {
	SendAmount      decimal.Decimal    `json:"send_amount"`
	SendCurrency    string             `json:"send_currency"`
	ReceiveAmount   decimal.Decimal    `json:"receive_amount"`
	ReceiveCurrency string             `json:"receive_currency"`
	ExchangeRate    decimal.Decimal    `json:"exchange_rate"`
	Fee             decimal.Decimal    `json:"fee"`
	Total           decimal.Decimal    `json:"total"`
	Method          string             `json:"method,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	Recipient       *RecipientResponse `json:"recipient,omitempty"`
	ReadyToSubmit   bool               `json:"ready_to_submit"`
}

// DraftFromDomain converts a domain draft to a response.
func DraftFromDomain(d *domain.TransferDraft) *DraftResponse {
	resp := &DraftResponse{
		SendAmount:      d.SendAmount,
		SendCurrency:    d.SendCurrency,
		ReceiveAmount:   d.ReceiveAmount,
		ReceiveCurrency: domain.ReceivingCountry.Currency,
		ExchangeRate:    d.ExchangeRate,
		Fee:             d.Fee,
		Total:           d.Total(),
		PaymentMethod:   string(d.PaymentMethod),
		ReadyToSubmit:   d.ReadyToSubmit() == nil,
	}

	if d.Recipient != nil {
		resp.Recipient = RecipientFromDomain(d.Recipient)
		resp.Method = string(d.Method())
	}

	return resp
}

// TransactionResponse represents a submitted transfer.
type TransactionResponse struct {
	ID              string          `json:"id"`
	RecipientName   string          `json:"recipient_name"`
	RecipientPhone  string          `json:"recipient_phone"`
	Method          string          `json:"method"`
	PaymentMethod   string          `json:"payment_method"`
	SendAmount      decimal.Decimal `json:"send_amount"`
	SendCurrency    string          `json:"send_currency"`
	ReceiveAmount   decimal.Decimal `json:"receive_amount"`
	ReceiveCurrency string          `json:"receive_currency"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		RecipientName:   t.RecipientName,
		RecipientPhone:  t.RecipientPhone,
		Method:          string(t.Method),
		PaymentMethod:   string(t.PaymentMethod),
		SendAmount:      t.SendAmount,
		SendCurrency:    t.SendCurrency,
		ReceiveAmount:   t.ReceiveAmount,
		ReceiveCurrency: t.ReceiveCurrency,
		ExchangeRate:    t.ExchangeRate,
		Fee:             t.Fee,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
