package domain

import "errors"

var (
	// Draft errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidRate       = errors.New("exchange rate must be positive")
	ErrDraftIncomplete   = errors.New("transfer draft is missing recipient, amount or payment method")
	ErrDraftNotFound     = errors.New("no transfer draft in progress")
	ErrKYCNotVerified    = errors.New("identity verification required before sending")
	ErrSubmissionPending = errors.New("a submission is already in progress for this draft")

	// Rate errors
	ErrRateUnavailable     = errors.New("no exchange rate available for currency")
	ErrUnsupportedCurrency = errors.New("currency is not a supported sending currency")

	// Recipient errors
	ErrRecipientNotFound     = errors.New("recipient not found")
	ErrInvalidRecipient      = errors.New("recipient details incomplete for the chosen method")
	ErrInvalidTransferMethod = errors.New("transfer method must be mobile_money or bank")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Submission errors
	ErrPaymentDeclined = errors.New("payment was declined")
	ErrPaymentTimeout  = errors.New("payment gateway timed out")
	ErrGatewayFailure  = errors.New("payment gateway unreachable")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUnsupportedCountry = errors.New("country is not a supported sending country")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("verification code is invalid or expired")
)
