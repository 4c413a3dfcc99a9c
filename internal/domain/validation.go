package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPhone    = errors.New("phone number must be exactly 10 digits")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrPasswordTooWeak = errors.New("password does not meet requirements")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall  = errors.New("amount below minimum allowed")
	ErrInvalidName     = errors.New("invalid name")
)

// Validation constants
const (
	GhanaDialPrefix   = "+233"
	LocalPhoneDigits  = 10
	MaxNameLength     = 255
	MaxSendAmount     = "50000"
	MinSendAmount     = "1"
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
)

// NormalizeGhanaPhone validates a local Ghanaian phone number and returns
// it in E.164 form. Numbers that are not exactly ten digits are rejected
// outright, never truncated.
func NormalizeGhanaPhone(local string) (string, error) {
	local = strings.TrimSpace(local)
	local = strings.TrimPrefix(local, GhanaDialPrefix)

	if len(local) != LocalPhoneDigits || !digitsRegex.MatchString(local) {
		return "", ErrInvalidPhone
	}

	return GhanaDialPrefix + local, nil
}

// ValidateSendAmount validates an amount a sender wants to transfer.
func ValidateSendAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinSendAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinSendAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxSendAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxSendAmount)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword validates password strength.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasNumber {
		return fmt.Errorf("%w: must contain uppercase, lowercase, and numbers", ErrPasswordTooWeak)
	}

	return nil
}

// ValidateName validates a person's display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" || len(name) > MaxNameLength {
		return ErrInvalidName
	}

	return nil
}

// ValidatePagination clamps pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 100
	const DefaultPageSize = 20

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
