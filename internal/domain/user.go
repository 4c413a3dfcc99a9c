package domain

import (
	"errors"
	"time"
)

// KYCStatus tracks identity verification progress.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// User represents a sender.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Country      Country
	Verified     bool
	KYCStatus    KYCStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanSend reports whether the user may submit transfers.
func (u *User) CanSend() bool {
	return u.Verified && u.KYCStatus == KYCVerified
}

// KYCSubmission carries the identity documents collected during onboarding.
type KYCSubmission struct {
	IDType   string
	IDNumber string
	Address  string
}

// Validate checks that the submission has every required field.
func (k *KYCSubmission) Validate() error {
	if k.IDType == "" || k.IDNumber == "" || k.Address == "" {
		return ErrKYCIncomplete
	}

	return nil
}

// Authentication errors
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrKYCIncomplete = errors.New("kyc submission is missing required fields")
)
