package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
	"github.com/akosua/remitgh/internal/usecase/mocks"
)

func newUserUseCase() (*usecase.UserUseCase, *mocks.MockUserRepository, *mocks.MockCache) {
	userRepo := mocks.NewMockUserRepository()
	cache := mocks.NewMockCache()
	uc := usecase.NewUserUseCase(userRepo, cache, mocks.NewMockIDGenerator(), &mocks.MockTokenIssuer{})
	return uc, userRepo, cache
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:       "ama@example.com",
		Password:    "Str0ngpass",
		FirstName:   "Ama",
		LastName:    "Mensah",
		Phone:       "+14155550100",
		CountryCode: "US",
	}
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	user, otp, err := uc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Verified {
		t.Error("new user must start unverified")
	}
	if user.KYCStatus != domain.KYCPending {
		t.Errorf("expected pending kyc, got %s", user.KYCStatus)
	}
	if user.Country.Currency != "USD" {
		t.Errorf("expected USD home currency, got %s", user.Country.Currency)
	}
	if len(otp) != 6 {
		t.Errorf("expected 6 digit code, got %q", otp)
	}
	for _, c := range otp {
		if c < '0' || c > '9' {
			t.Errorf("expected a numeric code, got %q", otp)
			break
		}
	}
	if user.PasswordHash != "" {
		t.Error("password hash must not leak out of the use case")
	}
}

func TestUserUseCase_RegisterRejectsWeakPassword(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	input := registerInput()
	input.Password = "weak"

	_, _, err := uc.Register(ctx, input)
	if !errors.Is(err, domain.ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
	}
}

func TestUserUseCase_RegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	if _, _, err := uc.Register(ctx, registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := uc.Register(ctx, registerInput())
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserUseCase_VerifyOTP(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	user, otp, err := uc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.VerifyOTP(ctx, user.ID, "000000x"); !errors.Is(err, domain.ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP for wrong code, got %v", err)
	}

	verified, err := uc.VerifyOTP(ctx, user.ID, otp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verified.Verified {
		t.Error("user should be verified after a correct code")
	}

	// The code is single use.
	if _, err := uc.VerifyOTP(ctx, user.ID, otp); !errors.Is(err, domain.ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP on reuse, got %v", err)
	}
}

func TestUserUseCase_CompleteKYC(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	user, _, err := uc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.CompleteKYC(ctx, user.ID, domain.KYCSubmission{IDType: "passport"})
	if !errors.Is(err, domain.ErrKYCIncomplete) {
		t.Fatalf("expected ErrKYCIncomplete, got %v", err)
	}

	updated, err := uc.CompleteKYC(ctx, user.ID, domain.KYCSubmission{
		IDType:   "passport",
		IDNumber: "P1234567",
		Address:  "12 Ring Road, Accra",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.KYCStatus != domain.KYCVerified {
		t.Errorf("expected verified kyc, got %s", updated.KYCStatus)
	}
}

func TestUserUseCase_SelectCountry(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	user, _, err := uc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.SelectCountry(ctx, user.ID, "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Country.Currency != "GBP" {
		t.Errorf("expected GBP home currency, got %s", updated.Country.Currency)
	}

	if _, err := uc.SelectCountry(ctx, user.ID, "FR"); !errors.Is(err, domain.ErrUnsupportedCountry) {
		t.Fatalf("expected ErrUnsupportedCountry, got %v", err)
	}
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUseCase()

	registered, _, err := uc.Register(ctx, registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := uc.Login(ctx, usecase.LoginInput{Email: "ama@example.com", Password: "Str0ngpass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}
	if token == "" {
		t.Error("expected a session token")
	}

	if _, _, err := uc.Login(ctx, usecase.LoginInput{Email: "ama@example.com", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := uc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "Str0ngpass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
