package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/akosua/remitgh/internal/adapter/http/dto"
)

func TestOnboardingFlow(t *testing.T) {
	env := newTestEnv(t)

	// Register
	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:       "akosua@example.com",
		Password:    "Sup3rSecret",
		FirstName:   "Akosua",
		LastName:    "Mensah",
		CountryCode: "GB",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed with %d: %s", rec.Code, rec.Body.String())
	}

	registered := decode[dto.RegisterResponse](t, rec)
	if registered.OTP == "" {
		t.Fatal("expected sandbox OTP in register response")
	}
	if registered.User.Verified {
		t.Fatal("new user must start unverified")
	}
	if registered.User.Currency != "GBP" {
		t.Fatalf("expected GBP home currency, got %s", registered.User.Currency)
	}

	token := env.login(t, "akosua@example.com")

	// Wrong OTP is rejected
	rec = env.do(t, http.MethodPost, "/api/v1/auth/verify-otp", token, dto.VerifyOTPRequest{Code: "000000"})
	if registered.OTP != "000000" && rec.Code != http.StatusBadRequest {
		t.Fatalf("expected wrong code to be rejected, got %d", rec.Code)
	}

	// Correct OTP verifies the account
	rec = env.do(t, http.MethodPost, "/api/v1/auth/verify-otp", token, dto.VerifyOTPRequest{Code: registered.OTP})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify failed with %d: %s", rec.Code, rec.Body.String())
	}
	if user := decode[dto.UserResponse](t, rec); !user.Verified {
		t.Fatal("expected user to be verified after OTP")
	}

	// KYC completes onboarding
	rec = env.do(t, http.MethodPost, "/api/v1/auth/kyc", token, dto.KYCRequest{
		IDType:   "passport",
		IDNumber: "P1234567",
		Address:  "12 Oxford St, London",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("kyc failed with %d: %s", rec.Code, rec.Body.String())
	}
	if user := decode[dto.UserResponse](t, rec); user.KYCStatus != "verified" {
		t.Fatalf("expected verified kyc, got %s", user.KYCStatus)
	}

	// Switching corridor changes the home currency
	rec = env.do(t, http.MethodPut, "/api/v1/auth/country", token, dto.SelectCountryRequest{CountryCode: "CA"})
	if rec.Code != http.StatusOK {
		t.Fatalf("select country failed with %d: %s", rec.Code, rec.Body.String())
	}
	if user := decode[dto.UserResponse](t, rec); user.Currency != "CAD" {
		t.Fatalf("expected CAD after corridor switch, got %s", user.Currency)
	}

	// Me reflects the final state
	rec = env.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me failed with %d", rec.Code)
	}
	if user := decode[dto.UserResponse](t, rec); user.Country != "CA" {
		t.Fatalf("expected CA country, got %s", user.Country)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	req := dto.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "Sup3rSecret",
		FirstName: "Kwame",
		LastName:  "Osei",
	}

	if rec := env.do(t, http.MethodPost, "/api/v1/auth/register", "", req); rec.Code != http.StatusCreated {
		t.Fatalf("first register failed with %d", rec.Code)
	}

	if rec := env.do(t, http.MethodPost, "/api/v1/auth/register", "", req); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.db.CreateTestUser(context.Background(), "kwame@example.com")

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "kwame@example.com",
		Password: "not-the-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
