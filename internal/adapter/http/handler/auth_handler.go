package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akosua/remitgh/internal/adapter/http/dto"
	"github.com/akosua/remitgh/internal/adapter/http/middleware"
	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

// UserService exposes the account operations the handler depends on.
type UserService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, string, error)
	VerifyOTP(ctx context.Context, userID, code string) (*domain.User, error)
	CompleteKYC(ctx context.Context, userID string, submission domain.KYCSubmission) (*domain.User, error)
	SelectCountry(ctx context.Context, userID, countryCode string) (*domain.User, error)
	Login(ctx context.Context, input usecase.LoginInput) (*domain.User, string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// AuthHandler handles registration, onboarding and login.
type AuthHandler struct {
	userUC UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register creates a new user account and starts phone verification.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, otp, err := h.userUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		User: dto.UserFromDomain(user),
		OTP:  otp,
	})
}

// VerifyOTP confirms the one-time code sent at registration.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.userUC.VerifyOTP(r.Context(), userID, req.Code)
	if err != nil {
		writeError(w, mapDomainError(err), "verification failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// CompleteKYC records the identity documents for the sender.
func (h *AuthHandler) CompleteKYC(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.KYCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.userUC.CompleteKYC(r.Context(), userID, req.ToSubmission())
	if err != nil {
		writeError(w, mapDomainError(err), "kyc submission failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// SelectCountry switches the sender's corridor country.
func (h *AuthHandler) SelectCountry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SelectCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.userUC.SelectCountry(r.Context(), userID, req.CountryCode)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to switch country", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, token, err := h.userUC.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "login failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Me returns the current authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
