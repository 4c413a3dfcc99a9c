package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akosua/remitgh/internal/adapter/http/dto"
	"github.com/akosua/remitgh/internal/adapter/http/middleware"
	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

// RecipientService exposes the saved payee operations the handler
// depends on.
type RecipientService interface {
	CreateRecipient(ctx context.Context, input usecase.CreateRecipientInput) (*domain.Recipient, error)
	GetRecipient(ctx context.Context, userID, id string) (*domain.Recipient, error)
	ListRecipients(ctx context.Context, userID string, limit, offset int) ([]*domain.Recipient, error)
	DeleteRecipient(ctx context.Context, userID, id string) error
}

// RecipientHandler handles saved payee endpoints.
type RecipientHandler struct {
	recipientUC RecipientService
}

// NewRecipientHandler creates a new RecipientHandler.
func NewRecipientHandler(recipientUC RecipientService) *RecipientHandler {
	return &RecipientHandler{recipientUC: recipientUC}
}

// Create saves a new recipient.
func (h *RecipientHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	recipient, err := h.recipientUC.CreateRecipient(r.Context(), req.ToUseCaseInput(userID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create recipient", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecipientFromDomain(recipient))
}

// List returns the user's saved recipients.
func (h *RecipientHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	recipients, err := h.recipientUC.ListRecipients(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list recipients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecipientsFromDomain(recipients))
}

// Get returns one saved recipient.
func (h *RecipientHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing recipient ID", "")
		return
	}

	recipient, err := h.recipientUC.GetRecipient(r.Context(), userID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get recipient", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecipientFromDomain(recipient))
}

// Delete removes a saved recipient.
func (h *RecipientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing recipient ID", "")
		return
	}

	if err := h.recipientUC.DeleteRecipient(r.Context(), userID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete recipient", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
