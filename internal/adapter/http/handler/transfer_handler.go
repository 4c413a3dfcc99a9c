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

// TransferService exposes the draft and submission operations the
// handler depends on.
type TransferService interface {
	SetAmount(ctx context.Context, input usecase.QuoteInput) (*domain.TransferDraft, error)
	SetRecipient(ctx context.Context, userID string, recipient *domain.Recipient) (*domain.TransferDraft, error)
	SetPaymentMethod(ctx context.Context, userID string, method domain.PaymentMethod) (*domain.TransferDraft, error)
	GetDraft(ctx context.Context, userID string) *domain.TransferDraft
	ResetDraft(ctx context.Context, userID string)
	Submit(ctx context.Context, input usecase.SubmitInput) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, userID, id string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

// TransferHandler handles the transfer draft and submission endpoints.
type TransferHandler struct {
	transferUC  TransferService
	recipientUC RecipientService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService, recipientUC RecipientService) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, recipientUC: recipientUC}
}

// SetAmount prices the draft from one side of the corridor.
func (h *TransferHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	draft, err := h.transferUC.SetAmount(r.Context(), req.ToUseCaseInput(userID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set amount", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DraftFromDomain(draft))
}

// SetRecipient attaches a saved recipient to the draft. The transfer
// method follows from the recipient's payout details.
func (h *TransferHandler) SetRecipient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SetDraftRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	recipient, err := h.recipientUC.GetRecipient(r.Context(), userID, req.RecipientID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load recipient", err.Error())
		return
	}

	draft, err := h.transferUC.SetRecipient(r.Context(), userID, recipient)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set recipient", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DraftFromDomain(draft))
}

// SetPaymentMethod records how the sender will fund the transfer.
func (h *TransferHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SetPaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	draft, err := h.transferUC.SetPaymentMethod(r.Context(), userID, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set payment method", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DraftFromDomain(draft))
}

// GetDraft returns the in-progress transfer draft.
func (h *TransferHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	draft := h.transferUC.GetDraft(r.Context(), userID)

	writeJSON(w, http.StatusOK, dto.DraftFromDomain(draft))
}

// ResetDraft discards the in-progress transfer draft.
func (h *TransferHandler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	h.transferUC.ResetDraft(r.Context(), userID)

	w.WriteHeader(http.StatusNoContent)
}

// Submit charges the sender and records the transfer. The Idempotency-Key
// header takes precedence over the body field.
func (h *TransferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SubmitTransferRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
	}

	key := r.Header.Get("Idempotency-Key")
	if key == "" {
		key = req.IdempotencyKey
	}

	txn, err := h.transferUC.Submit(r.Context(), usecase.SubmitInput{
		UserID:         userID,
		IdempotencyKey: key,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to submit transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// GetTransaction returns one submitted transfer.
func (h *TransferHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	txn, err := h.transferUC.GetTransaction(r.Context(), userID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListTransactions returns the user's transfer history.
func (h *TransferHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	transactions, err := h.transferUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		UserID: userID,
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}
