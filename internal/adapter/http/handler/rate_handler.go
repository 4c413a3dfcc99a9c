package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/akosua/remitgh/internal/adapter/http/dto"
	"github.com/akosua/remitgh/internal/domain"
)

// RateService exposes the rate board operations the handler depends on.
type RateService interface {
	ListRates(ctx context.Context) ([]*domain.ExchangeRate, error)
	GetRate(ctx context.Context, currency string) (*domain.ExchangeRate, error)
}

// RateHandler serves the exchange rate board.
type RateHandler struct {
	rateUC RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateUC RateService) *RateHandler {
	return &RateHandler{rateUC: rateUC}
}

// List returns all corridor rates.
func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateUC.ListRates(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list rates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RatesFromDomain(rates))
}

// Get returns the rate for one sending currency.
func (h *RateHandler) Get(w http.ResponseWriter, r *http.Request) {
	currency := strings.ToUpper(chi.URLParam(r, "currency"))
	if currency == "" {
		writeError(w, http.StatusBadRequest, "missing currency", "")
		return
	}

	rate, err := h.rateUC.GetRate(r.Context(), currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get rate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RateFromDomain(rate))
}
