package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/adapter/http/dto"
	"github.com/akosua/remitgh/internal/domain"
)

type rateServiceStub struct {
	listFn func(ctx context.Context) ([]*domain.ExchangeRate, error)
	getFn  func(ctx context.Context, currency string) (*domain.ExchangeRate, error)
}

func (s *rateServiceStub) ListRates(ctx context.Context) ([]*domain.ExchangeRate, error) {
	return s.listFn(ctx)
}

func (s *rateServiceStub) GetRate(ctx context.Context, currency string) (*domain.ExchangeRate, error) {
	return s.getFn(ctx, currency)
}

func TestRateHandler_List(t *testing.T) {
	handler := NewRateHandler(&rateServiceStub{
		listFn: func(ctx context.Context) ([]*domain.ExchangeRate, error) {
			return []*domain.ExchangeRate{
				{From: "USD", To: "GHS", Rate: decimal.RequireFromString("16.25"), LastUpdated: time.Now()},
				{From: "GBP", To: "GHS", Rate: decimal.RequireFromString("20.15"), LastUpdated: time.Now()},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/rates", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.RateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].To != "GHS" {
		t.Fatalf("expected two GHS quotes, got %+v", resp)
	}
}

func TestRateHandler_Get_LowercaseCurrency(t *testing.T) {
	handler := NewRateHandler(&rateServiceStub{
		getFn: func(ctx context.Context, currency string) (*domain.ExchangeRate, error) {
			if currency != "USD" {
				t.Fatalf("expected uppercased currency, got %q", currency)
			}
			return &domain.ExchangeRate{From: "USD", To: "GHS", Rate: decimal.RequireFromString("16.25")}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/rates/usd", nil)
	req = setChiURLParam(req, "currency", "usd")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRateHandler_Get_Unsupported(t *testing.T) {
	handler := NewRateHandler(&rateServiceStub{
		getFn: func(ctx context.Context, currency string) (*domain.ExchangeRate, error) {
			return nil, domain.ErrUnsupportedCurrency
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/rates/EUR", nil)
	req = setChiURLParam(req, "currency", "EUR")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestRateHandler_Get_BoardDown(t *testing.T) {
	handler := NewRateHandler(&rateServiceStub{
		getFn: func(ctx context.Context, currency string) (*domain.ExchangeRate, error) {
			return nil, domain.ErrRateUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/rates/USD", nil)
	req = setChiURLParam(req, "currency", "USD")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
