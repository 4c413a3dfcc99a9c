package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akosua/remitgh/internal/domain"
)

// RateUseCase serves exchange rates for the supported sending currencies.
// Rates are read through a cache; a currency without a known rate fails
// closed with ErrRateUnavailable rather than defaulting to 1, since a
// silent default would misprice every transfer in that corridor.
type RateUseCase struct {
	provider RateProvider
	cache    Cache
}

// NewRateUseCase creates a new RateUseCase.
func NewRateUseCase(provider RateProvider, cache Cache) *RateUseCase {
	return &RateUseCase{
		provider: provider,
		cache:    cache,
	}
}

// GetRate returns the rate from the given sending currency to GHS.
func (uc *RateUseCase) GetRate(ctx context.Context, from string) (*domain.ExchangeRate, error) {
	if _, ok := domain.SendingCountryByCurrency(from); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, from)
	}

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, rateCacheKey(from)); err == nil {
			var rate domain.ExchangeRate
			if err := json.Unmarshal([]byte(cached), &rate); err == nil {
				return &rate, nil
			}
		}
	}

	rates, err := uc.refresh(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range rates {
		if r.From == from {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, from)
}

// ListRates returns the full rate board for the sending countries.
func (uc *RateUseCase) ListRates(ctx context.Context) ([]*domain.ExchangeRate, error) {
	return uc.refresh(ctx)
}

// refresh fetches the board from the provider, drops invalid quotes and
// warms the cache.
func (uc *RateUseCase) refresh(ctx context.Context) ([]*domain.ExchangeRate, error) {
	fetched, err := uc.provider.FetchRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}

	var rates []*domain.ExchangeRate
	for _, r := range fetched {
		if err := r.Validate(); err != nil {
			continue
		}

		rates = append(rates, r)

		if uc.cache != nil {
			if payload, err := json.Marshal(r); err == nil {
				_ = uc.cache.Set(ctx, rateCacheKey(r.From), string(payload), RateCacheTTL)
			}
		}
	}

	if len(rates) == 0 {
		return nil, domain.ErrRateUnavailable
	}

	return rates, nil
}

func rateCacheKey(currency string) string {
	return "rates:" + currency + ":" + domain.ReceivingCountry.Currency
}
