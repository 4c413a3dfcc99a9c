package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

// BoardProvider serves a fixed corridor board. It stands in for a
// market data feed in development and tests; rates are quoted per unit
// of the sending currency into GHS.
type BoardProvider struct {
	board map[string]decimal.Decimal
	now   func() time.Time
}

// DefaultBoard returns the published corridor rates into GHS.
func DefaultBoard() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("16.25"),
		"CAD": decimal.RequireFromString("11.85"),
		"GBP": decimal.RequireFromString("20.15"),
	}
}

// NewBoardProvider creates a provider over the given board. A nil board
// uses DefaultBoard.
func NewBoardProvider(board map[string]decimal.Decimal) *BoardProvider {
	if board == nil {
		board = DefaultBoard()
	}
	return &BoardProvider{
		board: board,
		now:   time.Now,
	}
}

// FetchRates returns one quote per corridor on the board.
func (p *BoardProvider) FetchRates(ctx context.Context) ([]*domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := p.now().UTC()
	rates := make([]*domain.ExchangeRate, 0, len(p.board))
	for currency, rate := range p.board {
		rates = append(rates, &domain.ExchangeRate{
			From:        currency,
			To:          domain.ReceivingCountry.Currency,
			Rate:        rate,
			LastUpdated: now,
		})
	}

	return rates, nil
}

var _ usecase.RateProvider = (*BoardProvider)(nil)
