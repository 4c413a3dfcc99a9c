package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the price of one unit of From in units of To.
type ExchangeRate struct {
	From        string
	To          string
	Rate        decimal.Decimal
	LastUpdated time.Time
}

// Validate rejects non-positive rates. A zero rate would make receive-side
// quoting divide by zero, so it is never allowed to enter the system.
func (r *ExchangeRate) Validate() error {
	if r.Rate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}

	return nil
}
