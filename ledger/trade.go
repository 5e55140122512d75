package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Trade is one committed fill. Records are immutable once appended; the
// trade log only ever grows.
//
// CostBasis is the position's average cost immediately after the trade
// executed (for a sell, the basis the shares were sold against). Keeping it
// on the record means realized P/L stays derivable even after the position
// has been fully liquidated.
type Trade struct {
	ID        string          `json:"id" yaml:"id"`
	Symbol    string          `json:"symbol" yaml:"symbol"`
	Name      string          `json:"name" yaml:"name"`
	Side      Side            `json:"side" yaml:"side"`
	Quantity  int64           `json:"quantity" yaml:"quantity"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
	Total     decimal.Decimal `json:"total" yaml:"total"`
	CostBasis decimal.Decimal `json:"cost_basis" yaml:"cost_basis"`
	Time      time.Time       `json:"time" yaml:"time"`
}

// RealizedPL is (price - cost basis) x quantity for sells, zero otherwise.
func (t Trade) RealizedPL() decimal.Decimal {
	if t.Side != Sell {
		return decimal.Zero
	}
	return t.Price.Sub(t.CostBasis).Mul(decimal.NewFromInt(t.Quantity))
}
