package ledger

import "github.com/shopspring/decimal"

// Position is a holding of one listing. Quantity is always >= 1: a fully
// liquidated symbol has no Position at all. AvgCost is the volume-weighted
// average purchase price; partial sells never change it.
type Position struct {
	Symbol    string          `json:"symbol" yaml:"symbol"`
	Name      string          `json:"name" yaml:"name"`
	Quantity  int64           `json:"quantity" yaml:"quantity"`
	AvgCost   decimal.Decimal `json:"avg_cost" yaml:"avg_cost"`
	LastPrice decimal.Decimal `json:"last_price" yaml:"last_price"`
}

// MarketValue is quantity x last observed price.
func (p Position) MarketValue() decimal.Decimal {
	return p.LastPrice.Mul(decimal.NewFromInt(p.Quantity))
}

// UnrealizedPL is (last price - average cost) x quantity.
func (p Position) UnrealizedPL() decimal.Decimal {
	return p.LastPrice.Sub(p.AvgCost).Mul(decimal.NewFromInt(p.Quantity))
}

// PLPercent is the unrealized gain as a percentage of the cost basis.
func (p Position) PLPercent() decimal.Decimal {
	if p.AvgCost.IsZero() {
		return decimal.Zero
	}
	return p.LastPrice.Sub(p.AvgCost).Div(p.AvgCost).Mul(decimal.NewFromInt(100))
}
