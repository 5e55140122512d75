package market

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Stock is a single DSE listing as quoted by the exchange feed.
// LTP is the last traded price, YCP yesterday's closing price.
type Stock struct {
	Symbol        string          `json:"symbol" yaml:"symbol"`
	Name          string          `json:"name" yaml:"name"`
	LTP           decimal.Decimal `json:"ltp" yaml:"ltp"`
	Change        decimal.Decimal `json:"change" yaml:"change"`
	ChangePercent decimal.Decimal `json:"change_percent" yaml:"change_percent"`
	Volume        int64           `json:"volume" yaml:"volume"`
	High          decimal.Decimal `json:"high" yaml:"high"`
	Low           decimal.Decimal `json:"low" yaml:"low"`
	Open          decimal.Decimal `json:"open" yaml:"open"`
	YCP           decimal.Decimal `json:"ycp" yaml:"ycp"`
	Category      string          `json:"category" yaml:"category"`
	Sector        string          `json:"sector" yaml:"sector"`
}

// Index is a market-wide index quote (DSEX, DSES, DS30).
type Index struct {
	Name          string          `json:"name" yaml:"name"`
	Value         decimal.Decimal `json:"value" yaml:"value"`
	Change        decimal.Decimal `json:"change" yaml:"change"`
	ChangePercent decimal.Decimal `json:"change_percent" yaml:"change_percent"`
}

// Performance buckets a stock by its daily change percent.
type Performance string

const (
	Good   Performance = "good"
	Normal Performance = "normal"
	Bad    Performance = "bad"
)

var (
	goodThreshold = decimal.NewFromInt(2)
	badThreshold  = decimal.NewFromInt(-2)
)

func Classify(changePercent decimal.Decimal) Performance {
	switch {
	case changePercent.GreaterThanOrEqual(goodThreshold):
		return Good
	case changePercent.LessThanOrEqual(badThreshold):
		return Bad
	default:
		return Normal
	}
}

// Oracle is the read-only price source a ledger consults. Lookups must be
// deterministic for the duration of a single buy or sell.
type Oracle interface {
	Lookup(symbol string) (Stock, bool)
}

// Exchange is a static Oracle over a fixed listing table. All quotes are
// mock data; nothing here is live-fed.
type Exchange struct {
	stocks   []Stock
	bySymbol map[string]Stock
	indices  []Index
}

// NewExchange builds an Exchange over the given listings and indices.
func NewExchange(stocks []Stock, indices []Index) *Exchange {
	ex := &Exchange{
		stocks:   append([]Stock(nil), stocks...),
		bySymbol: make(map[string]Stock, len(stocks)),
		indices:  append([]Index(nil), indices...),
	}
	for _, s := range ex.stocks {
		ex.bySymbol[s.Symbol] = s
	}
	return ex
}

// DSE returns an Exchange loaded with the built-in Dhaka Stock Exchange
// dataset.
func DSE() *Exchange {
	return NewExchange(dseStocks, dseIndices)
}

func (ex *Exchange) Lookup(symbol string) (Stock, bool) {
	s, ok := ex.bySymbol[symbol]
	return s, ok
}

// Stocks returns all listings in listing order.
func (ex *Exchange) Stocks() []Stock {
	return append([]Stock(nil), ex.stocks...)
}

// Indices returns the market index quotes.
func (ex *Exchange) Indices() []Index {
	return append([]Index(nil), ex.indices...)
}

const topN = 10

// TopGainers returns up to ten listings with the highest change percent.
func (ex *Exchange) TopGainers() []Stock {
	out := ex.Stocks()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangePercent.GreaterThan(out[j].ChangePercent)
	})
	return truncate(out, topN)
}

// TopLosers returns up to ten listings with the lowest change percent.
func (ex *Exchange) TopLosers() []Stock {
	out := ex.Stocks()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangePercent.LessThan(out[j].ChangePercent)
	})
	return truncate(out, topN)
}

// MostActive returns up to ten listings with the highest volume.
func (ex *Exchange) MostActive() []Stock {
	out := ex.Stocks()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume > out[j].Volume
	})
	return truncate(out, topN)
}

// Search matches the query against symbols and company names,
// case-insensitively.
func (ex *Exchange) Search(query string) []Stock {
	q := strings.ToLower(query)
	var out []Stock
	for _, s := range ex.stocks {
		if strings.Contains(strings.ToLower(s.Symbol), q) ||
			strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s []Stock, n int) []Stock {
	if len(s) > n {
		return s[:n]
	}
	return s
}
