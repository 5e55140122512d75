// Package ledger implements the portfolio ledger: a virtual cash balance,
// per-symbol positions with weighted-average cost, and an append-only trade
// log, kept consistent across simulated buys and sells.
package ledger

import (
	"fmt"
	"iter"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arifulislam08173/bd-stockmarket-simulation/internal/id"
	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
)

// Ledger is the in-memory aggregate for one session. Exactly one session
// owns a Ledger, but every command still runs as a single critical section
// so the aggregate stays consistent if it is shared across request handlers.
//
// Commands either fully commit or fully decline; there is no partial state.
type Ledger struct {
	mu        sync.Mutex
	owner     session.Identity
	cash      decimal.Decimal
	positions map[string]*Position
	trades    []Trade // creation order
	watchlist map[string]struct{}
	oracle    market.Oracle

	now func() time.Time
}

// New creates an empty ledger for the given identity: no positions, no
// trades, no watchlist, cash set to the starting allowance.
func New(owner session.Identity, oracle market.Oracle) *Ledger {
	return &Ledger{
		owner:     owner,
		cash:      owner.StartingBalance,
		positions: make(map[string]*Position),
		watchlist: make(map[string]struct{}),
		oracle:    oracle,
		now:       time.Now,
	}
}

// Owner returns the identity this ledger was created for.
func (l *Ledger) Owner() session.Identity { return l.owner }

// Buy purchases quantity shares at price, the caller's observation of the
// oracle quote. It declines with ErrUnknownSymbol, ErrInvalidQuantity or
// ErrInsufficientFunds, leaving the ledger untouched.
func (l *Ledger) Buy(symbol string, quantity int64, price decimal.Decimal) (Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		return Trade{}, fmt.Errorf("buy %s: quantity %d: %w", symbol, quantity, ErrInvalidQuantity)
	}
	stock, ok := l.oracle.Lookup(symbol)
	if !ok {
		return Trade{}, fmt.Errorf("buy %s: %w", symbol, ErrUnknownSymbol)
	}

	total := price.Mul(decimal.NewFromInt(quantity))
	if total.GreaterThan(l.cash) {
		return Trade{}, fmt.Errorf("buy %s: cost %s exceeds cash %s: %w",
			symbol, total, l.cash, ErrInsufficientFunds)
	}

	l.cash = l.cash.Sub(total)

	pos, held := l.positions[symbol]
	if held {
		// Weighted-average cost basis over the combined lot.
		newQty := pos.Quantity + quantity
		oldCost := pos.AvgCost.Mul(decimal.NewFromInt(pos.Quantity))
		pos.AvgCost = oldCost.Add(total).Div(decimal.NewFromInt(newQty))
		pos.Quantity = newQty
		pos.LastPrice = price
	} else {
		pos = &Position{
			Symbol:    symbol,
			Name:      stock.Name,
			Quantity:  quantity,
			AvgCost:   price,
			LastPrice: price,
		}
		l.positions[symbol] = pos
	}

	trade := Trade{
		ID:        id.New(),
		Symbol:    symbol,
		Name:      stock.Name,
		Side:      Buy,
		Quantity:  quantity,
		Price:     price,
		Total:     total,
		CostBasis: pos.AvgCost,
		Time:      l.now(),
	}
	l.trades = append(l.trades, trade)
	return trade, nil
}

// Sell liquidates quantity shares at price. Selling the whole position
// removes it; a partial sell keeps the average cost unchanged. It declines
// with ErrInvalidQuantity or ErrInsufficientShares (which also covers
// symbols never held), leaving the ledger untouched.
func (l *Ledger) Sell(symbol string, quantity int64, price decimal.Decimal) (Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		return Trade{}, fmt.Errorf("sell %s: quantity %d: %w", symbol, quantity, ErrInvalidQuantity)
	}
	pos, held := l.positions[symbol]
	if !held {
		return Trade{}, fmt.Errorf("sell %s: no position: %w", symbol, ErrInsufficientShares)
	}
	if quantity > pos.Quantity {
		return Trade{}, fmt.Errorf("sell %s: have %d, want %d: %w",
			symbol, pos.Quantity, quantity, ErrInsufficientShares)
	}

	total := price.Mul(decimal.NewFromInt(quantity))
	l.cash = l.cash.Add(total)

	basis := pos.AvgCost
	if quantity == pos.Quantity {
		delete(l.positions, symbol)
	} else {
		pos.Quantity -= quantity
		pos.LastPrice = price
	}

	trade := Trade{
		ID:        id.New(),
		Symbol:    symbol,
		Name:      pos.Name,
		Side:      Sell,
		Quantity:  quantity,
		Price:     price,
		Total:     total,
		CostBasis: basis,
		Time:      l.now(),
	}
	l.trades = append(l.trades, trade)
	return trade, nil
}

// RefreshPrices re-reads the oracle quote for every held position and
// updates its last observed price. Quantity, cost basis and cash are never
// touched, so the call is idempotent and safe at any frequency.
func (l *Ledger) RefreshPrices() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for symbol, pos := range l.positions {
		if stock, ok := l.oracle.Lookup(symbol); ok {
			pos.LastPrice = stock.LTP
		}
	}
}

// Watch adds symbol to the watchlist. Idempotent; the watchlist is a UI
// convenience, so no existence check is made against the oracle.
func (l *Ledger) Watch(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watchlist[symbol] = struct{}{}
}

// Unwatch removes symbol from the watchlist. Idempotent.
func (l *Ledger) Unwatch(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.watchlist, symbol)
}

// Watched reports whether symbol is on the watchlist.
func (l *Ledger) Watched(symbol string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.watchlist[symbol]
	return ok
}

// Watchlist returns the watched symbols in sorted order.
func (l *Ledger) Watchlist() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.watchlist))
	for s := range l.watchlist {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Positions returns the held positions as a restartable sequence, ordered
// by symbol. Prices are as last observed; call RefreshPrices first if
// freshness matters.
func (l *Ledger) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, pos := range l.snapshotPositions() {
			if !yield(pos) {
				return
			}
		}
	}
}

func (l *Ledger) snapshotPositions() []Position {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.positionsLocked()
}

// positionsLocked copies the held positions in symbol order. Callers must
// hold l.mu.
func (l *Ledger) positionsLocked() []Position {
	out := make([]Position, 0, len(l.positions))
	for _, pos := range l.positions {
		out = append(out, *pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Trades returns the trade log, newest first.
func (l *Ledger) Trades() []Trade {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Trade, len(l.trades))
	for i, t := range l.trades {
		out[len(out)-1-i] = t
	}
	return out
}

// Cash returns the current cash balance.
func (l *Ledger) Cash() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash
}

// NetWorth is cash plus the market value of every position, at last
// observed prices.
func (l *Ledger) NetWorth() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := l.cash
	for _, pos := range l.positions {
		total = total.Add(pos.MarketValue())
	}
	return total
}
