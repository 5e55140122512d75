package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
)

// Snapshot is the full serializable state of a ledger. A persistence
// collaborator decides how and when snapshots are stored; the ledger only
// guarantees that FromSnapshot(l.Snapshot()) behaves identically to l.
type Snapshot struct {
	Owner     Owner           `json:"owner" yaml:"owner"`
	Cash      decimal.Decimal `json:"cash" yaml:"cash"`
	Positions []Position      `json:"positions" yaml:"positions"`
	Trades    []Trade         `json:"trades" yaml:"trades"`
	Watchlist []string        `json:"watchlist" yaml:"watchlist"`
}

// Owner mirrors session.Identity with serialization tags.
type Owner struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Email           string          `json:"email" yaml:"email"`
	StartingBalance decimal.Decimal `json:"starting_balance" yaml:"starting_balance"`
}

// Snapshot emits the current state. Positions are symbol-ordered and trades
// in creation order, so equal states emit equal snapshots. The whole state
// is captured in one critical section, so a snapshot taken while other
// goroutines trade never pairs cash from one trade with positions from
// another.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot{
		Owner: Owner{
			ID:              l.owner.ID,
			Name:            l.owner.Name,
			Email:           l.owner.Email,
			StartingBalance: l.owner.StartingBalance,
		},
		Cash:      l.cash,
		Positions: l.positionsLocked(),
		Trades:    append([]Trade(nil), l.trades...),
	}
	for s := range l.watchlist {
		snap.Watchlist = append(snap.Watchlist, s)
	}
	sort.Strings(snap.Watchlist)
	return snap
}

// FromSnapshot reconstructs a ledger. A snapshot that violates the ledger
// invariants is rejected here, before any ledger exists.
func FromSnapshot(snap Snapshot, oracle market.Oracle) (*Ledger, error) {
	if snap.Cash.IsNegative() {
		return nil, fmt.Errorf("snapshot: negative cash %s", snap.Cash)
	}

	positions := make(map[string]*Position, len(snap.Positions))
	for _, pos := range snap.Positions {
		if pos.Symbol == "" {
			return nil, fmt.Errorf("snapshot: position with empty symbol")
		}
		if _, dup := positions[pos.Symbol]; dup {
			return nil, fmt.Errorf("snapshot: duplicate position %s", pos.Symbol)
		}
		if pos.Quantity < 1 {
			return nil, fmt.Errorf("snapshot: position %s: quantity %d", pos.Symbol, pos.Quantity)
		}
		if !pos.AvgCost.IsPositive() {
			return nil, fmt.Errorf("snapshot: position %s: average cost %s", pos.Symbol, pos.AvgCost)
		}
		if pos.LastPrice.IsNegative() {
			return nil, fmt.Errorf("snapshot: position %s: last price %s", pos.Symbol, pos.LastPrice)
		}
		p := pos
		positions[pos.Symbol] = &p
	}

	for _, t := range snap.Trades {
		if t.Side != Buy && t.Side != Sell {
			return nil, fmt.Errorf("snapshot: trade %s: side %q", t.ID, t.Side)
		}
		if t.Quantity <= 0 {
			return nil, fmt.Errorf("snapshot: trade %s: quantity %d", t.ID, t.Quantity)
		}
	}

	l := &Ledger{
		owner: session.Identity{
			ID:              snap.Owner.ID,
			Name:            snap.Owner.Name,
			Email:           snap.Owner.Email,
			StartingBalance: snap.Owner.StartingBalance,
		},
		cash:      snap.Cash,
		positions: positions,
		trades:    append([]Trade(nil), snap.Trades...),
		watchlist: make(map[string]struct{}, len(snap.Watchlist)),
		oracle:    oracle,
		now:       time.Now,
	}
	for _, s := range snap.Watchlist {
		l.watchlist[s] = struct{}{}
	}
	return l, nil
}
