package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func newLedger(t *testing.T, balance string) *Ledger {
	t.Helper()
	ident := session.Identity{
		ID:              "user-1",
		Name:            "demo",
		Email:           "demo@example.com",
		StartingBalance: dec(t, balance),
	}
	return New(ident, market.DSE())
}

func mustBuy(t *testing.T, l *Ledger, symbol string, qty int64, price string) Trade {
	t.Helper()
	trade, err := l.Buy(symbol, qty, dec(t, price))
	if err != nil {
		t.Fatalf("buy %s x%d: %v", symbol, qty, err)
	}
	return trade
}

func mustSell(t *testing.T, l *Ledger, symbol string, qty int64, price string) Trade {
	t.Helper()
	trade, err := l.Sell(symbol, qty, dec(t, price))
	if err != nil {
		t.Fatalf("sell %s x%d: %v", symbol, qty, err)
	}
	return trade
}

func wantCash(t *testing.T, l *Ledger, want string) {
	t.Helper()
	if !l.Cash().Equal(dec(t, want)) {
		t.Fatalf("cash mismatch: got %s want %s", l.Cash(), want)
	}
}

func position(t *testing.T, l *Ledger, symbol string) (Position, bool) {
	t.Helper()
	for pos := range l.Positions() {
		if pos.Symbol == symbol {
			return pos, true
		}
	}
	return Position{}, false
}

func TestBuyOpensPosition(t *testing.T) {
	l := newLedger(t, "1000000")

	trade := mustBuy(t, l, "BEXIMCO", 100, "134.50")

	wantCash(t, l, "986550")
	if trade.Side != Buy || trade.Quantity != 100 {
		t.Fatalf("unexpected trade: %+v", trade)
	}
	if !trade.Total.Equal(dec(t, "13450")) {
		t.Fatalf("total mismatch: got %s", trade.Total)
	}

	pos, ok := position(t, l, "BEXIMCO")
	if !ok {
		t.Fatal("position not created")
	}
	if pos.Quantity != 100 || !pos.AvgCost.Equal(dec(t, "134.50")) {
		t.Fatalf("unexpected position: %+v", pos)
	}
	if pos.Name != "Beximco Limited" {
		t.Fatalf("company name not captured: %q", pos.Name)
	}
}

func TestBuyAveragesCost(t *testing.T) {
	l := newLedger(t, "10000")

	mustBuy(t, l, "BEXIMCO", 10, "100")
	mustBuy(t, l, "BEXIMCO", 10, "120")

	pos, ok := position(t, l, "BEXIMCO")
	if !ok {
		t.Fatal("position missing")
	}
	if pos.Quantity != 20 {
		t.Fatalf("quantity: got %d want 20", pos.Quantity)
	}
	if !pos.AvgCost.Equal(dec(t, "110")) {
		t.Fatalf("average cost: got %s want 110", pos.AvgCost)
	}
}

func TestSellKeepsCostBasis(t *testing.T) {
	l := newLedger(t, "10000")
	mustBuy(t, l, "BEXIMCO", 10, "100")
	mustBuy(t, l, "BEXIMCO", 10, "120")
	cashBefore := l.Cash()

	trade := mustSell(t, l, "BEXIMCO", 5, "150")

	pos, ok := position(t, l, "BEXIMCO")
	if !ok {
		t.Fatal("position missing after partial sell")
	}
	if pos.Quantity != 15 {
		t.Fatalf("quantity: got %d want 15", pos.Quantity)
	}
	if !pos.AvgCost.Equal(dec(t, "110")) {
		t.Fatalf("partial sell changed average cost: %s", pos.AvgCost)
	}
	if !l.Cash().Equal(cashBefore.Add(dec(t, "750"))) {
		t.Fatalf("cash mismatch: got %s", l.Cash())
	}
	if !trade.CostBasis.Equal(dec(t, "110")) {
		t.Fatalf("cost basis not recorded: %s", trade.CostBasis)
	}
	if !trade.RealizedPL().Equal(dec(t, "200")) {
		t.Fatalf("realized P/L: got %s want 200", trade.RealizedPL())
	}
}

func TestSellAllRemovesPosition(t *testing.T) {
	l := newLedger(t, "10000")
	mustBuy(t, l, "BEXIMCO", 10, "100")

	mustSell(t, l, "BEXIMCO", 10, "110")

	if _, ok := position(t, l, "BEXIMCO"); ok {
		t.Fatal("fully liquidated position still present")
	}
	wantCash(t, l, "10100")
}

func TestDeclinesLeaveStateUntouched(t *testing.T) {
	l := newLedger(t, "1000")
	mustBuy(t, l, "BEXIMCO", 5, "100")
	before := l.Snapshot()

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"unknown symbol", func() error {
			_, err := l.Buy("NOPE", 1, dec(t, "10"))
			return err
		}, ErrUnknownSymbol},
		{"zero quantity buy", func() error {
			_, err := l.Buy("BEXIMCO", 0, dec(t, "10"))
			return err
		}, ErrInvalidQuantity},
		{"negative quantity sell", func() error {
			_, err := l.Sell("BEXIMCO", -3, dec(t, "10"))
			return err
		}, ErrInvalidQuantity},
		{"insufficient funds", func() error {
			_, err := l.Buy("BEXIMCO", 1000, dec(t, "100"))
			return err
		}, ErrInsufficientFunds},
		{"sell unheld symbol", func() error {
			_, err := l.Sell("GP", 1, dec(t, "10"))
			return err
		}, ErrInsufficientShares},
		{"oversell", func() error {
			_, err := l.Sell("BEXIMCO", 6, dec(t, "10"))
			return err
		}, ErrInsufficientShares},
	}

	for _, tc := range cases {
		err := tc.call()
		if err == nil {
			t.Fatalf("%s: expected decline", tc.name)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	after := l.Snapshot()
	assertSnapshotsEqual(t, before, after)
}

func TestTradeLogMonotonic(t *testing.T) {
	l := newLedger(t, "1000000")

	mustBuy(t, l, "BEXIMCO", 10, "100")
	mustBuy(t, l, "GP", 5, "350")
	mustSell(t, l, "BEXIMCO", 10, "120")
	if _, err := l.Sell("BEXIMCO", 1, dec(t, "120")); err == nil {
		t.Fatal("expected decline")
	}

	trades := l.Trades()
	if len(trades) != 3 {
		t.Fatalf("trade log length: got %d want 3", len(trades))
	}
	// Newest first.
	if trades[0].Side != Sell || trades[0].Symbol != "BEXIMCO" {
		t.Fatalf("unexpected newest trade: %+v", trades[0])
	}
	if trades[2].Symbol != "BEXIMCO" || trades[2].Side != Buy {
		t.Fatalf("unexpected oldest trade: %+v", trades[2])
	}
	for i, tr := range trades {
		if tr.ID == "" {
			t.Fatalf("trade %d missing id", i)
		}
	}
}

func TestScenarioBeximco(t *testing.T) {
	l := newLedger(t, "1000000")

	mustBuy(t, l, "BEXIMCO", 100, "134.50")
	wantCash(t, l, "986550.00")
	pos, _ := position(t, l, "BEXIMCO")
	if pos.Quantity != 100 || !pos.AvgCost.Equal(dec(t, "134.50")) {
		t.Fatalf("unexpected position: %+v", pos)
	}

	mustSell(t, l, "BEXIMCO", 40, "140.00")
	wantCash(t, l, "992150.00")
	pos, _ = position(t, l, "BEXIMCO")
	if pos.Quantity != 60 || !pos.AvgCost.Equal(dec(t, "134.50")) {
		t.Fatalf("unexpected position after partial sell: %+v", pos)
	}

	mustSell(t, l, "BEXIMCO", 60, "140.00")
	wantCash(t, l, "1000550.00")
	if _, ok := position(t, l, "BEXIMCO"); ok {
		t.Fatal("position should be removed")
	}
	if len(l.Trades()) != 3 {
		t.Fatalf("trade log: got %d want 3", len(l.Trades()))
	}
}

func TestSolvency(t *testing.T) {
	l := newLedger(t, "5000")

	steps := []struct {
		side   Side
		symbol string
		qty    int64
		price  string
	}{
		{Buy, "BEXIMCO", 10, "100"},
		{Buy, "UTTARABANK", 100, "22.50"},
		{Sell, "BEXIMCO", 4, "90"},
		{Buy, "BEXIMCO", 30, "95"},
		{Sell, "UTTARABANK", 100, "23"},
		{Buy, "GP", 5, "352.60"},
	}

	for _, step := range steps {
		var err error
		if step.side == Buy {
			_, err = l.Buy(step.symbol, step.qty, dec(t, step.price))
		} else {
			_, err = l.Sell(step.symbol, step.qty, dec(t, step.price))
		}
		_ = err // declines are fine; solvency must hold regardless
		if l.Cash().IsNegative() {
			t.Fatalf("cash went negative: %s", l.Cash())
		}
	}

	for pos := range l.Positions() {
		if pos.Quantity < 1 {
			t.Fatalf("position %s has quantity %d", pos.Symbol, pos.Quantity)
		}
	}
}

func TestRefreshPricesOnlyTouchesLastPrice(t *testing.T) {
	l := newLedger(t, "1000000")
	mustBuy(t, l, "BEXIMCO", 10, "120")
	cash := l.Cash()

	l.RefreshPrices()
	l.RefreshPrices() // idempotent

	pos, _ := position(t, l, "BEXIMCO")
	if !pos.LastPrice.Equal(dec(t, "134.50")) {
		t.Fatalf("last price not refreshed from oracle: %s", pos.LastPrice)
	}
	if pos.Quantity != 10 || !pos.AvgCost.Equal(dec(t, "120")) {
		t.Fatalf("refresh mutated position: %+v", pos)
	}
	if !l.Cash().Equal(cash) {
		t.Fatalf("refresh mutated cash: %s", l.Cash())
	}
}

func TestWatchlistIdempotent(t *testing.T) {
	l := newLedger(t, "1000")

	l.Watch("ROBI")
	l.Watch("ROBI")
	l.Watch("GP")
	l.Watch("UNLISTED") // watchlist does not consult the oracle

	got := l.Watchlist()
	want := []string{"GP", "ROBI", "UNLISTED"}
	if len(got) != len(want) {
		t.Fatalf("watchlist: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("watchlist: got %v want %v", got, want)
		}
	}

	l.Unwatch("ROBI")
	l.Unwatch("ROBI")
	if l.Watched("ROBI") {
		t.Fatal("ROBI still watched after removal")
	}
	if !l.Watched("GP") {
		t.Fatal("GP dropped from watchlist")
	}
}

func TestNetWorth(t *testing.T) {
	l := newLedger(t, "1000000")
	mustBuy(t, l, "BEXIMCO", 100, "134.50")

	// Cash went down by exactly the position's value, so net worth is
	// conserved at the observed price.
	if !l.NetWorth().Equal(dec(t, "1000000")) {
		t.Fatalf("net worth: got %s want 1000000", l.NetWorth())
	}
}

func TestPositionsSequenceIsRestartable(t *testing.T) {
	l := newLedger(t, "1000000")
	mustBuy(t, l, "GP", 1, "350")
	mustBuy(t, l, "BEXIMCO", 1, "134.50")

	seq := l.Positions()

	for range 2 {
		var symbols []string
		for pos := range seq {
			symbols = append(symbols, pos.Symbol)
		}
		if len(symbols) != 2 || symbols[0] != "BEXIMCO" || symbols[1] != "GP" {
			t.Fatalf("unexpected iteration order: %v", symbols)
		}
	}

	// Early break must not poison later restarts.
	for range seq {
		break
	}
	n := 0
	for range seq {
		n++
	}
	if n != 2 {
		t.Fatalf("sequence not restartable after break: %d", n)
	}
}

func TestPositionDerivedFields(t *testing.T) {
	pos := Position{
		Symbol:    "BEXIMCO",
		Quantity:  20,
		AvgCost:   decimal.NewFromInt(110),
		LastPrice: decimal.NewFromInt(132),
	}

	if !pos.MarketValue().Equal(decimal.NewFromInt(2640)) {
		t.Fatalf("market value: %s", pos.MarketValue())
	}
	if !pos.UnrealizedPL().Equal(decimal.NewFromInt(440)) {
		t.Fatalf("unrealized P/L: %s", pos.UnrealizedPL())
	}
	if !pos.PLPercent().Equal(decimal.NewFromInt(20)) {
		t.Fatalf("P/L percent: %s", pos.PLPercent())
	}
}
