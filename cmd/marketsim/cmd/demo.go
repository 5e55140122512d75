package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arifulislam08173/bd-stockmarket-simulation/ledger"
	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
	"github.com/arifulislam08173/bd-stockmarket-simulation/store"
)

var demoSavePath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted trading session",
	Long: `Run a scripted demo session against the static DSE data.

Shows the basic workflow of:
  1. Logging in with the mock identity provider
  2. Buying into a position and averaging up
  3. Selling part of the position, then liquidating it
  4. Reviewing portfolio, trade history and net worth

With --save, the final ledger snapshot is written to a SQLite store that
"marketsim trades" can query later.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoSavePath, "save", "", "path to a SQLite store for the final snapshot")
}

func runDemo(cmd *cobra.Command, args []string) error {
	provider := session.NewMockProvider(session.DefaultStartingBalance)
	ident, err := provider.Login("demo@example.com", "demo-pass")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	exchange := market.DSE()
	l := ledger.New(ident, exchange)

	fmt.Printf("Logged in as %s with BDT %s\n\n", ident.Name, l.Cash())

	script := []struct {
		side   ledger.Side
		symbol string
		qty    int64
	}{
		{ledger.Buy, "BEXIMCO", 100},
		{ledger.Buy, "GP", 20},
		{ledger.Buy, "BEXIMCO", 50},
		{ledger.Sell, "BEXIMCO", 40},
		{ledger.Sell, "GP", 20},
	}

	for _, step := range script {
		stock, _ := exchange.Lookup(step.symbol)

		var trade ledger.Trade
		if step.side == ledger.Buy {
			trade, err = l.Buy(step.symbol, step.qty, stock.LTP)
		} else {
			trade, err = l.Sell(step.symbol, step.qty, stock.LTP)
		}
		if err != nil {
			fmt.Printf("  declined: %v\n", err)
			continue
		}
		fmt.Printf("  %-4s %4d x %-10s @ %8s  total %10s  cash %12s\n",
			trade.Side, trade.Quantity, trade.Symbol, trade.Price, trade.Total, l.Cash())
	}

	l.Watch("ROBI")
	l.Watch("BRACBANK")

	fmt.Println("\nPortfolio:")
	for pos := range l.Positions() {
		fmt.Printf("  %-10s qty %4d  avg cost %8s  last %8s  value %10s  P/L %s (%s%%)\n",
			pos.Symbol, pos.Quantity, pos.AvgCost, pos.LastPrice,
			pos.MarketValue(), pos.UnrealizedPL(), pos.PLPercent().Round(2))
	}

	fmt.Println("\nTrades (newest first):")
	for _, t := range l.Trades() {
		fmt.Printf("  %s  %-4s %4d x %-10s @ %8s  realized %s\n",
			t.ID, t.Side, t.Quantity, t.Symbol, t.Price, t.RealizedPL())
	}

	fmt.Printf("\nWatchlist: %v\n", l.Watchlist())
	fmt.Printf("Cash:      BDT %s\n", l.Cash())
	fmt.Printf("Net worth: BDT %s\n", l.NetWorth())

	if demoSavePath != "" {
		snaps, err := store.NewSQLite(demoSavePath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer snaps.Close()

		if err := snaps.Save(l.Snapshot()); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		fmt.Printf("\nSnapshot saved to %s\n", demoSavePath)
	}
	return nil
}
