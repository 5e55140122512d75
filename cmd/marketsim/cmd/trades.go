package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arifulislam08173/bd-stockmarket-simulation/ledger"
	"github.com/arifulislam08173/bd-stockmarket-simulation/store"
)

var tradesDBPath string

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Query persisted trade history",
	Long: `Query trade records from a SQLite snapshot store.

Subcommands:
  list   - List all trades, newest first
  get    - Get details of a specific trade by ID
  day    - List trades executed on a specific day

Examples:
  marketsim trades list
  marketsim trades get <trade-id>
  marketsim trades day 2026-08-31`,
}

var tradesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trades, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTradesList,
}

var tradesGetCmd = &cobra.Command{
	Use:   "get <trade-id>",
	Short: "Get details of a specific trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesGet,
}

var tradesDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades executed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesDay,
}

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(tradesListCmd)
	tradesCmd.AddCommand(tradesGetCmd)
	tradesCmd.AddCommand(tradesDayCmd)

	tradesCmd.PersistentFlags().StringVarP(&tradesDBPath, "db", "d", "./marketsim.db", "path to SQLite snapshot store")
}

func runTradesList(cmd *cobra.Command, args []string) error {
	s, err := store.NewSQLite(tradesDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	recs, err := s.ListTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	printTrades(recs)
	return nil
}

func runTradesGet(cmd *cobra.Command, args []string) error {
	s, err := store.NewSQLite(tradesDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	t, err := s.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Printf("Trade    %s\n", t.ID)
	fmt.Printf("Symbol   %s (%s)\n", t.Symbol, t.Name)
	fmt.Printf("Side     %s\n", t.Side)
	fmt.Printf("Quantity %d\n", t.Quantity)
	fmt.Printf("Price    %s\n", t.Price)
	fmt.Printf("Total    %s\n", t.Total)
	fmt.Printf("Basis    %s\n", t.CostBasis)
	fmt.Printf("Realized %s\n", t.RealizedPL())
	fmt.Printf("Time     %s\n", t.Time.Format(time.RFC3339))
	return nil
}

func runTradesDay(cmd *cobra.Command, args []string) error {
	s, err := store.NewSQLite(tradesDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	start, end, err := dayBounds(time.Local, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := s.ListTradesBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	printTrades(recs)
	return nil
}

func printTrades(recs []ledger.Trade) {
	if len(recs) == 0 {
		fmt.Println("no trades found")
		return
	}
	for _, t := range recs {
		fmt.Printf("%s  %-19s %-4s %4d x %-10s @ %8s  total %10s\n",
			t.ID, t.Time.Format("2006-01-02 15:04:05"), t.Side, t.Quantity, t.Symbol, t.Price, t.Total)
	}
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
