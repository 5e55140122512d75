package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
)

var (
	stocksGainers bool
	stocksLosers  bool
	stocksActive  bool
)

var stocksCmd = &cobra.Command{
	Use:   "stocks [query]",
	Short: "Browse the static DSE market data",
	Long: `List the built-in Dhaka Stock Exchange listings and indices.

An optional query filters by symbol or company name.

Examples:
  marketsim stocks
  marketsim stocks bank
  marketsim stocks --gainers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStocks,
}

func init() {
	rootCmd.AddCommand(stocksCmd)
	stocksCmd.Flags().BoolVar(&stocksGainers, "gainers", false, "show the top gainers")
	stocksCmd.Flags().BoolVar(&stocksLosers, "losers", false, "show the top losers")
	stocksCmd.Flags().BoolVar(&stocksActive, "active", false, "show the most active by volume")
}

func runStocks(cmd *cobra.Command, args []string) error {
	exchange := market.DSE()

	for _, idx := range exchange.Indices() {
		fmt.Printf("%-5s %10s  %8s (%s%%)\n", idx.Name, idx.Value, idx.Change, idx.ChangePercent)
	}
	fmt.Println()

	var stocks []market.Stock
	switch {
	case stocksGainers:
		stocks = exchange.TopGainers()
	case stocksLosers:
		stocks = exchange.TopLosers()
	case stocksActive:
		stocks = exchange.MostActive()
	case len(args) == 1:
		stocks = exchange.Search(args[0])
	default:
		stocks = exchange.Stocks()
	}

	if len(stocks) == 0 {
		fmt.Println("no matching listings")
		return nil
	}

	fmt.Printf("%-12s %-36s %9s %8s %8s %10s %-4s %s\n",
		"SYMBOL", "NAME", "LTP", "CHANGE", "CHG%", "VOLUME", "CAT", "SECTOR")
	for _, s := range stocks {
		fmt.Printf("%-12s %-36s %9s %8s %7s%% %10d %-4s %s\n",
			s.Symbol, s.Name, s.LTP, s.Change, s.ChangePercent, s.Volume, s.Category, s.Sector)
	}
	return nil
}
