package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marketsim",
	Short: "A Dhaka Stock Exchange trading simulator",
	Long: `Marketsim is a stock-trading simulator for the Dhaka Stock Exchange.

It provides tools for:
  - Serving the simulator's HTTP API for a browser front end
  - Browsing the static DSE market data (gainers, losers, most active)
  - Running scripted demo trading sessions
  - Querying persisted trade logs

All market data is static mock data; no live feed is involved.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
