package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arifulislam08173/bd-stockmarket-simulation/config"
	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/server"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
	"github.com/arifulislam08173/bd-stockmarket-simulation/store"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulator's HTTP API",
	Long: `Serve the command/query API a browser front end drives: auth,
market data, buy/sell, portfolio, trade history and watchlist.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	snaps, err := openStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if snaps != nil {
		defer snaps.Close()
	}

	srv := server.New(server.Config{
		Addr:     cfg.Server.Addr,
		Exchange: market.DSE(),
		Provider: session.NewMockProvider(cfg.Account.StartingBalance),
		Snaps:    snaps,
		Log:      log,
	})
	return srv.Run()
}

func openStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Type {
	case "sqlite":
		return store.NewSQLite(cfg.Path)
	case "json":
		return store.NewJSONFile(cfg.Path), nil
	default:
		return nil, nil
	}
}
