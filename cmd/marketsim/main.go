package main

import (
	"os"

	"github.com/arifulislam08173/bd-stockmarket-simulation/cmd/marketsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
