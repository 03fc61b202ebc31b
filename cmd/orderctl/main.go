package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/openalpha/orderbook/cmd/orderctl/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.NewLogger(os.Stderr).Error("orderctl failed", "err", err)
		os.Exit(1)
	}
}
