// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "ammvm",
	Short:         "Constant-product AMM over a local ledger",
	Long:          `A CLI for creating assets and pools, providing liquidity and swapping on a local ammvm ledger.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("data-dir", "", "Override the ledger data directory")
	rootCmd.PersistentFlags().String("log-level", "", "Override the log level")
	rootCmd.PersistentFlags().String("log-dir", "", "Write rotated JSON logs to this directory")
	rootCmd.PersistentFlags().String("actor", "", "Hex address of the account performing the action")
}

func main() {
	Execute()
}
