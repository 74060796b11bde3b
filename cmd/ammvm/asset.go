// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/ammvm/actions"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/utils"
	"github.com/ava-labs/ammvm/vm"
)

var accountCmd = &cobra.Command{
	Use:   "account [name]",
	Short: "Print the account address derived from a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		addr := codec.CreateAddress(consts.AccountID, utils.ToID([]byte(args[0])))
		utils.Outf("{{yellow}}%s:{{/}} %s\n", args[0], addr)
		return nil
	},
}

var createAssetCmd = &cobra.Command{
	Use:   "create-asset",
	Short: "Create a new asset owned by the actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			return err
		}
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}
		decimals, err := cmd.Flags().GetUint8("decimals")
		if err != nil {
			return err
		}
		outputs, err := execute(cmd, &actions.CreateAsset{
			Name:     []byte(name),
			Symbol:   []byte(symbol),
			Decimals: decimals,
		})
		if err != nil {
			return err
		}
		return printAddresses(outputs, "asset")
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint units of an asset owned by the actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		asset, err := addressFlag(cmd, "asset")
		if err != nil {
			return err
		}
		to, err := addressFlag(cmd, "to")
		if err != nil {
			return err
		}
		amount, err := cmd.Flags().GetUint64("amount")
		if err != nil {
			return err
		}
		_, err = execute(cmd, &actions.MintAsset{Asset: asset, To: to, Amount: amount})
		return err
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer units of an asset from the actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		asset, err := addressFlag(cmd, "asset")
		if err != nil {
			return err
		}
		to, err := addressFlag(cmd, "to")
		if err != nil {
			return err
		}
		amount, err := cmd.Flags().GetUint64("amount")
		if err != nil {
			return err
		}
		_, err = execute(cmd, &actions.TransferAsset{Asset: asset, To: to, Amount: amount})
		return err
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the balance of an account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		asset, err := addressFlag(cmd, "asset")
		if err != nil {
			return err
		}
		account, err := optionalAddressFlag(cmd, "account")
		if err != nil {
			return err
		}
		if account == codec.EmptyAddress {
			account, err = actorFlag(cmd)
			if err != nil {
				return err
			}
		}
		return withController(cmd, func(ctx context.Context, c *vm.Controller) error {
			a, err := c.Asset(ctx, asset)
			if err != nil {
				return err
			}
			balance, err := c.Balance(ctx, asset, account)
			if err != nil {
				return err
			}
			utils.Outf("{{yellow}}balance:{{/}} %s %s\n", utils.FormatAmount(balance, a.Decimals), a.Symbol)
			return nil
		})
	},
}

func init() {
	createAssetCmd.Flags().String("name", "", "Asset name")
	createAssetCmd.Flags().String("symbol", "", "Asset symbol")
	createAssetCmd.Flags().Uint8("decimals", 9, "Asset decimals")

	for _, cmd := range []*cobra.Command{mintCmd, transferCmd} {
		cmd.Flags().String("asset", "", "Asset address")
		cmd.Flags().String("to", "", "Recipient address")
		cmd.Flags().Uint64("amount", 0, "Amount in base units")
	}

	balanceCmd.Flags().String("asset", "", "Asset address")
	balanceCmd.Flags().String("account", "", "Account address (defaults to --actor)")

	rootCmd.AddCommand(accountCmd, createAssetCmd, mintCmd, transferCmd, balanceCmd)
}
