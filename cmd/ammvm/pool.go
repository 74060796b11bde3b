// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/ammvm/actions"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/storage"
	"github.com/ava-labs/ammvm/utils"
	"github.com/ava-labs/ammvm/vm"
)

// poolAssets reads --pool, --asset-x and --asset-y.
func poolAssets(cmd *cobra.Command) (codec.Address, codec.Address, codec.Address, error) {
	pool, err := addressFlag(cmd, "pool")
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	assetX, err := addressFlag(cmd, "asset-x")
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	assetY, err := addressFlag(cmd, "asset-y")
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	return pool, assetX, assetY, nil
}

var initPoolCmd = &cobra.Command{
	Use:   "init-pool",
	Short: "Initialize a pool for a pair of assets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return err
		}
		assetX, err := addressFlag(cmd, "asset-x")
		if err != nil {
			return err
		}
		assetY, err := addressFlag(cmd, "asset-y")
		if err != nil {
			return err
		}
		fee, err := cmd.Flags().GetUint16("fee-bps")
		if err != nil {
			return err
		}
		authority, err := optionalAddressFlag(cmd, "authority")
		if err != nil {
			return err
		}
		outputs, err := execute(cmd, &actions.Initialize{
			Seed:      seed,
			AssetX:    assetX,
			AssetY:    assetY,
			FeeBps:    fee,
			Authority: authority,
		})
		if err != nil {
			return err
		}
		return printAddresses(outputs, "pool", "lp asset")
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Add liquidity to a pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, assetX, assetY, err := poolAssets(cmd)
		if err != nil {
			return err
		}
		action := &actions.AddLiquidity{Pool: pool, AssetX: assetX, AssetY: assetY}
		for name, dest := range map[string]*uint64{
			"amount-x":   &action.AmountX,
			"amount-y":   &action.AmountY,
			"max-x":      &action.MaxX,
			"max-y":      &action.MaxY,
			"min-lp-out": &action.MinLPOut,
		} {
			if *dest, err = cmd.Flags().GetUint64(name); err != nil {
				return err
			}
		}
		if action.Expiration, err = expirationFlag(cmd); err != nil {
			return err
		}
		outputs, err := execute(cmd, action)
		if err != nil {
			return err
		}
		printAmounts(outputs, "lp minted", "x deposited", "y deposited")
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Burn LP units for a share of the reserves",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, assetX, assetY, err := poolAssets(cmd)
		if err != nil {
			return err
		}
		action := &actions.RemoveLiquidity{Pool: pool, AssetX: assetX, AssetY: assetY}
		for name, dest := range map[string]*uint64{
			"lp-in": &action.LPIn,
			"min-x": &action.MinX,
			"min-y": &action.MinY,
		} {
			if *dest, err = cmd.Flags().GetUint64(name); err != nil {
				return err
			}
		}
		outputs, err := execute(cmd, action)
		if err != nil {
			return err
		}
		printAmounts(outputs, "x returned", "y returned")
		return nil
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap one pool asset for the other",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, assetX, assetY, err := poolAssets(cmd)
		if err != nil {
			return err
		}
		action := &actions.Swap{Pool: pool, AssetX: assetX, AssetY: assetY}
		if action.AmountIn, err = cmd.Flags().GetUint64("amount-in"); err != nil {
			return err
		}
		if action.MinAmountOut, err = cmd.Flags().GetUint64("min-out"); err != nil {
			return err
		}
		yToX, err := cmd.Flags().GetBool("y-to-x")
		if err != nil {
			return err
		}
		action.XToY = !yToX
		if action.Expiration, err = expirationFlag(cmd); err != nil {
			return err
		}
		outputs, err := execute(cmd, action)
		if err != nil {
			return err
		}
		printAmounts(outputs, "amount out")
		return nil
	},
}

func newLockCmd(use string, locked bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Set the locked flag of a pool to %t", locked),
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := addressFlag(cmd, "pool")
			if err != nil {
				return err
			}
			_, err = execute(cmd, &actions.SetLocked{Pool: pool, Locked: locked})
			return err
		},
	}
	cmd.Flags().String("pool", "", "Pool address")
	return cmd
}

// poolView is the YAML form printed by the pool command.
type poolView struct {
	Address  codec.Address `yaml:"address"`
	Pool     *storage.Pool `yaml:"config"`
	ReserveX uint64        `yaml:"reserveX"`
	ReserveY uint64        `yaml:"reserveY"`
	LPSupply uint64        `yaml:"lpSupply"`
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Print a pool's configuration and reserves as YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		return withController(cmd, func(ctx context.Context, c *vm.Controller) error {
			pool, err := c.Pool(ctx, addr)
			if err != nil {
				return err
			}
			reserveX, reserveY, err := c.Reserves(ctx, addr)
			if err != nil {
				return err
			}
			lp, err := c.Asset(ctx, pool.LPAsset)
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(&poolView{
				Address:  addr,
				Pool:     pool,
				ReserveX: reserveX,
				ReserveY: reserveY,
				LPSupply: lp.Supply,
			})
			if err != nil {
				return err
			}
			fmt.Print(string(b))
			return nil
		})
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Preview the output of a swap",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		amountIn, err := cmd.Flags().GetUint64("amount-in")
		if err != nil {
			return err
		}
		yToX, err := cmd.Flags().GetBool("y-to-x")
		if err != nil {
			return err
		}
		return withController(cmd, func(ctx context.Context, c *vm.Controller) error {
			out, err := c.Quote(ctx, addr, amountIn, !yToX)
			if err != nil {
				return err
			}
			utils.Outf("{{yellow}}amount out:{{/}} %d\n", out)
			return nil
		})
	},
}

func init() {
	initPoolCmd.Flags().Uint64("seed", 0, "Pool seed")
	initPoolCmd.Flags().String("asset-x", "", "Address of asset X")
	initPoolCmd.Flags().String("asset-y", "", "Address of asset Y")
	initPoolCmd.Flags().Uint16("fee-bps", 30, "Swap fee in basis points")
	initPoolCmd.Flags().String("authority", "", "Account allowed to lock the pool (defaults to --actor)")

	for _, cmd := range []*cobra.Command{depositCmd, withdrawCmd, swapCmd} {
		cmd.Flags().String("pool", "", "Pool address")
		cmd.Flags().String("asset-x", "", "Address of asset X")
		cmd.Flags().String("asset-y", "", "Address of asset Y")
	}
	depositCmd.Flags().Uint64("amount-x", 0, "Amount of X to deposit")
	depositCmd.Flags().Uint64("amount-y", 0, "Amount of Y to deposit")
	depositCmd.Flags().Uint64("max-x", 0, "Upper bound on derived X (0 is unbounded)")
	depositCmd.Flags().Uint64("max-y", 0, "Upper bound on derived Y (0 is unbounded)")
	depositCmd.Flags().Uint64("min-lp-out", 0, "Minimum LP units to mint")
	depositCmd.Flags().Int64("ttl", 0, "Seconds until the deposit expires (0 never expires)")

	withdrawCmd.Flags().Uint64("lp-in", 0, "LP units to burn")
	withdrawCmd.Flags().Uint64("min-x", 0, "Minimum X to receive")
	withdrawCmd.Flags().Uint64("min-y", 0, "Minimum Y to receive")

	swapCmd.Flags().Uint64("amount-in", 0, "Amount to sell")
	swapCmd.Flags().Uint64("min-out", 0, "Minimum amount to receive")
	swapCmd.Flags().Bool("y-to-x", false, "Sell Y for X instead of X for Y")
	swapCmd.Flags().Int64("ttl", 0, "Seconds until the swap expires (0 never expires)")

	poolCmd.Flags().String("pool", "", "Pool address")

	quoteCmd.Flags().String("pool", "", "Pool address")
	quoteCmd.Flags().Uint64("amount-in", 0, "Amount to sell")
	quoteCmd.Flags().Bool("y-to-x", false, "Sell Y for X instead of X for Y")

	rootCmd.AddCommand(
		initPoolCmd,
		depositCmd,
		withdrawCmd,
		swapCmd,
		newLockCmd("lock", true),
		newLockCmd("unlock", false),
		poolCmd,
		quoteCmd,
	)
}
