// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/ammvm/chain/chaintest"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/storage"
)

func TestAddLiquidity(t *testing.T) {
	f := newFixture(t)

	withMax := func(a *AddLiquidity, maxX, maxY uint64) *AddLiquidity {
		a.MaxX, a.MaxY = maxX, maxY
		return a
	}
	withMinLP := func(a *AddLiquidity, minLP uint64) *AddLiquidity {
		a.MinLPOut = minLP
		return a
	}

	tests := []chaintest.ActionTest{
		{
			Name: "pool must exist",
			Action: &AddLiquidity{
				Pool:    storage.PoolAddress(InitialSeed+1, f.assetX, f.assetY),
				AssetX:  f.assetX,
				AssetY:  f.assetY,
				AmountX: 1,
				AmountY: 1,
			},
			ExpectedErr: ErrOutputPoolDoesNotExist,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name: "assets must match pool",
			Action: &AddLiquidity{
				Pool:    f.pool,
				AssetX:  f.assetY,
				AssetY:  f.assetX,
				AmountX: 1,
				AmountY: 1,
			},
			ExpectedErr: ErrOutputPoolMismatch,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name: "expired deposits are rejected",
			Action: &AddLiquidity{
				Pool:       f.pool,
				AssetX:     f.assetX,
				AssetY:     f.assetY,
				AmountX:    1,
				AmountY:    1,
				Expiration: 5,
			},
			Timestamp:   10,
			ExpectedErr: ErrOutputExpired,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name:        "bootstrap needs both sides",
			Action:      f.deposit(50_000_000, 0),
			ExpectedErr: ErrOutputZeroAmount,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name:        "bootstrap respects minimum LP out",
			Action:      withMinLP(f.deposit(50_000_000, 50_000_000), 50_000_001),
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name:            "bootstrap mints sqrt(x*y)",
			Action:          withMinLP(f.deposit(50_000_000, 50_000_000), 50_000_000),
			ExpectedOutputs: amountOutputs(50_000_000, 50_000_000, 50_000_000),
			State:           f.store,
			Actor:           f.lp,
			Assertion: func(ctx context.Context, t *testing.T, _ state.Mutable) {
				requireReserves(ctx, t, f, 50_000_000, 50_000_000)
				requireSupply(ctx, t, f, f.lpAsset, 50_000_000)
				requireBalanceOf(ctx, t, f, f.lpAsset, f.lp, 50_000_000)
				requireBalanceOf(ctx, t, f, f.assetX, f.lp, InitialMintValue-50_000_000)
			},
		},
		{
			Name:        "neither side set",
			Action:      f.deposit(0, 0),
			ExpectedErr: ErrOutputZeroAmount,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name:        "derived side must not exceed its maximum",
			Action:      withMax(f.deposit(10_000_000, 0), 0, 9_999_999),
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       f.store,
			Actor:       f.lp,
		},
		{
			Name:            "primary side derives the other from the pool ratio",
			Action:          withMax(f.deposit(10_000_000, 0), 0, 10_000_000),
			ExpectedOutputs: amountOutputs(10_000_000, 10_000_000, 10_000_000),
			State:           f.store,
			Actor:           f.lp,
			Assertion: func(ctx context.Context, t *testing.T, _ state.Mutable) {
				requireReserves(ctx, t, f, 60_000_000, 60_000_000)
				requireSupply(ctx, t, f, f.lpAsset, 60_000_000)
			},
		},
		{
			Name:            "two-sided deposits only debit the limiting ratio",
			Action:          f.deposit(6_000_000, 12_000_000),
			ExpectedOutputs: amountOutputs(6_000_000, 6_000_000, 6_000_000),
			State:           f.store,
			Actor:           f.trader,
			Assertion: func(ctx context.Context, t *testing.T, _ state.Mutable) {
				requireReserves(ctx, t, f, 66_000_000, 66_000_000)
				requireBalanceOf(ctx, t, f, f.assetY, f.trader, InitialMintValue-6_000_000)
				requireBalanceOf(ctx, t, f, f.lpAsset, f.trader, 6_000_000)
			},
		},
		{
			Name:        "depositor must hold both sides",
			Action:      f.deposit(2*InitialMintValue, 0),
			ExpectedErr: ErrOutputInsufficientBalance,
			State:       f.store,
			Actor:       f.lp,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestAddLiquidityRoundsOtherSideDown(t *testing.T) {
	// 3:10 pool, so one unit of X needs 3.33 units of Y
	f := newFundedFixture(t, 3_000, 10_000)

	test := chaintest.ActionTest{
		Name:            "depositor owes floor(primary*otherReserve/primaryReserve)",
		Action:          f.deposit(1, 0),
		ExpectedOutputs: amountOutputs(1, 1, 3),
		State:           f.store,
		Actor:           f.lp,
	}
	test.Run(context.Background(), t)
}
