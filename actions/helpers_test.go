// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/chain/chaintest"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/codec/codectest"
	"github.com/ava-labs/ammvm/storage"
)

const (
	AssetXName   = "Token X"
	AssetXSymbol = "TX"
	AssetYName   = "Token Y"
	AssetYSymbol = "TY"

	InitialMintValue = 1_000_000_000
	InitialFee       = 30
	InitialSeed      = 1
)

// fixture is a store with two assets, funded accounts and one empty pool.
type fixture struct {
	store *chaintest.InMemoryStore

	owner  codec.Address
	lp     codec.Address
	trader codec.Address

	assetX  codec.Address
	assetY  codec.Address
	pool    codec.Address
	lpAsset codec.Address
}

func newFixture(t *testing.T) *fixture {
	addrs := codectest.NewRandomAddresses(3)
	f := &fixture{
		store:  chaintest.NewInMemoryStore(),
		owner:  addrs[0],
		lp:     addrs[1],
		trader: addrs[2],
	}
	f.assetX = storage.AssetAddress([]byte(AssetXName), []byte(AssetXSymbol), f.owner)
	f.assetY = storage.AssetAddress([]byte(AssetYName), []byte(AssetYSymbol), f.owner)
	f.pool = storage.PoolAddress(InitialSeed, f.assetX, f.assetY)
	f.lpAsset = storage.LPAssetAddress(f.pool)

	f.exec(t, f.owner, &CreateAsset{Name: []byte(AssetXName), Symbol: []byte(AssetXSymbol), Decimals: 9})
	f.exec(t, f.owner, &CreateAsset{Name: []byte(AssetYName), Symbol: []byte(AssetYSymbol), Decimals: 9})
	for _, to := range []codec.Address{f.lp, f.trader} {
		f.exec(t, f.owner, &MintAsset{Asset: f.assetX, To: to, Amount: InitialMintValue})
		f.exec(t, f.owner, &MintAsset{Asset: f.assetY, To: to, Amount: InitialMintValue})
	}
	f.exec(t, f.owner, &Initialize{Seed: InitialSeed, AssetX: f.assetX, AssetY: f.assetY, FeeBps: InitialFee})
	return f
}

// newFundedFixture is [newFixture] with an initial deposit of
// ([amountX], [amountY]) made by the LP account.
func newFundedFixture(t *testing.T, amountX, amountY uint64) *fixture {
	f := newFixture(t)
	f.exec(t, f.lp, f.deposit(amountX, amountY))
	return f
}

// newFundedFeeFixture is [newFundedFixture] against a second pool of the
// same assets charging [feeBps].
func newFundedFeeFixture(t *testing.T, feeBps uint16, amountX, amountY uint64) *fixture {
	f := newFixture(t)
	f.pool = storage.PoolAddress(InitialSeed+1, f.assetX, f.assetY)
	f.lpAsset = storage.LPAssetAddress(f.pool)
	f.exec(t, f.owner, &Initialize{Seed: InitialSeed + 1, AssetX: f.assetX, AssetY: f.assetY, FeeBps: feeBps})
	f.exec(t, f.lp, f.deposit(amountX, amountY))
	return f
}

func (f *fixture) exec(t *testing.T, actor codec.Address, action chain.Action) [][]byte {
	outputs, err := action.Execute(context.Background(), nil, f.store, 0, actor, ids.Empty)
	require.NoError(t, err)
	return outputs
}

func (f *fixture) deposit(amountX, amountY uint64) *AddLiquidity {
	return &AddLiquidity{
		Pool:    f.pool,
		AssetX:  f.assetX,
		AssetY:  f.assetY,
		AmountX: amountX,
		AmountY: amountY,
	}
}

func (f *fixture) swap(amountIn uint64, xToY bool) *Swap {
	return &Swap{
		Pool:     f.pool,
		AssetX:   f.assetX,
		AssetY:   f.assetY,
		AmountIn: amountIn,
		XToY:     xToY,
	}
}

func (f *fixture) withdraw(lpIn uint64) *RemoveLiquidity {
	return &RemoveLiquidity{
		Pool:   f.pool,
		AssetX: f.assetX,
		AssetY: f.assetY,
		LPIn:   lpIn,
	}
}

func requireReserves(ctx context.Context, t *testing.T, f *fixture, expectedX, expectedY uint64) {
	require := require.New(t)
	pool, err := storage.GetPool(ctx, f.store, f.pool)
	require.NoError(err)
	reserveX, reserveY, err := storage.GetReserves(ctx, f.store, pool)
	require.NoError(err)
	require.Equal(expectedX, reserveX)
	require.Equal(expectedY, reserveY)
}

func requireBalanceOf(ctx context.Context, t *testing.T, f *fixture, asset codec.Address, account codec.Address, expected uint64) {
	balance, err := storage.GetBalance(ctx, f.store, asset, account)
	require.NoError(t, err)
	require.Equal(t, expected, balance)
}

func requireSupply(ctx context.Context, t *testing.T, f *fixture, asset codec.Address, expected uint64) {
	a, err := storage.GetAsset(ctx, f.store, asset)
	require.NoError(t, err)
	require.Equal(t, expected, a.Supply)
}
