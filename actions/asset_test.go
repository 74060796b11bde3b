// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ammvm/chain/chaintest"
	"github.com/ava-labs/ammvm/codec/codectest"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/storage"
)

func TestCreateAsset(t *testing.T) {
	store := chaintest.NewInMemoryStore()
	owner := codectest.NewRandomAddress()
	addr := storage.AssetAddress([]byte(AssetXName), []byte(AssetXSymbol), owner)

	tests := []chaintest.ActionTest{
		{
			Name:        "name must be set",
			Action:      &CreateAsset{Symbol: []byte(AssetXSymbol)},
			ExpectedErr: ErrOutputAssetNameEmpty,
			State:       store,
			Actor:       owner,
		},
		{
			Name: "name must be bounded",
			Action: &CreateAsset{
				Name:   []byte(strings.Repeat("a", storage.MaxAssetNameSize+1)),
				Symbol: []byte(AssetXSymbol),
			},
			ExpectedErr: ErrOutputAssetNameTooLarge,
			State:       store,
			Actor:       owner,
		},
		{
			Name:        "symbol must be set",
			Action:      &CreateAsset{Name: []byte(AssetXName)},
			ExpectedErr: ErrOutputAssetSymbolEmpty,
			State:       store,
			Actor:       owner,
		},
		{
			Name: "symbol must be bounded",
			Action: &CreateAsset{
				Name:   []byte(AssetXName),
				Symbol: []byte(strings.Repeat("A", storage.MaxAssetSymbolSize+1)),
			},
			ExpectedErr: ErrOutputAssetSymbolTooLarge,
			State:       store,
			Actor:       owner,
		},
		{
			Name: "decimals must be bounded",
			Action: &CreateAsset{
				Name:     []byte(AssetXName),
				Symbol:   []byte(AssetXSymbol),
				Decimals: storage.MaxAssetDecimals + 1,
			},
			ExpectedErr: ErrOutputAssetDecimalsInvalid,
			State:       store,
			Actor:       owner,
		},
		{
			Name: "correct assets can be created",
			Action: &CreateAsset{
				Name:     []byte(AssetXName),
				Symbol:   []byte(AssetXSymbol),
				Decimals: 9,
			},
			ExpectedOutputs: [][]byte{addr[:]},
			State:           store,
			Actor:           owner,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				asset, err := storage.GetAsset(ctx, m, addr)
				require.NoError(err)
				require.Equal(owner, asset.Owner)
				require.Equal(uint8(9), asset.Decimals)
				require.Zero(asset.Supply)
			},
		},
		{
			Name: "assets cannot be created twice",
			Action: &CreateAsset{
				Name:   []byte(AssetXName),
				Symbol: []byte(AssetXSymbol),
			},
			ExpectedErr: ErrOutputAssetAlreadyExists,
			State:       store,
			Actor:       owner,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestMintAsset(t *testing.T) {
	f := newFixture(t)
	unknown := storage.AssetAddress([]byte("Unknown"), []byte("UNK"), f.owner)

	tests := []chaintest.ActionTest{
		{
			Name:        "mint amount must be positive",
			Action:      &MintAsset{Asset: f.assetX, To: f.trader},
			ExpectedErr: ErrOutputZeroAmount,
			State:       f.store,
			Actor:       f.owner,
		},
		{
			Name:        "can only mint existing assets",
			Action:      &MintAsset{Asset: unknown, To: f.trader, Amount: 1},
			ExpectedErr: ErrOutputAssetDoesNotExist,
			State:       f.store,
			Actor:       f.owner,
		},
		{
			Name:        "only owner can mint",
			Action:      &MintAsset{Asset: f.assetX, To: f.trader, Amount: 1},
			ExpectedErr: ErrOutputUnauthorized,
			State:       f.store,
			Actor:       f.trader,
		},
		{
			Name:        "pool LP assets are owned by the pool",
			Action:      &MintAsset{Asset: f.lpAsset, To: f.owner, Amount: 1},
			ExpectedErr: ErrOutputNotAssetOwner,
			State:       f.store,
			Actor:       f.owner,
		},
		{
			Name:        "vaults cannot be minted to",
			Action:      &MintAsset{Asset: f.assetX, To: storage.VaultAddress(f.assetX, f.pool), Amount: 1},
			ExpectedErr: ErrOutputCustodyAccount,
			State:       f.store,
			Actor:       f.owner,
		},
		{
			Name:   "correct mints can occur",
			Action: &MintAsset{Asset: f.assetX, To: f.trader, Amount: 5},
			State:  f.store,
			Actor:  f.owner,
			Assertion: func(ctx context.Context, t *testing.T, _ state.Mutable) {
				requireBalanceOf(ctx, t, f, f.assetX, f.trader, InitialMintValue+5)
				requireSupply(ctx, t, f, f.assetX, 2*InitialMintValue+5)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestTransferAsset(t *testing.T) {
	f := newFixture(t)
	recipient := codectest.NewRandomAddress()

	tests := []chaintest.ActionTest{
		{
			Name:        "transfer amount must be positive",
			Action:      &TransferAsset{Asset: f.assetX, To: recipient},
			ExpectedErr: ErrOutputZeroAmount,
			State:       f.store,
			Actor:       f.trader,
		},
		{
			Name:        "vaults cannot be credited directly",
			Action:      &TransferAsset{Asset: f.assetX, To: storage.VaultAddress(f.assetX, f.pool), Amount: 1},
			ExpectedErr: ErrOutputCustodyAccount,
			State:       f.store,
			Actor:       f.trader,
		},
		{
			Name:        "vaults cannot be debited directly",
			Action:      &TransferAsset{Asset: f.assetX, To: recipient, Amount: 1},
			ExpectedErr: ErrOutputCustodyAccount,
			State:       f.store,
			Actor:       storage.VaultAddress(f.assetX, f.pool),
		},
		{
			Name:        "source must hold the amount",
			Action:      &TransferAsset{Asset: f.assetX, To: recipient, Amount: InitialMintValue + 1},
			ExpectedErr: ErrOutputInsufficientBalance,
			State:       f.store,
			Actor:       f.trader,
		},
		{
			Name:   "correct transfers can occur",
			Action: &TransferAsset{Asset: f.assetX, To: recipient, Amount: 100},
			State:  f.store,
			Actor:  f.trader,
			Assertion: func(ctx context.Context, t *testing.T, _ state.Mutable) {
				requireBalanceOf(ctx, t, f, f.assetX, f.trader, InitialMintValue-100)
				requireBalanceOf(ctx, t, f, f.assetX, recipient, 100)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
