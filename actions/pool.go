// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/pricing"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/storage"
)

// poolState is everything a pool action reads, fixed before any write.
type poolState struct {
	pool   *storage.Pool
	vaultX codec.Address
	vaultY codec.Address
	curve  *pricing.ConstantProduct
}

func loadPool(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
	assetX codec.Address,
	assetY codec.Address,
) (*poolState, error) {
	pool, err := storage.GetPool(ctx, im, addr)
	if errors.Is(err, storage.ErrPoolDoesNotExist) {
		return nil, ErrOutputPoolDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	if pool.AssetX != assetX || pool.AssetY != assetY {
		return nil, ErrOutputPoolMismatch
	}
	reserveX, reserveY, err := storage.GetReserves(ctx, im, pool)
	if err != nil {
		return nil, err
	}
	lp, err := storage.GetAsset(ctx, im, pool.LPAsset)
	if err != nil {
		return nil, err
	}
	curve, err := pricing.NewConstantProduct(reserveX, reserveY, lp.Supply, pool.FeeBps)
	if err != nil {
		return nil, err
	}
	return &poolState{
		pool:   pool,
		vaultX: pool.VaultX(),
		vaultY: pool.VaultY(),
		curve:  curve,
	}, nil
}

// requireBalance fails with [ErrOutputInsufficientBalance] unless [account]
// holds at least [amount] of [asset].
func requireBalance(
	ctx context.Context,
	im state.Immutable,
	asset codec.Address,
	account codec.Address,
	amount uint64,
) error {
	balance, err := storage.GetBalance(ctx, im, asset, account)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrOutputInsufficientBalance
	}
	return nil
}

// tradeKeys are the keys touched when [actor] trades with [pool]. The LP
// asset is only read, for its supply.
func tradeKeys(pool codec.Address, assetX codec.Address, assetY codec.Address, actor codec.Address) state.Keys {
	vaultX := storage.VaultAddress(assetX, pool)
	vaultY := storage.VaultAddress(assetY, pool)
	lpAsset := storage.LPAssetAddress(pool)
	return state.Keys{
		string(storage.PoolKey(pool)):              state.Read,
		string(storage.AssetKey(lpAsset)):          state.Read,
		string(storage.BalanceKey(assetX, vaultX)): state.All,
		string(storage.BalanceKey(assetY, vaultY)): state.All,
		string(storage.BalanceKey(assetX, actor)):  state.All,
		string(storage.BalanceKey(assetY, actor)):  state.All,
	}
}

// liquidityKeys extend [tradeKeys] with the LP asset record and the actor's
// LP balance.
func liquidityKeys(pool codec.Address, assetX codec.Address, assetY codec.Address, actor codec.Address) state.Keys {
	k := tradeKeys(pool, assetX, assetY, actor)
	lpAsset := storage.LPAssetAddress(pool)
	k.Add(string(storage.AssetKey(lpAsset)), state.All)
	k.Add(string(storage.BalanceKey(lpAsset, actor)), state.All)
	return k
}
