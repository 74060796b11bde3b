// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/pricing"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/storage"
)

var _ chain.Action = (*Initialize)(nil)

// Initialize creates the pool identified by (Seed, AssetX, AssetY) together
// with its LP asset. Both reserves start empty.
type Initialize struct {
	Seed   uint64        `json:"seed"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	FeeBps uint16        `json:"feeBps"`

	// Authority may lock and unlock the pool. Defaults to the actor.
	Authority codec.Address `json:"authority"`
}

// GetTypeID implements chain.Action.
func (*Initialize) GetTypeID() uint8 {
	return consts.InitializeID
}

// StateKeys implements chain.Action.
func (i *Initialize) StateKeys(codec.Address) state.Keys {
	pool := storage.PoolAddress(i.Seed, i.AssetX, i.AssetY)
	return state.Keys{
		string(storage.AssetKey(i.AssetX)):                     state.Read,
		string(storage.AssetKey(i.AssetY)):                     state.Read,
		string(storage.PoolKey(pool)):                          state.All,
		string(storage.AssetKey(storage.LPAssetAddress(pool))): state.All,
	}
}

// Execute implements chain.Action.
// Outputs: pool address and LP asset address
func (i *Initialize) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	r = chain.WithDefaults(r)
	if i.FeeBps >= pricing.BasisPoints || i.FeeBps > r.MaxFeeBps() {
		return nil, ErrOutputInvalidFee
	}
	if i.AssetX == i.AssetY {
		return nil, ErrOutputIdenticalAssets
	}
	for _, asset := range []codec.Address{i.AssetX, i.AssetY} {
		exists, err := storage.AssetExists(ctx, mu, asset)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrOutputAssetDoesNotExist
		}
	}

	poolAddress := storage.PoolAddress(i.Seed, i.AssetX, i.AssetY)
	exists, err := storage.PoolExists(ctx, mu, poolAddress)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOutputAlreadyInitialized
	}

	authority := i.Authority
	if authority == codec.EmptyAddress {
		authority = actor
	}
	lpAsset := storage.LPAssetAddress(poolAddress)
	if err := storage.SetAsset(ctx, mu, lpAsset, &storage.Asset{
		Name:     []byte(storage.LPAssetName),
		Symbol:   []byte(storage.LPAssetSymbol),
		Decimals: storage.LPAssetDecimals,
		Owner:    poolAddress,
	}); err != nil {
		return nil, err
	}
	if err := storage.SetPool(ctx, mu, &storage.Pool{
		Seed:      i.Seed,
		Authority: authority,
		AssetX:    i.AssetX,
		AssetY:    i.AssetY,
		LPAsset:   lpAsset,
		FeeBps:    i.FeeBps,
	}); err != nil {
		return nil, err
	}
	return [][]byte{poolAddress[:], lpAsset[:]}, nil
}

// Size implements chain.Action.
func (*Initialize) Size() int {
	return consts.Uint64Len + codec.AddressLen*3 + consts.Uint16Len
}

// Marshal implements chain.Action.
func (i *Initialize) Marshal(p *codec.Packer) {
	p.PackUint64(i.Seed)
	p.PackAddress(i.AssetX)
	p.PackAddress(i.AssetY)
	p.PackUint16(i.FeeBps)
	p.PackAddress(i.Authority)
}
