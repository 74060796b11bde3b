// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/storage"
)

var _ chain.Action = (*RemoveLiquidity)(nil)

// RemoveLiquidity burns LP units and returns the matching share of both
// reserves. Whether a locked pool can be withdrawn from is a chain rule.
type RemoveLiquidity struct {
	// First three fields are required for `StateKeys()`
	Pool   codec.Address `json:"pool"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`

	LPIn uint64 `json:"lpIn"`
	MinX uint64 `json:"minX"`
	MinY uint64 `json:"minY"`
}

// GetTypeID implements chain.Action.
func (*RemoveLiquidity) GetTypeID() uint8 {
	return consts.RemoveLiquidityID
}

// StateKeys implements chain.Action.
func (r *RemoveLiquidity) StateKeys(actor codec.Address) state.Keys {
	return liquidityKeys(r.Pool, r.AssetX, r.AssetY, actor)
}

// Execute implements chain.Action.
// Outputs: amount of X returned, amount of Y returned
func (r *RemoveLiquidity) Execute(
	ctx context.Context,
	rules chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	rules = chain.WithDefaults(rules)
	if storage.IsDerived(actor) {
		return nil, ErrOutputCustodyAccount
	}
	ps, err := loadPool(ctx, mu, r.Pool, r.AssetX, r.AssetY)
	if err != nil {
		return nil, err
	}
	if ps.pool.Locked && !rules.AllowLockedWithdrawals() {
		return nil, ErrOutputPoolLocked
	}

	withdrawal, err := ps.curve.RemoveLiquidity(r.LPIn)
	if err != nil {
		return nil, err
	}
	if withdrawal.AmountX < r.MinX || withdrawal.AmountY < r.MinY {
		return nil, ErrOutputSlippageExceeded
	}
	if err := requireBalance(ctx, mu, ps.pool.LPAsset, actor, r.LPIn); err != nil {
		return nil, err
	}

	if err := storage.BurnAsset(ctx, mu, ps.pool.LPAsset, actor, r.LPIn); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, r.AssetX, ps.vaultX, actor, withdrawal.AmountX); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, r.AssetY, ps.vaultY, actor, withdrawal.AmountY); err != nil {
		return nil, err
	}
	return amountOutputs(withdrawal.AmountX, withdrawal.AmountY), nil
}

// Size implements chain.Action.
func (*RemoveLiquidity) Size() int {
	return codec.AddressLen*3 + consts.Uint64Len*3
}

// Marshal implements chain.Action.
func (r *RemoveLiquidity) Marshal(p *codec.Packer) {
	p.PackAddress(r.Pool)
	p.PackAddress(r.AssetX)
	p.PackAddress(r.AssetY)
	p.PackUint64(r.LPIn)
	p.PackUint64(r.MinX)
	p.PackUint64(r.MinY)
}
