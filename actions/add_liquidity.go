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

var _ chain.Action = (*AddLiquidity)(nil)

// AddLiquidity deposits into a pool and mints LP units to the actor.
//
// An empty pool takes AmountX and AmountY as-is. A funded pool takes
// whichever sides are non-zero: with both set, only the amounts implied by
// the limiting side are debited; with one set, the other side is derived
// from the current ratio and must not exceed MaxX/MaxY (0 means no bound).
type AddLiquidity struct {
	// First three fields are required for `StateKeys()`
	Pool   codec.Address `json:"pool"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`

	AmountX  uint64 `json:"amountX"`
	AmountY  uint64 `json:"amountY"`
	MaxX     uint64 `json:"maxX"`
	MaxY     uint64 `json:"maxY"`
	MinLPOut uint64 `json:"minLPOut"`

	// Expiration is a unix millisecond timestamp; 0 never expires.
	Expiration int64 `json:"expiration"`
}

// GetTypeID implements chain.Action.
func (*AddLiquidity) GetTypeID() uint8 {
	return consts.AddLiquidityID
}

// StateKeys implements chain.Action.
func (a *AddLiquidity) StateKeys(actor codec.Address) state.Keys {
	return liquidityKeys(a.Pool, a.AssetX, a.AssetY, actor)
}

// Execute implements chain.Action.
// Outputs: LP minted, amount of X deposited, amount of Y deposited
func (a *AddLiquidity) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if expired(a.Expiration, timestamp) {
		return nil, ErrOutputExpired
	}
	if storage.IsDerived(actor) {
		return nil, ErrOutputCustodyAccount
	}
	ps, err := loadPool(ctx, mu, a.Pool, a.AssetX, a.AssetY)
	if err != nil {
		return nil, err
	}
	if ps.pool.Locked {
		return nil, ErrOutputPoolLocked
	}

	deposit, err := a.price(ps.curve)
	if err != nil {
		return nil, err
	}
	if deposit.LPOut < a.MinLPOut {
		return nil, ErrOutputSlippageExceeded
	}
	if err := requireBalance(ctx, mu, a.AssetX, actor, deposit.AmountX); err != nil {
		return nil, err
	}
	if err := requireBalance(ctx, mu, a.AssetY, actor, deposit.AmountY); err != nil {
		return nil, err
	}

	if err := storage.TransferAsset(ctx, mu, a.AssetX, actor, ps.vaultX, deposit.AmountX); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, a.AssetY, actor, ps.vaultY, deposit.AmountY); err != nil {
		return nil, err
	}
	if err := storage.MintAsset(ctx, mu, ps.pool.LPAsset, actor, deposit.LPOut); err != nil {
		return nil, err
	}
	return amountOutputs(deposit.LPOut, deposit.AmountX, deposit.AmountY), nil
}

func (a *AddLiquidity) price(curve *pricing.ConstantProduct) (*pricing.Deposit, error) {
	switch {
	case curve.Empty(), a.AmountX != 0 && a.AmountY != 0:
		return curve.AddLiquidity(a.AmountX, a.AmountY)
	case a.AmountX != 0:
		deposit, err := curve.AddLiquidityPrimary(a.AmountX, true)
		if err != nil {
			return nil, err
		}
		if a.MaxY != 0 && deposit.AmountY > a.MaxY {
			return nil, ErrOutputSlippageExceeded
		}
		return deposit, nil
	case a.AmountY != 0:
		deposit, err := curve.AddLiquidityPrimary(a.AmountY, false)
		if err != nil {
			return nil, err
		}
		if a.MaxX != 0 && deposit.AmountX > a.MaxX {
			return nil, ErrOutputSlippageExceeded
		}
		return deposit, nil
	default:
		return nil, ErrOutputZeroAmount
	}
}

// Size implements chain.Action.
func (*AddLiquidity) Size() int {
	return codec.AddressLen*3 + consts.Uint64Len*5 + consts.Int64Len
}

// Marshal implements chain.Action.
func (a *AddLiquidity) Marshal(p *codec.Packer) {
	p.PackAddress(a.Pool)
	p.PackAddress(a.AssetX)
	p.PackAddress(a.AssetY)
	p.PackUint64(a.AmountX)
	p.PackUint64(a.AmountY)
	p.PackUint64(a.MaxX)
	p.PackUint64(a.MaxY)
	p.PackUint64(a.MinLPOut)
	p.PackInt64(a.Expiration)
}
