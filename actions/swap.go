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

var _ chain.Action = (*Swap)(nil)

type Swap struct {
	// First three fields are required for `StateKeys()`
	Pool   codec.Address `json:"pool"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`

	AmountIn     uint64 `json:"amountIn"`
	MinAmountOut uint64 `json:"minAmountOut"`
	// XToY sells X for Y when set, and Y for X otherwise.
	XToY bool `json:"xToY"`

	// Expiration is a unix millisecond timestamp; 0 never expires.
	Expiration int64 `json:"expiration"`
}

// GetTypeID implements chain.Action.
func (*Swap) GetTypeID() uint8 {
	return consts.SwapID
}

// StateKeys implements chain.Action.
func (s *Swap) StateKeys(actor codec.Address) state.Keys {
	return tradeKeys(s.Pool, s.AssetX, s.AssetY, actor)
}

// Execute implements chain.Action.
// Outputs: amount out
func (s *Swap) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if expired(s.Expiration, timestamp) {
		return nil, ErrOutputExpired
	}
	if storage.IsDerived(actor) {
		return nil, ErrOutputCustodyAccount
	}
	ps, err := loadPool(ctx, mu, s.Pool, s.AssetX, s.AssetY)
	if err != nil {
		return nil, err
	}
	if ps.pool.Locked {
		return nil, ErrOutputPoolLocked
	}

	result, err := ps.curve.Swap(s.AmountIn, s.XToY)
	if err != nil {
		return nil, err
	}
	if result.AmountOut < s.MinAmountOut {
		return nil, ErrOutputSlippageExceeded
	}

	assetIn, vaultIn, assetOut, vaultOut := s.AssetX, ps.vaultX, s.AssetY, ps.vaultY
	if !s.XToY {
		assetIn, vaultIn, assetOut, vaultOut = s.AssetY, ps.vaultY, s.AssetX, ps.vaultX
	}
	if err := requireBalance(ctx, mu, assetIn, actor, s.AmountIn); err != nil {
		return nil, err
	}

	if err := storage.TransferAsset(ctx, mu, assetIn, actor, vaultIn, s.AmountIn); err != nil {
		return nil, err
	}
	if err := storage.TransferAsset(ctx, mu, assetOut, vaultOut, actor, result.AmountOut); err != nil {
		return nil, err
	}
	return amountOutputs(result.AmountOut), nil
}

// Size implements chain.Action.
func (*Swap) Size() int {
	return codec.AddressLen*3 + consts.Uint64Len*2 + consts.BoolLen + consts.Int64Len
}

// Marshal implements chain.Action.
func (s *Swap) Marshal(p *codec.Packer) {
	p.PackAddress(s.Pool)
	p.PackAddress(s.AssetX)
	p.PackAddress(s.AssetY)
	p.PackUint64(s.AmountIn)
	p.PackUint64(s.MinAmountOut)
	p.PackBool(s.XToY)
	p.PackInt64(s.Expiration)
}
