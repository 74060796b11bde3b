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

var _ chain.Action = (*TransferAsset)(nil)

type TransferAsset struct {
	Asset  codec.Address `json:"asset"`
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

// GetTypeID implements chain.Action.
func (*TransferAsset) GetTypeID() uint8 {
	return consts.TransferAssetID
}

// StateKeys implements chain.Action.
func (t *TransferAsset) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.BalanceKey(t.Asset, actor)): state.All,
		string(storage.BalanceKey(t.Asset, t.To)):  state.All,
	}
}

// Execute implements chain.Action.
func (t *TransferAsset) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if t.Amount == 0 {
		return nil, ErrOutputZeroAmount
	}
	// Reserves only move through pool actions.
	if storage.IsDerived(actor) || storage.IsDerived(t.To) {
		return nil, ErrOutputCustodyAccount
	}
	return nil, storage.TransferAsset(ctx, mu, t.Asset, actor, t.To, t.Amount)
}

// Size implements chain.Action.
func (*TransferAsset) Size() int {
	return codec.AddressLen*2 + consts.Uint64Len
}

// Marshal implements chain.Action.
func (t *TransferAsset) Marshal(p *codec.Packer) {
	p.PackAddress(t.Asset)
	p.PackAddress(t.To)
	p.PackUint64(t.Amount)
}
