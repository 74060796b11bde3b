// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/storage"
)

var _ chain.Action = (*MintAsset)(nil)

// MintAsset issues new units of a user-created asset. Only the asset's
// owner may mint, and LP assets can never be minted this way because they
// are owned by their pool.
type MintAsset struct {
	Asset  codec.Address `json:"asset"`
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

// GetTypeID implements chain.Action.
func (*MintAsset) GetTypeID() uint8 {
	return consts.MintAssetID
}

// StateKeys implements chain.Action.
func (m *MintAsset) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.AssetKey(m.Asset)):         state.All,
		string(storage.BalanceKey(m.Asset, m.To)): state.All,
	}
}

// Execute implements chain.Action.
func (m *MintAsset) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if m.Amount == 0 {
		return nil, ErrOutputZeroAmount
	}
	if storage.IsDerived(m.To) {
		return nil, ErrOutputCustodyAccount
	}
	asset, err := storage.GetAsset(ctx, mu, m.Asset)
	if errors.Is(err, storage.ErrAssetDoesNotExist) {
		return nil, ErrOutputAssetDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	if asset.Owner != actor {
		return nil, ErrOutputNotAssetOwner
	}
	if err := storage.MintAsset(ctx, mu, m.Asset, m.To, m.Amount); err != nil {
		return nil, err
	}
	return nil, nil
}

// Size implements chain.Action.
func (*MintAsset) Size() int {
	return codec.AddressLen*2 + consts.Uint64Len
}

// Marshal implements chain.Action.
func (m *MintAsset) Marshal(p *codec.Packer) {
	p.PackAddress(m.Asset)
	p.PackAddress(m.To)
	p.PackUint64(m.Amount)
}
