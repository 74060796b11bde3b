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

var _ chain.Action = (*CreateAsset)(nil)

type CreateAsset struct {
	Name     []byte `json:"name"`
	Symbol   []byte `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// GetTypeID implements chain.Action.
func (*CreateAsset) GetTypeID() uint8 {
	return consts.CreateAssetID
}

// StateKeys implements chain.Action.
func (c *CreateAsset) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.AssetKey(storage.AssetAddress(c.Name, c.Symbol, actor))): state.All,
	}
}

// Execute implements chain.Action.
// Outputs: asset address
func (c *CreateAsset) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if len(c.Name) == 0 {
		return nil, ErrOutputAssetNameEmpty
	}
	if len(c.Name) > storage.MaxAssetNameSize {
		return nil, ErrOutputAssetNameTooLarge
	}
	if len(c.Symbol) == 0 {
		return nil, ErrOutputAssetSymbolEmpty
	}
	if len(c.Symbol) > storage.MaxAssetSymbolSize {
		return nil, ErrOutputAssetSymbolTooLarge
	}
	if c.Decimals > storage.MaxAssetDecimals {
		return nil, ErrOutputAssetDecimalsInvalid
	}

	addr := storage.AssetAddress(c.Name, c.Symbol, actor)
	exists, err := storage.AssetExists(ctx, mu, addr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOutputAssetAlreadyExists
	}
	if err := storage.SetAsset(ctx, mu, addr, &storage.Asset{
		Name:     c.Name,
		Symbol:   c.Symbol,
		Decimals: c.Decimals,
		Owner:    actor,
	}); err != nil {
		return nil, err
	}
	return [][]byte{addr[:]}, nil
}

// Size implements chain.Action.
func (c *CreateAsset) Size() int {
	return consts.IntLen + len(c.Name) + consts.IntLen + len(c.Symbol) + consts.ByteLen
}

// Marshal implements chain.Action.
func (c *CreateAsset) Marshal(p *codec.Packer) {
	p.PackBytes(c.Name)
	p.PackBytes(c.Symbol)
	p.PackByte(c.Decimals)
}
