// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/keys"
	"github.com/ava-labs/ammvm/state"
)

// Asset is the metadata and total supply of a fungible asset. LP assets are
// owned by the pool that mints them.
type Asset struct {
	Name     []byte        `json:"name" yaml:"name"`
	Symbol   []byte        `json:"symbol" yaml:"symbol"`
	Decimals uint8         `json:"decimals" yaml:"decimals"`
	Supply   uint64        `json:"supply" yaml:"supply"`
	Owner    codec.Address `json:"owner" yaml:"owner"`
}

func (a *Asset) size() int {
	return consts.IntLen + len(a.Name) + consts.IntLen + len(a.Symbol) +
		consts.ByteLen + consts.Uint64Len + codec.AddressLen
}

func AssetKey(asset codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k = append(k, assetPrefix)
	k = append(k, asset[:]...)
	return keys.EncodeChunks(k, AssetChunks)
}

func SetAsset(ctx context.Context, mu state.Mutable, addr codec.Address, asset *Asset) error {
	p := codec.NewWriter(asset.size(), asset.size())
	p.PackBytes(asset.Name)
	p.PackBytes(asset.Symbol)
	p.PackByte(asset.Decimals)
	p.PackUint64(asset.Supply)
	p.PackAddress(asset.Owner)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, AssetKey(addr), p.Bytes())
}

// GetAsset returns the asset stored at [addr] or [ErrAssetDoesNotExist].
func GetAsset(ctx context.Context, im state.Immutable, addr codec.Address) (*Asset, error) {
	v, err := im.GetValue(ctx, AssetKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrAssetDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	var (
		asset Asset
		p     = codec.NewReader(v, len(v))
	)
	p.UnpackBytes(MaxAssetNameSize, true, &asset.Name)
	p.UnpackBytes(MaxAssetSymbolSize, true, &asset.Symbol)
	asset.Decimals = p.UnpackByte()
	asset.Supply = p.UnpackUint64(false)
	p.UnpackAddress(&asset.Owner)
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("%w: asset %s: %w", ErrCorruptRecord, addr, err)
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: asset %s has trailing bytes", ErrCorruptRecord, addr)
	}
	return &asset, nil
}

func AssetExists(ctx context.Context, im state.Immutable, addr codec.Address) (bool, error) {
	_, err := im.GetValue(ctx, AssetKey(addr))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, database.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
