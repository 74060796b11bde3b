// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/keys"
	"github.com/ava-labs/ammvm/state"
)

// Pool is the configuration record of a single pool. Reserves are not part
// of it: they are the balances of the pool's vaults.
type Pool struct {
	Seed      uint64        `json:"seed" yaml:"seed"`
	Authority codec.Address `json:"authority" yaml:"authority"`
	AssetX    codec.Address `json:"assetX" yaml:"assetX"`
	AssetY    codec.Address `json:"assetY" yaml:"assetY"`
	LPAsset   codec.Address `json:"lpAsset" yaml:"lpAsset"`
	FeeBps    uint16        `json:"feeBps" yaml:"feeBps"`
	Locked    bool          `json:"locked" yaml:"locked"`
}

// Address is the derived address the pool is stored under.
func (p *Pool) Address() codec.Address {
	return PoolAddress(p.Seed, p.AssetX, p.AssetY)
}

// VaultX is the custody account holding reserve X.
func (p *Pool) VaultX() codec.Address {
	return VaultAddress(p.AssetX, p.Address())
}

// VaultY is the custody account holding reserve Y.
func (p *Pool) VaultY() codec.Address {
	return VaultAddress(p.AssetY, p.Address())
}

func PoolKey(pool codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k = append(k, poolPrefix)
	k = append(k, pool[:]...)
	return keys.EncodeChunks(k, PoolChunks)
}

func SetPool(ctx context.Context, mu state.Mutable, pool *Pool) error {
	v, err := borsh.Serialize(*pool)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, PoolKey(pool.Address()), v)
}

// GetPool returns the pool stored at [addr] or [ErrPoolDoesNotExist].
func GetPool(ctx context.Context, im state.Immutable, addr codec.Address) (*Pool, error) {
	v, err := im.GetValue(ctx, PoolKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrPoolDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	var pool Pool
	if err := borsh.Deserialize(&pool, v); err != nil {
		return nil, fmt.Errorf("%w: pool %s: %w", ErrCorruptRecord, addr, err)
	}
	if pool.Address() != addr {
		return nil, fmt.Errorf("%w: pool %s is stored under %s", ErrCorruptRecord, pool.Address(), addr)
	}
	return &pool, nil
}

func PoolExists(ctx context.Context, im state.Immutable, addr codec.Address) (bool, error) {
	_, err := im.GetValue(ctx, PoolKey(addr))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, database.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// GetReserves returns the custody balances of [pool].
func GetReserves(ctx context.Context, im state.Immutable, pool *Pool) (uint64, uint64, error) {
	reserveX, err := GetBalance(ctx, im, pool.AssetX, pool.VaultX())
	if err != nil {
		return 0, 0, err
	}
	reserveY, err := GetBalance(ctx, im, pool.AssetY, pool.VaultY())
	if err != nil {
		return 0, 0, err
	}
	return reserveX, reserveY, nil
}
