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

var _ chain.Action = (*SetLocked)(nil)

// SetLocked pauses or resumes deposits and swaps on a pool. Only the pool's
// authority may toggle it.
type SetLocked struct {
	Pool   codec.Address `json:"pool"`
	Locked bool          `json:"locked"`
}

// GetTypeID implements chain.Action.
func (*SetLocked) GetTypeID() uint8 {
	return consts.SetLockedID
}

// StateKeys implements chain.Action.
func (s *SetLocked) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.PoolKey(s.Pool)): state.Write,
	}
}

// Execute implements chain.Action.
func (s *SetLocked) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	pool, err := storage.GetPool(ctx, mu, s.Pool)
	if errors.Is(err, storage.ErrPoolDoesNotExist) {
		return nil, ErrOutputPoolDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	if pool.Authority != actor {
		return nil, ErrOutputUnauthorized
	}
	if pool.Locked == s.Locked {
		return nil, nil
	}
	pool.Locked = s.Locked
	return nil, storage.SetPool(ctx, mu, pool)
}

// Size implements chain.Action.
func (*SetLocked) Size() int {
	return codec.AddressLen + consts.BoolLen
}

// Marshal implements chain.Action.
func (s *SetLocked) Marshal(p *codec.Packer) {
	p.PackAddress(s.Pool)
	p.PackBool(s.Locked)
}
