// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/state"
)

// MaxFeeBps is the largest fee, in basis points, any pool may charge.
const MaxFeeBps uint16 = 9_999

// Rules are the execution parameters every action is run with.
type Rules interface {
	// AllowLockedWithdrawals reports whether liquidity may be removed from
	// a locked pool.
	AllowLockedWithdrawals() bool
	// MaxFeeBps is the highest fee a new pool may be initialized with.
	MaxFeeBps() uint16
}

type Action interface {
	// GetTypeID uniquely identifies each supported [Action]. We use IDs to avoid
	// reflection.
	GetTypeID() uint8

	// StateKeys is a full enumeration of all database keys that could be touched during
	// execution by [actor], with the permissions each requires.
	//
	// If any key is touched during execution that is not included in [StateKeys],
	// execution will fail.
	StateKeys(actor codec.Address) state.Keys

	// Execute actually runs the [Action]. Any state changes that the [Action] performs should
	// be done here.
	//
	// If any error is returned, all state changes of the [Action] are
	// discarded.
	//
	// An error should only be returned if a fatal error was encountered, otherwise [outputs]
	// describe what the action did (e.g. the pool and LP asset it created).
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		timestamp int64,
		actor codec.Address,
		actionID ids.ID,
	) (outputs [][]byte, err error)

	// Size is the number of bytes [Marshal] writes.
	Size() int
	Marshal(p *codec.Packer)
}
