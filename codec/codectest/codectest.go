// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/ammvm/codec"
)

// AccountTypeID is the type byte used for test accounts. It does not
// collide with any derived address type.
const AccountTypeID uint8 = 0xFF

// NewRandomAddress returns a random account address
// for use during testing
func NewRandomAddress() codec.Address {
	return codec.CreateAddress(AccountTypeID, ids.GenerateTestID())
}

// NewRandomAddresses returns [n] distinct random account addresses.
func NewRandomAddresses(n int) []codec.Address {
	addrs := make([]codec.Address, n)
	for i := range addrs {
		addrs[i] = NewRandomAddress()
	}
	return addrs
}
