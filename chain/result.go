// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/avalanchego/ids"

type Result struct {
	ActionID ids.ID
	Outputs  [][]byte

	// Changes is the number of keys the action modified.
	Changes int
}
