// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/units"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
)

const (
	// MaxActionSize bounds the encoded size of a single action.
	MaxActionSize = 4 * units.KiB

	actionIDPrefixLen = consts.ByteLen + codec.AddressLen + consts.Int64Len
)
