// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"encoding/binary"

	"github.com/ava-labs/ammvm/consts"
)

// Amounts are reported as big-endian uint64 outputs, one per value.
func amountOutputs(amounts ...uint64) [][]byte {
	outputs := make([][]byte, len(amounts))
	for i, amount := range amounts {
		outputs[i] = binary.BigEndian.AppendUint64(make([]byte, 0, consts.Uint64Len), amount)
	}
	return outputs
}

// ParseAmount decodes an amount output.
func ParseAmount(output []byte) (uint64, bool) {
	if len(output) != consts.Uint64Len {
		return 0, false
	}
	return binary.BigEndian.Uint64(output), true
}

func expired(expiration int64, timestamp int64) bool {
	return expiration != 0 && timestamp > expiration
}
