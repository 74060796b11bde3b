// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	BoolLen   = 1
	IDLen     = 32
	IntLen    = 4
	Uint16Len = 2
	Uint64Len = 8
	Int64Len  = 8
	MaxUint16 = ^uint16(0)
	MaxUint64 = ^uint64(0)

	// MillisecondsPerSecond is used when converting CLI durations into
	// action expirations.
	MillisecondsPerSecond = 1000
)
