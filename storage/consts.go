// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes
const (
	poolPrefix byte = iota
	assetPrefix
	balancePrefix
)

// Chunks
const (
	PoolChunks    uint16 = 3
	AssetChunks   uint16 = 2
	BalanceChunks uint16 = 1
)

// Related to action invariants
const (
	MaxAssetNameSize   = 64
	MaxAssetSymbolSize = 8
	MaxAssetDecimals   = 18
)

// Every LP asset is created with the following data
const (
	LPAssetName     = "AMM-LP"
	LPAssetSymbol   = "AMMLP"
	LPAssetDecimals = 9
)

const stateNamespace = "statedb"
