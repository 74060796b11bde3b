// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Action TypeIDs
const (
	// Asset-related
	CreateAssetID uint8 = iota
	MintAssetID
	TransferAssetID
	// Pool-related
	InitializeID
	AddLiquidityID
	RemoveLiquidityID
	SwapID
	SetLockedID
)

// Address TypeIDs for derived (non-account) addresses
const (
	AssetID uint8 = iota + 0xF0
	PoolID
	LPAssetID
	VaultID
)

const Name = "ammvm"

// AccountID is the type byte of named accounts created by the CLI.
const AccountID uint8 = 0x00
