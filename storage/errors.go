// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAssetDoesNotExist   = errors.New("asset does not exist")
	ErrPoolDoesNotExist    = errors.New("pool does not exist")
	ErrCorruptRecord       = errors.New("corrupt record")
)
