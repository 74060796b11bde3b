// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"
	"fmt"

	"github.com/ava-labs/ammvm/pricing"
	"github.com/ava-labs/ammvm/storage"
)

var (
	// Error classes. Every rejected action matches exactly one of these
	// with errors.Is.
	ErrOutputInvalidConfiguration  = errors.New("invalid configuration")
	ErrOutputPoolLocked            = errors.New("pool is locked")
	ErrOutputZeroAmount            = pricing.ErrZeroAmount
	ErrOutputSlippageExceeded      = errors.New("slippage exceeded")
	ErrOutputInsufficientLiquidity = pricing.ErrInsufficientLiquidity
	ErrOutputOverflow              = pricing.ErrOverflow
	ErrOutputUnauthorized          = errors.New("unauthorized")

	// Pool-related errors
	ErrOutputAlreadyInitialized = fmt.Errorf("%w: pool already initialized", ErrOutputInvalidConfiguration)
	ErrOutputInvalidFee         = fmt.Errorf("%w: fee out of range", ErrOutputInvalidConfiguration)
	ErrOutputIdenticalAssets    = fmt.Errorf("%w: asset X and asset Y are identical", ErrOutputInvalidConfiguration)
	ErrOutputAssetDoesNotExist  = fmt.Errorf("%w: asset does not exist", ErrOutputInvalidConfiguration)
	ErrOutputPoolDoesNotExist   = errors.New("pool does not exist")
	ErrOutputPoolMismatch       = errors.New("assets do not match pool")
	ErrOutputExpired            = errors.New("action expired")

	// Asset-related errors
	ErrOutputAssetNameEmpty       = errors.New("asset name is empty")
	ErrOutputAssetNameTooLarge    = errors.New("asset name is too large")
	ErrOutputAssetSymbolEmpty     = errors.New("asset symbol is empty")
	ErrOutputAssetSymbolTooLarge  = errors.New("asset symbol is too large")
	ErrOutputAssetDecimalsInvalid = errors.New("asset decimals are too large")
	ErrOutputAssetAlreadyExists   = errors.New("asset already exists")
	ErrOutputNotAssetOwner        = fmt.Errorf("%w: actor is not asset owner", ErrOutputUnauthorized)
	ErrOutputCustodyAccount       = errors.New("custody accounts cannot be used directly")
	ErrOutputInsufficientBalance  = storage.ErrInsufficientBalance
)
