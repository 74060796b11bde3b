// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"errors"
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	// ErrOverflow is returned whenever a result does not fit in a uint64.
	ErrOverflow = smath.ErrOverflow

	ErrZeroAmount            = errors.New("amount is zero")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrInvalidFee            = errors.New("fee must be below 10000 basis points")
	ErrInvalidReserves       = errors.New("reserves and LP supply are inconsistent")

	ErrInsufficientLiquidityMinted = fmt.Errorf("%w: liquidity minted rounds to zero", ErrZeroAmount)
	ErrInsufficientOtherAmount     = fmt.Errorf("%w: required amount of the other asset rounds to zero", ErrZeroAmount)
	ErrInsufficientOutputAmount    = fmt.Errorf("%w: output amount rounds to zero", ErrZeroAmount)
	ErrInsufficientWithdrawal      = fmt.Errorf("%w: withdrawal rounds to zero", ErrZeroAmount)
	ErrBurnExceedsSupply           = fmt.Errorf("%w: burn exceeds LP supply", ErrInsufficientLiquidity)
	ErrInvariantViolated           = fmt.Errorf("%w: constant product decreased", ErrInsufficientLiquidity)
)
