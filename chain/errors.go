// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrNilAction      = errors.New("nil action")
	ErrStateFetch     = errors.New("unable to fetch state")
	ErrActionTooLarge = errors.New("action too large")
)
