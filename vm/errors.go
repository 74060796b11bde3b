// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import "errors"

var (
	ErrClosed         = errors.New("controller closed")
	ErrPersistChanges = errors.New("unable to persist changes")
)
