// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPermissions(t *testing.T) {
	tests := []struct {
		name     string
		perm     Permissions
		canRead  bool
		canAlloc bool
		canWrite bool
	}{
		{
			name: "none",
			perm: None,
		},
		{
			name:    "read",
			perm:    Read,
			canRead: true,
		},
		{
			name:     "write",
			perm:     Write,
			canRead:  true,
			canWrite: true,
		},
		{
			name:     "allocate",
			perm:     Allocate,
			canRead:  true,
			canAlloc: true,
		},
		{
			name:     "all",
			perm:     All,
			canRead:  true,
			canAlloc: true,
			canWrite: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.canRead, tt.perm.Has(Read))
			require.Equal(tt.canAlloc, tt.perm.Has(Allocate))
			require.Equal(tt.canWrite, tt.perm.Has(Write))
		})
	}
}

func TestUnionPermissions(t *testing.T) {
	require := require.New(t)

	keys := Keys{}
	keys.Add("pool", Read)
	keys.Add("pool", Write)
	require.True(keys["pool"].Has(Write))
	require.False(keys["pool"].Has(Allocate))

	keys.Add("pool", Allocate)
	require.Equal(All, keys["pool"])
}
