// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"testing"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/stretchr/testify/require"
)

func TestToID(t *testing.T) {
	require := require.New(t)

	b := []byte("config")
	id := ToID(b)
	require.Equal(hashing.ComputeHash256(b), id[:])
	require.NotEqual(id, ToID([]byte("lp")))
}

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)

	p, err := InitSubDirectory(t.TempDir(), "db")
	require.NoError(err)
	info, err := os.Stat(p)
	require.NoError(err)
	require.True(info.IsDir())
}

func TestDeadline(t *testing.T) {
	require := require.New(t)

	require.Zero(Deadline(1_700_000_000_000, 0))
	require.Equal(int64(1_700_000_030_000), Deadline(1_700_000_000_000, 30))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   uint64
		decimals uint8
		expected string
	}{
		{amount: 1_500_000_000, decimals: 9, expected: "1.5"},
		{amount: 5, decimals: 9, expected: "0.000000005"},
		{amount: 0, decimals: 9, expected: "0"},
		{amount: 70_710_678, decimals: 0, expected: "70710678"},
		{amount: 45_466_946, decimals: 6, expected: "45.466946"},
		{amount: 2_000_000, decimals: 6, expected: "2"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatAmount(tt.amount, tt.decimals))
		})
	}
}
