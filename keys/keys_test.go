// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumChunks(t *testing.T) {
	tests := []struct {
		size   int
		chunks uint16
	}{
		{size: 0, chunks: 0},
		{size: 1, chunks: 1},
		{size: chunkSize, chunks: 1},
		{size: chunkSize + 1, chunks: 2},
		{size: 3 * chunkSize, chunks: 3},
	}
	for _, tt := range tests {
		chunks, ok := NumChunks(make([]byte, tt.size))
		require.True(t, ok)
		require.Equal(t, tt.chunks, chunks, "size %d", tt.size)
	}
}

func TestVerifyValue(t *testing.T) {
	require := require.New(t)

	key := EncodeChunks([]byte{0x01, 0x02}, 1)
	require.True(Valid(key))
	maxChunks, ok := MaxChunks(key)
	require.True(ok)
	require.Equal(uint16(1), maxChunks)

	require.True(VerifyValue(key, bytes.Repeat([]byte{1}, chunkSize)))
	require.False(VerifyValue(key, bytes.Repeat([]byte{1}, chunkSize+1)))
	require.False(VerifyValue([]byte{0x01}, nil))
}
