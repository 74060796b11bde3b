// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/config"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/storage"
	"github.com/ava-labs/ammvm/utils"
	"github.com/ava-labs/ammvm/vm"
)

func run(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCLISwapFlow(t *testing.T) {
	require := require.New(t)
	dataDir := t.TempDir()

	owner := codec.CreateAddress(consts.AccountID, utils.ToID([]byte("owner")))
	assetX := storage.AssetAddress([]byte("Token X"), []byte("TX"), owner)
	assetY := storage.AssetAddress([]byte("Token Y"), []byte("TY"), owner)
	pool := storage.PoolAddress(1, assetX, assetY)

	common := []string{"--data-dir", dataDir, "--actor", owner.String()}
	steps := [][]string{
		{"create-asset", "--name", "Token X", "--symbol", "TX"},
		{"create-asset", "--name", "Token Y", "--symbol", "TY"},
		{"mint", "--asset", assetX.String(), "--to", owner.String(), "--amount", "1000000000"},
		{"mint", "--asset", assetY.String(), "--to", owner.String(), "--amount", "1000000000"},
		{"init-pool", "--seed", "1", "--asset-x", assetX.String(), "--asset-y", assetY.String(), "--fee-bps", "30"},
		{"deposit", "--pool", pool.String(), "--asset-x", assetX.String(), "--asset-y", assetY.String(), "--amount-x", "1000000", "--amount-y", "1000000"},
		{"quote", "--pool", pool.String(), "--amount-in", "1000"},
		{"swap", "--pool", pool.String(), "--asset-x", assetX.String(), "--asset-y", assetY.String(), "--amount-in", "1000", "--min-out", "996"},
		{"pool", "--pool", pool.String()},
		{"balance", "--asset", assetY.String()},
	}
	for _, step := range steps {
		require.NoError(run(append(step, common...)...), step[0])
	}

	// Slippage rejections surface as command errors
	err := run(append([]string{
		"swap", "--pool", pool.String(), "--asset-x", assetX.String(), "--asset-y", assetY.String(),
		"--amount-in", "1000", "--min-out", "1000000",
	}, common...)...)
	require.Error(err)

	cfg, err := config.Load("", nil)
	require.NoError(err)
	cfg.DataDir = dataDir
	c, err := vm.New(cfg, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	defer func() {
		require.NoError(c.Close())
	}()

	reserveX, reserveY, err := c.Reserves(context.Background(), pool)
	require.NoError(err)
	require.Equal(uint64(1_001_000), reserveX)
	require.Equal(uint64(1_000_000-996), reserveY)
}

func TestCLIRequiresActor(t *testing.T) {
	err := run("create-asset", "--data-dir", t.TempDir(), "--actor", "", "--name", "Token X", "--symbol", "TX")
	require.ErrorIs(t, err, errMissingActor)
}
