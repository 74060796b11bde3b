// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ammvm/chain/chaintest"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/codec/codectest"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/keys"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

func TestDerivedAddresses(t *testing.T) {
	require := require.New(t)

	owner := codectest.NewRandomAddress()
	assetX := AssetAddress([]byte("Token X"), []byte("TX"), owner)
	assetY := AssetAddress([]byte("Token Y"), []byte("TY"), owner)
	require.Equal(consts.AssetID, assetX.TypeID())
	require.Equal(assetX, AssetAddress([]byte("Token X"), []byte("TX"), owner))
	require.NotEqual(assetX, AssetAddress([]byte("Token X"), []byte("TX"), codectest.NewRandomAddress()))
	// Length prefixes keep name/symbol boundaries distinct
	require.NotEqual(
		AssetAddress([]byte("ab"), []byte("c"), owner),
		AssetAddress([]byte("a"), []byte("bc"), owner),
	)

	pool := PoolAddress(1, assetX, assetY)
	require.Equal(consts.PoolID, pool.TypeID())
	require.Equal(pool, PoolAddress(1, assetX, assetY))
	require.NotEqual(pool, PoolAddress(2, assetX, assetY))
	require.NotEqual(pool, PoolAddress(1, assetY, assetX))

	lp := LPAssetAddress(pool)
	require.Equal(consts.LPAssetID, lp.TypeID())
	require.NotEqual(lp, LPAssetAddress(PoolAddress(2, assetX, assetY)))

	vaultX := VaultAddress(assetX, pool)
	vaultY := VaultAddress(assetY, pool)
	require.Equal(consts.VaultID, vaultX.TypeID())
	require.NotEqual(vaultX, vaultY)

	for _, addr := range []codec.Address{assetX, pool, lp, vaultX} {
		require.True(IsDerived(addr))
	}
	require.False(IsDerived(owner))
}

func TestKeysCarryChunks(t *testing.T) {
	require := require.New(t)

	addr := codectest.NewRandomAddress()
	for k, chunks := range map[string]uint16{
		string(PoolKey(addr)):          PoolChunks,
		string(AssetKey(addr)):         AssetChunks,
		string(BalanceKey(addr, addr)): BalanceChunks,
	} {
		maxChunks, ok := keys.MaxChunks([]byte(k))
		require.True(ok)
		require.Equal(chunks, maxChunks)
	}
}

func TestPoolRecord(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	pool := &Pool{
		Seed:      42,
		Authority: codectest.NewRandomAddress(),
		AssetX:    codectest.NewRandomAddress(),
		AssetY:    codectest.NewRandomAddress(),
		FeeBps:    30,
	}
	pool.LPAsset = LPAssetAddress(pool.Address())

	exists, err := PoolExists(ctx, store, pool.Address())
	require.NoError(err)
	require.False(exists)
	_, err = GetPool(ctx, store, pool.Address())
	require.ErrorIs(err, ErrPoolDoesNotExist)

	require.NoError(SetPool(ctx, store, pool))
	v := store.Storage[string(PoolKey(pool.Address()))]
	require.True(keys.VerifyValue(PoolKey(pool.Address()), v))

	exists, err = PoolExists(ctx, store, pool.Address())
	require.NoError(err)
	require.True(exists)
	stored, err := GetPool(ctx, store, pool.Address())
	require.NoError(err)
	require.Equal(pool, stored)

	pool.Locked = true
	require.NoError(SetPool(ctx, store, pool))
	stored, err = GetPool(ctx, store, pool.Address())
	require.NoError(err)
	require.True(stored.Locked)

	// A record stored under the wrong address is rejected
	other := PoolAddress(43, pool.AssetX, pool.AssetY)
	store.Storage[string(PoolKey(other))] = v
	_, err = GetPool(ctx, store, other)
	require.ErrorIs(err, ErrCorruptRecord)
}

func TestAssetRecord(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	addr := AssetAddress([]byte("Token X"), []byte("TX"), owner)
	_, err := GetAsset(ctx, store, addr)
	require.ErrorIs(err, ErrAssetDoesNotExist)

	asset := &Asset{
		Name:     []byte("Token X"),
		Symbol:   []byte("TX"),
		Decimals: 9,
		Supply:   1_000,
		Owner:    owner,
	}
	require.NoError(SetAsset(ctx, store, addr, asset))
	require.True(keys.VerifyValue(AssetKey(addr), store.Storage[string(AssetKey(addr))]))

	stored, err := GetAsset(ctx, store, addr)
	require.NoError(err)
	require.Equal(asset, stored)

	exists, err := AssetExists(ctx, store, addr)
	require.NoError(err)
	require.True(exists)

	store.Storage[string(AssetKey(addr))] = []byte{0, 0, 0, 1}
	_, err = GetAsset(ctx, store, addr)
	require.ErrorIs(err, ErrCorruptRecord)
}

func TestTransferAsset(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	var (
		asset = codectest.NewRandomAddress()
		addrs = codectest.NewRandomAddresses(2)
		from  = addrs[0]
		to    = addrs[1]
	)
	require.NoError(SetBalance(ctx, store, asset, from, 100))

	before := store.Snapshot()
	err := TransferAsset(ctx, store, asset, from, to, 101)
	require.ErrorIs(err, ErrInsufficientBalance)
	require.Equal(before, store.Storage)

	require.NoError(TransferAsset(ctx, store, asset, from, to, 40))
	balance, err := GetBalance(ctx, store, asset, from)
	require.NoError(err)
	require.Equal(uint64(60), balance)
	balance, err = GetBalance(ctx, store, asset, to)
	require.NoError(err)
	require.Equal(uint64(40), balance)

	// Emptied balances are removed
	require.NoError(TransferAsset(ctx, store, asset, from, to, 60))
	require.NotContains(store.Storage, string(BalanceKey(asset, from)))

	// Credit overflow is checked before anything is written
	require.NoError(SetBalance(ctx, store, asset, from, 1))
	require.NoError(SetBalance(ctx, store, asset, to, math.MaxUint64))
	before = store.Snapshot()
	err = TransferAsset(ctx, store, asset, from, to, 1)
	require.ErrorIs(err, smath.ErrOverflow)
	require.Equal(before, store.Storage)
}

func TestMintBurnAsset(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := codectest.NewRandomAddress()
	addr := AssetAddress([]byte("Token X"), []byte("TX"), owner)
	require.ErrorIs(MintAsset(ctx, store, addr, owner, 1), ErrAssetDoesNotExist)

	require.NoError(SetAsset(ctx, store, addr, &Asset{
		Name:   []byte("Token X"),
		Symbol: []byte("TX"),
		Owner:  owner,
	}))
	require.NoError(MintAsset(ctx, store, addr, owner, 500))
	asset, err := GetAsset(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint64(500), asset.Supply)

	require.ErrorIs(BurnAsset(ctx, store, addr, owner, 501), ErrInsufficientBalance)
	require.NoError(BurnAsset(ctx, store, addr, owner, 200))
	asset, err = GetAsset(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint64(300), asset.Supply)
	balance, err := GetBalance(ctx, store, addr, owner)
	require.NoError(err)
	require.Equal(uint64(300), balance)

	require.ErrorIs(MintAsset(ctx, store, addr, owner, math.MaxUint64), smath.ErrOverflow)
}

func TestGetReserves(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	pool := &Pool{
		Seed:   7,
		AssetX: codectest.NewRandomAddress(),
		AssetY: codectest.NewRandomAddress(),
	}
	reserveX, reserveY, err := GetReserves(ctx, store, pool)
	require.NoError(err)
	require.Zero(reserveX)
	require.Zero(reserveY)

	require.NoError(SetBalance(ctx, store, pool.AssetX, pool.VaultX(), 10))
	require.NoError(SetBalance(ctx, store, pool.AssetY, pool.VaultY(), 20))
	reserveX, reserveY, err = GetReserves(ctx, store, pool)
	require.NoError(err)
	require.Equal(uint64(10), reserveX)
	require.Equal(uint64(20), reserveY)
}
