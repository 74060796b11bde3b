// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/keys"
	"github.com/ava-labs/ammvm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

func BalanceKey(asset codec.Address, account codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+2*codec.AddressLen+consts.Uint16Len)
	k = append(k, balancePrefix)
	k = append(k, asset[:]...)
	k = append(k, account[:]...)
	return keys.EncodeChunks(k, BalanceChunks)
}

// GetBalance returns the balance of [account] in [asset]. Accounts that were
// never credited hold zero.
func GetBalance(ctx context.Context, im state.Immutable, asset codec.Address, account codec.Address) (uint64, error) {
	v, err := im.GetValue(ctx, BalanceKey(asset, account))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != consts.Uint64Len {
		return 0, fmt.Errorf("%w: balance of %s in %s", ErrCorruptRecord, account, asset)
	}
	return binary.BigEndian.Uint64(v), nil
}

// SetBalance overwrites the balance of [account]. Zero balances are removed
// from state.
func SetBalance(ctx context.Context, mu state.Mutable, asset codec.Address, account codec.Address, balance uint64) error {
	k := BalanceKey(asset, account)
	if balance == 0 {
		return mu.Remove(ctx, k)
	}
	return mu.Insert(ctx, k, binary.BigEndian.AppendUint64(nil, balance))
}

// TransferAsset moves exactly [amount] of [asset] from [from] to [to]. Both
// balances are checked before either is written.
func TransferAsset(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if from == to {
		_, err := debit(ctx, mu, asset, from, amount)
		return err
	}
	newFrom, err := debit(ctx, mu, asset, from, amount)
	if err != nil {
		return err
	}
	newTo, err := credit(ctx, mu, asset, to, amount)
	if err != nil {
		return err
	}
	if err := SetBalance(ctx, mu, asset, from, newFrom); err != nil {
		return err
	}
	return SetBalance(ctx, mu, asset, to, newTo)
}

// MintAsset credits [to] and grows the supply of [asset].
func MintAsset(ctx context.Context, mu state.Mutable, addr codec.Address, to codec.Address, amount uint64) error {
	asset, err := GetAsset(ctx, mu, addr)
	if err != nil {
		return err
	}
	newSupply, err := smath.Add(asset.Supply, amount)
	if err != nil {
		return err
	}
	newBalance, err := credit(ctx, mu, addr, to, amount)
	if err != nil {
		return err
	}
	asset.Supply = newSupply
	if err := SetAsset(ctx, mu, addr, asset); err != nil {
		return err
	}
	return SetBalance(ctx, mu, addr, to, newBalance)
}

// BurnAsset debits [from] and shrinks the supply of [asset].
func BurnAsset(ctx context.Context, mu state.Mutable, addr codec.Address, from codec.Address, amount uint64) error {
	asset, err := GetAsset(ctx, mu, addr)
	if err != nil {
		return err
	}
	newBalance, err := debit(ctx, mu, addr, from, amount)
	if err != nil {
		return err
	}
	newSupply, err := smath.Sub(asset.Supply, amount)
	if err != nil {
		return fmt.Errorf("%w: burn of %d exceeds supply of %s", ErrCorruptRecord, amount, addr)
	}
	asset.Supply = newSupply
	if err := SetAsset(ctx, mu, addr, asset); err != nil {
		return err
	}
	return SetBalance(ctx, mu, addr, from, newBalance)
}

func debit(ctx context.Context, im state.Immutable, asset codec.Address, account codec.Address, amount uint64) (uint64, error) {
	balance, err := GetBalance(ctx, im, asset, account)
	if err != nil {
		return 0, err
	}
	newBalance, err := smath.Sub(balance, amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientBalance, account, balance, asset, amount)
	}
	return newBalance, nil
}

func credit(ctx context.Context, im state.Immutable, asset codec.Address, account codec.Address, amount uint64) (uint64, error) {
	balance, err := GetBalance(ctx, im, asset, account)
	if err != nil {
		return 0, err
	}
	return smath.Add(balance, amount)
}
