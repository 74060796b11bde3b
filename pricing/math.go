// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "github.com/holiman/uint256"

// All products of two uint64 values are formed in 256 bits and narrowed
// back only after division.

func u256(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// mulDiv returns floor(a*b/c). c must not be zero.
func mulDiv(a, b, c uint64) (uint64, error) {
	num := new(uint256.Int).Mul(u256(a), u256(b))
	return narrow(new(uint256.Int).Div(num, u256(c)))
}

// mulDivUp returns ceil(a*b/c). c must not be zero.
func mulDivUp(a, b, c uint64) (uint64, error) {
	return narrow(divUp(product(a, b), u256(c)))
}

// divUp returns ceil(num/denom). denom must not be zero.
func divUp(num, denom *uint256.Int) *uint256.Int {
	z := new(uint256.Int).Div(num, denom)
	if rem := new(uint256.Int).Mod(num, denom); !rem.IsZero() {
		z.AddUint64(z, 1)
	}
	return z
}

func add(a, b uint64) (uint64, error) {
	return narrow(new(uint256.Int).Add(u256(a), u256(b)))
}

func narrow(z *uint256.Int) (uint64, error) {
	if !z.IsUint64() {
		return 0, ErrOverflow
	}
	return z.Uint64(), nil
}

// product returns x*y without loss.
func product(x, y uint64) *uint256.Int {
	return new(uint256.Int).Mul(u256(x), u256(y))
}

// sqrt returns floor(sqrt(y)) using the Babylonian method.
//
// https://github.com/Uniswap/v2-core/blob/ee547b17853e71ed4e0101ccfd52e70d5acded58/contracts/libraries/Math.sol#L10
func sqrt(y *uint256.Int) *uint256.Int {
	if y.LtUint64(4) {
		if y.IsZero() {
			return new(uint256.Int)
		}
		return u256(1)
	}
	z := new(uint256.Int).Set(y)
	x := new(uint256.Int).Rsh(y, 1)
	x.AddUint64(x, 1)
	for x.Lt(z) {
		z.Set(x)
		// x = (y/x + x) / 2
		x.Div(y, z)
		x.Add(x, z)
		x.Rsh(x, 1)
	}
	return z
}
