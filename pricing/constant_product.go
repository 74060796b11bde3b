// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "github.com/holiman/uint256"

// BasisPoints is the fee denominator.
const BasisPoints = 10_000

// ConstantProduct prices a two-asset pool under x*y=k. It is a value
// snapshot of the pool taken at the start of an operation: methods never
// mutate it and report the amounts to move instead.
type ConstantProduct struct {
	reserveX uint64
	reserveY uint64
	lpSupply uint64
	feeBps   uint16
}

// Deposit is the outcome of adding liquidity.
type Deposit struct {
	AmountX uint64
	AmountY uint64
	LPOut   uint64
}

// Withdrawal is the outcome of removing liquidity.
type Withdrawal struct {
	AmountX uint64
	AmountY uint64
}

// SwapResult is the outcome of a swap. Reserves are the values after the
// trade.
type SwapResult struct {
	AmountIn         uint64
	AmountInAfterFee uint64
	AmountOut        uint64
	ReserveX         uint64
	ReserveY         uint64
}

func NewConstantProduct(reserveX, reserveY, lpSupply uint64, feeBps uint16) (*ConstantProduct, error) {
	if feeBps >= BasisPoints {
		return nil, ErrInvalidFee
	}
	empty := reserveX == 0 && reserveY == 0 && lpSupply == 0
	funded := reserveX != 0 && reserveY != 0 && lpSupply != 0
	if !empty && !funded {
		return nil, ErrInvalidReserves
	}
	return &ConstantProduct{
		reserveX: reserveX,
		reserveY: reserveY,
		lpSupply: lpSupply,
		feeBps:   feeBps,
	}, nil
}

// Empty reports whether the pool has never been funded (or was fully
// withdrawn).
func (c *ConstantProduct) Empty() bool {
	return c.lpSupply == 0
}

func (c *ConstantProduct) Reserves() (uint64, uint64) {
	return c.reserveX, c.reserveY
}

func (c *ConstantProduct) LPSupply() uint64 {
	return c.lpSupply
}

func (c *ConstantProduct) FeeBps() uint16 {
	return c.feeBps
}

// AddLiquidity prices a deposit where the caller supplies both sides.
//
// On an empty pool both amounts are taken as-is and floor(sqrt(x*y)) LP
// units are minted. Otherwise the caller receives
// min(floor(x*S/rx), floor(y*S/ry)) and is only debited the amounts that
// LP figure implies on each side, rounded up in the pool's favor.
func (c *ConstantProduct) AddLiquidity(amountX, amountY uint64) (*Deposit, error) {
	if amountX == 0 || amountY == 0 {
		return nil, ErrZeroAmount
	}
	if c.Empty() {
		lp := sqrt(product(amountX, amountY))
		lpOut, err := narrow(lp)
		if err != nil {
			return nil, err
		}
		if err := c.checkGrowth(amountX, amountY, lpOut); err != nil {
			return nil, err
		}
		return &Deposit{AmountX: amountX, AmountY: amountY, LPOut: lpOut}, nil
	}

	lpX, err := mulDiv(amountX, c.lpSupply, c.reserveX)
	if err != nil {
		return nil, err
	}
	lpY, err := mulDiv(amountY, c.lpSupply, c.reserveY)
	if err != nil {
		return nil, err
	}
	lpOut := min(lpX, lpY)
	if lpOut == 0 {
		return nil, ErrInsufficientLiquidityMinted
	}
	// ceil(lpOut*r/S) never exceeds the supplied amount because
	// lpOut <= floor(amount*S/r).
	debitX, err := mulDivUp(lpOut, c.reserveX, c.lpSupply)
	if err != nil {
		return nil, err
	}
	debitY, err := mulDivUp(lpOut, c.reserveY, c.lpSupply)
	if err != nil {
		return nil, err
	}
	if err := c.checkGrowth(debitX, debitY, lpOut); err != nil {
		return nil, err
	}
	return &Deposit{AmountX: debitX, AmountY: debitY, LPOut: lpOut}, nil
}

// AddLiquidityPrimary prices a deposit where the caller fixes one side and
// the other is derived from the current ratio:
//
//	requiredOther = floor(primary * otherReserve / primaryReserve)
//	lpOut         = floor(primary * lpSupply / primaryReserve)
//
// The pool must already be funded.
func (c *ConstantProduct) AddLiquidityPrimary(primary uint64, primaryIsX bool) (*Deposit, error) {
	if primary == 0 {
		return nil, ErrZeroAmount
	}
	if c.Empty() {
		return nil, ErrInsufficientLiquidity
	}
	primaryReserve, otherReserve := c.reserveX, c.reserveY
	if !primaryIsX {
		primaryReserve, otherReserve = otherReserve, primaryReserve
	}
	other, err := mulDiv(primary, otherReserve, primaryReserve)
	if err != nil {
		return nil, err
	}
	if other == 0 {
		return nil, ErrInsufficientOtherAmount
	}
	lpOut, err := mulDiv(primary, c.lpSupply, primaryReserve)
	if err != nil {
		return nil, err
	}
	if lpOut == 0 {
		return nil, ErrInsufficientLiquidityMinted
	}
	d := &Deposit{AmountX: primary, AmountY: other, LPOut: lpOut}
	if !primaryIsX {
		d.AmountX, d.AmountY = other, primary
	}
	if err := c.checkGrowth(d.AmountX, d.AmountY, d.LPOut); err != nil {
		return nil, err
	}
	return d, nil
}

// checkGrowth makes sure the pool can absorb the deposit without any
// reserve or the LP supply leaving the uint64 range.
func (c *ConstantProduct) checkGrowth(amountX, amountY, lpOut uint64) error {
	if _, err := add(c.reserveX, amountX); err != nil {
		return err
	}
	if _, err := add(c.reserveY, amountY); err != nil {
		return err
	}
	_, err := add(c.lpSupply, lpOut)
	return err
}

// RemoveLiquidity prices burning [lpIn] LP units: each side returns
// floor(lpIn * reserve / lpSupply).
func (c *ConstantProduct) RemoveLiquidity(lpIn uint64) (*Withdrawal, error) {
	if lpIn == 0 {
		return nil, ErrZeroAmount
	}
	if c.Empty() {
		return nil, ErrInsufficientLiquidity
	}
	if lpIn > c.lpSupply {
		return nil, ErrBurnExceedsSupply
	}
	outX, err := mulDiv(lpIn, c.reserveX, c.lpSupply)
	if err != nil {
		return nil, err
	}
	outY, err := mulDiv(lpIn, c.reserveY, c.lpSupply)
	if err != nil {
		return nil, err
	}
	if outX == 0 && outY == 0 {
		return nil, ErrInsufficientWithdrawal
	}
	return &Withdrawal{AmountX: outX, AmountY: outY}, nil
}

// Swap prices trading [amountIn] of one asset for the other. The fee is
// taken from the input before the exchange:
//
//	afterFee  = floor(amountIn * (10000 - fee) / 10000)
//	amountOut = floor(reserveOut - reserveIn * reserveOut / (reserveIn + afterFee))
//
// The reserve left on the output side is rounded up so the remainder stays
// with the pool. The full [amountIn] (fee included) is added to the input
// reserve, and the resulting product is checked against the previous one.
func (c *ConstantProduct) Swap(amountIn uint64, xToY bool) (*SwapResult, error) {
	if amountIn == 0 {
		return nil, ErrZeroAmount
	}
	reserveIn, reserveOut := c.reserveX, c.reserveY
	if !xToY {
		reserveIn, reserveOut = reserveOut, reserveIn
	}
	if reserveIn == 0 || reserveOut == 0 {
		return nil, ErrInsufficientLiquidity
	}

	afterFee, err := mulDiv(amountIn, uint64(BasisPoints-c.feeBps), BasisPoints)
	if err != nil {
		return nil, err
	}
	denom := new(uint256.Int).Add(u256(reserveIn), u256(afterFee))
	if denom.IsZero() {
		return nil, ErrInsufficientLiquidity
	}
	remaining, err := narrow(divUp(product(reserveIn, reserveOut), denom))
	if err != nil {
		return nil, err
	}
	amountOut := reserveOut - remaining
	if amountOut >= reserveOut {
		return nil, ErrInsufficientLiquidity
	}
	if amountOut == 0 {
		return nil, ErrInsufficientOutputAmount
	}

	newIn, err := add(reserveIn, amountIn)
	if err != nil {
		return nil, err
	}
	newOut := reserveOut - amountOut
	if product(newIn, newOut).Lt(product(reserveIn, reserveOut)) {
		return nil, ErrInvariantViolated
	}

	r := &SwapResult{
		AmountIn:         amountIn,
		AmountInAfterFee: afterFee,
		AmountOut:        amountOut,
		ReserveX:         newIn,
		ReserveY:         newOut,
	}
	if !xToY {
		r.ReserveX, r.ReserveY = newOut, newIn
	}
	return r, nil
}

// Quote returns the output [Swap] would produce without reporting the
// post-trade reserves.
func (c *ConstantProduct) Quote(amountIn uint64, xToY bool) (uint64, error) {
	r, err := c.Swap(amountIn, xToY)
	if err != nil {
		return 0, err
	}
	return r.AmountOut, nil
}
