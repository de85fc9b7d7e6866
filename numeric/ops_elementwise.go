// SPDX-License-Identifier: MIT
// Package: numeric
//
// Purpose:
//   - Provide the element-wise kernels vector is built from, so the tight
//     loops over coordinates live in one place.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; reductions accumulate in index order, so the
//     same inputs always round the same way.
//   - Each kernel allocates exactly one output slice and writes results in
//     place into its elements. Inputs are never mutated.

package numeric

import (
	"github.com/cockroachdb/apd/v3"
)

const (
	ctxAddVec     = "AddVec"
	ctxSubVec     = "SubVec"
	ctxMulVec     = "MulVec"
	ctxScaleVec   = "ScaleVec"
	ctxQuoVec     = "QuoVec"
	ctxDotVec     = "DotVec"
	ctxSumSquares = "SumSquares"
)

// zipVec applies op pairwise over a and b into a new slice.
// Time: O(n). Space: O(n).
func (c *Context) zipVec(
	tag string,
	op func(d, x, y *apd.Decimal) (apd.Condition, error),
	a, b []apd.Decimal,
) ([]apd.Decimal, error) {
	if len(a) != len(b) {
		return nil, numericErrorf(tag, ErrLengthMismatch)
	}
	out := make([]apd.Decimal, len(a))
	for i := range a {
		if _, err := op(&out[i], &a[i], &b[i]); err != nil {
			return nil, conditionErrorf(tag, err)
		}
	}

	return out, nil
}

// AddVec computes out[i] = a[i] + b[i].
func (c *Context) AddVec(a, b []apd.Decimal) ([]apd.Decimal, error) {
	return c.zipVec(ctxAddVec, c.dc.Add, a, b)
}

// SubVec computes out[i] = a[i] - b[i].
func (c *Context) SubVec(a, b []apd.Decimal) ([]apd.Decimal, error) {
	return c.zipVec(ctxSubVec, c.dc.Sub, a, b)
}

// MulVec computes the Hadamard product out[i] = a[i] * b[i].
func (c *Context) MulVec(a, b []apd.Decimal) ([]apd.Decimal, error) {
	return c.zipVec(ctxMulVec, c.dc.Mul, a, b)
}

// ScaleVec computes out[i] = a[i] * s.
// Time: O(n). Space: O(n).
func (c *Context) ScaleVec(a []apd.Decimal, s *apd.Decimal) ([]apd.Decimal, error) {
	if s == nil {
		return nil, numericErrorf(ctxScaleVec, ErrNilOperand)
	}
	out := make([]apd.Decimal, len(a))
	for i := range a {
		if _, err := c.dc.Mul(&out[i], &a[i], s); err != nil {
			return nil, conditionErrorf(ctxScaleVec, err)
		}
	}

	return out, nil
}

// QuoVec computes out[i] = a[i] / s.
//
// Errors:
//   - ErrDivisionByZero when s is zero; nothing is allocated in that case.
func (c *Context) QuoVec(a []apd.Decimal, s *apd.Decimal) ([]apd.Decimal, error) {
	if s == nil {
		return nil, numericErrorf(ctxQuoVec, ErrNilOperand)
	}
	if s.IsZero() {
		return nil, numericErrorf(ctxQuoVec, ErrDivisionByZero)
	}
	out := make([]apd.Decimal, len(a))
	for i := range a {
		if _, err := c.dc.Quo(&out[i], &a[i], s); err != nil {
			return nil, conditionErrorf(ctxQuoVec, err)
		}
	}

	return out, nil
}

// DotVec returns sum(a[i] * b[i]), accumulated in index order.
// Time: O(n). Space: O(1) beyond one scratch decimal.
func (c *Context) DotVec(a, b []apd.Decimal) (*apd.Decimal, error) {
	if len(a) != len(b) {
		return nil, numericErrorf(ctxDotVec, ErrLengthMismatch)
	}
	acc := new(apd.Decimal)
	var prod apd.Decimal
	for i := range a {
		if _, err := c.dc.Mul(&prod, &a[i], &b[i]); err != nil {
			return nil, conditionErrorf(ctxDotVec, err)
		}
		if _, err := c.dc.Add(acc, acc, &prod); err != nil {
			return nil, conditionErrorf(ctxDotVec, err)
		}
	}

	return acc, nil
}

// SumSquares returns sum(a[i]^2) using the Pow primitive.
func (c *Context) SumSquares(a []apd.Decimal) (*apd.Decimal, error) {
	squares := make([]*apd.Decimal, len(a))
	for i := range a {
		sq, err := c.Pow(&a[i], 2)
		if err != nil {
			return nil, numericErrorf(ctxSumSquares, err)
		}
		squares[i] = sq
	}
	sum, err := c.Sum(squares)
	if err != nil {
		return nil, numericErrorf(ctxSumSquares, err)
	}

	return sum, nil
}
