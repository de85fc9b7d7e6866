// SPDX-License-Identifier: MIT

// Package numeric - decimal Context & scalar primitives.
//
// Purpose:
//   - Bind an apd.Context to one precision and expose the handful of scalar
//     operations vector needs, each returning a fresh *apd.Decimal.
//   - Translate apd conditions into package sentinels at a single place.
//
// Determinism:
//   - Rounding is half-even at the configured precision for every operation.
//   - Operands are never mutated; results are always newly allocated.

package numeric

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// MaxPrecision bounds the number of significant digits a Context may carry.
const MaxPrecision = 1000

// ---------- error context tags ----------

const (
	ctxNewContext = "NewContext"
	ctxParse      = "Parse"
	ctxFromFloat  = "FromFloat64"
	ctxFromUint   = "FromUint64"
	ctxFloat64    = "Float64"
	ctxRound      = "Round"
	ctxAdd        = "Add"
	ctxSub        = "Sub"
	ctxMul        = "Mul"
	ctxQuo        = "Quo"
	ctxPow        = "Pow"
	ctxSqrt       = "Sqrt"
	ctxSum        = "Sum"
	ctxAbs        = "Abs"
	ctxNeg        = "Neg"
)

// Context performs decimal arithmetic at a fixed precision.
type Context struct {
	dc *apd.Context // read-only after NewContext
}

// NewContext returns a Context rounding every result to precision
// significant digits.
//
// Errors:
//   - ErrInvalidPrecision when precision is 0 or above MaxPrecision.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewContext(precision uint32) (*Context, error) {
	if precision == 0 || precision > MaxPrecision {
		return nil, numericErrorf(ctxNewContext, ErrInvalidPrecision)
	}
	dc := apd.BaseContext.WithPrecision(precision)
	dc.Rounding = apd.RoundHalfEven

	return &Context{dc: dc}, nil
}

// Precision reports the number of significant digits kept by c.
func (c *Context) Precision() uint32 { return c.dc.Precision }

// ---------- conversions ----------

// FromInt64 returns x as a decimal rounded to c's precision.
func (c *Context) FromInt64(x int64) (*apd.Decimal, error) {
	return c.Round(apd.New(x, 0))
}

// FromUint64 returns x as a decimal rounded to c's precision.
func (c *Context) FromUint64(x uint64) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(strconv.FormatUint(x, 10))
	if err != nil {
		return nil, conditionErrorf(ctxFromUint, err)
	}

	return c.Round(d)
}

// FromFloat64 converts f using its shortest decimal representation, so 0.1
// becomes exactly 0.1 rather than its binary approximation.
//
// Errors:
//   - ErrNonFinite for NaN and ±Inf.
func (c *Context) FromFloat64(f float64) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, numericErrorf(ctxFromFloat, ErrNonFinite)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return nil, conditionErrorf(ctxFromFloat, err)
	}

	return c.Round(d)
}

// Parse reads a finite decimal literal such as "-12.5" or "3E-7".
//
// Errors:
//   - ErrInvalidNumber for malformed text and for NaN/Infinity literals.
func (c *Context) Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, numericErrorf(ctxParse, ErrInvalidNumber)
	}
	if d.Form != apd.Finite {
		return nil, numericErrorf(ctxParse, ErrInvalidNumber)
	}

	return c.Round(d)
}

// Float64 converts x to the nearest float64. This is the only exit from the
// exact domain and is reserved for transcendental steps and reporting.
func (c *Context) Float64(x *apd.Decimal) (float64, error) {
	if x == nil {
		return 0, numericErrorf(ctxFloat64, ErrNilOperand)
	}
	f, err := x.Float64()
	if err != nil {
		return 0, conditionErrorf(ctxFloat64, err)
	}

	return f, nil
}

// IsFinite reports whether x is a non-nil finite decimal.
func IsFinite(x *apd.Decimal) bool {
	return x != nil && x.Form == apd.Finite
}

// Round returns x rounded to c's precision.
func (c *Context) Round(x *apd.Decimal) (*apd.Decimal, error) {
	if x == nil {
		return nil, numericErrorf(ctxRound, ErrNilOperand)
	}
	d := new(apd.Decimal)
	if _, err := c.dc.Round(d, x); err != nil {
		return nil, conditionErrorf(ctxRound, err)
	}

	return d, nil
}

// ---------- scalar primitives ----------

// binary runs a two-operand apd operation into a fresh decimal.
func (c *Context) binary(
	tag string,
	op func(d, x, y *apd.Decimal) (apd.Condition, error),
	x, y *apd.Decimal,
) (*apd.Decimal, error) {
	if x == nil || y == nil {
		return nil, numericErrorf(tag, ErrNilOperand)
	}
	d := new(apd.Decimal)
	if _, err := op(d, x, y); err != nil {
		return nil, conditionErrorf(tag, err)
	}

	return d, nil
}

// Add returns x + y.
func (c *Context) Add(x, y *apd.Decimal) (*apd.Decimal, error) {
	return c.binary(ctxAdd, c.dc.Add, x, y)
}

// Sub returns x - y.
func (c *Context) Sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	return c.binary(ctxSub, c.dc.Sub, x, y)
}

// Mul returns x * y.
func (c *Context) Mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	return c.binary(ctxMul, c.dc.Mul, x, y)
}

// Quo returns x / y.
//
// Errors:
//   - ErrDivisionByZero when y is zero (checked before apd runs, so neither
//     an infinity nor a generic condition ever reaches the caller).
func (c *Context) Quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y != nil && y.IsZero() {
		return nil, numericErrorf(ctxQuo, ErrDivisionByZero)
	}

	return c.binary(ctxQuo, c.dc.Quo, x, y)
}

// Pow returns x raised to the integer power n.
func (c *Context) Pow(x *apd.Decimal, n int64) (*apd.Decimal, error) {
	return c.binary(ctxPow, c.dc.Pow, x, apd.New(n, 0))
}

// Sqrt returns the square root of x at c's precision.
//
// Errors:
//   - ErrNegativeRadicand when x < 0.
func (c *Context) Sqrt(x *apd.Decimal) (*apd.Decimal, error) {
	if x == nil {
		return nil, numericErrorf(ctxSqrt, ErrNilOperand)
	}
	if x.Sign() < 0 {
		return nil, numericErrorf(ctxSqrt, ErrNegativeRadicand)
	}
	d := new(apd.Decimal)
	if _, err := c.dc.Sqrt(d, x); err != nil {
		return nil, conditionErrorf(ctxSqrt, err)
	}

	return d, nil
}

// Sum returns the sum of xs in index order. The empty sum is zero.
func (c *Context) Sum(xs []*apd.Decimal) (*apd.Decimal, error) {
	acc := new(apd.Decimal)
	for _, x := range xs {
		if x == nil {
			return nil, numericErrorf(ctxSum, ErrNilOperand)
		}
		if _, err := c.dc.Add(acc, acc, x); err != nil {
			return nil, conditionErrorf(ctxSum, err)
		}
	}

	return acc, nil
}

// Abs returns |x|.
func (c *Context) Abs(x *apd.Decimal) (*apd.Decimal, error) {
	if x == nil {
		return nil, numericErrorf(ctxAbs, ErrNilOperand)
	}
	d := new(apd.Decimal)
	if _, err := c.dc.Abs(d, x); err != nil {
		return nil, conditionErrorf(ctxAbs, err)
	}

	return d, nil
}

// Neg returns -x.
func (c *Context) Neg(x *apd.Decimal) (*apd.Decimal, error) {
	if x == nil {
		return nil, numericErrorf(ctxNeg, ErrNilOperand)
	}
	d := new(apd.Decimal)
	if _, err := c.dc.Neg(d, x); err != nil {
		return nil, conditionErrorf(ctxNeg, err)
	}

	return d, nil
}
