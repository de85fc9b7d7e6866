// SPDX-License-Identifier: MIT

package vector

import (
	"errors"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/vectorspace/numeric"
)

const (
	ctxAdd           = "Vector.Add"
	ctxSubtract      = "Vector.Subtract"
	ctxScale         = "Vector.Scale"
	ctxScaleDecimal  = "Vector.ScaleDecimal"
	ctxDivide        = "Vector.Divide"
	ctxDivideDecimal = "Vector.DivideDecimal"
)

// Add returns v + other, element-wise.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := ValidateSameDimension(v, other); err != nil {
		return nil, vectorErrorf(ctxAdd, err)
	}
	out, err := v.cfg.num.AddVec(v.coords, other.coords)
	if err != nil {
		return nil, vectorErrorf(ctxAdd, fromNumeric(err))
	}

	return newVector(v.cfg, out), nil
}

// Subtract returns v - other, element-wise.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector) Subtract(other *Vector) (*Vector, error) {
	if err := ValidateSameDimension(v, other); err != nil {
		return nil, vectorErrorf(ctxSubtract, err)
	}
	out, err := v.cfg.num.SubVec(v.coords, other.coords)
	if err != nil {
		return nil, vectorErrorf(ctxSubtract, fromNumeric(err))
	}

	return newVector(v.cfg, out), nil
}

// Scale returns c·v.
//
// Errors:
//   - ErrNilVector; ErrInvalidScalar when c is NaN or ±Inf.
func (v *Vector) Scale(c float64) (*Vector, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(ctxScale, err)
	}
	s, err := v.scalarFromFloat(c)
	if err != nil {
		return nil, vectorErrorf(ctxScale, err)
	}

	return v.scale(ctxScale, s)
}

// ScaleDecimal returns c·v for an exact decimal scalar.
//
// Errors:
//   - ErrNilVector; ErrInvalidScalar when c is nil or not finite.
func (v *Vector) ScaleDecimal(c *apd.Decimal) (*Vector, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(ctxScaleDecimal, err)
	}
	if !numeric.IsFinite(c) {
		return nil, vectorErrorf(ctxScaleDecimal, ErrInvalidScalar)
	}

	return v.scale(ctxScaleDecimal, c)
}

// Divide returns v / c.
//
// Errors:
//   - ErrNilVector; ErrInvalidScalar when c is NaN or ±Inf;
//     ErrDivisionByZero when c == 0.
func (v *Vector) Divide(c float64) (*Vector, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(ctxDivide, err)
	}
	s, err := v.scalarFromFloat(c)
	if err != nil {
		return nil, vectorErrorf(ctxDivide, err)
	}

	return v.divide(ctxDivide, s)
}

// DivideDecimal returns v / c for an exact decimal scalar.
//
// Errors:
//   - ErrNilVector; ErrInvalidScalar when c is nil or not finite;
//     ErrDivisionByZero when c is zero.
func (v *Vector) DivideDecimal(c *apd.Decimal) (*Vector, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(ctxDivideDecimal, err)
	}
	if !numeric.IsFinite(c) {
		return nil, vectorErrorf(ctxDivideDecimal, ErrInvalidScalar)
	}

	return v.divide(ctxDivideDecimal, c)
}

// scale multiplies every coordinate by a validated scalar.
func (v *Vector) scale(tag string, s *apd.Decimal) (*Vector, error) {
	out, err := v.cfg.num.ScaleVec(v.coords, s)
	if err != nil {
		return nil, vectorErrorf(tag, fromNumeric(err))
	}

	return newVector(v.cfg, out), nil
}

// divide divides every coordinate by a validated scalar. A zero divisor is
// reported by the backend before any result is produced.
func (v *Vector) divide(tag string, s *apd.Decimal) (*Vector, error) {
	out, err := v.cfg.num.QuoVec(v.coords, s)
	if err != nil {
		return nil, vectorErrorf(tag, fromNumeric(err))
	}

	return newVector(v.cfg, out), nil
}

// scalarFromFloat converts c, labeling non-finite input as ErrInvalidScalar.
func (v *Vector) scalarFromFloat(c float64) (*apd.Decimal, error) {
	s, err := v.cfg.num.FromFloat64(c)
	if errors.Is(err, numeric.ErrNonFinite) {
		return nil, ErrInvalidScalar
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}
