// SPDX-License-Identifier: MIT

// Package vector - dot product and the predicates derived from it.
//
// The dot product is exact in decimal. One numerical-stability measure is
// applied on top: a result within tolerance of ±1 is snapped to exactly ±1,
// so that acos of the dot of two unit vectors never sees 1.0000…01 and
// parallel vectors report an angle of exactly 0 or π. No other magnitude is
// altered.

package vector

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

const (
	ctxDot          = "Vector.Dot"
	ctxAngleWith    = "Vector.AngleWith"
	ctxIsParallel   = "Vector.IsParallelTo"
	ctxIsOrthogonal = "Vector.IsOrthogonalTo"
)

// AngleUnit selects the unit AngleWith reports in. Values other than
// Radians and Degrees are rejected with ErrInvalidAngleUnit.
type AngleUnit uint8

const (
	// Radians reports angles in [0, π].
	Radians AngleUnit = iota
	// Degrees reports angles in [0, 180].
	Degrees
)

// Dot returns Σ v_i·other_i using v's tolerance for the ±1 clamp.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, vectorErrorf(ctxDot, err)
	}

	return v.DotWithin(other, v.cfg.tolerance)
}

// DotWithin is Dot with an explicit clamp tolerance.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrInvalidTolerance.
func (v *Vector) DotWithin(other *Vector, tol float64) (float64, error) {
	if err := ValidateSameDimension(v, other); err != nil {
		return 0, vectorErrorf(ctxDot, err)
	}
	if err := validateTolerance(tol); err != nil {
		return 0, vectorErrorf(ctxDot, err)
	}
	d, err := v.dot(other.coords, tol, ctxDot)
	if err != nil {
		return 0, vectorErrorf(ctxDot, err)
	}
	f, err := v.cfg.num.Float64(d)
	if err != nil {
		return 0, vectorErrorf(ctxDot, err)
	}

	return f, nil
}

// dot computes the clamped decimal dot product of v with coords. op tags
// the clamp's debug record.
func (v *Vector) dot(coords []apd.Decimal, tol float64, op string) (*apd.Decimal, error) {
	d, err := v.cfg.num.DotVec(v.coords, coords)
	if err != nil {
		return nil, fromNumeric(err)
	}

	return v.clampUnit(d, tol, op)
}

// clampUnit snaps d to ±1 when ||d| - 1| < tol, keeping the sign.
func (v *Vector) clampUnit(d *apd.Decimal, tol float64, op string) (*apd.Decimal, error) {
	num := v.cfg.num
	abs, err := num.Abs(d)
	if err != nil {
		return nil, err
	}
	off, err := num.Sub(abs, apd.New(1, 0))
	if err != nil {
		return nil, err
	}
	off, err = num.Abs(off)
	if err != nil {
		return nil, err
	}
	dist, err := num.Float64(off)
	if err != nil {
		return nil, err
	}
	if dist >= tol {
		return d, nil
	}

	clamped := apd.New(1, 0)
	if d.Sign() < 0 {
		clamped = apd.New(-1, 0)
	}
	if !off.IsZero() {
		v.cfg.logger.Debug("dot product clamped to unit",
			"op", op,
			"raw", d.String(),
			"clamped", clamped.String(),
			"tolerance", tol,
		)
	}

	return clamped, nil
}

// AngleWith returns the angle between v and other, in radians or degrees.
//
// Both operands are checked for zero before any normalization, so a zero
// operand fails with a message about the angle rather than about
// normalization. The error still matches ErrZeroVector.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrZeroVector.
//   - ErrInvalidAngleUnit for a unit other than Radians or Degrees.
func (v *Vector) AngleWith(other *Vector, unit AngleUnit) (float64, error) {
	if err := ValidateSameDimension(v, other); err != nil {
		return 0, vectorErrorf(ctxAngleWith, err)
	}
	if unit != Radians && unit != Degrees {
		return 0, vectorErrorf(ctxAngleWith, ErrInvalidAngleUnit)
	}
	if v.IsZero() || other.IsZero() {
		v.logZero(ctxAngleWith)
		return 0, vectorErrorf(ctxAngleWith, errAngleOfZero)
	}
	theta, err := v.angle(other, ctxAngleWith)
	if err != nil {
		return 0, vectorErrorf(ctxAngleWith, err)
	}
	if unit == Degrees {
		return theta * 180 / math.Pi, nil
	}

	return theta, nil
}

// angle returns the angle in radians between two validated non-zero vectors.
func (v *Vector) angle(other *Vector, op string) (float64, error) {
	u1, err := v.unitCoords()
	if err != nil {
		return 0, err
	}
	u2, err := other.unitCoords()
	if err != nil {
		return 0, err
	}
	unit := newVector(v.cfg, u1)
	d, err := unit.dot(u2, v.cfg.tolerance, op)
	if err != nil {
		return 0, err
	}
	cos, err := v.cfg.num.Float64(d)
	if err != nil {
		return 0, err
	}

	return math.Acos(cos), nil
}

// IsParallelTo reports whether v and other point along the same line. The
// zero vector is parallel to every vector; otherwise the angle between them
// must be exactly 0 or π after the ±1 clamp.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector) IsParallelTo(other *Vector) (bool, error) {
	if err := ValidateSameDimension(v, other); err != nil {
		return false, vectorErrorf(ctxIsParallel, err)
	}
	if v.IsZero() || other.IsZero() {
		return true, nil
	}
	theta, err := v.angle(other, ctxIsParallel)
	if err != nil {
		return false, vectorErrorf(ctxIsParallel, err)
	}

	return theta == 0 || theta == math.Pi, nil
}

// IsOrthogonalTo reports whether |v·other| is below v's tolerance. The zero
// vector is orthogonal to every vector.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector) IsOrthogonalTo(other *Vector) (bool, error) {
	if err := ValidateNotNil(v); err != nil {
		return false, vectorErrorf(ctxIsOrthogonal, err)
	}

	return v.IsOrthogonalToWithin(other, v.cfg.tolerance)
}

// IsOrthogonalToWithin reports whether |v·other| < tol.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrInvalidTolerance.
func (v *Vector) IsOrthogonalToWithin(other *Vector, tol float64) (bool, error) {
	if err := ValidateSameDimension(v, other); err != nil {
		return false, vectorErrorf(ctxIsOrthogonal, err)
	}
	if err := validateTolerance(tol); err != nil {
		return false, vectorErrorf(ctxIsOrthogonal, err)
	}
	d, err := v.cfg.num.DotVec(v.coords, other.coords)
	if err != nil {
		return false, vectorErrorf(ctxIsOrthogonal, fromNumeric(err))
	}
	d, err = v.cfg.num.Abs(d)
	if err != nil {
		return false, vectorErrorf(ctxIsOrthogonal, err)
	}
	f, err := v.cfg.num.Float64(d)
	if err != nil {
		return false, vectorErrorf(ctxIsOrthogonal, err)
	}

	return f < tol, nil
}
