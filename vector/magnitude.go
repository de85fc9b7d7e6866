// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/cockroachdb/apd/v3"
)

const (
	ctxMagnitude = "Vector.Magnitude"
	ctxNormalise = "Vector.Normalise"
)

// Magnitude returns the Euclidean length sqrt(Σ c_i²). The sum of squares
// and the root are computed in decimal; only the result is converted.
//
// Errors:
//   - ErrNilVector; numeric.ErrArithmetic if squaring overflows the
//     decimal exponent range.
func (v *Vector) Magnitude() (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, vectorErrorf(ctxMagnitude, err)
	}
	m, err := v.magnitude()
	if err != nil {
		return 0, vectorErrorf(ctxMagnitude, err)
	}
	f, err := v.cfg.num.Float64(m)
	if err != nil {
		return 0, vectorErrorf(ctxMagnitude, err)
	}

	return f, nil
}

// IsZero reports whether v's magnitude is below v's configured tolerance.
// A nil vector is not zero.
func (v *Vector) IsZero() bool {
	if v == nil {
		return false
	}

	return v.IsZeroWithin(v.cfg.tolerance)
}

// IsZeroWithin reports whether v's magnitude is below tol. An exactly zero
// magnitude always matches, so a zero tolerance still recognises the zero
// vector. A NaN, infinite or negative tol never matches.
func (v *Vector) IsZeroWithin(tol float64) bool {
	if v == nil || !validTolerance(tol) {
		return false
	}
	// magnitude only fails on exponent overflow, which is far from zero.
	m, err := v.magnitude()
	if err != nil {
		return false
	}
	if m.IsZero() {
		return true
	}
	f, err := v.cfg.num.Float64(m)
	if err != nil {
		return false
	}

	return f < tol
}

// Normalise returns the unit vector v / |v|. The division uses the decimal
// magnitude, so the result has unit length to the configured precision.
//
// Errors:
//   - ErrNilVector; ErrZeroVector when IsZero() holds.
func (v *Vector) Normalise() (*Vector, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(ctxNormalise, err)
	}
	if v.IsZero() {
		v.logZero(ctxNormalise)
		return nil, vectorErrorf(ctxNormalise, ErrZeroVector)
	}
	u, err := v.unitCoords()
	if err != nil {
		return nil, vectorErrorf(ctxNormalise, err)
	}

	return newVector(v.cfg, u), nil
}

// magnitude returns the decimal Euclidean length.
func (v *Vector) magnitude() (*apd.Decimal, error) {
	sq, err := v.cfg.num.SumSquares(v.coords)
	if err != nil {
		return nil, fromNumeric(err)
	}
	m, err := v.cfg.num.Sqrt(sq)
	if err != nil {
		return nil, fromNumeric(err)
	}

	return m, nil
}

// unitCoords divides v's coordinates by its decimal magnitude. Callers must
// have rejected zero vectors already.
func (v *Vector) unitCoords() ([]apd.Decimal, error) {
	m, err := v.magnitude()
	if err != nil {
		return nil, err
	}
	u, err := v.cfg.num.QuoVec(v.coords, m)
	if err != nil {
		return nil, fromNumeric(err)
	}

	return u, nil
}

// logZero records a zero-vector rejection at debug level.
func (v *Vector) logZero(op string) {
	v.cfg.logger.Debug("zero vector rejected",
		"op", op,
		"dimension", len(v.coords),
		"tolerance", v.cfg.tolerance,
	)
}
