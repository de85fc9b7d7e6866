// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/vectorspace/numeric"
)

const (
	ctxCross          = "Vector.CrossProduct"
	ctxCrossMagnitude = "Vector.CrossProductMagnitude"
	ctxParallelogram  = "Vector.AreaParallelogramWith"
	ctxTriangle       = "Vector.AreaTriangleWith"
)

// CrossProduct returns v × other for 3-dimensional operands:
//
//	(y1·z2 - y2·z1, -(x1·z2 - x2·z1), x1·y2 - x2·y1)
//
// The determinant is evaluated in decimal, so integer inputs give exact
// integer results.
//
// Errors:
//   - ErrNilVector; ErrUnsupportedDimension unless both are 3D.
func (v *Vector) CrossProduct(other *Vector) (*Vector, error) {
	if err := ValidateDimension(3, v, other); err != nil {
		return nil, vectorErrorf(ctxCross, err)
	}
	num := v.cfg.num
	a, b := v.coords, other.coords

	x, err := crossTerm(num, &a[1], &b[2], &b[1], &a[2])
	if err != nil {
		return nil, vectorErrorf(ctxCross, err)
	}
	y, err := crossTerm(num, &a[0], &b[2], &b[0], &a[2])
	if err != nil {
		return nil, vectorErrorf(ctxCross, err)
	}
	if y, err = num.Neg(y); err != nil {
		return nil, vectorErrorf(ctxCross, err)
	}
	z, err := crossTerm(num, &a[0], &b[1], &b[0], &a[1])
	if err != nil {
		return nil, vectorErrorf(ctxCross, err)
	}

	out := make([]apd.Decimal, 3)
	out[0].Set(x)
	out[1].Set(y)
	out[2].Set(z)

	return newVector(v.cfg, out), nil
}

// crossTerm returns p·q - r·s.
func crossTerm(num *numeric.Context, p, q, r, s *apd.Decimal) (*apd.Decimal, error) {
	pq, err := num.Mul(p, q)
	if err != nil {
		return nil, err
	}
	rs, err := num.Mul(r, s)
	if err != nil {
		return nil, err
	}

	return num.Sub(pq, rs)
}

// CrossProductMagnitude returns |v|·|other|·sin θ for 3-dimensional operands.
//
// Errors:
//   - ErrNilVector, ErrUnsupportedDimension.
//   - ErrZeroVector when either operand is zero (the angle is undefined).
func (v *Vector) CrossProductMagnitude(other *Vector) (float64, error) {
	if err := ValidateDimension(3, v, other); err != nil {
		return 0, vectorErrorf(ctxCrossMagnitude, err)
	}
	theta, err := v.AngleWith(other, Radians)
	if err != nil {
		return 0, vectorErrorf(ctxCrossMagnitude, err)
	}
	m1, err := v.Magnitude()
	if err != nil {
		return 0, vectorErrorf(ctxCrossMagnitude, err)
	}
	m2, err := other.Magnitude()
	if err != nil {
		return 0, vectorErrorf(ctxCrossMagnitude, err)
	}

	return m1 * m2 * math.Sin(theta), nil
}

// AreaParallelogramWith returns the area of the parallelogram spanned by v
// and other: |other| times the length of v's component orthogonal to other.
// Works in any dimension.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//   - ErrNoUniqueOrthogonalComponent when other is the zero vector.
func (v *Vector) AreaParallelogramWith(other *Vector) (float64, error) {
	orth, err := v.ComponentOrthogonalTo(other)
	if err != nil {
		return 0, vectorErrorf(ctxParallelogram, err)
	}
	height, err := orth.Magnitude()
	if err != nil {
		return 0, vectorErrorf(ctxParallelogram, err)
	}
	base, err := other.Magnitude()
	if err != nil {
		return 0, vectorErrorf(ctxParallelogram, err)
	}

	return base * height, nil
}

// AreaTriangleWith returns half of AreaParallelogramWith.
//
// Errors:
//   - as AreaParallelogramWith.
func (v *Vector) AreaTriangleWith(other *Vector) (float64, error) {
	area, err := v.AreaParallelogramWith(other)
	if err != nil {
		return 0, vectorErrorf(ctxTriangle, err)
	}

	return area / 2, nil
}
