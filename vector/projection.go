// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
)

const (
	ctxParallelComponent   = "Vector.ComponentParallelTo"
	ctxOrthogonalComponent = "Vector.ComponentOrthogonalTo"
)

// ComponentParallelTo returns the projection of v onto the direction of
// basis: u·(v·u) with u = basis/|basis|. The result uses v's configuration.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//   - ErrNoUniqueParallelComponent when basis is the zero vector.
func (v *Vector) ComponentParallelTo(basis *Vector) (*Vector, error) {
	if err := ValidateSameDimension(v, basis); err != nil {
		return nil, vectorErrorf(ctxParallelComponent, err)
	}
	if basis.IsZero() {
		basis.logZero(ctxParallelComponent)
		return nil, vectorErrorf(ctxParallelComponent, ErrNoUniqueParallelComponent)
	}
	u, err := newVector(v.cfg, basis.coords).unitCoords()
	if err != nil {
		return nil, vectorErrorf(ctxParallelComponent, err)
	}
	weight, err := v.dot(u, v.cfg.tolerance, ctxParallelComponent)
	if err != nil {
		return nil, vectorErrorf(ctxParallelComponent, err)
	}
	out, err := v.cfg.num.ScaleVec(u, weight)
	if err != nil {
		return nil, vectorErrorf(ctxParallelComponent, fromNumeric(err))
	}

	return newVector(v.cfg, out), nil
}

// ComponentOrthogonalTo returns v minus its component parallel to basis.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//   - ErrNoUniqueOrthogonalComponent when basis is the zero vector. The
//     error does not match ErrNoUniqueParallelComponent.
func (v *Vector) ComponentOrthogonalTo(basis *Vector) (*Vector, error) {
	parallel, err := v.ComponentParallelTo(basis)
	if errors.Is(err, ErrNoUniqueParallelComponent) {
		return nil, vectorErrorf(ctxOrthogonalComponent, ErrNoUniqueOrthogonalComponent)
	}
	if err != nil {
		return nil, vectorErrorf(ctxOrthogonalComponent, err)
	}
	out, err := v.Subtract(parallel)
	if err != nil {
		return nil, vectorErrorf(ctxOrthogonalComponent, err)
	}

	return out, nil
}
