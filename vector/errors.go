// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public operation
// returns one of these, wrapped with the operation tag via vectorErrorf, and
// tests check them via errors.Is. No operation panics on user input.

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vectorspace/numeric"
)

// NOTE ON RE-LABELING
// -------------------
// Several failures share one root cause (a zero-magnitude operand) but mean
// different things to the caller. Each call boundary translates the lower
// sentinel into its own instead of propagating it, so that
//
//	errors.Is(err, ErrNoUniqueOrthogonalComponent) // true
//	errors.Is(err, ErrNoUniqueParallelComponent)   // false
//	errors.Is(err, ErrZeroVector)                  // false
//
// for ComponentOrthogonalTo against a zero basis.

var (
	// ErrEmptyCoordinates is returned when constructing a vector from no coordinates.
	ErrEmptyCoordinates = errors.New("vector: coordinates must be nonempty")

	// ErrInvalidCoordinate indicates a coordinate that has no finite decimal
	// value (NaN, ±Inf, nil or malformed text).
	ErrInvalidCoordinate = errors.New("vector: invalid coordinate")

	// ErrDimensionMismatch indicates operands of a binary operation differ in dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidScalar indicates a scale or divide operand that is not a finite number.
	ErrInvalidScalar = errors.New("vector: invalid scalar")

	// ErrDivisionByZero is returned by Divide and DivideDecimal for a zero scalar.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrZeroVector indicates normalization or angle computation on or with
	// a vector whose magnitude is below tolerance.
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrNoUniqueParallelComponent is returned by ComponentParallelTo for a zero basis.
	ErrNoUniqueParallelComponent = errors.New("vector: no unique parallel component")

	// ErrNoUniqueOrthogonalComponent is returned by ComponentOrthogonalTo for a zero basis.
	ErrNoUniqueOrthogonalComponent = errors.New("vector: no unique orthogonal component")

	// ErrUnsupportedDimension indicates a 3D-only operation on another dimension.
	ErrUnsupportedDimension = errors.New("vector: operation requires 3 dimensions")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrOutOfRange indicates a coordinate index outside [0, Dimension()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidTolerance indicates a NaN, infinite or negative tolerance.
	ErrInvalidTolerance = errors.New("vector: invalid tolerance")

	// ErrInvalidAngleUnit indicates an AngleUnit other than Radians or Degrees.
	ErrInvalidAngleUnit = errors.New("vector: invalid angle unit")
)

// errAngleOfZero keeps ErrZeroVector matchable while telling the caller the
// angle, not the normalization, is what is undefined.
var errAngleOfZero = fmt.Errorf("angle is undefined for a zero vector: %w", ErrZeroVector)

// vectorErrorf wraps err with the operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// fromNumeric translates backend sentinels that have a vector meaning.
// Anything else (numeric.ErrArithmetic) is passed through for errors.Is.
func fromNumeric(err error) error {
	switch {
	case errors.Is(err, numeric.ErrDivisionByZero):
		return ErrDivisionByZero
	case errors.Is(err, numeric.ErrLengthMismatch):
		return ErrDimensionMismatch
	default:
		return err
	}
}
