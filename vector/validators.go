// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for operand checks, so every operation fails
//     the same way for the same violation.
//   - Validators return sentinels wrapped with the validator name; callers
//     wrap once more with their own operation tag.
//
// Note:
//   - Composite checks run in a fixed order: nil → dimension.

package vector

// ValidateNotNil ensures every given vector is non-nil.
// Complexity: O(k) for k arguments.
func ValidateNotNil(vs ...*Vector) error {
	for _, v := range vs {
		if v == nil {
			return vectorErrorf("ValidateNotNil", ErrNilVector)
		}
	}

	return nil
}

// ValidateSameDimension ensures a and b are non-nil and of equal dimension.
func ValidateSameDimension(a, b *Vector) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if len(a.coords) != len(b.coords) {
		return vectorErrorf("ValidateSameDimension", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDimension ensures every given vector has exactly dimension n.
// Nil vectors fail with ErrNilVector, others with ErrUnsupportedDimension.
func ValidateDimension(n int, vs ...*Vector) error {
	if err := ValidateNotNil(vs...); err != nil {
		return err
	}
	for _, v := range vs {
		if len(v.coords) != n {
			return vectorErrorf("ValidateDimension", ErrUnsupportedDimension)
		}
	}

	return nil
}

// validateTolerance rejects NaN, infinite and negative tolerances.
func validateTolerance(tol float64) error {
	if !validTolerance(tol) {
		return vectorErrorf("validateTolerance", ErrInvalidTolerance)
	}

	return nil
}
