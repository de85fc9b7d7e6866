// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// Every exported operation returns one of these sentinels, wrapped with the
// operation tag ("Quo: numeric: division by zero"). Match with errors.Is.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrecision is returned by NewContext for a zero precision or one
	// above MaxPrecision.
	ErrInvalidPrecision = errors.New("numeric: invalid precision")

	// ErrNonFinite indicates a NaN or ±Inf float64 was offered for conversion.
	ErrNonFinite = errors.New("numeric: NaN or Inf encountered")

	// ErrInvalidNumber indicates text that does not parse as a finite decimal.
	ErrInvalidNumber = errors.New("numeric: invalid decimal number")

	// ErrNilOperand indicates a nil *apd.Decimal operand.
	ErrNilOperand = errors.New("numeric: nil operand")

	// ErrDivisionByZero is returned by Quo and QuoVec for a zero divisor. It is
	// detected before the backend runs, so no infinity is ever produced.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNegativeRadicand is returned by Sqrt for a negative argument.
	ErrNegativeRadicand = errors.New("numeric: square root of negative number")

	// ErrLengthMismatch indicates element-wise kernel operands of different length.
	ErrLengthMismatch = errors.New("numeric: length mismatch")

	// ErrArithmetic reports a trapped apd condition (overflow, underflow,
	// invalid operation) not covered by a more specific sentinel.
	ErrArithmetic = errors.New("numeric: arithmetic condition")
)

// numericErrorf wraps err with the operation tag.
func numericErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// conditionErrorf turns an error returned by apd into ErrArithmetic, keeping
// the apd condition text for diagnostics.
func conditionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %v", tag, ErrArithmetic, err)
}
