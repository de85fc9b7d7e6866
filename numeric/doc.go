// SPDX-License-Identifier: MIT

// Package numeric is the exact-precision arithmetic backend used by vector.
//
// The numeric package provides:
//
//   - Context: an apd decimal context bound to a fixed precision. Every
//     arithmetic step of a vector runs through exactly one Context, so two
//     callers configured with different precisions never affect each other.
//   - Scalar primitives: Add, Sub, Mul, Quo, Pow, Sqrt, Sum, Abs, Neg and the
//     conversions FromInt64, FromUint64, FromFloat64, Parse, Float64.
//   - Element-wise kernels over coordinate slices: AddVec, SubVec, MulVec,
//     ScaleVec, QuoVec, DotVec, SumSquares.
//
// Decimal arithmetic keeps chained additions and subtractions free of binary
// floating-point drift. Only transcendental steps (acos, sin) leave this
// package, through Float64.
//
// A *Context is read-only after NewContext returns and is safe for
// concurrent use.
package numeric
