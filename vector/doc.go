// Package vector provides an immutable Vector with exact-precision decimal
// coordinates and the classical analytic-geometry queries on it.
//
// The vector package provides:
//
//   - Construction from Go numbers (New), decimal text (Parse) or apd
//     decimals (FromDecimals), rejecting empty and non-finite input.
//   - Exact arithmetic: Add, Subtract, Scale, Divide, Dot, CrossProduct.
//   - Geometry: Magnitude, Normalise, AngleWith, IsParallelTo,
//     IsOrthogonalTo, ComponentParallelTo, ComponentOrthogonalTo and the
//     parallelogram/triangle areas.
//
// Equal is exact. Tolerance (default 1e-10, see WithTolerance) is only
// applied by IsZero, IsOrthogonalTo and the ±1 clamp of Dot.
//
// Coordinates are stored as apd decimals at a configurable precision
// (default 30 significant digits, see WithPrecision), so chains of additions
// do not drift the way float64 does. Square root stays decimal; acos and
// sin go through float64.
//
// Every operation returns a new Vector and never mutates its operands, so
// vectors may be shared between goroutines without locking. Failures are
// reported as sentinel errors (ErrZeroVector, ErrDimensionMismatch, ...)
// wrapped with the operation name; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package vector
