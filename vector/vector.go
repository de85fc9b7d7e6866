// SPDX-License-Identifier: MIT

// Package vector - Vector storage, construction & accessors.
//
// Purpose:
//   - Hold an immutable, fixed-length sequence of exact-precision coordinates.
//   - Validate input once at construction; every later operation may assume
//     a non-empty, finite coordinate slice.
//   - Keep exact equality (Equal) separate from the tolerance-based
//     geometric predicates.
//
// Complexity quicksheet:
//   - New/Parse/FromDecimals: O(n); Dimension: O(1); At: O(1);
//     Coordinates/Float64s: O(n); Equal: O(n).

package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/vectorspace/numeric"
)

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxParse        = "Parse"
	ctxFromDecimals = "FromDecimals"
	ctxAt           = "Vector.At"
)

// ---------- Formatting literals ----------

const (
	_fmtPrefix = "Vector: ("
	_fmtSuffix = ")"
	_fmtSep    = ", "
)

// Number is the set of Go numeric kinds accepted as coordinates by New.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Vector is an immutable point in n-dimensional space with exact-precision
// decimal coordinates.
//   - coords is never mutated after construction and never handed out.
//   - cfg is shared with every vector derived from this one.
type Vector struct {
	coords []apd.Decimal
	cfg    *config
}

var _ fmt.Stringer = (*Vector)(nil)

// New creates a vector from native Go numbers.
// Floats are converted through their shortest decimal representation, so
// New([]float64{0.1}) stores exactly 0.1.
//
// Errors:
//   - ErrEmptyCoordinates for an empty slice.
//   - ErrInvalidCoordinate for NaN or ±Inf.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](coords []T, opts ...Option) (*Vector, error) {
	if len(coords) == 0 {
		return nil, vectorErrorf(ctxNew, ErrEmptyCoordinates)
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, vectorErrorf(ctxNew, err)
	}
	out := make([]apd.Decimal, len(coords))
	for i, x := range coords {
		d, err := toDecimal(cfg.num, x)
		if err != nil {
			return nil, vectorErrorf(ctxNew, coordinateError(i, err))
		}
		out[i].Set(d)
	}

	return newVector(cfg, out), nil
}

// Parse creates a vector from decimal literals such as "1.25" or "-3E-4",
// keeping them exact up to the configured precision.
//
// Errors:
//   - ErrEmptyCoordinates for an empty slice.
//   - ErrInvalidCoordinate for malformed text, NaN or Infinity.
func Parse(coords []string, opts ...Option) (*Vector, error) {
	if len(coords) == 0 {
		return nil, vectorErrorf(ctxParse, ErrEmptyCoordinates)
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, vectorErrorf(ctxParse, err)
	}
	out := make([]apd.Decimal, len(coords))
	for i, s := range coords {
		d, err := cfg.num.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, vectorErrorf(ctxParse, coordinateError(i, err))
		}
		out[i].Set(d)
	}

	return newVector(cfg, out), nil
}

// FromDecimals creates a vector from apd decimals. The inputs are copied
// (rounded to the configured precision) and may be reused by the caller.
//
// Errors:
//   - ErrEmptyCoordinates for an empty slice.
//   - ErrInvalidCoordinate for a nil, NaN or infinite element.
func FromDecimals(coords []*apd.Decimal, opts ...Option) (*Vector, error) {
	if len(coords) == 0 {
		return nil, vectorErrorf(ctxFromDecimals, ErrEmptyCoordinates)
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, vectorErrorf(ctxFromDecimals, err)
	}
	out := make([]apd.Decimal, len(coords))
	for i, x := range coords {
		if !numeric.IsFinite(x) {
			return nil, vectorErrorf(ctxFromDecimals, coordinateError(i, nil))
		}
		d, err := cfg.num.Round(x)
		if err != nil {
			return nil, vectorErrorf(ctxFromDecimals, coordinateError(i, err))
		}
		out[i].Set(d)
	}

	return newVector(cfg, out), nil
}

// newVector wraps already validated coordinates. coords must not be shared.
func newVector(cfg *config, coords []apd.Decimal) *Vector {
	return &Vector{coords: coords, cfg: cfg}
}

// coordinateError labels a conversion failure with its index.
func coordinateError(i int, cause error) error {
	if cause == nil {
		return fmt.Errorf("coordinate %d: %w", i, ErrInvalidCoordinate)
	}

	return fmt.Errorf("coordinate %d: %w (%v)", i, ErrInvalidCoordinate, cause)
}

// toDecimal converts one native number through the backend.
func toDecimal[T Number](c *numeric.Context, x T) (*apd.Decimal, error) {
	switch v := any(x).(type) {
	case float64:
		return c.FromFloat64(v)
	case float32:
		// Shortest float32 text, so float32(0.1) reads as 0.1.
		return c.Parse(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case uint:
		return c.FromUint64(uint64(v))
	case uint8:
		return c.FromUint64(uint64(v))
	case uint16:
		return c.FromUint64(uint64(v))
	case uint32:
		return c.FromUint64(uint64(v))
	case uint64:
		return c.FromUint64(v)
	case int:
		return c.FromInt64(int64(v))
	case int8:
		return c.FromInt64(int64(v))
	case int16:
		return c.FromInt64(int64(v))
	case int32:
		return c.FromInt64(int64(v))
	case int64:
		return c.FromInt64(v)
	default:
		return nil, fmt.Errorf("unsupported type %T", x)
	}
}

// ---------- accessors ----------

// Dimension returns the number of coordinates. A nil vector has dimension 0.
func (v *Vector) Dimension() int {
	if v == nil {
		return 0
	}

	return len(v.coords)
}

// At returns a copy of coordinate i.
//
// Errors:
//   - ErrNilVector, ErrOutOfRange.
func (v *Vector) At(i int) (*apd.Decimal, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(ctxAt, err)
	}
	if i < 0 || i >= len(v.coords) {
		return nil, vectorErrorf(ctxAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return new(apd.Decimal).Set(&v.coords[i]), nil
}

// Coordinates returns copies of all coordinates in order.
func (v *Vector) Coordinates() []*apd.Decimal {
	if v == nil {
		return nil
	}
	out := make([]*apd.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = new(apd.Decimal).Set(&v.coords[i])
	}

	return out
}

// Float64s returns the coordinates converted to float64. Values beyond the
// float64 range saturate to ±Inf.
func (v *Vector) Float64s() []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v.coords))
	for i := range v.coords {
		out[i], _ = v.coords[i].Float64()
	}

	return out
}

// Precision returns the number of significant digits v computes with.
func (v *Vector) Precision() uint32 {
	if v == nil {
		return 0
	}

	return v.cfg.num.Precision()
}

// Tolerance returns the tolerance used by v's geometric predicates.
func (v *Vector) Tolerance() float64 {
	if v == nil {
		return 0
	}

	return v.cfg.tolerance
}

// ---------- equality & display ----------

// Equal reports whether v and other have the same dimension and exactly
// equal coordinates. No tolerance is applied: 1 and 1.0 are equal, while
// 1 and 1.00000000001 are not. Two nil vectors are equal.
func (v *Vector) Equal(other *Vector) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.coords) != len(other.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Cmp(&other.coords[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders v as "Vector: (x, y, z)" for diagnostics. It is not meant
// to be parsed back.
func (v *Vector) String() string {
	if v == nil {
		return "Vector: <nil>"
	}
	var sb strings.Builder
	sb.WriteString(_fmtPrefix)
	for i := range v.coords {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(v.coords[i].String())
	}
	sb.WriteString(_fmtSuffix)

	return sb.String()
}
