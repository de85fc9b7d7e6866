// SPDX-License-Identifier: MIT

// Package vector: functional configuration of precision, tolerance and logging.
// This file defines:
//   - Option (functional options resolved into an unexported config),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - No global state: the decimal precision lives in the numeric.Context of
//     each config, so concurrent callers never affect each other's results.
//   - Every vector derived from a receiver (Add, Normalise, projections, ...)
//     shares the receiver's config.
package vector

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/vectorspace/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant decimal digits kept by
	// every arithmetic step.
	DefaultPrecision uint32 = 30

	// DefaultTolerance is the threshold used by IsZero, IsOrthogonalTo and
	// the ±1 clamp of Dot.
	DefaultTolerance = 1e-10
)

// ---------- Internal panic messages ----------

const (
	panicPrecisionInvalid = "vector: WithPrecision: precision must be in [1, numeric.MaxPrecision]"
	panicToleranceInvalid = "vector: WithTolerance: tolerance must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options stores the requested configuration before resolution. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	precision uint32
	tolerance float64
	logger    *slog.Logger
}

// config is the resolved, immutable configuration shared by vectors.
type config struct {
	num       *numeric.Context
	tolerance float64
	logger    *slog.Logger
}

// WithPrecision sets the number of significant digits for coordinate storage
// and arithmetic.
//
// Panics when precision is 0 or above numeric.MaxPrecision.
func WithPrecision(precision uint32) Option {
	if precision == 0 || precision > numeric.MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = precision }
}

// WithTolerance sets the tolerance used by the geometric predicates.
// It never affects Equal, which is always exact.
//
// Panics when tol is NaN, infinite or negative.
func WithTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithLogger routes debug records (clamped dot products, zero-vector
// rejections) to l. A nil logger restores the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// discardLogger drops every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies opts over the defaults and builds the numeric context.
func gatherOptions(opts ...Option) (*config, error) {
	o := Options{
		precision: DefaultPrecision,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	num, err := numeric.NewContext(o.precision)
	if err != nil {
		return nil, err
	}
	logger := o.logger
	if logger == nil {
		logger = discardLogger
	}

	return &config{num: num, tolerance: o.tolerance, logger: logger}, nil
}

// validTolerance reports whether tol is finite and non-negative.
func validTolerance(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}
