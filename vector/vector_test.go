// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for construction, accessors and equality.
package vector_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectorspace/vector"
)

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	_, err := vector.New([]float64{})
	require.ErrorIs(t, err, vector.ErrEmptyCoordinates)

	_, err = vector.New[int](nil)
	require.ErrorIs(t, err, vector.ErrEmptyCoordinates)

	_, err = vector.Parse(nil)
	require.ErrorIs(t, err, vector.ErrEmptyCoordinates)

	_, err = vector.FromDecimals([]*apd.Decimal{})
	require.ErrorIs(t, err, vector.ErrEmptyCoordinates)
}

func TestNew_InvalidCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coords []float64
	}{
		{"NaN", []float64{1, math.NaN()}},
		{"+Inf", []float64{math.Inf(1)}},
		{"-Inf", []float64{0, 0, math.Inf(-1)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := vector.New(tc.coords)
			require.ErrorIs(t, err, vector.ErrInvalidCoordinate)
			require.Nil(t, v)
		})
	}

	_, err := vector.New([]float32{float32(math.NaN())})
	require.ErrorIs(t, err, vector.ErrInvalidCoordinate)
}

func TestNew_NumericKinds(t *testing.T) {
	t.Parallel()

	want := mustParse(t, "1", "2", "3")
	requireVecEq(t, want, mustNew(t, 1, 2, 3))
	requireVecEq(t, want, mustNew[int8](t, 1, 2, 3))
	requireVecEq(t, want, mustNew[int64](t, 1, 2, 3))
	requireVecEq(t, want, mustNew[uint](t, 1, 2, 3))
	requireVecEq(t, want, mustNew[uint64](t, 1, 2, 3))
	requireVecEq(t, want, mustNew[float64](t, 1, 2, 3))

	// float inputs keep their shortest decimal form
	requireVecEq(t, mustParse(t, "0.1", "-2.5"), mustNew[float32](t, 0.1, -2.5))
	requireVecEq(t, mustParse(t, "0.1", "-2.5"), mustNew(t, 0.1, -2.5))

	big := mustNew[uint64](t, math.MaxUint64)
	requireVecEq(t, mustParse(t, "18446744073709551615"), big)
}

func TestParse(t *testing.T) {
	t.Parallel()

	v := mustParse(t, " 1.25 ", "-3E-4", "0")
	assert.Equal(t, 3, v.Dimension())
	assert.Equal(t, []float64{1.25, -0.0003, 0}, v.Float64s())

	for _, bad := range []string{"", "x", "1,5", "NaN", "Infinity"} {
		_, err := vector.Parse([]string{"1", bad})
		require.ErrorIsf(t, err, vector.ErrInvalidCoordinate, "input %q", bad)
	}
}

func TestFromDecimals(t *testing.T) {
	t.Parallel()

	in := []*apd.Decimal{apd.New(15, -1), apd.New(-2, 0)}
	v, err := vector.FromDecimals(in)
	require.NoError(t, err)
	requireVecEq(t, mustParse(t, "1.5", "-2"), v)

	// caller keeps ownership of its decimals
	in[0].SetInt64(99)
	requireVecEq(t, mustParse(t, "1.5", "-2"), v)

	_, err = vector.FromDecimals([]*apd.Decimal{apd.New(1, 0), nil})
	require.ErrorIs(t, err, vector.ErrInvalidCoordinate)

	nan, _, err := apd.NewFromString("NaN")
	require.NoError(t, err)
	_, err = vector.FromDecimals([]*apd.Decimal{nan})
	require.ErrorIs(t, err, vector.ErrInvalidCoordinate)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	v := mustNew(t, 1, 2, 3)
	want := mustNew(t, 1, 2, 3)

	c, err := v.At(1)
	require.NoError(t, err)
	assert.Zero(t, c.Cmp(apd.New(2, 0)))
	c.SetInt64(100)

	coords := v.Coordinates()
	require.Len(t, coords, 3)
	coords[0].SetInt64(-7)

	requireVecEq(t, want, v)

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestEqual_IsExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *vector.Vector
		want bool
	}{
		{"same", mustNew(t, 1, 2), mustNew(t, 1, 2), true},
		{"trailing zeros", mustNew(t, 1, 2), mustParse(t, "1.0", "2.00"), true},
		{"negative zero", mustParse(t, "0"), mustParse(t, "-0"), true},
		{"within tolerance is not equal", mustNew(t, 1, 2), mustParse(t, "1.00000000000001", "2"), false},
		{"dimension", mustNew(t, 1, 2), mustNew(t, 1, 2, 0), false},
		{"order", mustNew(t, 1, 2), mustNew(t, 2, 1), false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}

	var nilVec *vector.Vector
	assert.True(t, nilVec.Equal(nil))
	assert.False(t, nilVec.Equal(mustNew(t, 1)))
	assert.False(t, mustNew(t, 1).Equal(nil))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Vector: (1, -2.5, 0.001)", mustParse(t, "1", "-2.5", "0.001").String())
	assert.Equal(t, "Vector: (7)", mustNew(t, 7).String())

	var nilVec *vector.Vector
	assert.Equal(t, "Vector: <nil>", nilVec.String())
}

func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var v *vector.Vector
	w := mustNew(t, 1, 2)

	assert.Zero(t, v.Dimension())
	assert.Nil(t, v.Coordinates())
	assert.Nil(t, v.Float64s())
	assert.False(t, v.IsZero())

	_, err := v.Add(w)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = w.Add(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.Scale(2)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.Magnitude()
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.Normalise()
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.Dot(w)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = w.AngleWith(nil, vector.Radians)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.CrossProduct(w)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = w.ComponentOrthogonalTo(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.At(0)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestOperations_LeaveOperandsUntouched(t *testing.T) {
	t.Parallel()

	snapshot := func(v *vector.Vector) []string {
		cs := v.Coordinates()
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.String()
		}

		return out
	}

	a := mustParse(t, "3.183", "-7.627", "0.5")
	b := mustParse(t, "-2.668", "5.319", "1.25")
	wantA, wantB := snapshot(a), snapshot(b)

	ops := map[string]func() error{
		"Add":                   func() error { _, err := a.Add(b); return err },
		"Subtract":              func() error { _, err := a.Subtract(b); return err },
		"Scale":                 func() error { _, err := a.Scale(-2.5); return err },
		"ScaleDecimal":          func() error { _, err := a.ScaleDecimal(apd.New(3, -1)); return err },
		"Divide":                func() error { _, err := a.Divide(3); return err },
		"Normalise":             func() error { _, err := a.Normalise(); return err },
		"Dot":                   func() error { _, err := a.Dot(b); return err },
		"AngleWith":             func() error { _, err := a.AngleWith(b, vector.Degrees); return err },
		"ComponentParallelTo":   func() error { _, err := a.ComponentParallelTo(b); return err },
		"ComponentOrthogonalTo": func() error { _, err := a.ComponentOrthogonalTo(b); return err },
		"CrossProduct":          func() error { _, err := a.CrossProduct(b); return err },
		"AreaTriangleWith":      func() error { _, err := a.AreaTriangleWith(b); return err },
	}
	for name, op := range ops {
		require.NoError(t, op(), name)
		assert.Equal(t, wantA, snapshot(a), "%s changed the receiver", name)
		assert.Equal(t, wantB, snapshot(b), "%s changed the operand", name)
	}

	// the result does not alias the receiver's storage
	n, err := a.Normalise()
	require.NoError(t, err)
	_, err = n.Scale(1000)
	require.NoError(t, err)
	assert.Equal(t, wantA, snapshot(a))
}
