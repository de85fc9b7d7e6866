// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectorspace/vector"
)

func TestComponentParallelTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v, basis *vector.Vector
		want     []float64
	}{
		{"2d", mustParse(t, "3.039", "1.879"), mustParse(t, "0.825", "2.036"),
			[]float64{1.0826069624844668, 2.671742758325302}},
		{"4d", mustParse(t, "3.009", "-6.172", "3.692", "-2.51"), mustParse(t, "6.404", "-9.144", "2.759", "8.718"),
			[]float64{1.9685161672140898, -2.8107607484393564, 0.8480849633578504, 2.679813233256158}},
		{"onto axis", mustNew(t, 3, 4), mustNew(t, 10, 0), []float64{3, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.v.ComponentParallelTo(tc.basis)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got.Float64s(), cmpopts.EquateApprox(0, floatTol)); diff != "" {
				t.Fatalf("ComponentParallelTo mismatch (-want +got):\n%s", diff)
			}
			par, err := got.IsParallelTo(tc.basis)
			require.NoError(t, err)
			assert.True(t, par)
		})
	}
}

func TestComponentOrthogonalTo(t *testing.T) {
	t.Parallel()

	v := mustParse(t, "-9.88", "-3.264", "-8.159")
	basis := mustParse(t, "-2.155", "-9.353", "-9.473")

	orth, err := v.ComponentOrthogonalTo(basis)
	require.NoError(t, err)
	want := []float64{-8.350081043195763, 3.3760612542877197, -1.433746042781186}
	if diff := cmp.Diff(want, orth.Float64s(), cmpopts.EquateApprox(0, floatTol)); diff != "" {
		t.Fatalf("ComponentOrthogonalTo mismatch (-want +got):\n%s", diff)
	}

	ok, err := orth.IsOrthogonalTo(basis)
	require.NoError(t, err)
	assert.True(t, ok)

	// parallel + orthogonal reassembles v to the configured precision
	par, err := v.ComponentParallelTo(basis)
	require.NoError(t, err)
	sum, err := par.Add(orth)
	require.NoError(t, err)
	diff, err := sum.Subtract(v)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
}

func TestComponents_ZeroBasis(t *testing.T) {
	t.Parallel()

	v := mustNew(t, 1, 1)
	zero := mustNew(t, 0, 0)

	_, err := v.ComponentParallelTo(zero)
	require.ErrorIs(t, err, vector.ErrNoUniqueParallelComponent)
	require.NotErrorIs(t, err, vector.ErrZeroVector)

	_, err = v.ComponentOrthogonalTo(zero)
	require.ErrorIs(t, err, vector.ErrNoUniqueOrthogonalComponent)
	require.NotErrorIs(t, err, vector.ErrNoUniqueParallelComponent)
	require.NotErrorIs(t, err, vector.ErrZeroVector)
}

func TestComponents_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := mustNew(t, 1, 1).ComponentParallelTo(mustNew(t, 1, 1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = mustNew(t, 1, 1).ComponentOrthogonalTo(mustNew(t, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}
