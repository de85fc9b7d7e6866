// SPDX-License-Identifier: MIT

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vectorspace/vector"
)

// floatTol is the tolerance for results that pass through float64
// transcendental functions.
const floatTol = 1e-9

// mustNew builds a vector from native numbers or fails the test.
func mustNew[T vector.Number](t testing.TB, coords ...T) *vector.Vector {
	t.Helper()
	v, err := vector.New(coords)
	require.NoError(t, err)

	return v
}

// mustParse builds a vector from decimal literals or fails the test.
func mustParse(t testing.TB, coords ...string) *vector.Vector {
	t.Helper()
	v, err := vector.Parse(coords)
	require.NoError(t, err)

	return v
}

// requireVecEq asserts exact equality with a readable failure message.
func requireVecEq(t testing.TB, want, got *vector.Vector) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

// randomFloats returns n deterministic values in [-1000, 1000).
func randomFloats(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2000 - 1000
	}

	return out
}
