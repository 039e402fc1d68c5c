// SPDX-License-Identifier: MIT
package pointset_test

import (
	"testing"

	"github.com/katalvlaran/qedelaunay/pointset"
	"github.com/stretchr/testify/require"
)

func TestRegular_CountAndRadius(t *testing.T) {
	pts, err := pointset.Regular(8, 2.0)
	require.NoError(t, err)
	require.Len(t, pts, 8)
	for _, p := range pts {
		r := p.X*p.X + p.Y*p.Y
		require.InDelta(t, 4.0, r, 1e-9)
	}
}

func TestRegular_Errors(t *testing.T) {
	_, err := pointset.Regular(2, 1.0)
	require.ErrorIs(t, err, pointset.ErrTooFewPoints)

	_, err = pointset.Regular(5, 0)
	require.ErrorIs(t, err, pointset.ErrInvalidRadius)
}

func TestGrid_CountAndLayout(t *testing.T) {
	pts, err := pointset.Grid(3, 4)
	require.NoError(t, err)
	require.Len(t, pts, 12)
	require.Equal(t, 0.0, pts[0].X)
	require.Equal(t, 0.0, pts[0].Y)
	require.Equal(t, 3.0, pts[3].X)
	require.Equal(t, 0.0, pts[3].Y)
}

func TestCollinear_AllSameY(t *testing.T) {
	pts, err := pointset.Collinear(6)
	require.NoError(t, err)
	require.Len(t, pts, 6)
	for _, p := range pts {
		require.Equal(t, 0.0, p.Y)
	}
}

func TestUniform_DeterministicWithSeed(t *testing.T) {
	a, err := pointset.Uniform(20, 10, pointset.WithSeed(42))
	require.NoError(t, err)
	b, err := pointset.Uniform(20, 10, pointset.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, b)

	for _, p := range a {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.Less(t, p.X, 10.0)
	}
}

func TestJitter_PerturbsGrid(t *testing.T) {
	plain, err := pointset.Grid(4, 4)
	require.NoError(t, err)
	jittered, err := pointset.Grid(4, 4, pointset.WithJitter(0.25), pointset.WithSeed(7))
	require.NoError(t, err)

	differs := false
	for i := range plain {
		if plain[i] != jittered[i] {
			differs = true
			break
		}
	}
	require.True(t, differs)
}
