// SPDX-License-Identifier: MIT
package delaunay_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/qedelaunay/delaunay"
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/subdivision"
	"github.com/stretchr/testify/require"
)

func TestBuild_TwoPoints(t *testing.T) {
	res, err := delaunay.Build([]predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, nil, delaunay.ModeAlternating)
	require.NoError(t, err)
	require.Empty(t, res.Triangles)
}

func TestBuild_Triangle(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	res, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
	require.NoError(t, err)
	require.Len(t, res.Triangles, 1)
	require.ElementsMatch(t, []int{1, 2, 3}, res.Triangles[0][:])
}

func TestBuild_CollinearThree(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	res, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
	require.NoError(t, err)
	require.Empty(t, res.Triangles)
}

func TestBuild_Square_Cocircular(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	res, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
	require.NoError(t, err)
	require.Len(t, res.Triangles, 2)

	covered := make(map[int]int)
	for _, tri := range res.Triangles {
		for _, idx := range tri {
			covered[idx]++
		}
	}
	require.Len(t, covered, 4)
}

func TestBuild_RegularPolygon(t *testing.T) {
	const n = 12
	pts := make([]predicates.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = predicates.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	res, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
	require.NoError(t, err)
	require.Len(t, res.Triangles, n-2)

	hull := res.Sub.Boundary(res.Hull)
	require.Len(t, hull, n)
}

func TestBuild_FewerThanTwoPoints(t *testing.T) {
	_, err := delaunay.Build([]predicates.Point{{X: 0, Y: 0}}, nil, delaunay.ModeAlternating)
	require.ErrorIs(t, err, subdivision.ErrTooFewPoints)
}

func TestBuild_IndexMismatch(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	_, err := delaunay.Build(pts, []int{5}, delaunay.ModeAlternating)
	require.ErrorIs(t, err, subdivision.ErrIndexMismatch)
}

// TestBuild_ExternalIndices checks that reported triangles carry the
// caller-supplied indices verbatim, not a renumbering by slice
// position — e.g. the 0-based indices a TetGen/Triangle -z .node file
// would declare.
func TestBuild_ExternalIndices(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	indices := []int{10, 20, 30}
	res, err := delaunay.Build(pts, indices, delaunay.ModeAlternating)
	require.NoError(t, err)
	require.Len(t, res.Triangles, 1)
	require.ElementsMatch(t, []int{10, 20, 30}, res.Triangles[0][:])
}

// TestBuild_ScenarioS4 checks end-to-end scenario S4: two points on a
// horizontal baseline, with one point directly above and one directly
// below its midpoint.
func TestBuild_ScenarioS4(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	res, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
	require.NoError(t, err)

	want := []subdivision.Triangle{{1, 3, 2}, {1, 2, 4}}
	require.ElementsMatch(t, normalizeTriangles(want), normalizeTriangles(res.Triangles))
}

// TestBuild_ModeEquivalence checks property 6: on a point set with no
// four cocircular points, ModeVertical and ModeAlternating must agree
// on the triangulation, up to the ordering of triangles and of each
// triangle's own three vertices.
func TestBuild_ModeEquivalence(t *testing.T) {
	pts := []predicates.Point{
		{X: 0.1, Y: 0.2}, {X: 1.3, Y: 0.05}, {X: 2.7, Y: 1.1}, {X: 1.9, Y: 2.4},
		{X: 0.4, Y: 1.8}, {X: 3.2, Y: 2.9}, {X: 0.9, Y: 3.3}, {X: 2.2, Y: 0.9},
		{X: 1.1, Y: 1.1}, {X: 2.8, Y: 3.6},
	}

	v, err := delaunay.Build(pts, nil, delaunay.ModeVertical)
	require.NoError(t, err)
	a, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
	require.NoError(t, err)

	require.ElementsMatch(t, normalizeTriangles(v.Triangles), normalizeTriangles(a.Triangles))
}

func normalizeTriangles(tris []subdivision.Triangle) []subdivision.Triangle {
	out := make([]subdivision.Triangle, len(tris))
	for i, tri := range tris {
		t := tri
		sort.Ints(t[:])
		out[i] = t
	}
	return out
}
