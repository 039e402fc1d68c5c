// SPDX-License-Identifier: MIT
package delaunay_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qedelaunay/delaunay"
	"github.com/katalvlaran/qedelaunay/pointset"
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/trimatrix"
	"github.com/stretchr/testify/require"
)

// inCircleEpsilon tolerates the floating-point slop of nearly
// cocircular random inputs; property 4 in spec.md §8 is stated as
// InCircle <= 0, which in exact arithmetic cocircular points satisfy
// at exactly 0.
const inCircleEpsilon = 1e-9

// TestBuild_PropertiesRandom runs spec.md §8's 100-trial random
// property test: for point sets of size 10..500 with coordinates in
// [0,1000), it checks properties 1-5 (edge algebra, origin
// consistency, triangulation coverage, the Delaunay property, and hull
// correctness) plus the |T| = 2n - h - 2 triangle-count identity.
func TestBuild_PropertiesRandom(t *testing.T) {
	trialRand := rand.New(rand.NewSource(20260730))

	for trial := 0; trial < 100; trial++ {
		n := 10 + trialRand.Intn(491) // [10, 500]
		pts, err := pointset.Uniform(n, 1000, pointset.WithSeed(int64(trial)))
		require.NoError(t, err)

		res, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
		require.NoError(t, err)

		byIndex := make(map[int]predicates.Point, n)
		for i, p := range pts {
			byIndex[i+1] = p
		}

		checkEdgeAlgebra(t, res)
		checkOriginConsistency(t, res)
		checkTriangulationCoverage(t, res, byIndex)
		checkDelaunayProperty(t, res, byIndex)

		hull := res.Sub.Boundary(res.Hull)
		h := len(hull)
		wantTriangles := 2*n - h - 2
		require.Equal(t, wantTriangles, len(res.Triangles), "trial %d: |T| = 2n - h - 2", trial)

		m := trimatrix.New(res.Triangles)
		require.Equal(t, 0, m.EulerDefect(), "trial %d: Euler defect", trial)
		checkHullCorrectness(t, hull, m)
	}
}

// TestBuild_ModeEquivalenceRandom runs spec.md §8's 50-trial random
// mode-equivalence test (property 6): Mode V and Mode A must agree on
// the triangulation of the same random point set, up to triangle and
// per-triangle vertex ordering.
func TestBuild_ModeEquivalenceRandom(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		pts, err := pointset.Uniform(30, 1000, pointset.WithSeed(int64(1000+trial)))
		require.NoError(t, err)

		v, err := delaunay.Build(pts, nil, delaunay.ModeVertical)
		require.NoError(t, err)
		a, err := delaunay.Build(pts, nil, delaunay.ModeAlternating)
		require.NoError(t, err)

		require.ElementsMatch(t, normalizeTriangles(v.Triangles), normalizeTriangles(a.Triangles), "trial %d", trial)
	}
}

// checkEdgeAlgebra asserts property 1: Sym(Sym(e)) = e, Rot^4(e) = e,
// and Onext is a permutation of the primal edges (every edge in an
// Onext orbit returns to its start).
func checkEdgeAlgebra(t *testing.T, res *delaunay.Result) {
	t.Helper()
	for _, e := range res.Sub.LiveEdges() {
		require.Equal(t, e, quadedge.Sym(quadedge.Sym(e)))
		require.Equal(t, e, quadedge.Rot(quadedge.Rot(quadedge.Rot(quadedge.Rot(e)))))

		visited := map[quadedge.Edge]bool{e: true}
		for cur := quadedge.Onext(e); cur != e; cur = quadedge.Onext(cur) {
			require.False(t, visited[cur], "Onext orbit revisited an edge before returning to start")
			visited[cur] = true
		}
	}
}

// checkOriginConsistency asserts property 2: every edge in org(e)'s
// Onext orbit shares org(e)'s origin.
func checkOriginConsistency(t *testing.T, res *delaunay.Result) {
	t.Helper()
	for _, e := range res.Sub.LiveEdges() {
		for _, d := range [2]quadedge.Edge{e, quadedge.Sym(e)} {
			org := quadedge.Org(d)
			require.Equal(t, org, quadedge.Org(quadedge.Onext(d)))
		}
	}
}

// checkTriangulationCoverage asserts property 3: the reported
// triangles partition the convex hull, checked by comparing the sum
// of their (unsigned) areas against the hull's own shoelace area.
func checkTriangulationCoverage(t *testing.T, res *delaunay.Result, byIndex map[int]predicates.Point) {
	t.Helper()

	var sum float64
	for _, tri := range res.Triangles {
		a, b, c := byIndex[tri[0]], byIndex[tri[1]], byIndex[tri[2]]
		sum += triangleArea(a, b, c)
	}

	hull := res.Sub.Boundary(res.Hull)
	hullPts := make([]predicates.Point, len(hull))
	for i, idx := range hull {
		hullPts[i] = byIndex[idx]
	}

	require.InDelta(t, polygonArea(hullPts), sum, 1e-6)
}

// checkDelaunayProperty asserts property 4: no input point lies
// strictly inside the circumcircle of any reported triangle.
func checkDelaunayProperty(t *testing.T, res *delaunay.Result, byIndex map[int]predicates.Point) {
	t.Helper()
	for _, tri := range res.Triangles {
		a, b, c := byIndex[tri[0]], byIndex[tri[1]], byIndex[tri[2]]
		for idx, d := range byIndex {
			if idx == tri[0] || idx == tri[1] || idx == tri[2] {
				continue
			}
			require.LessOrEqual(t, predicates.InCircle(a, b, c, d), inCircleEpsilon)
		}
	}
}

// checkHullCorrectness asserts property 5: the edges subdivision.Boundary
// traces match the boundary edges trimatrix independently derives from
// the same triangle list.
func checkHullCorrectness(t *testing.T, hull []int, m *trimatrix.Matrix) {
	t.Helper()

	fromBoundary := make(map[[2]int]bool, len(hull))
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		if a > b {
			a, b = b, a
		}
		fromBoundary[[2]int{a, b}] = true
	}

	fromMatrix := make(map[[2]int]bool, len(hull))
	for _, e := range m.BoundaryEdges() {
		fromMatrix[e] = true
	}

	require.Equal(t, fromMatrix, fromBoundary)
}

func triangleArea(a, b, c predicates.Point) float64 {
	return abs64((a.X-c.X)*(b.Y-c.Y)-(b.X-c.X)*(a.Y-c.Y)) / 2
}

// polygonArea returns a simple polygon's area via the shoelace
// formula, for vertices given in either CW or CCW order.
func polygonArea(pts []predicates.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return abs64(sum) / 2
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
