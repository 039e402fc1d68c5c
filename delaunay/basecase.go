// SPDX-License-Identifier: MIT
package delaunay

import (
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/subdivision"
)

// baseCase builds the initial triangulation of s.Point(start)..
// s.Point(end) directly, for ranges of 2 or 3 points, and returns the
// (leftmost-origin, rightmost-origin) handle pair MergeTriangulations
// expects from every recursive call.
func baseCase(s *subdivision.Subdivision, start, end int) (quadedge.Edge, quadedge.Edge) {
	switch end - start + 1 {
	case 2:
		return baseCaseTwo(s, start, end)
	case 3:
		return baseCaseThree(s, start, end)
	default:
		panic("delaunay: baseCase called with range outside [2,3] points")
	}
}

func baseCaseTwo(s *subdivision.Subdivision, start, end int) (quadedge.Edge, quadedge.Edge) {
	a := s.MakeEdge()
	quadedge.SetOrg(a, quadedge.VertexID(start))
	quadedge.SetDest(a, quadedge.VertexID(end))

	return a, quadedge.Sym(a)
}

// baseCaseThree triangulates three points, handling both the
// non-degenerate (triangle, CW or CCW) and degenerate (collinear)
// cases. Guibas & Stolfi, section on the divide step, 3-point case.
func baseCaseThree(s *subdivision.Subdivision, start, end int) (quadedge.Edge, quadedge.Edge) {
	p1 := quadedge.VertexID(start)
	p2 := quadedge.VertexID(start + 1)
	p3 := quadedge.VertexID(end)

	a := s.MakeEdge()
	quadedge.SetOrg(a, p1)
	quadedge.SetDest(a, p2)

	b := s.MakeEdge()
	quadedge.Splice(quadedge.Sym(a), b)
	quadedge.SetOrg(b, p2)
	quadedge.SetDest(b, p3)

	switch {
	case ccw(s, p1, p2, p3):
		s.Connect(b, a)
		return a, quadedge.Sym(b)
	case ccw(s, p1, p3, p2):
		c := s.Connect(b, a)
		return quadedge.Sym(c), c
	default:
		// Collinear: no third edge closes a face, the two edges
		// already chain org(a) -> dest(a) == org(b) -> dest(b).
		return a, quadedge.Sym(b)
	}
}
