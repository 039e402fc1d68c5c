// SPDX-License-Identifier: MIT
package delaunay

import (
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/subdivision"
)

// zeroSnap is the InCircle tie-break threshold: a determinant whose
// magnitude falls below this is treated as exactly cocircular (d is on
// the circle through a, b, c) rather than strictly inside or outside.
// Matches the original implementation's snap-to-zero discipline.
const zeroSnap = 1e-18

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ccw reports whether a, b, c occur in strict counterclockwise order.
func ccw(s *subdivision.Subdivision, a, b, c quadedge.VertexID) bool {
	return predicates.CCW(s.Point(a), s.Point(b), s.Point(c))
}

// rightOf reports whether x lies strictly to the right of the
// directed line through e (org(e) -> dest(e)).
func rightOf(s *subdivision.Subdivision, x quadedge.VertexID, e quadedge.Edge) bool {
	return ccw(s, x, quadedge.Dest(e), quadedge.Org(e))
}

// leftOf reports whether x lies strictly to the left of the directed
// line through e.
func leftOf(s *subdivision.Subdivision, x quadedge.VertexID, e quadedge.Edge) bool {
	return ccw(s, x, quadedge.Org(e), quadedge.Dest(e))
}

// valid reports whether candidate edge e still points at a vertex on
// the correct side of the base edge basel, i.e. whether e is still a
// legitimate candidate for the next cross edge in the merge zip.
func valid(s *subdivision.Subdivision, e, basel quadedge.Edge) bool {
	return rightOf(s, quadedge.Dest(e), basel)
}

// inCircle reports whether d lies strictly inside the circle through
// a, b, c (given in CCW order), after snapping near-zero determinants
// to exactly cocircular.
func inCircle(s *subdivision.Subdivision, a, b, c, d quadedge.VertexID) bool {
	v := predicates.InCircle(s.Point(a), s.Point(b), s.Point(c), s.Point(d))
	if abs(v) < zeroSnap {
		v = 0
	}
	return v > 0
}
