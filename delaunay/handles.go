// SPDX-License-Identifier: MIT
package delaunay

import (
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/subdivision"
)

// rotateHandles re-expresses a (lh, rh) handle pair produced by a
// y-axis split so that mergeTriangulations, which always expects a
// left-right (x-axis) tangent search, sees a left-right pair instead.
// lh is walked down around its hull until it sits at the hull's lowest
// point, and rh up until it sits at the hull's highest point. ModeAlternating calls this only
// before merging two halves that were split along y (axis == 1).
func rotateHandles(s *subdivision.Subdivision, lh, rh quadedge.Edge) (quadedge.Edge, quadedge.Edge) {
	for s.Point(quadedge.Org(quadedge.Rprev(lh))).Y < s.Point(quadedge.Org(lh)).Y {
		lh = quadedge.Rprev(lh)
	}
	for s.Point(quadedge.Org(rh)).Y < s.Point(quadedge.Org(quadedge.Lprev(rh))).Y {
		rh = quadedge.Lprev(rh)
	}

	return lh, rh
}

// unrotateHandles reverses rotateHandles' effect on the merged result,
// walking the bottom handle until it sits at the hull's leftmost point
// and the top handle until it sits at the hull's rightmost point again.
func unrotateHandles(s *subdivision.Subdivision, bh, th quadedge.Edge) (quadedge.Edge, quadedge.Edge) {
	for s.Point(quadedge.Org(quadedge.Rnext(bh))).X < s.Point(quadedge.Org(bh)).X {
		bh = quadedge.Rnext(bh)
	}
	for s.Point(quadedge.Org(quadedge.Lnext(th))).X > s.Point(quadedge.Org(th)).X {
		th = quadedge.Lnext(th)
	}

	return bh, th
}
