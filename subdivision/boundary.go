// SPDX-License-Identifier: MIT
package subdivision

import "github.com/katalvlaran/qedelaunay/quadedge"

// Boundary walks the Lnext orbit starting at start and returns the
// input indices it visits, in orbit order. When start borders the
// unbounded face, this traces exactly the convex hull of the point
// set — used by property tests as an independent check on hull
// correctness (the builder already returns hull-adjacent handles from
// every recursive step; this just re-derives the cycle from one of
// them without trusting the builder's own bookkeeping).
//
// The traversal shape (visited set guarding against infinite loops,
// stop-on-repeat) mirrors the BFS frontier loop used elsewhere in this
// module's lineage, simplified here because an orbit has out-degree 1:
// there is only ever one next edge to visit, never a frontier to rank.
func (s *Subdivision) Boundary(start quadedge.Edge) []int {
	visited := make(map[quadedge.Edge]bool)
	var order []int

	for e := start; !visited[e]; e = quadedge.Lnext(e) {
		visited[e] = true
		order = append(order, s.InputIndex(quadedge.Org(e)))
	}

	return order
}
