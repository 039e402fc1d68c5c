// SPDX-License-Identifier: MIT
package subdivision

import (
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/quadedge"
)

// Triangle is one reported face of the finished subdivision: three
// input indices (stable, as supplied to New / emitted by InputIndex)
// in CCW order.
type Triangle [3]int

// Triangles enumerates every bounded, CCW-oriented 3-cycle of the
// Rnext orbit in the live subdivision and reports it once. Call this
// only after the builder has finished — it makes no geometric
// assumption beyond "the subdivision is a valid planar embedding",
// but a partially built subdivision may have 3-cycles that aren't yet
// final triangles.
//
// For every live quad-edge, both primal directions are tried as a
// candidate face; the CCW check rejects the outer (unbounded) face
// when it happens to be a 3-cycle, and the visited set keyed by edge
// identity stops each triangle from being reported up to three times
// (once per bounding edge).
func (s *Subdivision) Triangles() []Triangle {
	visited := make(map[quadedge.Edge]bool)
	var out []Triangle

	for _, e0 := range s.LiveEdges() {
		for _, e := range [2]quadedge.Edge{e0, quadedge.Sym(e0)} {
			if visited[e] {
				continue
			}
			e2 := quadedge.Rnext(e)
			e3 := quadedge.Rnext(e2)
			if quadedge.Rnext(e3) != e {
				continue
			}

			a := s.OrgPoint(e)
			b := s.OrgPoint(e2)
			c := s.OrgPoint(e3)
			if !predicates.CCW(a, b, c) {
				continue
			}

			visited[e] = true
			visited[e2] = true
			visited[e3] = true

			out = append(out, Triangle{
				s.InputIndex(quadedge.Org(e)),
				s.InputIndex(quadedge.Org(e2)),
				s.InputIndex(quadedge.Org(e3)),
			})
		}
	}

	return out
}
