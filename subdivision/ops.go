// SPDX-License-Identifier: MIT
package subdivision

import "github.com/katalvlaran/qedelaunay/quadedge"

// MakeEdge allocates a fresh, unattached quad-edge and registers it in
// the live-set. Most callers use Connect instead; MakeEdge is exposed
// for the divide-and-conquer base cases, which need a bare edge before
// any face exists to Connect it into.
func (s *Subdivision) MakeEdge() quadedge.Edge {
	e := s.arena.MakeEdge()
	s.live[e] = struct{}{} // e is already the group's canonical (slot 0) key
	return e
}

// Connect creates a new edge from Dest(e1) to Org(e2), splicing it in
// so that the new primal edge lies in the left face of both e1 and e2.
// Returns the new edge, directed Dest(e1) -> Org(e2).
// Guibas & Stolfi, pg. 103.
func (s *Subdivision) Connect(e1, e2 quadedge.Edge) quadedge.Edge {
	e := s.MakeEdge()
	quadedge.SetOrg(e, quadedge.Dest(e1))
	quadedge.SetDest(e, quadedge.Org(e2))

	quadedge.Splice(e, quadedge.Lnext(e1))
	quadedge.Splice(quadedge.Sym(e), e2)

	return e
}

// DeleteEdge detaches e's quad-edge from the subdivision and returns
// its group to the arena. After this call no live edge references any
// of the group's four records. Guibas & Stolfi, pg. 103.
func (s *Subdivision) DeleteEdge(e quadedge.Edge) {
	quadedge.Splice(e, quadedge.Oprev(e))
	quadedge.Splice(quadedge.Sym(e), quadedge.Oprev(quadedge.Sym(e)))

	base := quadedge.Base(e)
	delete(s.live, base)
	s.arena.Free(base)
}

// Swap flips the diagonal of the convex quadrilateral bordering e.
// Provided for completeness per the spec; the divide-and-conquer
// builder never calls it — InCircle-driven edge insertion/deletion in
// the merge step achieves the same local Delaunay correction without
// ever needing to flip an existing edge. Guibas & Stolfi, pg. 104.
func (s *Subdivision) Swap(e quadedge.Edge) {
	a := quadedge.Oprev(e)
	b := quadedge.Oprev(quadedge.Sym(e))

	quadedge.Splice(e, a)
	quadedge.Splice(quadedge.Sym(e), b)

	quadedge.Splice(e, quadedge.Lnext(a))
	quadedge.Splice(quadedge.Sym(e), quadedge.Lnext(b))

	quadedge.SetOrg(e, quadedge.Dest(a))
	quadedge.SetDest(e, quadedge.Dest(b))
}

// LiveEdges returns the canonical (slot 0) edge of every quad-edge
// group currently in the live-set, in unspecified order. Used by
// triangle enumeration and by property tests that need to walk every
// edge in the finished subdivision.
func (s *Subdivision) LiveEdges() []quadedge.Edge {
	out := make([]quadedge.Edge, 0, len(s.live))
	for e := range s.live {
		out = append(out, e)
	}
	return out
}
