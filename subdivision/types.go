// SPDX-License-Identifier: MIT
package subdivision

import (
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/quadedge"
)

// Subdivision owns every quad-edge group created during a
// triangulation, the immutable point array they reference, and the
// mapping from internal vertex slots back to the caller's stable
// input indices.
type Subdivision struct {
	arena   *quadedge.Arena
	points  []predicates.Point
	indices []int
	live    map[quadedge.Edge]struct{}
}

// New constructs an empty Subdivision over points. If indices is nil,
// input indices default to 1-based position (points[0] -> index 1,
// matching the .node file convention); otherwise indices must have
// exactly len(points) entries, in the same order as points.
func New(points []predicates.Point, indices []int) (*Subdivision, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if indices != nil && len(indices) != len(points) {
		return nil, ErrIndexMismatch
	}
	if indices == nil {
		indices = make([]int, len(points))
		for i := range indices {
			indices[i] = i + 1
		}
	}

	return &Subdivision{
		arena:   quadedge.NewArena(),
		points:  points,
		indices: indices,
		live:    make(map[quadedge.Edge]struct{}),
	}, nil
}

// NumPoints returns the number of points in the subdivision's point
// array (not the number of vertices currently joined by edges).
func (s *Subdivision) NumPoints() int {
	return len(s.points)
}

// Point returns the coordinates of vertex v. Panics if v is out of
// range or NoVertex — an out-of-range vertex id reaching here is a
// programmer error in the caller's recursion bookkeeping, per the
// spec's invariant-violation policy, not a recoverable condition.
func (s *Subdivision) Point(v quadedge.VertexID) predicates.Point {
	return s.points[v]
}

// InputIndex returns the caller-stable index for vertex v, as it
// should be emitted in output triangle triples.
func (s *Subdivision) InputIndex(v quadedge.VertexID) int {
	return s.indices[v]
}

// OrgPoint and DestPoint read the coordinates at e's origin and
// destination directly, saving callers the Org/Dest + Point round trip
// at every predicate call site in the merge loop.
func (s *Subdivision) OrgPoint(e quadedge.Edge) predicates.Point {
	return s.Point(quadedge.Org(e))
}

func (s *Subdivision) DestPoint(e quadedge.Edge) predicates.Point {
	return s.Point(quadedge.Dest(e))
}
