// SPDX-License-Identifier: MIT
package delaunay

import (
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/subdivision"
)

// Mode selects the presort/partition strategy used to split the point
// set before recursing. The merge step is identical either way.
type Mode int

const (
	// ModeAlternating partitions each recursive range around the
	// median of the axis currently in play, alternating x and y as
	// recursion descends. This is the default: it keeps both
	// dimensions balanced and does not require a global presort.
	ModeAlternating Mode = iota

	// ModeVertical sorts the whole point set lexicographically by
	// (x, y) once, then always bisects the index range in half.
	ModeVertical
)

// Result is the outcome of a completed triangulation: the subdivision
// itself (for further queries such as Boundary), the enumerated
// triangle list, and a hull edge whose left face is the outer face,
// suitable as a starting edge for Subdivision.Boundary.
type Result struct {
	Sub       *subdivision.Subdivision
	Triangles []subdivision.Triangle
	Hull      quadedge.Edge
}
