// SPDX-License-Identifier: MIT
package delaunay

import (
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/subdivision"
)

// Build triangulates points and returns the finished Result. indices
// gives the caller-visible index emitted in every reported Triangle
// for points[i]; pass nil to default to 1-based position (points[0]
// -> index 1). A non-nil indices must have exactly len(points)
// entries, in the same order as points — whatever index a point
// arrives under (e.g. a .node file's own, possibly non-contiguous or
// 0-based, numbering) is the index the builder emits for it, never a
// renumbering by slice position.
//
// Fewer than two points, or an indices slice of the wrong length, is
// reported as subdivision.ErrTooFewPoints / subdivision.ErrIndexMismatch.
// Duplicate points are a Non-goal (per the spec this implements) and
// produce unspecified, not necessarily erroring, behavior.
func Build(points []predicates.Point, indices []int, mode Mode) (*Result, error) {
	if indices != nil && len(indices) != len(points) {
		return nil, subdivision.ErrIndexMismatch
	}

	pts := make([]predicates.Point, len(points))
	copy(pts, points)

	idx := make([]int, len(pts))
	if indices == nil {
		for i := range idx {
			idx[i] = i + 1
		}
	} else {
		copy(idx, indices)
	}

	s, err := subdivision.New(pts, idx)
	if err != nil {
		return nil, err
	}

	var lh quadedge.Edge
	switch mode {
	case ModeVertical:
		lexicoSort(pts, idx, 0, len(pts)-1)
		lh, _ = recurseVertical(s, 0, len(pts)-1)
	default:
		lh, _ = recurseAlternating(s, pts, idx, 0, len(pts)-1, 1)
	}

	return &Result{Sub: s, Triangles: s.Triangles(), Hull: quadedge.Sym(lh)}, nil
}

// recurseVertical implements divideConquerVerticalCuts: the point
// range is presumed already sorted lexicographically over its whole
// extent, so every recursive call just bisects its index range.
func recurseVertical(s *subdivision.Subdivision, start, end int) (quadedge.Edge, quadedge.Edge) {
	if size := end - start + 1; size <= 3 {
		return baseCase(s, start, end)
	}

	mid := start + (end-start)/2
	ldo, ldi := recurseVertical(s, start, mid)
	rdi, rdo := recurseVertical(s, mid+1, end)

	return mergeTriangulations(s, ldo, ldi, rdi, rdo)
}

// recurseAlternating implements divideConquerAlternatingCuts: each
// range is partitioned in place around the median of axis (0 = x,
// 1 = y) rather than presorted, and axis alternates with recursion
// depth. A split on the y axis produces handle pairs that must be
// rotated into the x-axis frame mergeTriangulations expects, then
// unrotated on the way back up.
func recurseAlternating(s *subdivision.Subdivision, pts []predicates.Point, idx []int, start, end, axis int) (quadedge.Edge, quadedge.Edge) {
	if size := end - start + 1; size <= 3 {
		lexicoSort(pts, idx, start, end)
		return baseCase(s, start, end)
	}

	mid := median(pts, idx, start, end, axis)
	next := 1 - axis

	ldo, ldi := recurseAlternating(s, pts, idx, start, mid, next)
	rdi, rdo := recurseAlternating(s, pts, idx, mid+1, end, next)

	if axis == 1 {
		ldo, ldi = rotateHandles(s, ldo, ldi)
		rdi, rdo = rotateHandles(s, rdi, rdo)
	}

	oh1, oh2 := mergeTriangulations(s, ldo, ldi, rdi, rdo)

	if axis == 1 {
		oh1, oh2 = unrotateHandles(s, oh1, oh2)
	}

	return oh1, oh2
}
