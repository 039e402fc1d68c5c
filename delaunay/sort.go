// SPDX-License-Identifier: MIT
package delaunay

import (
	"sort"

	"github.com/katalvlaran/qedelaunay/predicates"
)

// lexicoSort sorts pts[start:end+1] by (x, y), permuting idx in lock
// step so idx[i] keeps naming the input index of pts[i]. Used to
// presort the whole range once for ModeVertical, and to put each
// ModeAlternating base case (2 or 3 points) into a consistent order
// before the base-case builder inspects orientation.
func lexicoSort(pts []predicates.Point, idx []int, start, end int) {
	sort.Sort(lexico{pts: pts[start : end+1], idx: idx[start : end+1]})
}

type lexico struct {
	pts []predicates.Point
	idx []int
}

func (l lexico) Len() int { return len(l.pts) }

func (l lexico) Less(i, j int) bool {
	if l.pts[i].X != l.pts[j].X {
		return l.pts[i].X < l.pts[j].X
	}
	return l.pts[i].Y < l.pts[j].Y
}

func (l lexico) Swap(i, j int) {
	l.pts[i], l.pts[j] = l.pts[j], l.pts[i]
	l.idx[i], l.idx[j] = l.idx[j], l.idx[i]
}

// median partitions pts[start:end+1] (with idx in lock step) around
// its median element along axis (0 = x, 1 = y), ties broken by the
// other coordinate, and returns the absolute index of that median.
// After the call, every element in [start, median] compares <= the
// median along axis and every element in [median+1, end] compares >=
// it — an in-place quickselect, the Go analog of std::nth_element.
func median(pts []predicates.Point, idx []int, start, end, axis int) int {
	mid := start + (end-start)/2
	quickselect(pts, idx, start, end, mid, axis)
	return mid
}

func quickselect(pts []predicates.Point, idx []int, lo, hi, k, axis int) {
	for lo < hi {
		p := partition(pts, idx, lo, hi, axis)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

func partition(pts []predicates.Point, idx []int, lo, hi, axis int) int {
	pivot := lo + (hi-lo)/2
	swapAt(pts, idx, pivot, hi)

	store := lo
	for i := lo; i < hi; i++ {
		if lessAxis(pts, i, hi, axis) {
			swapAt(pts, idx, i, store)
			store++
		}
	}
	swapAt(pts, idx, store, hi)

	return store
}

func lessAxis(pts []predicates.Point, i, j, axis int) bool {
	a, b := pts[i], pts[j]
	if axis == 0 {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func swapAt(pts []predicates.Point, idx []int, i, j int) {
	pts[i], pts[j] = pts[j], pts[i]
	idx[i], idx[j] = idx[j], idx[i]
}
