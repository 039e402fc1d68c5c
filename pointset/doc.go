// SPDX-License-Identifier: MIT
// Package pointset generates predicates.Point slices for exercising
// the delaunay builder: regular polygons, grids, collinear chains, and
// uniform-random clouds. It plays the same role for this module that
// package builder plays for graph construction in its lineage — a
// small set of named generators sharing one functional-options config
// (Option / WithSeed / WithJitter) instead of each taking its own ad
// hoc parameter list.
//
// Complexity: every generator here is O(n) in the requested point
// count; none of them triangulate anything themselves.
package pointset
