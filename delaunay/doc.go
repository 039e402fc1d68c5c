// SPDX-License-Identifier: MIT
// Package delaunay implements the Guibas-Stolfi divide-and-conquer
// Delaunay triangulation algorithm on top of packages quadedge and
// subdivision, using package predicates as the geometric oracle.
//
// Two presort/partition strategies are offered, selected by Mode:
//
//   - ModeVertical sorts the whole point set lexicographically once,
//     then always splits the index range in half.
//   - ModeAlternating never globally sorts; each recursive call
//     partitions its slice around the median of the axis currently in
//     play (y at the top level, then x, then y, ...), so a split
//     alternates between a roughly-horizontal and a roughly-vertical cut.
//
// Both strategies bottom out at the same 2- and 3-point base cases and
// are stitched back together by the same MergeTriangulations routine,
// which walks the common tangent between two already-Delaunay pieces
// and repairs the Delaunay property as it goes using InCircle. On
// point sets free of cocircular 4-tuples the two modes are guaranteed
// to produce identical triangulations (property 6 of the spec this
// package implements); on cocircular configurations both still produce
// *a* valid Delaunay triangulation, just not necessarily the same one,
// because the InCircle tie-break is strict (a value snapped to exactly
// zero is never treated as "inside").
package delaunay
