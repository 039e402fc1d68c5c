// SPDX-License-Identifier: MIT
// Package quadedge implements the Guibas-Stolfi quad-edge data
// structure: the topological substrate of an orientable planar
// subdivision.
//
// A quad-edge is a group of exactly four edge records representing one
// undirected primal edge and its dual in both directions. The package
// exposes the two primitive operators, MakeEdge and Splice, plus the
// derived navigation functions (Sym, Rot, RotInv, Onext, Oprev, Lnext,
// Lprev, Rnext, Rprev, Dnext, Dprev) defined algebraically in terms of
// them.
//
// Ownership. Every quad-edge group lives in an Arena: groups are
// identified by a stable slot index rather than by a graph of owning
// pointers, so the structure's internal cycles (every Onext orbit is a
// cycle; every group's four edges reference each other) never need a
// cycle-breaking teardown pass — freeing a slot is O(1) and leaves no
// dangling references because nothing outside the arena ever holds
// anything but an (arena, group, position) handle.
//
// This package has no geometric knowledge: an edge's origin is an
// opaque VertexID (an index into whatever point array the caller
// maintains), never a coordinate. Geometry lives in package
// predicates; edge insertion/deletion policy lives in package
// subdivision.
//
// Single-threaded. Per the spec this structure is mutated by one
// goroutine at a time: Splice leaves the structure in a well-defined
// state only between calls, never during one, so there is no lock to
// take that would make concurrent access safe — the invariant is
// sequencing, not mutual exclusion. Arena therefore carries no mutex,
// unlike the thread-safe core.Graph this package is otherwise modeled
// on.
package quadedge
