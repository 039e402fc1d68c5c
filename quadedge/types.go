// SPDX-License-Identifier: MIT
package quadedge

// VertexID is an opaque reference to a point in the caller's point
// array. quadedge never dereferences it; it only stores and compares
// it. NoVertex marks an edge whose origin has not been assigned yet.
type VertexID int

// NoVertex is the zero value is deliberately avoided (0 is a valid
// vertex index), so "unset" is represented by -1 instead.
const NoVertex VertexID = -1

// Edge is a handle to one of the four directed edge records of a
// quad-edge group. It is a small value type (comparable, safe to use
// as a map key) rather than a pointer: the group it names lives in an
// Arena, addressed by index, so Edge never owns anything and copying
// one is free.
type Edge struct {
	arena *Arena
	group int32
	slot  uint8
}

// IsZero reports whether e is the zero Edge (no arena bound). Useful
// for "no handle yet" sentinels in callers that can't use NoVertex.
func (e Edge) IsZero() bool {
	return e.arena == nil
}

// group is the storage for one quad-edge: four edge records, each
// carrying its own origin and its own Onext pointer. Arrays, not
// pointers, because Arena indexes groups by slot.
type group struct {
	origin [4]VertexID
	next   [4]Edge
	live   bool
}
