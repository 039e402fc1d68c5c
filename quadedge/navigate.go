// SPDX-License-Identifier: MIT
package quadedge

// Rot returns e's dual, rotated 90 degrees CCW.
func Rot(e Edge) Edge {
	return Edge{arena: e.arena, group: e.group, slot: (e.slot + 1) % 4}
}

// RotInv returns e's dual, rotated 90 degrees CW.
func RotInv(e Edge) Edge {
	return Edge{arena: e.arena, group: e.group, slot: (e.slot + 3) % 4}
}

// Sym returns the oppositely directed edge of the same undirected
// primal edge (or of the same dual edge, if e is a dual edge).
func Sym(e Edge) Edge {
	return Edge{arena: e.arena, group: e.group, slot: (e.slot + 2) % 4}
}

// Onext returns the CCW next edge around Org(e).
func Onext(e Edge) Edge {
	return e.arena.getNext(e)
}

// Oprev returns the CW next edge around Org(e).
func Oprev(e Edge) Edge {
	return Rot(Onext(Rot(e)))
}

// Lnext returns the CCW next edge around the left face of e.
func Lnext(e Edge) Edge {
	return Rot(Onext(RotInv(e)))
}

// Lprev returns the CW next edge around the left face of e.
func Lprev(e Edge) Edge {
	return Sym(Onext(e))
}

// Rnext returns the CCW next edge around the right face of e.
func Rnext(e Edge) Edge {
	return RotInv(Onext(Rot(e)))
}

// Rprev returns the CW next edge around the right face of e.
func Rprev(e Edge) Edge {
	return Onext(Sym(e))
}

// Dnext returns the CCW next edge around Dest(e).
func Dnext(e Edge) Edge {
	return Sym(Onext(Sym(e)))
}

// Dprev returns the CW next edge around Dest(e).
func Dprev(e Edge) Edge {
	return RotInv(Onext(RotInv(e)))
}

// Base returns the canonical representative (slot 0, the edge
// returned by Arena.MakeEdge) of e's quad-edge group. Containers that
// track live groups by identity key their sets on Base(e), since any
// of a group's four edges must map to the same key.
func Base(e Edge) Edge {
	return Edge{arena: e.arena, group: e.group, slot: 0}
}

// Org returns e's origin vertex, or NoVertex if unassigned.
func Org(e Edge) VertexID {
	return e.arena.groups[e.group].origin[e.slot]
}

// Dest returns e's destination vertex (the origin of Sym(e)).
func Dest(e Edge) VertexID {
	return Org(Sym(e))
}

// SetOrg assigns e's origin vertex.
func SetOrg(e Edge, v VertexID) {
	e.arena.groups[e.group].origin[e.slot] = v
}

// SetDest assigns e's destination vertex (the origin of Sym(e)).
func SetDest(e Edge, v VertexID) {
	SetOrg(Sym(e), v)
}
