// SPDX-License-Identifier: MIT
package quadedge

// Arena owns the storage for every quad-edge group created through
// it. Groups are addressed by a stable int32 slot; a freed slot is
// recycled by the next MakeEdge call, so the arena's memory footprint
// is bounded by the peak number of simultaneously live groups, not by
// the total number of groups ever created. Storage never shrinks.
type Arena struct {
	groups []group
	free   []int32
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// MakeEdge allocates a fresh quad-edge group and returns its primal
// edge e0. Per the construction invariants: e0 and e2 (the primal
// pair) start as isolated Onext loops at their own slot; e1 and e3
// (the dual pair) start as a 2-cycle on each other, expressing that
// the new primal edge borders the same face on both sides before any
// Splice joins it to the rest of the subdivision. No origin is
// assigned.
func (a *Arena) MakeEdge() Edge {
	idx := a.alloc()
	g := &a.groups[idx]
	g.live = true
	g.origin = [4]VertexID{NoVertex, NoVertex, NoVertex, NoVertex}

	g.next[0] = Edge{arena: a, group: idx, slot: 0}
	g.next[1] = Edge{arena: a, group: idx, slot: 3}
	g.next[2] = Edge{arena: a, group: idx, slot: 2}
	g.next[3] = Edge{arena: a, group: idx, slot: 1}

	return Edge{arena: a, group: idx, slot: 0}
}

// Free recycles the whole quad-edge group e belongs to. The caller
// (package subdivision) must have already Spliced every one of the
// group's four edges out of the live structure; Free does not touch
// Onext fields, it only returns the slot to the pool.
func (a *Arena) Free(e Edge) {
	g := &a.groups[e.group]
	g.live = false
	g.origin = [4]VertexID{NoVertex, NoVertex, NoVertex, NoVertex}
	g.next = [4]Edge{}
	a.free = append(a.free, e.group)
}

func (a *Arena) alloc() int32 {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		return idx
	}
	a.groups = append(a.groups, group{})
	return int32(len(a.groups) - 1)
}

func (a *Arena) getNext(e Edge) Edge {
	return a.groups[e.group].next[e.slot]
}

func (a *Arena) setNext(e, v Edge) {
	a.groups[e.group].next[e.slot] = v
}
