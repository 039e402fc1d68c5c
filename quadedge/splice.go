// SPDX-License-Identifier: MIT
package quadedge

// Splice is the sole topological operator on the quad-edge structure.
// It simultaneously affects the vertex-rings of Org(a) and Org(b), and
// the face-rings on the dual side:
//
//	If a and b share an origin, Splice separates that origin into two
//	distinct origins, splitting the vertex-ring. If they have distinct
//	origins, Splice unifies them, merging the rings. The dual side
//	behaves analogously for faces.
//
// Splice has no geometric precondition; it is purely combinatorial,
// and it re-establishes the global quad-edge invariants provided they
// held before the call. Guibas & Stolfi, pg. 98 / pg. 102.
func Splice(a, b Edge) {
	alpha := Rot(Onext(a))
	beta := Rot(Onext(b))

	aNext, bNext := Onext(a), Onext(b)
	a.arena.setNext(a, bNext)
	b.arena.setNext(b, aNext)

	alphaNext, betaNext := Onext(alpha), Onext(beta)
	alpha.arena.setNext(alpha, betaNext)
	beta.arena.setNext(beta, alphaNext)
}
