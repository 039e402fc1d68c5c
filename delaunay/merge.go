// SPDX-License-Identifier: MIT
package delaunay

import (
	"github.com/katalvlaran/qedelaunay/quadedge"
	"github.com/katalvlaran/qedelaunay/subdivision"
)

// mergeTriangulations stitches two independently Delaunay sub-triangulations,
// described by their (leftmost-origin, rightmost-origin) handle
// pairs (ldo, ldi) and (rdi, rdo), into one. It returns the new overall
// (leftmost-origin, rightmost-origin) pair.
//
// Guibas & Stolfi 1985, section 4: find the lower common tangent,
// connect it, then zip upward picking at each step whichever of the
// left or right candidate edge does not violate the Delaunay property,
// deleting edges that do until a valid upper tangent is reached.
func mergeTriangulations(s *subdivision.Subdivision, ldo, ldi, rdi, rdo quadedge.Edge) (quadedge.Edge, quadedge.Edge) {
	// Phase 1: compute the lower common tangent of the two triangulations.
	for {
		if leftOf(s, quadedge.Org(rdi), ldi) {
			ldi = quadedge.Lnext(ldi)
			continue
		}
		if rightOf(s, quadedge.Org(ldi), rdi) {
			rdi = quadedge.Rprev(rdi)
			continue
		}
		break
	}

	// Create the base cross edge from rdi's origin to ldi's origin.
	basel := s.Connect(quadedge.Sym(rdi), ldi)
	if s.OrgPoint(ldi).Equal(s.OrgPoint(ldo)) {
		ldo = quadedge.Sym(basel)
	}
	if s.OrgPoint(rdi).Equal(s.OrgPoint(rdo)) {
		rdo = basel
	}

	// Phase 2: zip up the two triangulations.
	for {
		lcand := quadedge.Onext(quadedge.Sym(basel))
		if valid(s, lcand, basel) {
			for inCircle(s, quadedge.Dest(basel), quadedge.Org(basel), quadedge.Dest(lcand), quadedge.Dest(quadedge.Onext(lcand))) {
				next := quadedge.Onext(lcand)
				s.DeleteEdge(lcand)
				lcand = next
			}
		}

		rcand := quadedge.Oprev(basel)
		if valid(s, rcand, basel) {
			for inCircle(s, quadedge.Dest(basel), quadedge.Org(basel), quadedge.Dest(rcand), quadedge.Dest(quadedge.Oprev(rcand))) {
				next := quadedge.Oprev(rcand)
				s.DeleteEdge(rcand)
				rcand = next
			}
		}

		lValid := valid(s, lcand, basel)
		rValid := valid(s, rcand, basel)
		if !lValid && !rValid {
			break
		}

		if !lValid || (rValid && inCircle(s, quadedge.Dest(lcand), quadedge.Org(lcand), quadedge.Org(rcand), quadedge.Dest(rcand))) {
			basel = s.Connect(rcand, quadedge.Sym(basel))
		} else {
			basel = s.Connect(quadedge.Sym(basel), quadedge.Sym(lcand))
		}
	}

	return ldo, rdo
}
