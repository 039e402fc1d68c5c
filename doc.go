// Package qedelaunay is a 2-D Delaunay triangulator built on the
// Guibas-Stolfi quad-edge data structure.
//
// What is qedelaunay?
//
//	A pure-Go library that brings together:
//
//	  • predicates  — robust orientation and in-circle tests
//	  • quadedge    — the arena-owned quad-edge substrate (MakeEdge, Splice)
//	  • subdivision — a live planar subdivision built on top of quadedge
//	  • delaunay    — divide-and-conquer triangulation, vertical or
//	    alternating cuts, over a subdivision
//	  • pointset    — generators for exercising the builder (regular
//	    polygons, grids, collinear and uniform-random point clouds)
//	  • trimatrix   — an independent vertex-incidence view of a
//	    triangulation, for verifying builder output
//	  • nodefile    — .node/.ele file I/O
//	  • cmd/delaunay — a command-line front end over nodefile and delaunay
//
// Quick ASCII example, four points on a square triangulated along one
// diagonal:
//
//	D───C
//	│ ╲ │
//	A───B
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// component design and the rationale behind it.
package qedelaunay
