// SPDX-License-Identifier: MIT
// Package nodefile reads and writes the .node/.ele file pair used by
// Triangle-family mesh tools and by this module's own original
// implementation's I/O layer (src/qedge/io_utils.cpp in the lineage
// this package is grounded on).
//
// A .node file's first non-comment, non-blank line is:
//
//	<# of points> <dimension, must be 2> <# of attributes> <# of boundary markers>
//
// followed by that many lines of:
//
//	<point index> <x> <y> [attributes...] [boundary marker]
//
// Lines that are blank, or whose first field starts with '#', are
// skipped anywhere in the file (comments are not restricted to the
// header). Point indices need not be contiguous or 1-based; whatever
// index a point is read under is the index this module's builder
// emits for it in a reported triangle.
//
// A matching .ele file's first line is:
//
//	<# of triangles> 3 <# of attributes>
//
// followed by that many lines of:
//
//	<triangle #> <point index 1> <point index 2> <point index 3>
//
// triangle numbers are 1-based and sequential; point indices refer
// back to the .node file's own indexing.
package nodefile
