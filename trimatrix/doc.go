// SPDX-License-Identifier: MIT
// Package trimatrix provides a vertex-incidence matrix over a
// triangulation's reported faces, independent of the quad-edge
// structure that produced them. It exists purely for verification: a
// second, structurally unrelated representation of the same
// triangulation that property tests can cross-check the builder's
// direct output against (edge and degree counts, Euler's formula,
// hull coverage), the way package matrix's IncidenceMatrix lets graph
// algorithms be checked against an independent representation of the
// same graph.
//
// Unlike package matrix, trimatrix carries no linear-algebra solvers
// (no LU/QR/eigendecomposition, no Floyd-Warshall): those operate on
// real-valued entries and are lossy under floating-point rounding,
// which is exactly what the geometric predicates this module is built
// around are designed to avoid. A verification layer that reintroduced
// float rounding to check a robust-predicate triangulation would
// defeat its own purpose, so trimatrix only ever counts and compares
// integers.
package trimatrix
