// SPDX-License-Identifier: MIT
package trimatrix

import (
	"sort"

	"github.com/katalvlaran/qedelaunay/subdivision"
)

// Matrix is a V x T incidence matrix: Data[i][j] is 1 if vertex row i
// belongs to triangle column j, 0 otherwise. VertexIndex maps a
// caller-stable input index (as emitted in subdivision.Triangle) to
// its row.
type Matrix struct {
	VertexIndex map[int]int
	Triangles   []subdivision.Triangle
	Data        [][]int
}

// New builds a Matrix from a reported triangle list. The row order is
// the sorted order of the input indices that actually appear in tris,
// so two calls over the same triangle set (in any order) produce an
// identical Matrix.
func New(tris []subdivision.Triangle) *Matrix {
	seen := make(map[int]bool)
	for _, tri := range tris {
		for _, v := range tri {
			seen[v] = true
		}
	}

	verts := make([]int, 0, len(seen))
	for v := range seen {
		verts = append(verts, v)
	}
	sort.Ints(verts)

	idx := make(map[int]int, len(verts))
	for row, v := range verts {
		idx[v] = row
	}

	data := make([][]int, len(verts))
	for i := range data {
		data[i] = make([]int, len(tris))
	}
	for col, tri := range tris {
		for _, v := range tri {
			data[idx[v]][col] = 1
		}
	}

	return &Matrix{VertexIndex: idx, Triangles: append([]subdivision.Triangle(nil), tris...), Data: data}
}

// VertexCount returns the number of distinct vertices appearing in at
// least one triangle.
func (m *Matrix) VertexCount() int {
	return len(m.VertexIndex)
}

// TriangleCount returns the number of triangle columns.
func (m *Matrix) TriangleCount() int {
	return len(m.Triangles)
}

// VertexDegree returns the number of triangles incident to vertexIndex.
func (m *Matrix) VertexDegree(vertexIndex int) (int, error) {
	row, ok := m.VertexIndex[vertexIndex]
	if !ok {
		return 0, ErrUnknownVertex
	}

	degree := 0
	for _, v := range m.Data[row] {
		degree += v
	}

	return degree, nil
}

// edge is a canonical (undirected) pair of input indices, smaller first.
type edge [2]int

func canonicalEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// EdgeCounts returns, for every undirected edge that borders at least
// one reported triangle, the number of triangles it borders. In a
// valid triangulation of a simply-connected point set every edge
// borders exactly 1 (hull boundary) or 2 (interior) triangles; any
// other count indicates a malformed triangle list.
func (m *Matrix) EdgeCounts() map[[2]int]int {
	counts := make(map[[2]int]int)
	for _, tri := range m.Triangles {
		counts[canonicalEdge(tri[0], tri[1])]++
		counts[canonicalEdge(tri[1], tri[2])]++
		counts[canonicalEdge(tri[2], tri[0])]++
	}
	return counts
}

// BoundaryEdges returns the edges bordering exactly one triangle —
// the convex hull of the triangulated point set, as an independent
// cross-check against subdivision.Boundary.
func (m *Matrix) BoundaryEdges() [][2]int {
	var out [][2]int
	for e, n := range m.EdgeCounts() {
		if n == 1 {
			out = append(out, e)
		}
	}
	return out
}

// EulerDefect returns V - E + F - 2 for the planar graph formed by the
// reported triangles plus the single outer face. A correctly built,
// simply-connected triangulation always has defect 0.
func (m *Matrix) EulerDefect() int {
	v := m.VertexCount()
	e := len(m.EdgeCounts())
	f := m.TriangleCount() + 1 // + the unbounded outer face

	return v - e + f - 2
}
