package worldmapgen

import (
	"fmt"

	"github.com/fogleman/delaunay"
)

// TriMesh is the irregular triangular mesh every physical field is computed
// on. Triangles are indexed 0..NumTriangles()-1; neighbor slots hold the
// triangle across each of the three edges, or -1 for boundary edges.
type TriMesh struct {
	Points    [][2]float64 // Input points, indexed by the Triangles slice
	Triangles []int        // Vertex indices, three per triangle
	Halfedges []int        // Opposite halfedge per halfedge, -1 at the hull
	Centroids [][2]float64 // Arithmetic mean of each triangle's vertices
	Neighbors [][3]int     // Neighbor triangle per edge, -1 for none

	numTriangles int
}

// newTriMesh Delaunay-triangulates the given points and derives the
// per-triangle adjacency used by all later stages.
func newTriMesh(points [][2]float64) (*TriMesh, error) {
	dpts := make([]delaunay.Point, len(points))
	for i, p := range points {
		dpts[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, fmt.Errorf("worldmapgen: triangulation failed: %w", err)
	}

	numTriangles := len(tri.Halfedges) / 3
	if numTriangles == 0 {
		return nil, ErrDegenerateMesh
	}

	m := &TriMesh{
		Points:       points,
		Triangles:    tri.Triangles,
		Halfedges:    tri.Halfedges,
		Centroids:    make([][2]float64, numTriangles),
		Neighbors:    make([][3]int, numTriangles),
		numTriangles: numTriangles,
	}

	for t := 0; t < numTriangles; t++ {
		var cx, cy float64
		for j := 0; j < 3; j++ {
			p := points[tri.Triangles[3*t+j]]
			cx += p[0]
			cy += p[1]

			opposite := tri.Halfedges[3*t+j]
			if opposite < 0 {
				m.Neighbors[t][j] = -1
			} else {
				m.Neighbors[t][j] = opposite / 3
			}
		}
		m.Centroids[t] = [2]float64{cx / 3, cy / 3}
	}
	return m, nil
}

// NumTriangles returns the number of triangles in the mesh.
func (m *TriMesh) NumTriangles() int {
	return m.numTriangles
}

// IsBoundary reports whether any edge of t has no opposite triangle.
func (m *TriMesh) IsBoundary(t int) bool {
	nb := m.Neighbors[t]
	return nb[0] == -1 || nb[1] == -1 || nb[2] == -1
}

// IsNeighbor reports whether u shares an edge with t.
func (m *TriMesh) IsNeighbor(t, u int) bool {
	nb := m.Neighbors[t]
	return nb[0] == u || nb[1] == u || nb[2] == u
}
