package worldmapgen

import "sort"

// maxRivers bounds the number of retained river paths to keep render cost
// predictable.
const maxRivers = 100

// minRiverLength is the shortest path worth painting; anything shorter
// reads as a smudge rather than a river.
const minRiverLength = 4

// RiverPath is an ordered run of triangles from a mountain source down to
// the sea, the map rim, an unresolved sink, or a sink whose routed
// downslope is not a mesh neighbor. Consecutive entries are mesh neighbors
// and no triangle repeats.
type RiverPath struct {
	Triangles []int   // Ordered triangle indices, source first
	Source    int     // The source triangle the trace started from
	Flow      float64 // Flow at the source, used for sorting and width
}

// extractRivers traces a river path from every qualifying source triangle.
// A source is a land triangle high enough for snow and rain to gather and
// with enough accumulated flow to carve a bed.
func (m *Map) extractRivers() {
	seaLevel := m.cfg.SeaLevel

	var paths []RiverPath
	for src := 0; src < m.Mesh.NumTriangles(); src++ {
		if m.Elevation[src] < seaLevel || m.Elevation[src] <= 0.5 {
			continue
		}
		if m.Flow[src] < m.cfg.RiverMinFlow {
			continue
		}

		path, ok := m.traceRiver(src)
		if !ok || len(path) < minRiverLength {
			continue
		}
		paths = append(paths, RiverPath{
			Triangles: path,
			Source:    src,
			Flow:      m.Flow[src],
		})
	}

	sort.Slice(paths, func(a, b int) bool {
		if paths[a].Flow == paths[b].Flow {
			return paths[a].Source < paths[b].Source
		}
		return paths[a].Flow > paths[b].Flow
	})
	if len(paths) > maxRivers {
		paths = paths[:maxRivers]
	}
	m.Rivers = paths
}

// assignWaterfalls marks river triangles whose drop to the next triangle
// on the path is steep enough to read as a waterfall.
func (m *Map) assignWaterfalls() {
	const minDrop = 0.15

	waterfalls := make(map[int]bool)
	for _, river := range m.Rivers {
		for i := 0; i+1 < len(river.Triangles); i++ {
			a, b := river.Triangles[i], river.Triangles[i+1]
			if m.Elevation[a]-m.Elevation[b] > minDrop {
				waterfalls[a] = true
			}
		}
	}
	m.TriangleIsWaterfall = waterfalls
}

// traceRiver follows the downslope mapping from src until the water reaches
// the sea, the rim, or a dead end. A path that would revisit a triangle is
// rejected wholesale; a downslope hop that jumps to a non-adjacent triangle
// (a routed sink) ends the path there so consecutive entries stay mesh
// neighbors.
func (m *Map) traceRiver(src int) ([]int, bool) {
	seaLevel := m.cfg.SeaLevel
	visited := make(map[int]bool, 32)

	var path []int
	cur := src
	for {
		if visited[cur] {
			return nil, false
		}
		visited[cur] = true
		path = append(path, cur)

		if m.Elevation[cur] < seaLevel || m.Mesh.IsBoundary(cur) {
			return path, true
		}
		next := m.Downslope[cur]
		if next < 0 {
			return path, true
		}
		if !m.Mesh.IsNeighbor(cur, next) {
			return path, true
		}
		cur = next
	}
}
