package worldmapgen

import (
	"container/heap"
	"sort"
)

// assignDownslope maps every triangle to the neighbor with the strictly
// lowest elevation. Triangles with no lower neighbor keep the -1 sentinel
// and are returned as sinks when they sit on land.
func (m *Map) assignDownslope() []int {
	numTriangles := m.Mesh.NumTriangles()
	downslope := initRegionSlice(numTriangles)

	var sinks []int
	for t := 0; t < numTriangles; t++ {
		lowest := -1
		lowestElevation := m.Elevation[t]
		for _, nb := range m.Mesh.Neighbors[t] {
			if nb < 0 {
				continue
			}
			if m.Elevation[nb] < lowestElevation {
				lowestElevation = m.Elevation[nb]
				lowest = nb
			}
		}
		downslope[t] = lowest
		if lowest == -1 && !m.Mesh.IsBoundary(t) && m.Elevation[t] >= m.cfg.SeaLevel {
			sinks = append(sinks, t)
		}
	}
	m.Downslope = downslope
	return sinks
}

// resolveSinks routes every land sink to the nearest triangle that already
// drains somewhere, using a priority-first search ordered by elevation.
// After this pass every land triangle has a drainage path toward the sea
// or the map rim.
func (m *Map) resolveSinks(sinks []int) {
	for _, sink := range sinks {
		visited := make(map[int]bool, 64)
		visited[sink] = true

		queue := make(ascPriorityQueue, 0, 8)
		heap.Init(&queue)
		for _, nb := range m.Mesh.Neighbors[sink] {
			if nb < 0 {
				continue
			}
			visited[nb] = true
			heap.Push(&queue, &queueEntry{score: m.Elevation[nb], dest: nb})
		}

		for queue.Len() > 0 {
			e := heap.Pop(&queue).(*queueEntry)
			t := e.dest
			drains := m.Downslope[t] != -1 || m.Elevation[t] < m.cfg.SeaLevel
			if drains && m.drainsAway(t, sink) {
				m.Downslope[sink] = t
				break
			}
			for _, nb := range m.Mesh.Neighbors[t] {
				if nb < 0 || visited[nb] {
					continue
				}
				visited[nb] = true
				heap.Push(&queue, &queueEntry{score: m.Elevation[nb], dest: nb})
			}
		}
	}
}

// drainsAway reports whether the drainage chain starting at start ends
// without passing through sink. Routing a sink only to such a chain keeps
// the drainage graph acyclic.
func (m *Map) drainsAway(start, sink int) bool {
	cur := start
	for steps := 0; steps <= m.Mesh.NumTriangles(); steps++ {
		if cur == sink {
			return false
		}
		if m.Elevation[cur] < m.cfg.SeaLevel || m.Mesh.IsBoundary(cur) {
			return true
		}
		next := m.Downslope[cur]
		if next < 0 {
			return true
		}
		cur = next
	}
	return false
}

// assignFlow seeds every land triangle with its rainfall scaled by the
// global river factor and accumulates the water downslope, highest
// triangles first. High-altitude triangles get a snowmelt bonus.
func (m *Map) assignFlow() {
	numTriangles := m.Mesh.NumTriangles()
	seaLevel := m.cfg.SeaLevel

	flow := make([]float64, numTriangles)
	for t := 0; t < numTriangles; t++ {
		if m.Elevation[t] < seaLevel {
			continue
		}
		flow[t] = m.Rainfall[t] * m.cfg.Rivers
		if above := m.Elevation[t] - seaLevel; above > 0.5 {
			flow[t] *= 1 + (above - 0.5)
		}
	}

	order := make([]int, numTriangles)
	for t := range order {
		order[t] = t
	}
	sort.Slice(order, func(a, b int) bool {
		if m.Elevation[order[a]] == m.Elevation[order[b]] {
			return order[a] < order[b]
		}
		return m.Elevation[order[a]] > m.Elevation[order[b]]
	})

	for _, t := range order {
		if m.Downslope[t] < 0 || m.Mesh.IsBoundary(t) {
			continue
		}
		flow[m.Downslope[t]] += flow[t]
	}
	m.Flow = flow
}
