package worldmapgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownslopePicksLowestNeighbor(t *testing.T) {
	// Wherever a strictly lower neighbor exists, the downslope mapping
	// must point at the lowest one. Triangles without one are sinks and
	// may have been routed elsewhere.
	m := newTestMap(t, nil)
	for tri := 0; tri < m.Mesh.NumTriangles(); tri++ {
		best := -1
		bestElevation := m.Elevation[tri]
		for _, nb := range m.Mesh.Neighbors[tri] {
			if nb < 0 {
				continue
			}
			if m.Elevation[nb] < bestElevation {
				bestElevation = m.Elevation[nb]
				best = nb
			}
		}
		if best != -1 {
			require.Equal(t, best, m.Downslope[tri], "triangle %d", tri)
		}
	}
}

func TestDrainageReachesWater(t *testing.T) {
	m := newTestMap(t, nil)
	numTriangles := m.Mesh.NumTriangles()
	for tri := 0; tri < numTriangles; tri++ {
		if m.Elevation[tri] < m.cfg.SeaLevel {
			continue
		}
		cur := tri
		steps := 0
		for {
			require.LessOrEqual(t, steps, numTriangles, "drainage from %d cycles", tri)
			if m.Elevation[cur] < m.cfg.SeaLevel || m.Mesh.IsBoundary(cur) {
				break
			}
			next := m.Downslope[cur]
			require.GreaterOrEqual(t, next, 0, "land triangle %d has no drainage", cur)
			cur = next
			steps++
		}
	}
}

func TestFlowNonNegative(t *testing.T) {
	m := newTestMap(t, nil)
	for tri, f := range m.Flow {
		require.GreaterOrEqual(t, f, 0.0, "triangle %d", tri)
	}
}

func TestFlowScalesWithRivers(t *testing.T) {
	base := newTestMap(t, nil)
	off := newTestMap(t, func(cfg *Config) {
		cfg.Rivers = 0
	})
	for _, f := range off.Flow {
		require.Zero(t, f)
	}
	var total float64
	for _, f := range base.Flow {
		total += f
	}
	require.Greater(t, total, 0.0)
}

func TestFlowAtLeastLocalRunoff(t *testing.T) {
	// Accumulation only ever adds water, so no triangle can end up with
	// less flow than its own seeded runoff.
	m := newTestMap(t, nil)
	for tri := 0; tri < m.Mesh.NumTriangles(); tri++ {
		if m.Elevation[tri] < m.cfg.SeaLevel {
			continue
		}
		seed := m.Rainfall[tri] * m.cfg.Rivers
		if above := m.Elevation[tri] - m.cfg.SeaLevel; above > 0.5 {
			seed *= 1 + (above - 0.5)
		}
		require.GreaterOrEqual(t, m.Flow[tri], seed, "triangle %d lost runoff", tri)
	}
}
