package worldmapgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRasterDimensionsAndBounds(t *testing.T) {
	m := newTestMap(t, nil)
	md := m.RasterData()

	require.Equal(t, m.cfg.Width, md.Width)
	require.Equal(t, m.cfg.Height, md.Height)
	require.Len(t, md.Elevation, md.Height)
	require.Len(t, md.Biomes, md.Height)

	for y := 0; y < md.Height; y++ {
		require.Len(t, md.Elevation[y], md.Width)
		for x := 0; x < md.Width; x++ {
			require.GreaterOrEqual(t, md.Elevation[y][x], 0.0)
			require.LessOrEqual(t, md.Elevation[y][x], 1.0)
			require.GreaterOrEqual(t, md.Moisture[y][x], 0.0)
			require.LessOrEqual(t, md.Moisture[y][x], 1.0)
			require.GreaterOrEqual(t, md.Temperature[y][x], 0.0)
			require.LessOrEqual(t, md.Temperature[y][x], 1.0)
			require.GreaterOrEqual(t, md.Rivers[y][x], 0.0)
			require.GreaterOrEqual(t, md.Biomes[y][x], Biome(0))
			require.Less(t, md.Biomes[y][x], numBiomes)
		}
	}
}

func TestRasterMatchesNearestCentroid(t *testing.T) {
	m := newTestMap(t, nil)
	md := m.RasterData()

	// Spot-check a handful of pixels against a brute-force nearest scan.
	for _, px := range [][2]int{{0, 0}, {13, 7}, {32, 24}, {63, 47}, {50, 10}} {
		x, y := px[0], px[1]
		p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
		best, bestDist := -1, -1.0
		for tri, c := range m.Mesh.Centroids {
			d := dist2(c, p)
			if best == -1 || d < bestDist {
				best, bestDist = tri, d
			}
		}
		require.Equal(t, m.Elevation[best], md.Elevation[y][x], "pixel (%d,%d)", x, y)
	}
}

func TestRasterDeterministic(t *testing.T) {
	m := newTestMap(t, nil)
	a := m.RasterData()
	b := m.RasterData()
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.Elevation, b.Elevation)
	require.Equal(t, a.Rivers, b.Rivers)
}

func TestSpatialHashFindsAllTriangles(t *testing.T) {
	_, mesh := buildTestMesh(t, "alpha", 64, 48)
	sh := newSpatialHash(mesh, 64, 48)

	var bucketed int
	for _, b := range sh.buckets {
		bucketed += len(b)
	}
	require.Equal(t, mesh.NumTriangles(), bucketed)

	// Looking up a centroid itself must land on it exactly.
	for _, c := range mesh.Centroids {
		got := sh.nearest(c[0], c[1])
		require.Zero(t, dist2(mesh.Centroids[got], c))
	}
}

func TestHashDiffersAcrossSeeds(t *testing.T) {
	a := newTestMap(t, nil).RasterData()
	b := newTestMap(t, func(cfg *Config) {
		cfg.Seed = "beta"
	}).RasterData()
	require.NotEqual(t, a.Hash(), b.Hash())
}
