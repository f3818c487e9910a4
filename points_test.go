package worldmapgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePointsCoversRectangle(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 128
	cfg.Height = 96

	ps := generatePoints(cfg)
	require.NotEmpty(t, ps.points)

	w, h := float64(cfg.Width), float64(cfg.Height)
	var onEdge int
	for _, p := range ps.points {
		require.GreaterOrEqual(t, p[0], 0.0)
		require.LessOrEqual(t, p[0], w)
		require.GreaterOrEqual(t, p[1], 0.0)
		require.LessOrEqual(t, p[1], h)
		if p[0] == 0 || p[0] == w || p[1] == 0 || p[1] == h {
			onEdge++
		}
	}
	require.Greater(t, onEdge, 4, "boundary ring missing")
}

func TestGeneratePointsDeterministic(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 64
	cfg.Height = 48

	a := generatePoints(cfg)
	b := generatePoints(cfg)
	require.Equal(t, a.points, b.points)
	require.Equal(t, a.mountains, b.mountains)
}

func TestGeneratePointsNoDuplicates(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 64
	cfg.Height = 48

	ps := generatePoints(cfg)
	seen := make(map[[2]float64]bool, len(ps.points))
	for _, p := range ps.points {
		require.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
	}
}

func TestGeneratePointsClampsCellSize(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 64
	cfg.Height = 48
	cfg.BiomeDensity = 1e6

	ps := generatePoints(cfg)
	require.GreaterOrEqual(t, ps.cellSize, minCellSize)
}

func TestGeneratePointsJitterStaysInsideInterior(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 64
	cfg.Height = 48
	cfg.PointDeviation = 0.5

	ps := generatePoints(cfg)
	w, h := float64(cfg.Width), float64(cfg.Height)
	half := ps.cellSize / 2
	for _, p := range ps.points {
		if p[0] == 0 || p[0] == w || p[1] == 0 || p[1] == h {
			continue // boundary ring
		}
		require.GreaterOrEqual(t, p[0], half)
		require.LessOrEqual(t, p[0], w-half)
		require.GreaterOrEqual(t, p[1], half)
		require.LessOrEqual(t, p[1], h-half)
	}
}
