package worldmapgen

import (
	"math"

	"github.com/romxai/world-map-generator/noise"
)

// minCellSize bounds the number of triangles for extreme density settings.
const minCellSize = 2.0

// pointSet is the output of the sampling stage: the full point set fed to
// the triangulation, plus the subset of interior points that qualify as
// mountain candidates.
type pointSet struct {
	points    [][2]float64
	mountains [][2]float64
	cellSize  float64
}

// generatePoints produces a point set approximately uniformly covering the
// map rectangle. Boundary points trace the rectangle edges at half the cell
// spacing so the triangulation has a stable rim; interior points sit on a
// jittered grid.
func generatePoints(cfg *Config) *pointSet {
	w, h := float64(cfg.Width), float64(cfg.Height)
	area := w * h
	cellSize := math.Sqrt(area / (area * cfg.BiomeDensity / 30))
	if cellSize < minCellSize {
		cellSize = minCellSize
	}

	ps := &pointSet{cellSize: cellSize}

	// Boundary ring: bottom, right, top, left. The traversal order matches
	// the boundary detection of the mesh stage.
	step := cellSize / 2
	for x := 0.0; x < w; x += step {
		ps.points = append(ps.points, [2]float64{x, h})
	}
	for y := h; y > 0; y -= step {
		ps.points = append(ps.points, [2]float64{w, y})
	}
	for x := w; x > 0; x -= step {
		ps.points = append(ps.points, [2]float64{x, 0})
	}
	for y := 0.0; y < h; y += step {
		ps.points = append(ps.points, [2]float64{0, y})
	}

	rnd := newRandStream(cfg.Seed, "points")
	candidateNoise := noise.New(2, 0.75, noiseSeed(cfg.Seed, "mountains"))
	mountainRnd := newRandStream(cfg.Seed, "mountain-candidates")

	// Interior grid with per-point jitter. Jittered points are clamped away
	// from the boundary ring so they cannot collide with it.
	for gy := cellSize; gy < h; gy += cellSize {
		for gx := cellSize; gx < w; gx += cellSize {
			px := gx + rnd.Range(-1, 1)*cellSize*cfg.PointDeviation
			py := gy + rnd.Range(-1, 1)*cellSize*cfg.PointDeviation
			px = clamp(px, cellSize/2, w-cellSize/2)
			py = clamp(py, cellSize/2, h-cellSize/2)
			ps.points = append(ps.points, [2]float64{px, py})

			n1 := candidateNoise.Eval2n(px/w*3, py/h*3)
			n2 := candidateNoise.Eval2n(px/w*6+52.1, py/h*6+31.7)
			u := mountainRnd.Float64()
			if n1*n2 > 0.7 && u < cfg.MountainFrequency {
				ps.mountains = append(ps.mountains, [2]float64{px, py})
			}
		}
	}
	return ps
}
