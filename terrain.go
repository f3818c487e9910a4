package worldmapgen

import (
	"container/heap"
	"math"

	"github.com/romxai/world-map-generator/noise"
)

// landCenter is a continent or island seed for the continent mask.
type landCenter struct {
	pos  [2]float64
	size float64
}

// assignElevation computes the per-triangle elevation field from the
// continent mask, the mountain distance field, and terrain noise, then
// normalizes it to [0, 1].
func (m *Map) assignElevation() {
	numTriangles := m.Mesh.NumTriangles()
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)

	peaks := m.selectMountainPeaks()
	m.MountainDist = m.mountainDistanceField(peaks)
	mask := m.continentMask()

	terrainNoise := noise.New(4, 0.6, noiseSeed(m.cfg.Seed, "terrain"))
	waterNoise := noise.New(1, 1, noiseSeed(m.cfg.Seed, "water"))

	elevation := make([]float64, numTriangles)
	for t := 0; t < numTriangles; t++ {
		if m.Mesh.IsBoundary(t) {
			elevation[t] = 0
			continue
		}
		c := m.Mesh.Centroids[t]
		nx, ny := c[0]/w, c[1]/h

		mountain := 1 - m.MountainDist[t]
		elev := 0.6*mask[t] +
			mountain*mountain*m.cfg.MountainHeight*0.5 +
			terrainNoise.Eval2n(nx*4, ny*4)*0.3

		// Large-scale water noise carves deep ocean trenches column-wise.
		if wn := waterNoise.Eval2n(nx*2, 0.5); wn < 0.3 {
			elev *= wn * 3
		}
		elevation[t] = elev
	}

	// Rescale so the lowest triangle sits at 0 and the highest at 1. A flat
	// field cannot be rescaled; it is left as-is and generation continues
	// with it.
	min, max := minMax(elevation)
	if max > min {
		for t := range elevation {
			elevation[t] = (elevation[t] - min) / (max - min)
		}
	}
	m.Elevation = elevation
}

// selectMountainPeaks picks interior triangles whose combined noise value
// is high enough to seed a mountain range.
func (m *Map) selectMountainPeaks() []int {
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)
	peakNoise := noise.New(2, 0.75, noiseSeed(m.cfg.Seed, "mountains"))
	rnd := newRandStream(m.cfg.Seed, "mountain-peaks")

	var peaks []int
	for t := 0; t < m.Mesh.NumTriangles(); t++ {
		if m.Mesh.IsBoundary(t) {
			continue
		}
		c := m.Mesh.Centroids[t]
		n1 := peakNoise.Eval2n(c[0]/w*3, c[1]/h*3)
		n2 := peakNoise.Eval2n(c[0]/w*6+52.1, c[1]/h*6+31.7)
		u := rnd.Float64()
		if n1*n2 > 0.7 && u < m.cfg.MountainFrequency*0.1 {
			peaks = append(peaks, t)
		}
	}
	return peaks
}

// mountainDistanceField runs a shortest-path traversal from all peaks at
// once and returns the distance of every triangle to the nearest peak,
// normalized to [0, 1]. Unreachable triangles get 1. Edge costs carry a
// small seeded jitter scaled by the jaggedness setting so the resulting
// contours look irregular rather than perfectly radial.
func (m *Map) mountainDistanceField(peaks []int) []float64 {
	numTriangles := m.Mesh.NumTriangles()
	dist := initFloatSlice(numTriangles, math.Inf(1))
	if len(peaks) == 0 {
		return initFloatSlice(numTriangles, 1)
	}

	rnd := newRandStream(m.cfg.Seed, "jagged")
	queue := make(ascPriorityQueue, 0, len(peaks))
	heap.Init(&queue)
	for _, p := range peaks {
		dist[p] = 0
		heap.Push(&queue, &queueEntry{score: 0, dest: p})
	}

	for queue.Len() > 0 {
		e := heap.Pop(&queue).(*queueEntry)
		if e.score > dist[e.dest] {
			continue // stale entry
		}
		for _, nb := range m.Mesh.Neighbors[e.dest] {
			if nb < 0 {
				continue
			}
			eps := (rnd.Float64() - 0.5) * m.cfg.Jaggedness * 0.2
			d := e.score + dist2(m.Mesh.Centroids[e.dest], m.Mesh.Centroids[nb])*(1+eps)
			if d < dist[nb] {
				dist[nb] = d
				heap.Push(&queue, &queueEntry{score: d, dest: nb})
			}
		}
	}

	var maxDist float64
	for _, d := range dist {
		if !math.IsInf(d, 1) && d > maxDist {
			maxDist = d
		}
	}
	for t, d := range dist {
		if math.IsInf(d, 1) {
			dist[t] = 1
		} else if maxDist > 0 {
			dist[t] = d / maxDist
		}
	}
	return dist
}

// continentMask returns a [0, 1] land-shape value per triangle: the falloff
// from the nearest continent or island center, stretched by noise so the
// coastlines do not come out as clean ellipses. Values at or below the
// ocean ratio are forced to 0.
func (m *Map) continentMask() []float64 {
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)
	rnd := newRandStream(m.cfg.Seed, "continents")
	shapeNoise := noise.New(3, 0.5, noiseSeed(m.cfg.Seed, "continents"))
	edgeNoise := noise.New(1, 1, noiseSeed(m.cfg.Seed, "coast"))

	numContinents := int(math.Sqrt(w*h) / 300)
	if numContinents < 1 {
		numContinents = 1
	} else if numContinents > 3 {
		numContinents = 3
	}

	var centers []landCenter
	for i := 0; i < numContinents; i++ {
		centers = append(centers, landCenter{
			pos: [2]float64{
				rnd.Range(0.15*w, 0.85*w),
				rnd.Range(0.15*h, 0.85*h),
			},
			size: rnd.Range(0.5, 1.0),
		})
	}
	numIslands := int(m.cfg.IslandFrequency * 10)
	for i := 0; i < numIslands; i++ {
		centers = append(centers, landCenter{
			pos:  [2]float64{rnd.Range(0, w), rnd.Range(0, h)},
			size: rnd.Range(0.1, 0.3),
		})
	}

	mask := make([]float64, m.Mesh.NumTriangles())
	for t := range mask {
		c := m.Mesh.Centroids[t]
		nx, ny := c[0]/w, c[1]/h

		minDist := math.Inf(1)
		for _, lc := range centers {
			dx := (c[0] - lc.pos[0]) / (0.5 * w * lc.size)
			dy := (c[1] - lc.pos[1]) / (0.5 * h * lc.size)
			d := math.Sqrt(dx*dx + dy*dy)
			d *= 1 + 0.3*shapeNoise.Eval2(nx*2, ny*2)
			if d < minDist {
				minDist = d
			}
		}

		edge := 0.04*edgeNoise.Eval2(nx*4, ny*4) +
			0.02*edgeNoise.Eval2(nx*8, ny*8) +
			0.01*edgeNoise.Eval2(nx*16, ny*16)

		v := math.Pow(math.Max(0, 1-minDist+edge), 1.5)
		if v <= m.cfg.OceanRatio {
			v = 0
		}
		mask[t] = v
	}
	return mask
}
