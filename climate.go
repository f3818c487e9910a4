package worldmapgen

import (
	"math"
	"sort"

	"github.com/Flokey82/go_gens/vectors"

	"github.com/romxai/world-map-generator/noise"
	"github.com/romxai/world-map-generator/various"
)

// assignTemperature computes the per-triangle temperature from latitude,
// altitude, and a small noise perturbation. Ocean temperatures are blended
// toward a fixed baseline so coastlines do not freeze over.
func (m *Map) assignTemperature() {
	h := float64(m.cfg.Height)
	seaLevel := m.cfg.SeaLevel
	tempNoise := noise.New(2, 0.5, noiseSeed(m.cfg.Seed, "temperature"))

	temperature := make([]float64, m.Mesh.NumTriangles())
	various.KickOffChunkWorkers(m.Mesh.NumTriangles(), func(start, end int) {
		for t := start; t < end; t++ {
			c := m.Mesh.Centroids[t]
			ny := c[1] / h
			latitude := math.Abs(ny-0.5) * 2

			temp := 1 - math.Pow(latitude, 1.2)
			temp -= 0.6 * math.Max(0, m.Elevation[t]-seaLevel)
			if m.Elevation[t] < seaLevel {
				temp = 0.8*temp + 0.2
			}
			temp += 0.05 * tempNoise.Eval2(c[0]/float64(m.cfg.Width)*8, ny*8)
			temperature[t] = clamp(temp, 0, 1)
		}
	})
	m.Temperature = temperature
}

// windVector returns the unit wind vector for an angle in degrees.
func windVector(angleDeg float64) vectors.Vec2 {
	rad := angleDeg * math.Pi / 180
	return vectors.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// windSortOrder returns all triangle indices sorted ascending by the
// projection of their centroid onto the wind vector, i.e. upwind first.
// Ties break on the triangle index so the sweep is stable.
func (m *Map) windSortOrder(wind vectors.Vec2) []int {
	order := make([]int, m.Mesh.NumTriangles())
	proj := make([]float64, m.Mesh.NumTriangles())
	for t := range order {
		order[t] = t
		proj[t] = dot2(m.Mesh.Centroids[t], [2]float64{wind.X, wind.Y})
	}
	sort.Slice(order, func(a, b int) bool {
		if proj[order[a]] == proj[order[b]] {
			return order[a] < order[b]
		}
		return proj[order[a]] < proj[order[b]]
	})
	return order
}

// assignRainfall propagates moisture across the mesh in wind order and
// computes orographic rainfall and rain shadow. The sweep is strictly
// sequential: each triangle pulls moisture from its upwind neighbors.
// Upwind is judged by the locally perturbed wind while the sweep follows
// the prevailing wind, so such a neighbor has usually, but not always,
// been visited already.
func (m *Map) assignRainfall() {
	numTriangles := m.Mesh.NumTriangles()
	seaLevel := m.cfg.SeaLevel
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)

	wind := windVector(m.cfg.WindAngleDeg)
	windNoise := noise.New(2, 0.5, noiseSeed(m.cfg.Seed, "wind"))

	moisture := make([]float64, numTriangles)
	rainfall := make([]float64, numTriangles)
	for t := 0; t < numTriangles; t++ {
		if m.Elevation[t] < seaLevel {
			moisture[t] = 1.0
		} else {
			moisture[t] = 0.1
		}
	}

	for _, t := range m.windSortOrder(wind) {
		// Boundary triangles and the deep ocean neither gain nor shed
		// moisture; the sea surface stays saturated.
		if m.Mesh.IsBoundary(t) || m.Elevation[t] < seaLevel-0.1 {
			continue
		}
		c := m.Mesh.Centroids[t]

		// Perturb the prevailing wind with low-frequency turbulence so
		// rain bands do not line up perfectly with the wind angle.
		local := vectors.Vec2{
			X: wind.X + 0.2*windNoise.Eval2(c[0]/w*2, c[1]/h*2),
			Y: wind.Y + 0.2*windNoise.Eval2(c[0]/w*2+100, c[1]/h*2+100),
		}
		if local.X == 0 && local.Y == 0 {
			local = wind
		}
		local = vectors.Normalize(local)
		localDir := [2]float64{local.X, local.Y}

		isLand := m.Elevation[t] >= seaLevel
		for _, u := range m.Mesh.Neighbors[t] {
			if u < 0 {
				continue
			}
			// u is upwind of t when the vector from u to t points along
			// the wind direction.
			if dot2(sub2(c, m.Mesh.Centroids[u]), localDir) <= 0 {
				continue
			}

			moisture[t] += 0.2 * moisture[u]

			if dh := m.Elevation[t] - m.Elevation[u]; dh > 0 {
				// Rising air sheds rain on the slope facing the wind.
				landFactor := 0.3
				if isLand {
					landFactor = 1.0
				}
				rainfall[t] += moisture[u] * m.cfg.Raininess * math.Min(1, 5*dh) * landFactor

				if dh > 0.1 {
					moisture[t] -= moisture[u] * math.Min(0.9, m.cfg.RainShadow*2*dh)
				}
			}
		}
		moisture[t] = clamp(moisture[t], 0, 1)

		if isLand {
			moisture[t] += rainfall[t] * m.cfg.Evaporation * 0.3
			moisture[t] = clamp(moisture[t], 0, 1)
		} else {
			moisture[t] = 1.0
		}
	}

	// Normalize rainfall so the wettest triangle sits at 1.
	_, maxRain := minMax(rainfall)
	if maxRain > 0 {
		for t := range rainfall {
			rainfall[t] /= maxRain
		}
	}
	m.Moisture = moisture
	m.Rainfall = rainfall
}
