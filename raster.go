package worldmapgen

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/romxai/world-map-generator/various"
)

// MapData is the rasterized output of the pipeline: dense row-major grids
// of every field, ready for rendering.
type MapData struct {
	Width  int
	Height int

	Elevation   [][]float64 // [y][x] in [0, 1]
	Moisture    [][]float64 // [y][x] in [0, 1]
	Temperature [][]float64 // [y][x] in [0, 1]
	Biomes      [][]Biome   // [y][x]
	Rivers      [][]float64 // [y][x], 0 where no river is painted
}

// Hash returns a digest over all grids. Two MapData values with the same
// hash are identical for all practical purposes; tests and HTTP caching
// rely on this.
func (md *MapData) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		d.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(md.Width))
	d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(md.Height))
	d.Write(buf[:])
	for y := 0; y < md.Height; y++ {
		for x := 0; x < md.Width; x++ {
			writeFloat(md.Elevation[y][x])
			writeFloat(md.Moisture[y][x])
			writeFloat(md.Temperature[y][x])
			writeFloat(md.Rivers[y][x])
			binary.LittleEndian.PutUint64(buf[:], uint64(md.Biomes[y][x]))
			d.Write(buf[:])
		}
	}
	return d.Sum64()
}

// hashCellSize is the bucket size of the rasterization spatial hash in
// pixels. The mean triangle is far smaller than a bucket at reasonable
// densities, so a pixel's own bucket plus the 8 around it almost always
// contains the nearest centroid.
const hashCellSize = 20

// spatialHash buckets triangle centroids on a coarse pixel grid for
// nearest-centroid lookups. It is rebuilt per rasterization call and
// discarded afterwards.
type spatialHash struct {
	cols, rows int
	buckets    [][]int
	centroids  [][2]float64
}

func newSpatialHash(mesh *TriMesh, width, height int) *spatialHash {
	sh := &spatialHash{
		cols:      width/hashCellSize + 1,
		rows:      height/hashCellSize + 1,
		centroids: mesh.Centroids,
	}
	sh.buckets = make([][]int, sh.cols*sh.rows)
	for t, c := range mesh.Centroids {
		cx := int(c[0]) / hashCellSize
		cy := int(c[1]) / hashCellSize
		cx = clampInt(cx, 0, sh.cols-1)
		cy = clampInt(cy, 0, sh.rows-1)
		i := cy*sh.cols + cx
		sh.buckets[i] = append(sh.buckets[i], t)
	}
	return sh
}

// nearest returns the triangle whose centroid is closest to (x, y). The
// search starts with the pixel's bucket ring and widens until a candidate
// is found; with a populated mesh the first ring almost always suffices.
func (sh *spatialHash) nearest(x, y float64) int {
	cx := clampInt(int(x)/hashCellSize, 0, sh.cols-1)
	cy := clampInt(int(y)/hashCellSize, 0, sh.rows-1)

	best := -1
	bestDist := math.Inf(1)
	for radius := 1; best == -1 && radius < sh.cols+sh.rows; radius++ {
		for by := cy - radius; by <= cy+radius; by++ {
			if by < 0 || by >= sh.rows {
				continue
			}
			for bx := cx - radius; bx <= cx+radius; bx++ {
				if bx < 0 || bx >= sh.cols {
					continue
				}
				for _, t := range sh.buckets[by*sh.cols+bx] {
					d := dist2(sh.centroids[t], [2]float64{x, y})
					if d < bestDist || (d == bestDist && t < best) {
						bestDist = d
						best = t
					}
				}
			}
		}
	}
	return best
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// rasterize projects the per-triangle fields onto the output pixel grids
// and paints the rivers on top.
func (m *Map) rasterize() *MapData {
	width, height := m.cfg.Width, m.cfg.Height
	md := &MapData{
		Width:       width,
		Height:      height,
		Elevation:   makeGrid(width, height),
		Moisture:    makeGrid(width, height),
		Temperature: makeGrid(width, height),
		Rivers:      makeGrid(width, height),
	}
	md.Biomes = make([][]Biome, height)
	for y := range md.Biomes {
		md.Biomes[y] = make([]Biome, width)
	}

	sh := newSpatialHash(m.Mesh, width, height)

	// Every pixel is independent, so rows are processed in chunks. The
	// nearest-triangle contract keeps the result identical to a
	// sequential pass.
	various.KickOffChunkWorkers(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				t := sh.nearest(float64(x)+0.5, float64(y)+0.5)
				md.Elevation[y][x] = m.Elevation[t]
				md.Moisture[y][x] = m.Moisture[t]
				md.Temperature[y][x] = m.Temperature[t]
				md.Biomes[y][x] = m.Biomes[t]
			}
		}
	})

	m.paintRivers(md)
	return md
}

// paintRivers stamps a soft disk for every triangle along every retained
// river path. Width grows along the path so rivers widen toward the sea.
func (m *Map) paintRivers(md *MapData) {
	for _, river := range m.Rivers {
		n := float64(len(river.Triangles))
		for i, t := range river.Triangles {
			rel := float64(i) / n
			width := math.Log(1+10*river.Flow*(0.2+0.8*rel)) * m.cfg.RiverWidth * 5
			if width < 1 {
				width = 1
			}
			stampRiverDisk(md, m.Mesh.Centroids[t], width)
		}
	}
}

func stampRiverDisk(md *MapData, center [2]float64, radius float64) {
	minX := clampInt(int(center[0]-radius), 0, md.Width-1)
	maxX := clampInt(int(center[0]+radius+1), 0, md.Width-1)
	minY := clampInt(int(center[1]-radius), 0, md.Height-1)
	maxY := clampInt(int(center[1]+radius+1), 0, md.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := dist2([2]float64{float64(x) + 0.5, float64(y) + 0.5}, center)
			if d >= radius {
				continue
			}
			v := math.Pow(1-d/radius, 0.8) * radius
			if v > md.Rivers[y][x] {
				md.Rivers[y][x] = v
			}
		}
	}
}

func makeGrid(width, height int) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
	}
	return grid
}
