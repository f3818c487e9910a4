// Package worldmapgen procedurally synthesizes a fantasy-world map from a
// small configuration record. The generator works on an irregular triangular
// mesh derived from a Delaunay triangulation of jittered points; elevation,
// climate, hydrology, and biomes are computed per mesh cell and projected
// onto a regular pixel grid at the very end.
package worldmapgen

import (
	"log"
	"time"
)

// Map holds the per-triangle state of a generated world. The fields are
// populated stage by stage; after generation they are immutable.
type Map struct {
	cfg  *Config
	Mesh *TriMesh

	Elevation    []float64 // Per-triangle elevation in [0, 1]
	MountainDist []float64 // Normalized distance to the nearest mountain peak
	Temperature  []float64 // Per-triangle temperature in [0, 1]
	Moisture     []float64 // Per-triangle moisture in [0, 1]
	Rainfall     []float64 // Per-triangle rainfall, normalized to max 1
	Downslope    []int     // Triangle each cell drains into, -1 for none
	Flow         []float64 // Accumulated water flow
	Biomes       []Biome   // Per-triangle biome class
	Rivers       []RiverPath

	TriangleIsWaterfall map[int]bool // River triangles with a steep drop
}

// Config returns the configuration the map was generated from.
func (m *Map) Config() *Config {
	return m.cfg
}

// NewMapFromConfig validates the config and runs the full generation
// pipeline, returning the per-triangle state. Use Generate if only the
// rasterized grids are needed.
func NewMapFromConfig(cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Map{cfg: cfg}
	if err := m.generateWorld(); err != nil {
		return nil, err
	}
	return m, nil
}

// Generate runs the full pipeline and rasterizes the result. Two calls with
// an equal config yield identical output; there is no shared state between
// calls, so concurrent generations are safe.
func Generate(cfg *Config) (*MapData, error) {
	m, err := NewMapFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	md := m.rasterize()
	log.Println("Done raster in ", time.Since(start).String())
	return md, nil
}

// RasterData projects the per-triangle fields onto fresh pixel grids. Each
// call rebuilds the spatial hash and returns an independent MapData.
func (m *Map) RasterData() *MapData {
	return m.rasterize()
}

func (m *Map) generateWorld() error {
	// Sample points and triangulate.
	start := time.Now()
	points := generatePoints(m.cfg)
	mesh, err := newTriMesh(points.points)
	if err != nil {
		return err
	}
	m.Mesh = mesh
	log.Println("Done mesh in ", time.Since(start).String())

	// Calculate elevation.
	start = time.Now()
	m.assignElevation()
	log.Println("Done elevation in ", time.Since(start).String())

	// Temperature, moisture, rainfall.
	start = time.Now()
	m.assignTemperature()
	m.assignRainfall()
	log.Println("Done climate in ", time.Since(start).String())

	// Hydrology: drainage and flow accumulation.
	start = time.Now()
	sinks := m.assignDownslope()
	m.resolveSinks(sinks)
	m.assignFlow()
	log.Println("Done hydrology in ", time.Since(start).String())

	// River paths and waterfalls.
	start = time.Now()
	m.extractRivers()
	m.assignWaterfalls()
	log.Println("Done rivers in ", time.Since(start).String())

	// Biome classification.
	start = time.Now()
	m.classifyBiomes()
	log.Println("Done biomes in ", time.Since(start).String())

	return nil
}
