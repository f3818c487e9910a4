package worldmapgen

import "github.com/romxai/world-map-generator/various"

// Biome is a discrete climate-plus-terrain class assigned to each triangle
// from its elevation, moisture, and temperature.
type Biome int

const (
	BiomeOcean Biome = iota
	BiomeDeepOcean
	BiomeShallowOcean
	BiomeShallowWater
	BiomeBeach
	BiomeSnow
	BiomeTundra
	BiomeMountain
	BiomeShrubland
	BiomeTaiga
	BiomeTemperateDesert
	BiomeDeciduousForest
	BiomeRainForest
	BiomeGrassland
	BiomeSubtropicalDesert
	BiomeTropicalSeasonalForest
	BiomeTropicalRainForest

	numBiomes
)

var biomeNames = [numBiomes]string{
	BiomeOcean:                  "ocean",
	BiomeDeepOcean:              "deep_ocean",
	BiomeShallowOcean:           "shallow_ocean",
	BiomeShallowWater:           "shallow_water",
	BiomeBeach:                  "beach",
	BiomeSnow:                   "snow",
	BiomeTundra:                 "tundra",
	BiomeMountain:               "mountain",
	BiomeShrubland:              "shrubland",
	BiomeTaiga:                  "taiga",
	BiomeTemperateDesert:        "temperate_desert",
	BiomeDeciduousForest:        "deciduous_forest",
	BiomeRainForest:             "rain_forest",
	BiomeGrassland:              "grassland",
	BiomeSubtropicalDesert:      "subtropical_desert",
	BiomeTropicalSeasonalForest: "tropical_seasonal_forest",
	BiomeTropicalRainForest:     "tropical_rain_forest",
}

func (b Biome) String() string {
	if b < 0 || b >= numBiomes {
		return "unknown"
	}
	return biomeNames[b]
}

// IsWater reports whether the biome is a water class.
func (b Biome) IsWater() bool {
	switch b {
	case BiomeOcean, BiomeDeepOcean, BiomeShallowOcean, BiomeShallowWater:
		return true
	}
	return false
}

// classifyBiomes assigns a biome to every triangle. The classification of a
// triangle depends only on its own fields and its neighbors' elevations, so
// the loop runs chunked across workers.
func (m *Map) classifyBiomes() {
	biomes := make([]Biome, m.Mesh.NumTriangles())
	various.KickOffChunkWorkers(m.Mesh.NumTriangles(), func(start, end int) {
		for t := start; t < end; t++ {
			biomes[t] = m.classifyTriangle(t)
		}
	})
	m.Biomes = biomes
}

func (m *Map) classifyTriangle(t int) Biome {
	if m.Mesh.IsBoundary(t) {
		return BiomeOcean
	}

	e := m.Elevation[t]
	moist := m.Moisture[t]
	temp := m.Temperature[t]
	sea := m.cfg.SeaLevel

	if e < sea {
		switch d := (sea - e) / sea; {
		case d < 0.1:
			return BiomeShallowWater
		case d < 0.3:
			return BiomeShallowOcean
		case d < 0.7:
			return BiomeOcean
		default:
			return BiomeDeepOcean
		}
	}

	h := e - sea

	// Coastal sand wins over every land class.
	if h < 0.05 {
		for _, nb := range m.Mesh.Neighbors[t] {
			if nb >= 0 && m.Elevation[nb] < sea {
				return BiomeBeach
			}
		}
	}

	if h > 0.7 {
		switch {
		case temp < 0.2:
			return BiomeSnow
		case temp < 0.4:
			return BiomeTundra
		default:
			return BiomeMountain
		}
	}

	if h > 0.4 {
		switch {
		case temp < 0.2:
			return BiomeTundra
		case temp < 0.5:
			if moist < 0.4 {
				return BiomeShrubland
			}
			return BiomeTaiga
		default:
			switch {
			case moist < 0.4:
				return BiomeTemperateDesert
			case moist < 0.7:
				return BiomeDeciduousForest
			default:
				return BiomeRainForest
			}
		}
	}

	// Lowland.
	switch {
	case temp < 0.2:
		if moist < 0.4 {
			return BiomeTundra
		}
		return BiomeTaiga
	case temp < 0.6:
		switch {
		case moist < 0.3:
			return BiomeTemperateDesert
		case moist < 0.5:
			return BiomeGrassland
		case moist < 0.7:
			return BiomeDeciduousForest
		default:
			return BiomeRainForest
		}
	default:
		switch {
		case moist < 0.3:
			return BiomeSubtropicalDesert
		case moist < 0.5:
			return BiomeGrassland
		case moist < 0.7:
			return BiomeTropicalSeasonalForest
		default:
			return BiomeTropicalRainForest
		}
	}
}
