package worldmapgen

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds all options recognized by the map generator. The pipeline
// stages read its fields as they run; the struct is never mutated by the
// pipeline.
type Config struct {
	Seed   string `toml:"seed"`   // World seed; every random stream derives from it
	Width  int    `toml:"width"`  // Output width in pixels
	Height int    `toml:"height"` // Output height in pixels

	// Sea and continent shape.
	SeaLevel        float64 `toml:"sea_level"`        // Elevation below which a cell is water [0.1, 0.7]
	OceanRatio      float64 `toml:"ocean_ratio"`      // Continent mask cutoff; larger means more ocean [0, 1]
	IslandFrequency float64 `toml:"island_frequency"` // Number of islands = floor(IslandFrequency * 10)

	// Terrain.
	BiomeDensity      float64 `toml:"biome_density"`      // Point density multiplier (> 0)
	MountainFrequency float64 `toml:"mountain_frequency"` // Probability scale for mountain peaks [0, 1]
	MountainHeight    float64 `toml:"mountain_height"`    // Mountain contribution to elevation [0.1, 1]
	Jaggedness        float64 `toml:"jaggedness"`         // Anisotropy of mountain contours [0, 1]
	PointDeviation    float64 `toml:"point_deviation"`    // Grid jitter as a fraction of cell size [0, 0.5]

	// Climate.
	WindAngleDeg float64 `toml:"wind_angle_deg"` // Prevailing wind direction in degrees [0, 360)
	Raininess    float64 `toml:"raininess"`      // Orographic rainfall scale [0, 2]
	RainShadow   float64 `toml:"rain_shadow"`    // Downwind moisture depletion scale [0, 2]
	Evaporation  float64 `toml:"evaporation"`    // Moisture recovered from rainfall [0, 2]

	// Rivers.
	Rivers       float64 `toml:"rivers"`         // Global flow scale; 0 disables rivers
	RiverMinFlow float64 `toml:"river_min_flow"` // Minimum source flow for a river path
	RiverWidth   float64 `toml:"river_width"`    // Painted river width scale
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Seed:              "fantasy",
		Width:             512,
		Height:            512,
		SeaLevel:          0.4,
		OceanRatio:        0.3,
		IslandFrequency:   0.5,
		BiomeDensity:      1.0,
		MountainFrequency: 0.5,
		MountainHeight:    0.8,
		Jaggedness:        0.5,
		PointDeviation:    0.3,
		WindAngleDeg:      225,
		Raininess:         1.0,
		RainShadow:        0.5,
		Evaporation:       0.5,
		Rivers:            1.0,
		RiverMinFlow:      0.1,
		RiverWidth:        1.0,
	}
}

// LoadConfig reads a TOML config file from the given path. If the file does
// not exist, it is created with default values so the user has something to
// edit, and the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := NewConfig()
		out, err := toml.Marshal(*cfg)
		if err != nil {
			return nil, fmt.Errorf("worldmapgen: encoding default config: %w", err)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return nil, fmt.Errorf("worldmapgen: writing default config: %w", err)
		}
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("worldmapgen: reading config: %w", err)
	}
	cfg := NewConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("worldmapgen: decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field against its documented range. It returns a
// wrapped configuration error naming the offending field, or nil.
func (cfg *Config) Validate() error {
	if cfg.Seed == "" {
		return ErrEmptySeed
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	checks := []struct {
		name     string
		val      float64
		min, max float64
	}{
		{"sea_level", cfg.SeaLevel, 0.1, 0.7},
		{"ocean_ratio", cfg.OceanRatio, 0, 1},
		{"mountain_frequency", cfg.MountainFrequency, 0, 1},
		{"mountain_height", cfg.MountainHeight, 0.1, 1},
		{"jaggedness", cfg.Jaggedness, 0, 1},
		{"point_deviation", cfg.PointDeviation, 0, 0.5},
		{"raininess", cfg.Raininess, 0, 2},
		{"rain_shadow", cfg.RainShadow, 0, 2},
		{"evaporation", cfg.Evaporation, 0, 2},
	}
	for _, c := range checks {
		if c.val < c.min || c.val > c.max {
			return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrConfigOutOfRange, c.name, c.val, c.min, c.max)
		}
	}
	if cfg.BiomeDensity <= 0 {
		return fmt.Errorf("%w: biome_density=%v must be positive", ErrConfigOutOfRange, cfg.BiomeDensity)
	}
	if cfg.IslandFrequency < 0 {
		return fmt.Errorf("%w: island_frequency=%v must not be negative", ErrConfigOutOfRange, cfg.IslandFrequency)
	}
	if cfg.WindAngleDeg < 0 || cfg.WindAngleDeg >= 360 {
		return fmt.Errorf("%w: wind_angle_deg=%v outside [0, 360)", ErrConfigOutOfRange, cfg.WindAngleDeg)
	}
	if cfg.Rivers < 0 || cfg.RiverMinFlow < 0 || cfg.RiverWidth < 0 {
		return fmt.Errorf("%w: river options must not be negative", ErrConfigOutOfRange)
	}
	return nil
}
