package worldmapgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func scenarioConfig() *Config {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 64
	cfg.Height = 48
	cfg.SeaLevel = 0.4
	return cfg
}

func countWater(md *MapData) int {
	var water int
	for y := 0; y < md.Height; y++ {
		for x := 0; x < md.Width; x++ {
			if md.Biomes[y][x].IsWater() {
				water++
			}
		}
	}
	return water
}

func TestScenarioBasicGeneration(t *testing.T) {
	md, err := Generate(scenarioConfig())
	require.NoError(t, err)

	ratio := float64(countWater(md)) / float64(md.Width*md.Height)
	require.GreaterOrEqual(t, ratio, 0.1)
	require.LessOrEqual(t, ratio, 0.9)
}

func TestScenarioDeterminism(t *testing.T) {
	a, err := Generate(scenarioConfig())
	require.NoError(t, err)
	b, err := Generate(scenarioConfig())
	require.NoError(t, err)

	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.Elevation, b.Elevation)
	require.Equal(t, a.Moisture, b.Moisture)
	require.Equal(t, a.Temperature, b.Temperature)
	require.Equal(t, a.Biomes, b.Biomes)
	require.Equal(t, a.Rivers, b.Rivers)
}

func TestScenarioHigherSeaLevelMoreWater(t *testing.T) {
	low, err := Generate(scenarioConfig())
	require.NoError(t, err)

	cfg := scenarioConfig()
	cfg.SeaLevel = 0.7
	high, err := Generate(cfg)
	require.NoError(t, err)

	require.Greater(t, countWater(high), countWater(low))
}

func TestScenarioRiversDisabled(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Rivers = 0
	md, err := Generate(cfg)
	require.NoError(t, err)

	for y := 0; y < md.Height; y++ {
		for x := 0; x < md.Width; x++ {
			require.Zero(t, md.Rivers[y][x])
		}
	}
}

func TestScenarioMountainHeightRaisesTerrain(t *testing.T) {
	// A larger map guarantees mountain peaks exist for the contribution
	// to act on.
	lowCfg := scenarioConfig()
	lowCfg.Width = 256
	lowCfg.Height = 256
	lowCfg.MountainFrequency = 1.0
	lowCfg.MountainHeight = 0.1
	low, err := Generate(lowCfg)
	require.NoError(t, err)

	highCfg := scenarioConfig()
	highCfg.Width = 256
	highCfg.Height = 256
	highCfg.MountainFrequency = 1.0
	highCfg.MountainHeight = 1.0
	high, err := Generate(highCfg)
	require.NoError(t, err)

	mean := func(md *MapData) float64 {
		var sum float64
		for y := 0; y < md.Height; y++ {
			for x := 0; x < md.Width; x++ {
				sum += md.Elevation[y][x]
			}
		}
		return sum / float64(md.Width*md.Height)
	}
	require.Greater(t, mean(high), mean(low))
}

func TestScenarioWindDirectionMatters(t *testing.T) {
	eastCfg := scenarioConfig()
	eastCfg.WindAngleDeg = 0
	east, err := Generate(eastCfg)
	require.NoError(t, err)

	westCfg := scenarioConfig()
	westCfg.WindAngleDeg = 180
	west, err := Generate(westCfg)
	require.NoError(t, err)

	var land, differ int
	for y := 0; y < east.Height; y++ {
		for x := 0; x < east.Width; x++ {
			if east.Biomes[y][x].IsWater() {
				continue
			}
			land++
			if east.Moisture[y][x] != west.Moisture[y][x] {
				differ++
			}
		}
	}
	require.Greater(t, land, 0)
	require.Greater(t, differ, land/2, "moisture should differ on most land pixels")
}

func TestSeedIsolation(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = "alpha"
	cfg.Width = 256
	cfg.Height = 256
	a, err := Generate(cfg)
	require.NoError(t, err)

	cfg2 := NewConfig()
	cfg2.Seed = "alpha2"
	cfg2.Width = 256
	cfg2.Height = 256
	b, err := Generate(cfg2)
	require.NoError(t, err)

	var differ int
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Biomes[y][x] != b.Biomes[y][x] {
				differ++
			}
		}
	}
	require.Greater(t, differ, 0, "changing the seed must change the biome grid")
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = ""
	_, err := Generate(cfg)
	require.ErrorIs(t, err, ErrEmptySeed)

	cfg = NewConfig()
	cfg.Width = 0
	_, err = Generate(cfg)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	cfg = NewConfig()
	cfg.SeaLevel = 0.9
	_, err = Generate(cfg)
	require.ErrorIs(t, err, ErrConfigOutOfRange)

	cfg = NewConfig()
	cfg.WindAngleDeg = 360
	_, err = Generate(cfg)
	require.ErrorIs(t, err, ErrConfigOutOfRange)
}

func TestNewMapFromConfigValidates(t *testing.T) {
	_, err := NewMapFromConfig(&Config{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEmptySeed))
}
