package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	worldmapgen "github.com/romxai/world-map-generator"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	configPath = flag.String("config", "", "path to a TOML config file (created with defaults if missing)")
	seed       = flag.String("seed", "", "world seed (overrides the config file)")
	width      = flag.Int("width", 0, "map width in pixels (overrides the config file)")
	height     = flag.Int("height", 0, "map height in pixels (overrides the config file)")
	out        = flag.String("out", "map.png", "output PNG path")
	mode       = flag.String("mode", "biomes", "render mode: biomes, elevation, temperature, moisture")
	shaded     = flag.Bool("shaded", true, "apply hill shading")
	rivers     = flag.Bool("rivers", true, "stroke river paths")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := worldmapgen.NewConfig()
	if *configPath != "" {
		loaded, err := worldmapgen.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *seed != "" {
		cfg.Seed = *seed
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	m, err := worldmapgen.NewMapFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	opts := worldmapgen.RenderOptions{
		HillShade:  *shaded,
		DrawRivers: *rivers,
	}
	switch *mode {
	case "elevation":
		opts.Mode = worldmapgen.RenderElevation
	case "temperature":
		opts.Mode = worldmapgen.RenderTemperature
	case "moisture":
		opts.Mode = worldmapgen.RenderMoisture
	default:
		opts.Mode = worldmapgen.RenderBiomes
	}
	if err := m.ExportPNG(*out, opts); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", *out)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
