package worldmapgen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// RenderMode selects which field the renderer paints.
type RenderMode int

const (
	RenderBiomes RenderMode = iota
	RenderElevation
	RenderTemperature
	RenderMoisture
)

// RenderOptions controls the optional render layers.
type RenderOptions struct {
	Mode       RenderMode
	HillShade  bool       // Shade slopes using the elevation gradient
	LightDir   [2]float64 // Light direction for hill shading; zero means northwest
	DrawRivers bool       // Stroke the river paths on top
}

// biomePalette is the render color per biome. The pipeline itself never
// touches colors; this is display only.
var biomePalette = [numBiomes]color.NRGBA{
	BiomeOcean:                  {R: 48, G: 92, B: 150, A: 255},
	BiomeDeepOcean:              {R: 30, G: 62, B: 110, A: 255},
	BiomeShallowOcean:           {R: 66, G: 116, B: 170, A: 255},
	BiomeShallowWater:           {R: 98, G: 148, B: 190, A: 255},
	BiomeBeach:                  {R: 215, G: 200, B: 160, A: 255},
	BiomeSnow:                   {R: 245, G: 245, B: 245, A: 255},
	BiomeTundra:                 {R: 160, G: 166, B: 140, A: 255},
	BiomeMountain:               {R: 136, G: 130, B: 124, A: 255},
	BiomeShrubland:              {R: 150, G: 158, B: 108, A: 255},
	BiomeTaiga:                  {R: 94, G: 128, B: 100, A: 255},
	BiomeTemperateDesert:        {R: 206, G: 190, B: 140, A: 255},
	BiomeDeciduousForest:        {R: 78, G: 128, B: 64, A: 255},
	BiomeRainForest:             {R: 48, G: 108, B: 58, A: 255},
	BiomeGrassland:              {R: 140, G: 170, B: 88, A: 255},
	BiomeSubtropicalDesert:      {R: 222, G: 186, B: 122, A: 255},
	BiomeTropicalSeasonalForest: {R: 90, G: 140, B: 56, A: 255},
	BiomeTropicalRainForest:     {R: 38, G: 98, B: 46, A: 255},
}

// elevationGradient builds a blue-to-red gradient for the elevation and
// temperature render modes.
func elevationGradient() (colorgrad.Gradient, error) {
	grad := colorgrad.NewGradient()
	grad.Colors(
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
	)
	return grad.Build()
}

// Render draws the rasterized map into an image. The base layer is chosen
// by the render mode; hill shading and the river overlay stack on top.
func (m *Map) Render(md *MapData, opts RenderOptions) (image.Image, error) {
	if md == nil {
		md = m.rasterize()
	}

	grad, err := elevationGradient()
	if err != nil {
		return nil, fmt.Errorf("worldmapgen: building gradient: %w", err)
	}

	dest := image.NewRGBA(image.Rect(0, 0, md.Width, md.Height))
	for y := 0; y < md.Height; y++ {
		for x := 0; x < md.Width; x++ {
			var col color.Color
			switch opts.Mode {
			case RenderElevation:
				col = grad.At(md.Elevation[y][x])
			case RenderTemperature:
				col = grad.At(md.Temperature[y][x])
			case RenderMoisture:
				col = grad.At(1 - md.Moisture[y][x])
			default:
				col = biomePalette[md.Biomes[y][x]]
			}
			if opts.HillShade && !md.Biomes[y][x].IsWater() {
				col = shade(col, hillShade(md, x, y, opts.LightDir))
			}
			dest.Set(x, y, col)
		}
	}

	if opts.DrawRivers {
		m.strokeRivers(dest)
	}
	return dest, nil
}

// hillShade returns a brightness factor for the pixel from the central
// difference of the elevation grid dotted with the light direction.
func hillShade(md *MapData, x, y int, lightDir [2]float64) float64 {
	if lightDir[0] == 0 && lightDir[1] == 0 {
		lightDir = [2]float64{-1, -1}
	}
	x0, x1 := clampInt(x-1, 0, md.Width-1), clampInt(x+1, 0, md.Width-1)
	y0, y1 := clampInt(y-1, 0, md.Height-1), clampInt(y+1, 0, md.Height-1)
	gx := (md.Elevation[y][x1] - md.Elevation[y][x0]) / 2
	gy := (md.Elevation[y1][x] - md.Elevation[y0][x]) / 2

	l := math.Sqrt(lightDir[0]*lightDir[0] + lightDir[1]*lightDir[1])
	slope := (gx*lightDir[0]/l + gy*lightDir[1]/l) * 8
	return clamp(1+slope, 0.6, 1.4)
}

// shade scales a color's brightness by the given factor.
func shade(col color.Color, factor float64) color.Color {
	r, g, b, _ := col.RGBA()
	scale := func(v uint32) uint8 {
		s := float64(v) / 0xffff * 255 * factor
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.NRGBA{R: scale(r), G: scale(g), B: scale(b), A: 255}
}

// strokeRivers draws every retained river path as a polyline through its
// triangle centroids. Each river is stroked at a single width derived from
// its source flow; the stroke does not widen toward the mouth.
func (m *Map) strokeRivers(dest *image.RGBA) {
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetStrokeColor(color.NRGBA{R: 40, G: 84, B: 140, A: 255})
	for _, river := range m.Rivers {
		if len(river.Triangles) == 0 {
			continue
		}
		gc.SetLineWidth(math.Max(1, math.Log(1+10*river.Flow)*m.cfg.RiverWidth))
		gc.BeginPath()
		start := m.Mesh.Centroids[river.Triangles[0]]
		gc.MoveTo(start[0], start[1])
		for _, t := range river.Triangles[1:] {
			c := m.Mesh.Centroids[t]
			gc.LineTo(c[0], c[1])
		}
		gc.Stroke()
	}
}

// ExportPNG renders the map and writes it to the given path.
func (m *Map) ExportPNG(path string, opts RenderOptions) error {
	img, err := m.Render(nil, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("worldmapgen: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("worldmapgen: encoding %s: %w", path, err)
	}
	return nil
}
