package worldmapgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderModes(t *testing.T) {
	m := newTestMap(t, nil)
	md := m.RasterData()

	for _, mode := range []RenderMode{RenderBiomes, RenderElevation, RenderTemperature, RenderMoisture} {
		img, err := m.Render(md, RenderOptions{Mode: mode, HillShade: true, DrawRivers: true})
		require.NoError(t, err)
		bounds := img.Bounds()
		require.Equal(t, md.Width, bounds.Dx())
		require.Equal(t, md.Height, bounds.Dy())
	}
}

func TestExportPNG(t *testing.T) {
	m := newTestMap(t, nil)
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, m.ExportPNG(path, RenderOptions{DrawRivers: true}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestBiomePaletteComplete(t *testing.T) {
	for b := Biome(0); b < numBiomes; b++ {
		require.NotZero(t, biomePalette[b].A, "biome %s has no palette entry", b)
	}
}
