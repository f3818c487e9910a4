package worldmapgen

import (
	"github.com/Flokey82/go_gens/utils"

	"github.com/romxai/world-map-generator/various"
)

var minMax = utils.MinMax[float64]

var (
	initRegionSlice = various.InitRegionSlice
	initFloatSlice  = various.InitFloatSlice
	clamp           = various.Clamp
	dist2           = various.Dist2
	dot2            = various.Dot2
	sub2            = various.Sub2
)
