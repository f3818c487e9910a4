package worldmapgen

import "errors"

// Configuration errors are detected up front by Config.Validate and surface
// before any stage runs. Internal errors indicate an invariant violation
// during generation; the caller may retry with a different seed.
var (
	ErrEmptySeed         = errors.New("worldmapgen: seed must not be empty")
	ErrInvalidDimensions = errors.New("worldmapgen: invalid map dimensions")
	ErrConfigOutOfRange  = errors.New("worldmapgen: config value out of range")
	ErrDegenerateMesh    = errors.New("worldmapgen: triangulation produced no triangles")
)
