// Package noise wraps opensimplex gradient noise with a fixed number of
// octaves and per-octave amplitudes derived from a persistence value.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise is a seeded, multi-octave 2D gradient noise source. It is purely
// functional: Eval2 with identical inputs returns identical outputs for the
// lifetime of the generator.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// New returns a new Noise with the given number of octaves, persistence,
// and seed.
func New(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.New(seed),
	}
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the noise value at the given point in [-1, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := 1 << octave
		fFreq := float64(frequency)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// Eval2n returns the noise value at the given point remapped to [0, 1].
func (n *Noise) Eval2n(x, y float64) float64 {
	return (n.Eval2(x, y) + 1) / 2
}

// PlusOneOctave returns a new Noise with one more octave.
func (n *Noise) PlusOneOctave() *Noise {
	return New(n.Octaves+1, n.Persistence, n.Seed)
}
