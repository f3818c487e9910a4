package various

import "math"

// Dist2 returns the euclidean distance between two points.
func Dist2(a, b [2]float64) float64 {
	xDiff := a[0] - b[0]
	yDiff := a[1] - b[1]
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

// Dot2 returns the dot product of two vectors.
func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Len2 returns the length of the given vector.
func Len2(a [2]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1])
}

// Normalize2 returns the normalized vector of the given vector.
func Normalize2(a [2]float64) [2]float64 {
	l := Len2(a)
	if l == 0 {
		return a
	}
	return [2]float64{a[0] / l, a[1] / l}
}

// Sub2 returns the difference of two vectors.
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// Add2 returns the sum of two vectors.
func Add2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// Scale2 returns the scaled vector of the given vector.
func Scale2(v [2]float64, s float64) [2]float64 {
	return [2]float64{v[0] * s, v[1] * s}
}
