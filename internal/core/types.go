package core

// Size describes the dimensions of a screen or simulation viewport.
type Size struct {
	W int
	H int
}

// Center returns the midpoint of the viewport.
func (s Size) Center() (float64, float64) {
	return float64(s.W) / 2, float64(s.H) / 2
}
