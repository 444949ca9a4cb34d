package render

import "image/color"

// Scene colors shared by the GUI and terminal frontends.
var (
	Background = color.RGBA{R: 26, G: 26, B: 46, A: 255}
	ArenaColor = color.RGBA{R: 15, G: 52, B: 96, A: 255}
	TextColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GameOver   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
)

// WithAlpha returns c with its alpha replaced, clamped to [0, 255].
func WithAlpha(c color.RGBA, alpha int) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 255 {
		alpha = 255
	}
	c.A = uint8(alpha)
	return c
}

// ColorScale converts c into the per-channel factors expected by
// ebiten.ColorM.Scale.
func ColorScale(c color.RGBA) (r, g, b, a float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0, float64(c.A) / 255.0
}

// Flatten blends c over bg by its alpha and returns an opaque color. The
// terminal frontend cannot draw translucency.
func Flatten(c, bg color.RGBA) color.RGBA {
	a := float64(c.A) / 255.0
	mix := func(fg, back uint8) uint8 {
		return uint8(float64(fg)*a + float64(back)*(1-a) + 0.5)
	}
	return color.RGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 255}
}

// ArenaRings returns the radii and alphas of the fading arena edge: a ring
// every 2 units over the outer 10, brightest at the boundary.
func ArenaRings(radius float64) (radii []float64, alphas []int) {
	for step := 0; step <= 5; step++ {
		inset := float64(step * 2)
		radii = append(radii, radius-inset)
		alphas = append(alphas, 255-int(inset)*20)
	}
	return radii, alphas
}
