package slither

import (
	"image/color"

	"slither/internal/geom"
)

// Renderer draws one frame of game state. Food and body positions are world
// coordinates; adding cameraOffset maps them onto the screen, which keeps the
// player's head at the screen center. The arena center arrives already in
// screen coordinates.
type Renderer interface {
	BeginFrame()
	DrawArenaBoundary(center geom.Vec, radius float64)
	DrawFood(f *Food, cameraOffset geom.Vec)
	DrawPlayerBody(segments []geom.Vec, radii []float64, colors []color.RGBA, cameraOffset geom.Vec)
	DrawScoreAndStatus(score int, alive bool)
	EndFrame()
}
