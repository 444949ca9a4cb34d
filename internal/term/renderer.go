package term

import (
	"fmt"
	"image/color"
	"math"

	"slither/internal/core"
	"slither/internal/geom"
	"slither/internal/render"
	"slither/internal/sims/slither"

	"github.com/gdamore/tcell/v2"
)

// World units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Glyph indices stored in the glyph grid.
const (
	glyphEmpty uint8 = iota
	glyphArena
	glyphFood
	glyphBigFood
	glyphGolden
	glyphBody
	glyphHead
)

var glyphs = [...]rune{
	glyphEmpty:   ' ',
	glyphArena:   '·',
	glyphFood:    'o',
	glyphBigFood: 'O',
	glyphGolden:  '$',
	glyphBody:    '#',
	glyphHead:    '@',
}

const maxPalette = 256

// Renderer rasterizes frames into a glyph grid and a color grid and flushes
// both to a tcell screen on EndFrame. Row 0 and the last row are reserved
// for the status and key hints.
type Renderer struct {
	screen tcell.Screen
	center geom.Vec

	glyphs *core.ByteGrid
	colors *core.ByteGrid

	palette []color.RGBA
	index   map[color.RGBA]uint8

	score int
	alive bool
}

// NewRenderer returns a renderer for a game laid out at size. The game's
// screen center maps to the middle cell of the terminal.
func NewRenderer(screen tcell.Screen, size core.Size) *Renderer {
	cx, cy := size.Center()
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		center: geom.V(cx, cy),
		glyphs: core.NewByteGrid(w, h),
		colors: core.NewByteGrid(w, h),
		index:  make(map[color.RGBA]uint8, maxPalette),
		alive:  true,
	}
}

// BeginFrame clears the grids and tracks terminal resizes.
func (r *Renderer) BeginFrame() {
	w, h := r.screen.Size()
	r.glyphs.Resize(w, h)
	r.colors.Resize(w, h)
	r.palette = r.palette[:0]
	clear(r.index)
	r.colorIndex(render.Background)
}

// DrawArenaBoundary plots the arena circle with enough samples to leave no
// gaps between cells.
func (r *Renderer) DrawArenaBoundary(center geom.Vec, radius float64) {
	if radius <= 0 {
		return
	}
	c := r.colorIndex(render.ArenaColor)
	steps := int(math.Ceil(2*math.Pi*radius/math.Min(CellWidth, CellHeight))) * 2
	for i := 0; i < steps; i++ {
		p := center.Add(geom.FromAngle(2*math.Pi*float64(i)/float64(steps), radius))
		r.plot(p, glyphArena, c)
	}
}

// DrawFood plots one pellet. Pellets are smaller than a cell.
func (r *Renderer) DrawFood(f *slither.Food, cam geom.Vec) {
	if f == nil {
		return
	}
	g := glyphFood
	switch f.Type {
	case slither.FoodBig:
		g = glyphBigFood
	case slither.FoodGolden:
		g = glyphGolden
	}
	r.plot(f.Position.Add(cam), g, r.colorIndex(f.Color))
}

// DrawPlayerBody plots the body tail first so the head stays on top.
func (r *Renderer) DrawPlayerBody(segments []geom.Vec, radii []float64, colors []color.RGBA, cam geom.Vec) {
	for i := len(segments) - 1; i >= 0; i-- {
		clr := render.TextColor
		if i < len(colors) {
			clr = colors[i]
		}
		g := glyphBody
		if i == 0 {
			g = glyphHead
		}
		r.plot(segments[i].Add(cam), g, r.colorIndex(clr))
	}
}

// DrawScoreAndStatus records the status line written by EndFrame.
func (r *Renderer) DrawScoreAndStatus(score int, alive bool) {
	r.score = score
	r.alive = alive
}

// EndFrame writes the grids and the status text to the screen and shows it.
func (r *Renderer) EndFrame() {
	bg := tcell.StyleDefault.Background(rgb(render.Background))
	for y := 0; y < r.glyphs.H; y++ {
		for x := 0; x < r.glyphs.W; x++ {
			g := r.glyphs.At(x, y)
			style := bg.Foreground(rgb(r.palette[r.colors.At(x, y)]))
			r.screen.SetContent(x, y, glyphs[g], nil, style)
		}
	}

	text := bg.Foreground(rgb(render.TextColor)).Bold(true)
	r.putString(1, 0, fmt.Sprintf("Score: %d", r.score), text)
	if !r.alive {
		over := bg.Foreground(rgb(render.GameOver)).Bold(true)
		msg := "GAME OVER"
		mid := r.glyphs.H / 2
		r.putString((r.glyphs.W-len(msg))/2, mid-1, msg, over)
		hint := "Press R to restart"
		r.putString((r.glyphs.W-len(hint))/2, mid+1, hint, text)
	}
	hints := bg.Foreground(rgb(render.Flatten(render.WithAlpha(render.TextColor, 150), render.Background)))
	r.putString(1, r.glyphs.H-1, "mouse steers  P pause  R reset  Esc quit", hints)
	r.screen.Show()
}

// Cell maps a screen-space point to its terminal cell.
func (r *Renderer) Cell(p geom.Vec) (x, y int) {
	x = int(math.Floor(float64(r.glyphs.W/2) + (p.X-r.center.X)/CellWidth))
	y = int(math.Floor(float64(r.glyphs.H/2) + (p.Y-r.center.Y)/CellHeight))
	return x, y
}

func (r *Renderer) plot(p geom.Vec, g, c uint8) {
	x, y := r.Cell(p)
	r.glyphs.Set(x, y, g)
	r.colors.Set(x, y, c)
}

// colorIndex returns the palette slot for c, flattened over the background.
// Once the palette is full every new color shares the last slot.
func (r *Renderer) colorIndex(c color.RGBA) uint8 {
	c = render.Flatten(c, render.Background)
	if i, ok := r.index[c]; ok {
		return i
	}
	if len(r.palette) == maxPalette {
		return maxPalette - 1
	}
	i := uint8(len(r.palette))
	r.palette = append(r.palette, c)
	r.index[c] = i
	return i
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.glyphs.W {
			return
		}
		if x >= 0 && y >= 0 && y < r.glyphs.H {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
