//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"slither/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a read-only session panel anchored to the right screen edge.
type HUD struct {
	sim        parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	visible    bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update toggles the panel with H and refreshes the cached snapshot while
// it is shown.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible || h.sim == nil {
		return
	}
	h.snapshot = h.sim.Parameters()
}

// Draw paints the panel onto screen when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	height := h.contentHeight()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	h.drawRows()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width-panelPadding), panelPadding)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) contentHeight() int {
	rows := 0
	for _, g := range h.snapshot.Groups {
		rows += 1 + len(g.Params)
	}
	if rows == 0 {
		rows = 1
	}
	return 2*panelPadding + rows*lineHeight
}

func (h *HUD) drawRows() {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight - 4
	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No session data", face, panelPadding, y, mutedColor)
		return
	}
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, strings.ToUpper(group.Name), face, panelPadding, y, headerColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding+8, y, labelColor)
			value := param.Value
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, valueColor(param))
			y += lineHeight
		}
	}
}

func valueColor(p core.Parameter) color.Color {
	if p.Type == core.ParamTypeBool && p.Value == "true" {
		return color.RGBA{R: 120, G: 230, B: 140, A: 255}
	}
	return labelColor
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 18
)
