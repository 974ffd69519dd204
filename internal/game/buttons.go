package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/number-line/internal/config"
)

// button is a clickable control in the bottom-right cluster.
type button struct {
	label   string
	width   int
	accent  bool
	enabled func() bool
	action  func()

	// layout, refreshed every tick
	x, y int

	hovered bool
	pressed bool
}

func (b *button) contains(px, py int) bool {
	return px >= b.x && px <= b.x+b.width && py >= b.y && py <= b.y+config.ButtonHeight
}

func (b *button) isEnabled() bool { return b.enabled == nil || b.enabled() }

func (g *Game) newButtons() []*button {
	e := g.engine
	return []*button{
		{label: "-", width: config.IconButtonW, enabled: e.CanZoomOut, action: e.ZoomOut},
		{label: "Snap to Zero", width: config.SnapButtonW, accent: true, action: e.SnapToZero},
		{label: "+", width: config.IconButtonW, enabled: e.CanZoomIn, action: e.ZoomIn},
		{label: "Go to", width: config.GotoButtonW, action: g.gotoValue},
	}
}

// layoutButtons right-aligns the cluster above the bottom margin.
func (g *Game) layoutButtons() {
	x := g.width - config.ButtonMargin
	y := g.height - config.ButtonMargin - config.ButtonHeight
	for i := len(g.buttons) - 1; i >= 0; i-- {
		b := g.buttons[i]
		x -= b.width
		b.x, b.y = x, y
		x -= config.ButtonGap
	}
}

func (g *Game) buttonAt(px, py int) *button {
	for _, b := range g.buttons {
		if b.contains(px, py) {
			return b
		}
	}
	return nil
}

// updateButtons handles mouse clicks and touch taps. A touch that lands on a
// button is kept away from the gesture engine until it lifts.
func (g *Game) updateButtons() {
	g.layoutButtons()

	mouseX, mouseY := ebiten.CursorPosition()
	for _, b := range g.buttons {
		b.hovered = b.contains(mouseX, mouseY)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b := g.buttonAt(mouseX, mouseY); b != nil && b.isEnabled() {
			b.pressed = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		for _, b := range g.buttons {
			if b.pressed && b.hovered && b.isEnabled() {
				b.action()
			}
			b.pressed = false
		}
	}

	g.justTouched = inpututil.AppendJustPressedTouchIDs(g.justTouched[:0])
	for _, id := range g.justTouched {
		tx, ty := ebiten.TouchPosition(id)
		if b := g.buttonAt(tx, ty); b != nil {
			g.buttonTouches[id] = true
			if b.isEnabled() {
				b.pressed = true
			}
		}
	}
	for id := range g.buttonTouches {
		if !inpututil.IsTouchJustReleased(id) {
			continue
		}
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		for _, b := range g.buttons {
			if b.pressed && b.contains(tx, ty) && b.isEnabled() {
				b.action()
			}
			b.pressed = false
		}
		delete(g.buttonTouches, id)
	}
}

var (
	buttonFill      = color.RGBA{R: 13, G: 20, B: 36, A: 220}
	buttonHoverFill = color.RGBA{R: 3, G: 21, B: 24, A: 26}
	accentFill      = color.RGBA{R: 6, G: 182, B: 212, A: 255}
	buttonBorder    = color.RGBA{R: 71, G: 85, B: 105, A: 255}
	buttonText      = color.RGBA{R: 203, G: 213, B: 225, A: 255}
)

func (g *Game) drawButtons(screen *ebiten.Image) {
	for _, b := range g.buttons {
		g.drawButton(screen, b)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	alpha := 1.0
	if !b.isEnabled() {
		alpha = 0.3
	}

	// Button background
	var bg, border, fg color.RGBA
	switch {
	case b.accent && (b.hovered || b.pressed):
		bg, border, fg = accentFill, accentFill, color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case b.accent:
		bg, border, fg = buttonFill, accentFill, cyan
	case b.isEnabled() && (b.hovered || b.pressed):
		bg, border, fg = buttonHoverFill, cyan, cyan
	default:
		bg, border, fg = buttonFill, buttonBorder, buttonText
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.width), float32(config.ButtonHeight), withAlpha(bg, alpha), false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.width), float32(config.ButtonHeight), 2, withAlpha(border, alpha), false)

	// Button text
	cx := float64(b.x) + float64(b.width)/2
	cy := float64(b.y) + float64(config.ButtonHeight)/2
	g.drawTextCentered(screen, b.label, g.fonts.label, cx, cy, withAlpha(fg, alpha))
}
