package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/number-line/internal/config"
)

const (
	readoutFontSize = 40
	titleFontSize   = 20
	labelGap        = 10
	edgeStrips      = 24
	hintText        = "← Drag to pan • Scroll to zoom →"
)

type fonts struct {
	label   *text.GoTextFace
	small   *text.GoTextFace
	title   *text.GoTextFace
	readout *text.GoTextFace
}

func newFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := func(size float64) *text.GoTextFace { return &text.GoTextFace{Source: src, Size: size} }
	return &fonts{
		label:   face(config.LabelFontSize),
		small:   face(config.SmallFontSize),
		title:   face(titleFontSize),
		readout: face(readoutFontSize),
	}, nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	// Number line
	g.drawAxis(screen)
	g.drawTicks(screen)
	g.drawEdgeOverlays(screen)
	g.drawCrosshair(screen)

	// Chrome
	g.drawAppBar(screen)
	g.drawZoomInfo(screen)
	g.drawHint(screen)
	g.drawButtons(screen)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-18)
	}
}

// drawBackground draws a vertical gradient, rendered once per window size.
func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	if g.background == nil {
		g.background = ebiten.NewImage(g.width, g.height)
		for y := 0; y < g.height; y++ {
			ratio := float64(y) / float64(g.height)
			vector.DrawFilledRect(g.background, 0, float32(y), float32(g.width), 1, lerpColor(backgroundTop, backgroundBottom, ratio), false)
		}
	}
	screen.DrawImage(g.background, nil)
}

func (g *Game) axisY() float64 {
	_, ch := g.ContainerSize()
	return float64(g.containerTop()) + ch*config.AxisRatio
}

func (g *Game) drawAxis(screen *ebiten.Image) {
	y := float32(g.axisY())
	vector.StrokeLine(screen, 0, y, float32(g.width), y, 2, axisColor, false)
}

func (g *Game) drawTicks(screen *ebiten.Image) {
	axisY := g.axisY()
	for _, t := range g.engine.Ticks() {
		if t.Opacity <= 0 {
			continue
		}
		x := float32(t.X)
		y0, y1 := float32(axisY), float32(axisY+t.Height)

		c := tickColor
		if t.Center {
			c = cyan
			// glow
			vector.StrokeLine(screen, x, y0, x, y1, 8, withAlpha(cyan, 0.25*t.Opacity), false)
		}
		width := float32(1)
		if t.Major {
			width = 2
		}
		vector.StrokeLine(screen, x, y0, x, y1, width, withAlpha(c, t.Opacity), false)

		if !t.Label {
			continue
		}
		face, lc := g.fonts.label, labelColor
		if t.SmallLabel {
			face = g.fonts.small
		}
		if t.Center {
			lc = cyan
		}
		g.drawTextTop(screen, t.Text, face, t.X, axisY+t.Height+labelGap, withAlpha(lc, t.Opacity))
	}
}

// drawEdgeOverlays darkens both ends of the line with stepped strips.
func (g *Game) drawEdgeOverlays(screen *ebiten.Image) {
	top := float32(g.containerTop())
	_, ch := g.ContainerSize()
	strip := float32(config.EdgeOverlayWidth) / edgeStrips
	for i := 0; i < edgeStrips; i++ {
		alpha := 0.8 * (1 - float64(i)/edgeStrips)
		c := withAlpha(backgroundTop, alpha)
		off := float32(i) * strip
		vector.DrawFilledRect(screen, off, top, strip, float32(ch), c, false)
		vector.DrawFilledRect(screen, float32(g.width)-off-strip, top, strip, float32(ch), c, false)
	}
}

func (g *Game) drawCrosshair(screen *ebiten.Image) {
	top := float32(g.containerTop())
	bottom := float32(g.height)
	x := float32(g.crosshair.x)
	vector.StrokeLine(screen, x, top, x, bottom, 2, withAlpha(cyan, 0.2), false)
	vector.DrawFilledCircle(screen, x, float32(g.axisY()), 4, cyan, false)
}

func (g *Game) drawAppBar(screen *ebiten.Image) {
	h := float32(config.AppBarHeight)
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), h, backgroundTop, false)
	vector.StrokeLine(screen, 0, h, float32(g.width), h, 1, axisColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(24, float64(config.AppBarHeight)/2)
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(titleColor)
	text.Draw(screen, "Number Line", g.fonts.title, op)

	readout := titleColor
	if g.engine.CenterIsMajor() {
		readout = cyan
	}
	g.drawTextCentered(screen, g.engine.CenterText(), g.fonts.readout, float64(g.width)/2, float64(config.AppBarHeight)/2, readout)
}

func (g *Game) drawZoomInfo(screen *ebiten.Image) {
	alpha := 0.6
	if g.elapsed-g.zoomShownAt < config.ZoomInfoDelay {
		alpha = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(24, float64(g.containerTop())+16)
	op.ColorScale.ScaleWithColor(withAlpha(labelColor, alpha))
	text.Draw(screen, "Zoom: "+g.engine.Level().Name, g.fonts.label, op)
}

// drawHint shows the usage hint, fading out after HintDelay.
func (g *Game) drawHint(screen *ebiten.Image) {
	alpha := 1.0
	if g.elapsed > config.HintDelay {
		alpha = 1 - float64(g.elapsed-config.HintDelay)/float64(config.HintFade)
	}
	if alpha <= 0 {
		return
	}
	y := float64(g.height - config.ButtonMargin - config.ButtonHeight - 32)
	g.drawTextCentered(screen, hintText, g.fonts.label, float64(g.width)/2, y, withAlpha(labelColor, alpha))
}

func (g *Game) drawTextCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (g *Game) drawTextTop(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
