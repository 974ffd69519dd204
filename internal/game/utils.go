package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	cyan       = hexColor("#06b6d4")
	tickColor  = hexColor("#64748b")
	labelColor = hexColor("#94a3b8")
	axisColor  = hexColor("#475569")
	titleColor = hexColor("#e2e8f0")

	backgroundTop    = hexColor("#0f172a")
	backgroundBottom = hexColor("#1e293b")
)

// hexColor parses an opaque "#rrggbb" palette entry.
func hexColor(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// withAlpha scales the premultiplied colour c by alpha (0-1).
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// lerpColor blends two opaque colours in RGB by t (0-1).
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendRgb(cb, clamp01(t)).RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
