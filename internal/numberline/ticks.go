package numberline

import (
	"math"
	"strconv"
)

const (
	MajorTickHeight = 40.0
	MinorTickHeight = 20.0

	// FadeZone is the width in pixels of the opacity ramp at each viewport edge.
	FadeZone = 200.0

	valueEpsilon = 0.001
)

// Tick is one generated tick mark.
type Tick struct {
	Value float64
	X     float64

	Major  bool
	Label  bool
	Center bool
	// SmallLabel marks a labeled decimal that is not a whole number on the
	// decimal level; it is drawn with the smaller font.
	SmallLabel bool

	Height  float64
	Opacity float64
	Text    string
}

// TickParams are the inputs of GenerateTicks.
type TickParams struct {
	Range         VisibleRange
	Level         ZoomLevel
	Transform     Transform
	PixelsPerUnit float64
	// Decimal enables the whole-number major rule of the most zoomed in level.
	Decimal       bool
	ViewportWidth float64
}

// GenerateTicks returns the ticks covering p.Range in ascending value order.
// Values are computed from an integer step count so no error accumulates
// across the range.
func GenerateTicks(p TickParams) []Tick {
	interval := p.Level.TickInterval
	if !(interval > 0) {
		return nil
	}
	startTick := math.Floor(p.Range.Start/interval) * interval
	endTick := math.Ceil(p.Range.End/interval) * interval
	numSteps := int(math.Round((endTick - startTick) / interval))
	if numSteps < 0 {
		return nil
	}

	labelSteps := labelStepsFor(p.Level)
	places := decimalPlaces(interval)

	ticks := make([]Tick, 0, numSteps+1)
	for step := 0; step <= numSteps; step++ {
		value := roundTo(startTick+float64(step)*interval, places)
		x := worldToScreen(p.Transform, p.PixelsPerUnit, value)

		label, major, whole := classify(value, interval, labelSteps, p.Decimal)
		height := MinorTickHeight
		if major {
			height = MajorTickHeight
		}

		center := math.Abs(value) < valueEpsilon
		if center {
			value = 0
		}

		ticks = append(ticks, Tick{
			Value:      value,
			X:          x,
			Major:      major,
			Label:      label,
			Center:     center,
			SmallLabel: p.Decimal && label && !whole,
			Height:     height,
			Opacity:    edgeOpacity(x, p.ViewportWidth),
			Text:       strconv.FormatFloat(value, 'f', places, 64),
		})
	}
	return ticks
}

// classify applies the label rule and, on the decimal level, the
// whole-number major rule to a rounded tick value.
func classify(value, interval float64, labelSteps int, decimal bool) (label, major, whole bool) {
	valueSteps := int(math.Round(value / interval))
	label = valueSteps%labelSteps == 0
	whole = math.Abs(value-math.Round(value)) < valueEpsilon
	major = label
	if decimal {
		major = whole
	}
	return label, major, whole
}

func labelStepsFor(l ZoomLevel) int {
	n := int(math.Round(l.LabelInterval / l.TickInterval))
	if n < 1 {
		return 1
	}
	return n
}

// edgeOpacity fades linearly to 0 across the FadeZone pixels nearest each edge.
func edgeOpacity(x, width float64) float64 {
	if width <= 0 {
		return 1
	}
	half := width / 2
	dist := math.Abs(x - half)
	if dist <= half-FadeZone {
		return 1
	}
	return math.Max(0, 1-(dist-(half-FadeZone))/FadeZone)
}

// FormatValue renders v the way tick labels are rendered for interval.
func FormatValue(v, interval float64) string {
	places := decimalPlaces(interval)
	v = roundTo(v, places)
	if math.Abs(v) < valueEpsilon {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

func decimalPlaces(interval float64) int {
	if interval < 1 {
		return 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	if places == 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
