package numberline

import "math"

// RangePadding is the number of world units generated beyond each visible edge.
const RangePadding = 5

// DefaultRange is used until the container has been measured.
var DefaultRange = VisibleRange{Start: -20, End: 20}

// Measurer reports the current container size in pixels. A zero or negative
// width means the container has not been laid out yet.
type Measurer interface {
	ContainerSize() (width, height float64)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func() (width, height float64)

func (f MeasurerFunc) ContainerSize() (float64, float64) { return f() }

// VisibleRange is the span of world values currently on screen plus padding.
type VisibleRange struct {
	Start float64
	End   float64
}

// CalcVisibleRange derives the padded visible range for a container of the
// given width.
func CalcVisibleRange(t Transform, ppu, width float64) VisibleRange {
	if width <= 0 || ppu <= 0 {
		return DefaultRange
	}
	visibleUnits := math.Ceil(width / ppu)
	center := screenToWorld(t, ppu, width/2)
	return VisibleRange{
		Start: math.Floor(center - visibleUnits/2 - RangePadding),
		End:   math.Ceil(center + visibleUnits/2 + RangePadding),
	}
}
