package numberline

// BasePixelsPerUnit is the distance between consecutive integers at scale 1.
const BasePixelsPerUnit = 60.0

// Transform is the authoritative viewport state. OffsetPx is the screen x of
// world value 0.
type Transform struct {
	OffsetPx  float64
	ZoomIndex int
}

// ZoomDirection is the sign of a zoom step.
type ZoomDirection int

const (
	ZoomOut ZoomDirection = -1
	ZoomIn  ZoomDirection = 1
)

func pixelsPerUnit(levels []ZoomLevel, index int) float64 {
	return BasePixelsPerUnit * levels[index].Scale
}

func worldToScreen(t Transform, ppu, v float64) float64 {
	return v*ppu + t.OffsetPx
}

func screenToWorld(t Transform, ppu, x float64) float64 {
	return (x - t.OffsetPx) / ppu
}

// proposeZoom returns the index one step in dir from index, clamped to the
// table. ok is false when the index would not change.
func proposeZoom(levels []ZoomLevel, index int, dir ZoomDirection) (next int, ok bool) {
	next = index + int(dir)
	if next < 0 {
		next = 0
	}
	if next > len(levels)-1 {
		next = len(levels) - 1
	}
	return next, next != index
}

// zoomAt moves t to newIndex while keeping the world value under screen x
// anchorX fixed.
func zoomAt(levels []ZoomLevel, t Transform, anchorX float64, newIndex int) Transform {
	world := screenToWorld(t, pixelsPerUnit(levels, t.ZoomIndex), anchorX)
	return Transform{
		OffsetPx:  anchorX - world*pixelsPerUnit(levels, newIndex),
		ZoomIndex: newIndex,
	}
}

// stepZoom combines proposeZoom and zoomAt. It is shared by the wheel, pinch
// and command paths.
func stepZoom(levels []ZoomLevel, t Transform, anchorX float64, dir ZoomDirection) (Transform, bool) {
	next, ok := proposeZoom(levels, t.ZoomIndex, dir)
	if !ok {
		return t, false
	}
	return zoomAt(levels, t, anchorX, next), true
}
