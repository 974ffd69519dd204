package numberline

import "math"

const (
	// Pinch ratios outside [PinchZoomOutRatio, PinchZoomInRatio] trigger one
	// zoom step; inside the band nothing happens.
	PinchZoomOutRatio = 0.9
	PinchZoomInRatio  = 1.1
)

// GestureState is the transient state of the active gesture.
type GestureState struct {
	Dragging     bool
	Velocity     float64
	LastPointerX float64
	// LastPinchDistance is the pinch baseline; 0 means none recorded yet.
	LastPinchDistance float64
}

// TouchPoint is one active touch in container coordinates.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// PointerDown starts a drag at screen x. It cancels any snap animation and
// any remaining momentum.
func (e *Engine) PointerDown(x float64) {
	e.ensureMounted()
	e.snap = nil
	e.gesture.Dragging = true
	e.gesture.Velocity = 0
	e.gesture.LastPointerX = x
}

// PointerMove drags the line to follow x.
func (e *Engine) PointerMove(x float64) {
	if !e.gesture.Dragging {
		return
	}
	dx := x - e.gesture.LastPointerX
	e.gesture.Velocity = dx
	e.gesture.LastPointerX = x
	e.setOffset(e.t.OffsetPx + dx)
}

// PointerUp ends the drag; the last velocity is left for momentum.
func (e *Engine) PointerUp() { e.gesture.Dragging = false }

// PointerLeave ends a drag when the pointer leaves the container.
func (e *Engine) PointerLeave() {
	if e.gesture.Dragging {
		e.gesture.Dragging = false
	}
}

// Wheel applies one zoom step anchored at screen x. Positive deltaY zooms in.
func (e *Engine) Wheel(x, deltaY float64) {
	e.ensureMounted()
	switch {
	case deltaY > 0:
		e.zoomStep(x, ZoomIn)
	case deltaY < 0:
		e.zoomStep(x, ZoomOut)
	}
}

// TouchStart handles a new touch; touches is the full active list. One
// finger starts a drag, two fingers start a pinch, more are ignored.
func (e *Engine) TouchStart(touches []TouchPoint) {
	switch len(touches) {
	case 1:
		e.gesture.LastPinchDistance = 0
		e.PointerDown(touches[0].X)
	case 2:
		e.ensureMounted()
		e.gesture.Dragging = false
		e.gesture.Velocity = 0
		e.gesture.LastPinchDistance = touchDistance(touches[0], touches[1])
	}
}

// TouchMove handles movement of the active touches.
func (e *Engine) TouchMove(touches []TouchPoint) {
	switch len(touches) {
	case 1:
		e.PointerMove(touches[0].X)
	case 2:
		e.pinch(touches[0], touches[1])
	}
}

// TouchEnd handles a lifted finger; remaining lists the touches still down.
func (e *Engine) TouchEnd(remaining []TouchPoint) {
	e.gesture.LastPinchDistance = 0
	e.gesture.Dragging = false
}

func (e *Engine) pinch(a, b TouchPoint) {
	dist := touchDistance(a, b)
	last := e.gesture.LastPinchDistance
	if last <= 0 {
		e.gesture.LastPinchDistance = dist
		return
	}

	var dir ZoomDirection
	switch ratio := dist / last; {
	case ratio < PinchZoomOutRatio:
		dir = ZoomOut
	case ratio > PinchZoomInRatio:
		dir = ZoomIn
	default:
		return
	}
	if e.zoomStep((a.X+b.X)/2, dir) {
		e.gesture.LastPinchDistance = dist
	}
}

func touchDistance(a, b TouchPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
