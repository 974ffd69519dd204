package numberline

import (
	"math"
	"time"
)

// Engine owns the viewport transform and is the only thing that mutates it.
// It is not safe for concurrent use; the host calls it from a single
// event/frame loop.
type Engine struct {
	levels  []ZoomLevel
	measure Measurer

	t       Transform
	gesture GestureState
	snap    *snapAnimation
	mounted bool

	subs    []subscription
	nextSub int
}

type subscription struct {
	id int
	fn func(Transform)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLevels replaces the zoom table. A table that fails ValidateLevels is
// ignored and DefaultLevels is kept.
func WithLevels(levels []ZoomLevel) Option {
	return func(e *Engine) {
		if ValidateLevels(levels) != nil {
			return
		}
		e.levels = append([]ZoomLevel(nil), levels...)
	}
}

// WithZoomIndex sets the starting zoom level, clamped to the table.
func WithZoomIndex(index int) Option {
	return func(e *Engine) { e.t.ZoomIndex = index }
}

// New creates an engine measuring its container through m. The offset is
// centered on world 0 the first time m reports a positive width.
func New(m Measurer, opts ...Option) *Engine {
	e := &Engine{
		levels:  DefaultLevels,
		measure: m,
		t:       Transform{ZoomIndex: DefaultZoomIndex},
	}
	if e.measure == nil {
		e.measure = MeasurerFunc(func() (float64, float64) { return 0, 0 })
	}
	for _, opt := range opts {
		opt(e)
	}
	e.t.ZoomIndex = clampIndex(e.t.ZoomIndex, len(e.levels))
	e.ensureMounted()
	return e
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func (e *Engine) width() float64 {
	w, _ := e.measure.ContainerSize()
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

func (e *Engine) ensureMounted() {
	if e.mounted {
		return
	}
	if w := e.width(); w > 0 {
		e.mounted = true
		e.set(Transform{OffsetPx: w / 2, ZoomIndex: e.t.ZoomIndex})
	}
}

// set replaces the transform and notifies subscribers when it changed.
func (e *Engine) set(t Transform) {
	if t == e.t {
		return
	}
	e.t = t
	for _, s := range e.subs {
		s.fn(t)
	}
}

func (e *Engine) setOffset(offset float64) {
	e.set(Transform{OffsetPx: offset, ZoomIndex: e.t.ZoomIndex})
}

// Subscribe registers fn to be called after every transform change. The
// returned function removes the subscription and may be called more than once.
func (e *Engine) Subscribe(fn func(Transform)) (cancel func()) {
	id := e.nextSub
	e.nextSub++
	e.subs = append(e.subs, subscription{id: id, fn: fn})
	return func() {
		// Copy so a callback cancelling itself does not disturb set's loop.
		kept := make([]subscription, 0, len(e.subs))
		for _, s := range e.subs {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		e.subs = kept
	}
}

// Transform returns the current transform.
func (e *Engine) Transform() Transform { return e.t }

// Levels returns a copy of the zoom table.
func (e *Engine) Levels() []ZoomLevel { return append([]ZoomLevel(nil), e.levels...) }

// Level returns the active zoom level.
func (e *Engine) Level() ZoomLevel { return e.levels[e.t.ZoomIndex] }

// PixelsPerUnit returns the screen distance of one world unit.
func (e *Engine) PixelsPerUnit() float64 { return pixelsPerUnit(e.levels, e.t.ZoomIndex) }

func (e *Engine) WorldToScreen(v float64) float64 {
	return worldToScreen(e.t, e.PixelsPerUnit(), v)
}

func (e *Engine) ScreenToWorld(x float64) float64 {
	return screenToWorld(e.t, e.PixelsPerUnit(), x)
}

// VisibleRange returns the padded range of world values on screen.
func (e *Engine) VisibleRange() VisibleRange {
	return CalcVisibleRange(e.t, e.PixelsPerUnit(), e.width())
}

// DecimalLevel reports whether the most zoomed in level is active.
func (e *Engine) DecimalLevel() bool { return e.t.ZoomIndex == len(e.levels)-1 }

// Ticks generates the tick marks for the current view.
func (e *Engine) Ticks() []Tick {
	return GenerateTicks(TickParams{
		Range:         e.VisibleRange(),
		Level:         e.Level(),
		Transform:     e.t,
		PixelsPerUnit: e.PixelsPerUnit(),
		Decimal:       e.DecimalLevel(),
		ViewportWidth: e.width(),
	})
}

// CenterValue returns the world value at the container center snapped to the
// nearest tick.
func (e *Engine) CenterValue() float64 {
	interval := e.Level().TickInterval
	raw := e.ScreenToWorld(e.width() / 2)
	return roundTo(math.Round(raw/interval)*interval, decimalPlaces(interval))
}

// CenterIsMajor reports whether CenterValue falls on a major tick.
func (e *Engine) CenterIsMajor() bool {
	l := e.Level()
	_, major, _ := classify(e.CenterValue(), l.TickInterval, labelStepsFor(l), e.DecimalLevel())
	return major
}

// CenterText formats CenterValue like a tick label.
func (e *Engine) CenterText() string {
	return FormatValue(e.CenterValue(), e.Level().TickInterval)
}

func (e *Engine) CanZoomIn() bool  { return e.t.ZoomIndex < len(e.levels)-1 }
func (e *Engine) CanZoomOut() bool { return e.t.ZoomIndex > 0 }

// Animating reports whether a snap animation owns the offset.
func (e *Engine) Animating() bool { return e.snap != nil }

// Dragging reports whether a drag gesture is in progress.
func (e *Engine) Dragging() bool { return e.gesture.Dragging }

// Velocity returns the momentum velocity in pixels per reference frame.
func (e *Engine) Velocity() float64 { return e.gesture.Velocity }

// ZoomIn steps one level in, keeping the container center fixed. It is a
// no-op at the last level or while snapping.
func (e *Engine) ZoomIn() { e.zoomCommand(ZoomIn) }

// ZoomOut steps one level out, keeping the container center fixed.
func (e *Engine) ZoomOut() { e.zoomCommand(ZoomOut) }

func (e *Engine) zoomCommand(dir ZoomDirection) {
	e.ensureMounted()
	e.zoomStep(e.width()/2, dir)
}

// zoomStep applies one zoom step anchored at screen x anchorX. Zoom requests
// are dropped while a snap animation owns the offset.
func (e *Engine) zoomStep(anchorX float64, dir ZoomDirection) bool {
	if e.snap != nil {
		return false
	}
	t, ok := stepZoom(e.levels, e.t, anchorX, dir)
	if ok {
		e.set(t)
	}
	return ok
}

// SnapToZero animates world 0 back to the container center.
func (e *Engine) SnapToZero() { e.SnapTo(0) }

// SnapTo animates the offset so that value ends up at the container center.
// Momentum is cancelled first. It is a no-op before the container is measured.
func (e *Engine) SnapTo(value float64) {
	e.ensureMounted()
	e.gesture.Velocity = 0
	w := e.width()
	if w <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	e.gesture.Dragging = false
	target := w/2 - value*e.PixelsPerUnit()
	if target == e.t.OffsetPx {
		e.snap = nil
		return
	}
	e.snap = newSnapAnimation(e.t.OffsetPx, target)
}

// Advance is the per-frame tick. dt is the time since the previous call.
// A running snap animation takes precedence over momentum; neither runs
// while dragging.
func (e *Engine) Advance(dt time.Duration) {
	e.ensureMounted()
	if dt < 0 {
		dt = 0
	}
	if e.snap != nil {
		offset, done := e.snap.step(dt)
		if done {
			e.snap = nil
		}
		e.setOffset(offset)
		return
	}
	if e.gesture.Dragging {
		return
	}
	v, offset := momentumStep(e.gesture.Velocity, e.t.OffsetPx, dt)
	e.gesture.Velocity = v
	e.setOffset(offset)
}
