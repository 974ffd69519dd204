package game

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/number-line/internal/numberline"
)

// gestureSink receives the reconciled pointer stream. *numberline.Engine
// implements it.
type gestureSink interface {
	PointerDown(x float64)
	PointerMove(x float64)
	PointerUp()
	PointerLeave()
	Wheel(x, deltaY float64)
	TouchStart(touches []numberline.TouchPoint)
	TouchMove(touches []numberline.TouchPoint)
	TouchEnd(remaining []numberline.TouchPoint)
}

var _ gestureSink = (*numberline.Engine)(nil)

// mouseSnapshot is the mouse state polled in one tick, in container
// coordinates.
type mouseSnapshot struct {
	X, Y         float64
	Inside       bool
	JustPressed  bool
	JustReleased bool
	// Captured is set when the press landed on a button.
	Captured bool
	WheelY   float64
}

// mouseTracker turns polled mouse state into pointer events.
type mouseTracker struct {
	down  bool
	lastX float64
}

func (m *mouseTracker) step(s mouseSnapshot, sink gestureSink) {
	if s.JustPressed && s.Inside && !s.Captured {
		m.down = true
		m.lastX = s.X
		sink.PointerDown(s.X)
	}
	if m.down {
		switch {
		case !s.Inside:
			m.down = false
			sink.PointerLeave()
		case s.X != m.lastX:
			m.lastX = s.X
			sink.PointerMove(s.X)
		}
		if m.down && s.JustReleased {
			m.down = false
			sink.PointerUp()
		}
	}
	if s.WheelY != 0 && s.Inside {
		sink.Wheel(s.X, s.WheelY)
	}
}

// touchTracker diffs the active touch list between ticks and emits
// end, start and move events in that order.
type touchTracker struct {
	prev []numberline.TouchPoint
}

func (t *touchTracker) step(cur []numberline.TouchPoint, sink gestureSink) {
	sort.Slice(cur, func(i, j int) bool { return cur[i].ID < cur[j].ID })

	ended := false
	for _, p := range t.prev {
		if !containsTouch(cur, p.ID) {
			ended = true
			break
		}
	}
	started := false
	for _, p := range cur {
		if !containsTouch(t.prev, p.ID) {
			started = true
			break
		}
	}

	switch {
	case ended || started:
		if ended {
			sink.TouchEnd(cur)
		}
		if started {
			sink.TouchStart(cur)
		}
	case touchesMoved(t.prev, cur):
		sink.TouchMove(cur)
	}
	t.prev = append(t.prev[:0], cur...)
}

func containsTouch(list []numberline.TouchPoint, id int) bool {
	for _, p := range list {
		if p.ID == id {
			return true
		}
	}
	return false
}

func touchesMoved(prev, cur []numberline.TouchPoint) bool {
	for i := range cur {
		if cur[i] != prev[i] {
			return true
		}
	}
	return false
}

// pollInput reads ebiten's input state for this tick and feeds the engine.
func (g *Game) pollInput() {
	top := float64(g.containerTop())
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)-top
	cw, ch := g.ContainerSize()
	_, wheelY := ebiten.Wheel()

	g.mouse.step(mouseSnapshot{
		X:            x,
		Y:            y,
		Inside:       x >= 0 && x < cw && y >= 0 && y < ch,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Captured:     g.buttonAt(cx, cy) != nil,
		WheelY:       wheelY,
	}, g.engine)

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	cur := make([]numberline.TouchPoint, 0, len(g.touchIDs))
	for _, id := range g.touchIDs {
		if g.buttonTouches[id] {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		cur = append(cur, numberline.TouchPoint{ID: int(id), X: float64(tx), Y: float64(ty) - top})
	}
	g.touches.step(cur, g.engine)
}
