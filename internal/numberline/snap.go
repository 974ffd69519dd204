package numberline

import (
	"math"
	"time"
)

// SnapDuration is the length of a snap animation.
const SnapDuration = 600 * time.Millisecond

// snapEase is the ease-out timing curve used for snapping.
var snapEase = cubicBezier{x1: 0.4, y1: 0, x2: 0.2, y2: 1}

// snapAnimation eases the offset from one value to another over a fixed
// duration. The final frame writes the target exactly.
type snapAnimation struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
}

func newSnapAnimation(from, to float64) *snapAnimation {
	return &snapAnimation{from: from, to: to, duration: SnapDuration}
}

// step advances the animation by dt and returns the new offset and whether
// the animation has finished.
func (a *snapAnimation) step(dt time.Duration) (offset float64, done bool) {
	a.elapsed += dt
	if a.elapsed >= a.duration || a.duration <= 0 {
		return a.to, true
	}
	p := float64(a.elapsed) / float64(a.duration)
	return a.from + (a.to-a.from)*snapEase.at(p), false
}

// cubicBezier is a CSS-style timing function through (0,0), (x1,y1),
// (x2,y2), (1,1).
type cubicBezier struct {
	x1, y1, x2, y2 float64
}

func bezierCoord(t, p1, p2 float64) float64 {
	// B(t) with P0 = 0 and P3 = 1.
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// at maps progress x in [0,1] to eased progress.
func (c cubicBezier) at(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return bezierCoord(c.solveT(x), c.y1, c.y2)
}

// solveT finds t with x(t) = x: a few Newton steps, then bisection if the
// slope is too flat to converge.
func (c cubicBezier) solveT(x float64) float64 {
	const eps = 1e-7
	t := x
	for i := 0; i < 8; i++ {
		dx := bezierCoord(t, c.x1, c.x2) - x
		if math.Abs(dx) < eps {
			return t
		}
		d := bezierSlope(t, c.x1, c.x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 64 && hi-lo > eps; i++ {
		v := bezierCoord(t, c.x1, c.x2)
		if math.Abs(v-x) < eps {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
