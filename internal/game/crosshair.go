package game

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/number-line/internal/config"
)

// crosshair eases the center marker toward the snapped center value's x.
type crosshair struct {
	spring harmonica.Spring
	x, vel float64
	placed bool
}

func newCrosshair(fps int) *crosshair {
	return &crosshair{
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.CrosshairFrequency, config.CrosshairDamping),
	}
}

// follow advances the spring one frame toward target. The first call jumps
// straight to the target.
func (c *crosshair) follow(target float64) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return
	}
	if !c.placed {
		c.x, c.vel, c.placed = target, 0, true
		return
	}
	c.x, c.vel = c.spring.Update(c.x, c.vel, target)
}

// reset makes the next follow jump instead of easing, used after a resize.
func (c *crosshair) reset() { c.placed = false }
