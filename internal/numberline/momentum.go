package numberline

import (
	"math"
	"time"
)

const (
	// MomentumDecay is the per-frame velocity multiplier after release.
	MomentumDecay = 0.95
	// MomentumThreshold is the speed below which drift stops.
	MomentumThreshold = 0.1
	// referenceFrame normalizes drift so speed does not depend on frame rate.
	referenceFrame = 16 * time.Millisecond
)

// momentumStep advances inertial drift by one frame of length dt and returns
// the updated velocity and offset.
func momentumStep(velocity, offset float64, dt time.Duration) (float64, float64) {
	if math.Abs(velocity) <= MomentumThreshold {
		return 0, offset
	}
	velocity *= MomentumDecay
	offset += velocity * (float64(dt) / float64(referenceFrame))
	if math.Abs(velocity) < MomentumThreshold {
		velocity = 0
	}
	return velocity, offset
}
