package snap

import "math"

const (
	// MomentumDecay is the per-step factor applied to the release velocity.
	MomentumDecay = 0.98
	// MomentumSteps is the number of decay steps summed on release.
	MomentumSteps = 300
)

// MomentumDistance returns how far a release at velocity (px/ms) carries the
// content: the sum of velocity*0.98^k for k in [0, 300). Non-finite
// velocities carry nothing.
func MomentumDistance(velocity float64) float64 {
	if velocity == 0 || math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0
	}
	distance := 0.0
	for k := 0; k < MomentumSteps; k++ {
		distance += velocity * math.Pow(MomentumDecay, float64(k))
	}
	return distance
}
