package motion

import "time"

// Transition animates a value from where it currently is to a new target.
// The zero value rests at 0 and jumps straight to any target.
type Transition struct {
	from, to float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

// Set places the value at v with no animation.
func (tr *Transition) Set(v float64) {
	*tr = Transition{from: v, to: v}
}

// Retarget starts an animation from the value at now toward to. A duration
// of zero or less jumps immediately. Retargeting to the current target keeps
// the running animation, or the resting value once it has finished.
func (tr *Transition) Retarget(to float64, now time.Time, d time.Duration, curve Curve) {
	if to == tr.to && (tr.Active(now) || tr.Value(now) == to) {
		return
	}
	if d <= 0 {
		tr.Set(to)
		return
	}
	if curve == nil {
		curve = Ease
	}
	tr.from = tr.Value(now)
	tr.to = to
	tr.start = now
	tr.duration = d
	tr.curve = curve
}

// Active reports whether the animation is still running at now.
func (tr *Transition) Active(now time.Time) bool {
	return tr.duration > 0 && now.Sub(tr.start) < tr.duration
}

// Value returns the eased value at now.
func (tr *Transition) Value(now time.Time) float64 {
	if tr.duration <= 0 {
		return tr.to
	}
	elapsed := now.Sub(tr.start)
	if elapsed >= tr.duration {
		return tr.to
	}
	if elapsed <= 0 {
		return tr.from
	}
	return Lerp(tr.from, tr.to, tr.curve(float64(elapsed)/float64(tr.duration)))
}
