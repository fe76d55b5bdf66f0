package motion

import (
	"math"
	"testing"
	"time"
)

func TestCubicBezier_Endpoints(t *testing.T) {
	for _, c := range []Curve{Ease, EaseOut, Linear} {
		if got := c(0); got != 0 {
			t.Errorf("c(0) = %v, want 0", got)
		}
		if got := c(1); got != 1 {
			t.Errorf("c(1) = %v, want 1", got)
		}
		if got := c(-0.5); got != 0 {
			t.Errorf("c(-0.5) = %v, want 0", got)
		}
		if got := c(2); got != 1 {
			t.Errorf("c(2) = %v, want 1", got)
		}
	}
}

func TestCubicBezier_Monotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Ease(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("Ease not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestCubicBezier_LinearControlPoints(t *testing.T) {
	c := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := c(x); math.Abs(got-x) > 1e-5 {
			t.Errorf("c(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestEase_FrontLoaded(t *testing.T) {
	// CSS ease covers most of the distance in the first half.
	if got := Ease(0.5); got < 0.75 || got > 0.85 {
		t.Errorf("Ease(0.5) = %v, want about 0.80", got)
	}
}

func TestTransition_ZeroValueJumps(t *testing.T) {
	var tr Transition
	now := time.Unix(0, 0)
	tr.Retarget(50, now, 0, nil)
	if got := tr.Value(now); got != 50 {
		t.Errorf("Value = %v, want 50", got)
	}
	if tr.Active(now) {
		t.Error("zero-duration transition reported active")
	}
}

func TestTransition_Animates(t *testing.T) {
	var tr Transition
	tr.Set(-28)
	start := time.Unix(100, 0)
	tr.Retarget(-160, start, 300*time.Millisecond, Linear)

	tests := []struct {
		after time.Duration
		want  float64
	}{
		{0, -28},
		{150 * time.Millisecond, -94},
		{300 * time.Millisecond, -160},
		{time.Second, -160},
	}
	for _, tt := range tests {
		if got := tr.Value(start.Add(tt.after)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Value(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}
	if !tr.Active(start.Add(299 * time.Millisecond)) {
		t.Error("transition should be active before its duration")
	}
	if tr.Active(start.Add(300 * time.Millisecond)) {
		t.Error("transition should be finished at its duration")
	}
}

func TestTransition_RetargetMidFlight(t *testing.T) {
	var tr Transition
	start := time.Unix(0, 0)
	tr.Retarget(100, start, 100*time.Millisecond, Linear)

	mid := start.Add(50 * time.Millisecond)
	tr.Retarget(0, mid, 100*time.Millisecond, Linear)
	if got := tr.Value(mid); math.Abs(got-50) > 1e-9 {
		t.Errorf("Value after retarget = %v, want 50", got)
	}

	// Same target keeps the running animation.
	later := mid.Add(50 * time.Millisecond)
	tr.Retarget(0, later, 100*time.Millisecond, Linear)
	if got := tr.Value(later); math.Abs(got-25) > 1e-9 {
		t.Errorf("Value = %v, want 25", got)
	}
}

func TestTransition_RetargetAfterFinishRests(t *testing.T) {
	var tr Transition
	start := time.Unix(0, 0)
	tr.Retarget(100, start, 100*time.Millisecond, Linear)

	done := start.Add(100 * time.Millisecond)
	if tr.Active(done) {
		t.Fatal("still active at the end of its duration")
	}
	for _, at := range []time.Time{done, done.Add(16 * time.Millisecond), done.Add(time.Second)} {
		tr.Retarget(100, at, 100*time.Millisecond, Linear)
		if tr.Active(at) {
			t.Errorf("retarget to the resting value at %v restarted the animation", at.Sub(start))
		}
		if got := tr.Value(at); got != 100 {
			t.Errorf("Value = %v, want 100", got)
		}
	}

	// A new target still animates.
	later := done.Add(time.Second)
	tr.Retarget(200, later, 100*time.Millisecond, Linear)
	if !tr.Active(later) {
		t.Error("retarget to a new value did not animate")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("Lerp = %v, want 2.5", got)
	}
}
