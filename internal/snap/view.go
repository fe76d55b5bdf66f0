package snap

import (
	"errors"
	"time"
)

// DefaultTransition is how long a renderer animates a snap.
const DefaultTransition = 300 * time.Millisecond

var (
	ErrNoItems              = errors.New("snap: at least one item is required")
	ErrUnsupportedAlignment = errors.New("snap: only center alignment is supported")
)

// Clock supplies timestamps for events that arrive without one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Options configures a View.
type Options struct {
	// Count is the number of items in one group.
	Count int
	// Margin is the gap in pixels applied on both sides of every item.
	Margin    float64
	Direction Direction
	Alignment Alignment
	// InitialIndex is the physical index focused after measurement.
	InitialIndex int
	// Transition overrides DefaultTransition when positive.
	Transition time.Duration
	// TapSlop is how far a pressed pointer may travel along the axis before
	// the press becomes a drag. Only HandlePointer uses it.
	TapSlop float64
	// OnSnap receives the physical index of every snap that moved the view.
	OnSnap func(focused int)
	Clock  Clock
}

// View is the snap scroll state machine for one carousel.
type View struct {
	opts     Options
	geo      Geometry
	state    State
	measured bool
	pointer  pointerState
}

// New returns a View with zero sizes. Call SetMeasurement once layout is known.
func New(opts Options) (*View, error) {
	if opts.Count < 1 {
		return nil, ErrNoItems
	}
	if opts.Alignment != AlignCenter {
		return nil, ErrUnsupportedAlignment
	}
	if opts.Transition <= 0 {
		opts.Transition = DefaultTransition
	}
	if opts.TapSlop < 0 {
		opts.TapSlop = 0
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	v := &View{
		opts: opts,
		geo:  Geometry{Count: opts.Count, Margin: opts.Margin},
	}
	v.refocus()
	return v, nil
}

// SetMeasurement records the measured sizes and centres the initial item in
// the middle group. Only the first call has an effect.
func (v *View) SetMeasurement(m Measurement) {
	if v.measured {
		return
	}
	v.measured = true
	v.geo.Measurement = m

	base := -m.GroupSize
	initial := v.opts.Count + v.geo.Physical(v.opts.InitialIndex)
	v.state.BaseTranslate = base
	v.state.LastInnerTranslate = v.geo.TranslationForIndex(initial, base)
	v.refocus()
}

// Measured reports whether SetMeasurement has run.
func (v *View) Measured() bool { return v.measured }

func (v *View) Geometry() Geometry { return v.geo }
func (v *View) State() State { return v.state }
func (v *View) Direction() Direction { return v.opts.Direction }
func (v *View) Count() int { return v.opts.Count }
func (v *View) Margin() float64 { return v.opts.Margin }
func (v *View) Focused() int { return v.state.Focused }
func (v *View) FocusedLogical() int { return v.state.FocusedLogical }
func (v *View) Translation() float64 { return v.state.Translation() }
func (v *View) Base() float64 { return v.state.BaseTranslate }
func (v *View) Inner() float64 { return v.state.Inner() }
func (v *View) Grabbing() bool { return v.state.Grabbing }
func (v *View) Phase() Phase { return v.state.Phase }
func (v *View) Transition() time.Duration { return v.opts.Transition }

// TransitionDuration is the animation time a renderer should apply to the
// inner translation right now: zero while a finger is down so the content
// tracks it.
func (v *View) TransitionDuration() time.Duration {
	if v.state.Grabbing {
		return 0
	}
	return v.opts.Transition
}

// SnapTo settles the view on the item at logical, rebasing the block when the
// item lies outside the middle group. It returns false when the view was
// already resting there; OnSnap only fires on true.
func (v *View) SnapTo(logical int) bool {
	target := v.geo.TranslationForIndex(logical, v.state.BaseTranslate)
	if target == v.state.LastInnerTranslate && v.state.Offset == 0 {
		return false
	}

	if group := v.geo.Group(logical); group != 1 {
		v.state.BaseTranslate -= float64(1-group) * v.geo.GroupSize
	}

	v.state.LastInnerTranslate = target
	v.state.Offset = 0
	v.state.Grabbing = false
	v.state.Velocity = 0
	v.state.Phase = PhaseSettling
	v.state.SettleStart = v.opts.Clock.Now()
	v.refocus()

	if v.opts.OnSnap != nil {
		v.opts.OnSnap(v.state.Focused)
	}
	return true
}

// Tap snaps to a rendered item directly, bypassing the drag state.
func (v *View) Tap(logical int) bool {
	return v.SnapTo(logical)
}

// Next snaps to the item after the focused one.
func (v *View) Next() bool {
	if v.state.Grabbing {
		return false
	}
	return v.SnapTo(v.state.FocusedLogical + 1)
}

// Prev snaps to the item before the focused one.
func (v *View) Prev() bool {
	if v.state.Grabbing {
		return false
	}
	return v.SnapTo(v.state.FocusedLogical - 1)
}

// TouchMove feeds a move of the active touch. Only the first contact point
// is read; an empty list is ignored. The first move of a gesture starts the
// grab at that point.
func (v *View) TouchMove(points []Point, at time.Time) {
	if len(points) == 0 {
		return
	}
	coord := v.opts.Direction.Coord(points[0])

	if !v.state.Grabbing {
		v.state.Grabbing = true
		v.state.Phase = PhaseGrabbing
		v.state.GrabStartPoint = coord
		v.state.Offset = 0
		v.state.Velocity = 0
		v.state.LastMovedAt = at
		return
	}

	prev := v.state.Offset
	offset := v.state.GrabStartPoint - coord
	if elapsed := float64(at.Sub(v.state.LastMovedAt)) / float64(time.Millisecond); elapsed > 0 {
		v.state.Velocity = (prev - offset) / elapsed
	}
	v.state.Offset = offset
	v.state.LastMovedAt = at
}

// TouchEnd releases the active touch: the release velocity is extrapolated,
// the landing point resolved to an item and the view snapped there.
// Releases without a grab are ignored.
func (v *View) TouchEnd(points []Point, at time.Time) {
	if !v.state.Grabbing {
		return
	}
	if len(points) > 0 {
		v.state.Offset = v.state.GrabStartPoint - v.opts.Direction.Coord(points[0])
	}

	momentum := MomentumDistance(v.state.Velocity)
	target := v.state.LastInnerTranslate - v.state.Offset + momentum
	focus := v.geo.ResolveFocus(target, v.state.BaseTranslate)

	if v.SnapTo(focus.Logical) {
		if !at.IsZero() {
			v.state.SettleStart = at
		}
	} else {
		// Released exactly where it rested.
		v.state.Grabbing = false
		v.state.Offset = 0
		v.state.Velocity = 0
		v.state.Phase = PhaseIdle
	}
}

// Tick ends the settling phase once the transition has run.
func (v *View) Tick(now time.Time) {
	if v.state.Phase != PhaseSettling {
		return
	}
	if now.Sub(v.state.SettleStart) >= v.opts.Transition {
		v.state.Phase = PhaseIdle
	}
}

// ItemAt returns the logical index of the item drawn at pos, an axis
// coordinate relative to the viewport's leading edge.
func (v *View) ItemAt(pos float64) (int, bool) {
	content := pos - v.state.Translation()
	return v.geo.HitTest(content)
}

func (v *View) refocus() {
	f := v.geo.ResolveFocus(v.state.LastInnerTranslate, v.state.BaseTranslate)
	v.state.Focused = f.Physical
	v.state.FocusedLogical = f.Logical
}
