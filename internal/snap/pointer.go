package snap

import (
	"math"
	"time"
)

// PointerPhase is the stage of an abstract pointer event.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a press, move or release from any input backend. Position
// is relative to the viewport's top-left corner. A zero Time is stamped from
// the View's clock.
type PointerEvent struct {
	ID       int
	Phase    PointerPhase
	Position Point
	Time     time.Time
}

type pointerState struct {
	active   bool
	id       int
	down     float64
	dragging bool
}

// HandlePointer drives the gesture state machine from a single pointer.
// Events from a second pointer while one is down are dropped. A press that
// is released without travelling past TapSlop is a tap on the item under it.
func (v *View) HandlePointer(ev PointerEvent) {
	v.handlePointer(ev, v.state.Translation())
}

// HandlePointerDrawn is HandlePointer for renderers that animate snaps. Taps
// hit the item drawn at translation, which differs from the resting layout
// while a snap is still settling.
func (v *View) HandlePointerDrawn(ev PointerEvent, translation float64) {
	v.handlePointer(ev, translation)
}

func (v *View) handlePointer(ev PointerEvent, drawn float64) {
	at := ev.Time
	if at.IsZero() {
		at = v.opts.Clock.Now()
	}
	coord := v.opts.Direction.Coord(ev.Position)
	p := &v.pointer

	switch ev.Phase {
	case PointerDown:
		if p.active && p.id != ev.ID {
			return
		}
		*p = pointerState{active: true, id: ev.ID, down: coord}

	case PointerMove:
		if !p.active || p.id != ev.ID {
			return
		}
		if !p.dragging {
			if math.Abs(coord-p.down) <= v.opts.TapSlop {
				return
			}
			p.dragging = true
		}
		v.TouchMove([]Point{ev.Position}, at)

	case PointerUp:
		if !p.active || p.id != ev.ID {
			return
		}
		dragging := p.dragging
		*p = pointerState{}
		if dragging {
			v.TouchEnd([]Point{ev.Position}, at)
			return
		}
		if logical, ok := v.geo.HitTest(coord - drawn); ok {
			v.Tap(logical)
		}

	case PointerCancel:
		if !p.active || p.id != ev.ID {
			return
		}
		dragging := p.dragging
		*p = pointerState{}
		if dragging {
			v.state.Velocity = 0
			v.TouchEnd(nil, at)
		}
	}
}
