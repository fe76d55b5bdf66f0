package snap

import "time"

// Phase is the gesture phase of a View.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGrabbing
	// PhaseSettling lasts from a snap until the renderer's transition ends.
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseGrabbing:
		return "grabbing"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

// State is the mutable scroll state of one View. Callers receive copies.
type State struct {
	Phase    Phase
	Grabbing bool

	// GrabStartPoint is the axis coordinate where the current drag began.
	GrabStartPoint float64
	// Offset is the live drag delta since GrabStartPoint; 0 when idle.
	Offset float64
	// BaseTranslate moves the whole three-group block and only changes on rebase.
	BaseTranslate float64
	// LastInnerTranslate is the resting translation of the inner block.
	LastInnerTranslate float64
	// Velocity is the latest drag speed in px/ms.
	Velocity float64

	Focused        int
	FocusedLogical int

	LastMovedAt time.Time
	SettleStart time.Time
}

// Translation is the rendered position of the block:
// BaseTranslate + LastInnerTranslate - Offset.
func (s State) Translation() float64 {
	return s.BaseTranslate + s.LastInnerTranslate - s.Offset
}

// Inner is the inner block translation as drawn, before the base is applied.
func (s State) Inner() float64 {
	return s.LastInnerTranslate - s.Offset
}
