package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/snapscroll/internal/motion"
	"github.com/depeter/snapscroll/internal/snap"
)

// Rect is a screen rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p snap.Point) bool {
	return PointInRect(p.X, p.Y, r.X, r.Y, r.W, r.H)
}

// Item is one cell of a carousel.
type Item interface {
	// Extent is the item's size along the scroll axis.
	Extent() float64
	Draw(dst *ebiten.Image, r Rect, focused bool)
}

// Placement is where one rendered copy of an item lands along the axis,
// relative to the viewport's leading edge.
type Placement struct {
	Logical  int
	Physical int
	Start    float64
	Size     float64
}

// Carousel draws a snap.View as three copies of its items inside Rect.
type Carousel struct {
	Rect Rect

	view  *snap.View
	items []Item
	anim  motion.Transition
	now   time.Time
}

// NewCarousel builds a carousel over items. opts.Count is taken from items.
func NewCarousel(opts snap.Options, items []Item, rect Rect) (*Carousel, error) {
	opts.Count = len(items)
	v, err := snap.New(opts)
	if err != nil {
		return nil, err
	}
	c := &Carousel{Rect: rect, view: v, items: items}
	c.ensureMeasured()
	return c, nil
}

func (c *Carousel) View() *snap.View { return c.view }
func (c *Carousel) Items() []Item    { return c.items }

// ensureMeasured reports item extents to the view once the carousel has a
// size to centre in.
func (c *Carousel) ensureMeasured() {
	if c.view.Measured() {
		return
	}
	sizes := make([]float64, len(c.items))
	for i, it := range c.items {
		sizes[i] = it.Extent()
	}
	container := c.Rect.W
	if c.view.Direction() == snap.Vertical {
		container = c.Rect.H
	}
	c.view.SetMeasurement(snap.Measure(sizes, container, c.view.Margin()))
	c.anim.Set(c.view.Inner())
}

// Step moves one item forward (step > 0) or back (step < 0).
func (c *Carousel) Step(step int) bool {
	switch {
	case step > 0:
		return c.view.Next()
	case step < 0:
		return c.view.Prev()
	}
	return false
}

// NavStep maps an arrow key onto the carousel's axis: -1, +1 or 0.
func (c *Carousel) NavStep(nav NavDirection) int {
	if c.view.Direction() == snap.Vertical {
		switch nav {
		case NavUp:
			return -1
		case NavDown:
			return 1
		}
		return 0
	}
	switch nav {
	case NavLeft:
		return -1
	case NavRight:
		return 1
	}
	return 0
}

// HandlePointer forwards a screen-space pointer event to the view. Taps are
// resolved against the translation on screen at the event's time.
func (c *Carousel) HandlePointer(ev snap.PointerEvent) {
	c.ensureMeasured()
	ev.Position.X -= c.Rect.X
	ev.Position.Y -= c.Rect.Y
	at := ev.Time
	if at.IsZero() {
		at = c.now
	}
	c.view.HandlePointerDrawn(ev, c.DisplayTranslation(at))
}

// Update ends finished snaps and steers the inner translation animation.
// The base translation is never animated: a rebase swaps in an identical
// copy of the content.
func (c *Carousel) Update(now time.Time) {
	c.ensureMeasured()
	c.now = now
	c.view.Tick(now)
	if c.view.Grabbing() {
		c.anim.Set(c.view.Inner())
		return
	}
	c.anim.Retarget(c.view.Inner(), now, c.view.TransitionDuration(), motion.Ease)
}

// DisplayTranslation is the translation drawn at now, including any running
// snap animation.
func (c *Carousel) DisplayTranslation(now time.Time) float64 {
	return c.view.Base() + c.anim.Value(now)
}

// Layout lists the item copies that intersect the viewport when the content
// is drawn at translation.
func (c *Carousel) Layout(translation float64) []Placement {
	geo := c.view.Geometry()
	var out []Placement
	pos := translation
	for logical := 0; logical < snap.GroupCount*geo.Count; logical++ {
		phys := geo.Physical(logical)
		size := geo.ItemSize(phys)
		start := pos + geo.Margin
		pos += size + 2*geo.Margin
		if start+size < 0 || start > geo.ContainerSize {
			continue
		}
		out = append(out, Placement{Logical: logical, Physical: phys, Start: start, Size: size})
	}
	return out
}

func (c *Carousel) itemRect(p Placement) Rect {
	if c.view.Direction() == snap.Vertical {
		return Rect{X: c.Rect.X, Y: c.Rect.Y + p.Start, W: c.Rect.W, H: p.Size}
	}
	return Rect{X: c.Rect.X + p.Start, Y: c.Rect.Y, W: p.Size, H: c.Rect.H}
}

func (c *Carousel) Draw(dst *ebiten.Image) {
	c.ensureMeasured()

	bounds := image.Rect(int(c.Rect.X), int(c.Rect.Y), int(c.Rect.X+c.Rect.W), int(c.Rect.Y+c.Rect.H))
	clip, ok := dst.SubImage(bounds).(*ebiten.Image)
	if !ok {
		return
	}
	vector.DrawFilledRect(clip, float32(c.Rect.X), float32(c.Rect.Y), float32(c.Rect.W), float32(c.Rect.H), ColorSurface, false)

	focused := c.view.FocusedLogical()
	for _, p := range c.Layout(c.DisplayTranslation(c.now)) {
		c.items[p.Physical].Draw(clip, c.itemRect(p), p.Logical == focused)
	}

	// Centre marker
	if c.view.Direction() == snap.Vertical {
		cy := c.Rect.Y + c.Rect.H/2
		vector.StrokeLine(clip, float32(c.Rect.X), float32(cy), float32(c.Rect.X+c.Rect.W), float32(cy), 1, ColorCenterLine, false)
	} else {
		cx := c.Rect.X + c.Rect.W/2
		vector.StrokeLine(clip, float32(cx), float32(c.Rect.Y), float32(cx), float32(c.Rect.Y+c.Rect.H), 1, ColorCenterLine, false)
	}
}

// PointerRouter sends each pointer's events to the carousel it went down
// on, for as long as it stays down.
type PointerRouter struct {
	owner map[int]*Carousel
	last  *Carousel
}

func NewPointerRouter() *PointerRouter {
	return &PointerRouter{owner: make(map[int]*Carousel)}
}

// Dispatch routes evs among targets. Presses outside every target are dropped
// along with the rest of that pointer's gesture.
func (r *PointerRouter) Dispatch(evs []snap.PointerEvent, targets ...*Carousel) {
	for _, ev := range evs {
		c, ok := r.owner[ev.ID]
		if ev.Phase == snap.PointerDown {
			c, ok = nil, false
			for _, t := range targets {
				if t.Rect.Contains(ev.Position) {
					c, ok = t, true
					break
				}
			}
			if !ok {
				continue
			}
			r.owner[ev.ID] = c
			r.last = c
		}
		if !ok {
			continue
		}
		c.HandlePointer(ev)
		if ev.Phase == snap.PointerUp || ev.Phase == snap.PointerCancel {
			delete(r.owner, ev.ID)
		}
	}
}

// LastTouched is the carousel that most recently received a press, or nil.
func (r *PointerRouter) LastTouched() *Carousel { return r.last }
