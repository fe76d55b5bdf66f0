// Package snap implements the scroll math behind an infinitely wrapping snap
// carousel: centring translations, focus resolution, release momentum and the
// three-group rebase that hides the wrap.
//
// A View is owned by a single event loop. Nothing in this package locks;
// callers serialise input into it the same way a UI thread does.
package snap

import (
	"fmt"
	"math"
	"strings"
)

// GroupCount is the number of copies of the item list a renderer draws.
// The focused item is always drawn from the middle copy.
const GroupCount = 3

// Direction is the scroll axis.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection accepts "horizontal" or "vertical" (case-insensitive).
// An empty string is horizontal.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("snap: unknown direction %q", s)
	}
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Coord returns the component of p along the scroll axis.
func (d Direction) Coord(p Point) float64 {
	if d == Vertical {
		return p.Y
	}
	return p.X
}

// Alignment selects where a snapped item rests in the viewport.
type Alignment int

const (
	// AlignCenter centres the focused item. It is the only supported value.
	AlignCenter Alignment = iota
)

// Measurement holds the pixel sizes read from the layout once after the
// first paint. Sizes are along the scroll axis. Missing entries count as 0.
type Measurement struct {
	ItemSizes     []float64
	ContainerSize float64
	GroupSize     float64
}

// Measure builds a Measurement whose GroupSize is the laid-out extent of one
// group: every item plus a margin on both sides.
func Measure(itemSizes []float64, containerSize, margin float64) Measurement {
	group := 0.0
	for _, s := range itemSizes {
		group += s + margin*2
	}
	sizes := make([]float64, len(itemSizes))
	copy(sizes, itemSizes)
	return Measurement{
		ItemSizes:     sizes,
		ContainerSize: containerSize,
		GroupSize:     group,
	}
}

// Focus identifies the item under the viewport centre.
type Focus struct {
	Physical int
	Logical  int
}

// Geometry combines the item count, margin and measured sizes. All methods
// are pure.
type Geometry struct {
	Count  int
	Margin float64
	Measurement
}

// Physical maps a logical index onto [0, Count).
func (g Geometry) Physical(logical int) int {
	if g.Count <= 0 {
		return 0
	}
	p := logical % g.Count
	if p < 0 {
		p += g.Count
	}
	return p
}

// Group returns floor(logical / Count).
func (g Geometry) Group(logical int) int {
	if g.Count <= 0 {
		return 0
	}
	q := logical / g.Count
	if logical%g.Count != 0 && logical < 0 {
		q--
	}
	return q
}

// ItemSize returns the measured size of a physical item, or 0 when unmeasured.
func (g Geometry) ItemSize(physical int) float64 {
	if physical < 0 || physical >= len(g.ItemSizes) {
		return 0
	}
	return g.ItemSizes[physical]
}

// span is the space a logical item occupies including both margins.
func (g Geometry) span(logical int) float64 {
	return g.ItemSize(g.Physical(logical)) + g.Margin*2
}

// GroupExtent is the summed span of one group, computed from item sizes.
func (g Geometry) GroupExtent() float64 {
	extent := 0.0
	for i := 0; i < g.Count; i++ {
		extent += g.span(i)
	}
	return extent
}

// TranslationForIndex returns the inner translation that centres the item at
// logical in the viewport, given the current base translation.
func (g Geometry) TranslationForIndex(logical int, base float64) float64 {
	dist := g.Margin
	for i := 0; i < logical; i++ {
		dist += g.ItemSize(g.Physical(i))
		dist += g.Margin * 2
	}
	dist += g.ItemSize(g.Physical(logical)) / 2

	return -(dist - g.ContainerSize/2 + base)
}

// ResolveFocus is the inverse of TranslationForIndex: it returns the item
// whose span contains the viewport centre at translation. When nothing
// matches it falls back to index 0.
func (g Geometry) ResolveFocus(translation, base float64) Focus {
	hand := -g.ContainerSize/2 + base
	logical, _, ok := g.locate(-translation - hand)
	if !ok {
		return Focus{}
	}
	return Focus{Physical: g.Physical(logical), Logical: logical}
}

// SearchHorizon bounds the number of spans ResolveFocus walks for a
// translation. A point x past the start of group 0 lies inside group
// floor(x/extent); one extra group absorbs accumulated rounding.
func (g Geometry) SearchHorizon(translation, base float64) int {
	hand := -g.ContainerSize/2 + base
	return g.horizon(-translation - hand)
}

func (g Geometry) horizon(x float64) int {
	extent := g.GroupExtent()
	if g.Count <= 0 || extent <= 0 || x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	groups := math.Floor(x / extent)
	if groups > float64(math.MaxInt32/g.Count) {
		return 0
	}
	return (int(groups) + 2) * g.Count
}

// locate walks spans from the start of group 0 and returns the logical index
// whose half-open span [start, start+span) contains x, along with x's
// position relative to that span's start.
func (g Geometry) locate(x float64) (logical int, rel float64, ok bool) {
	limit := g.horizon(x)
	hand := 0.0
	for i := 0; i < limit; i++ {
		w := g.span(i)
		if hand <= x && x < hand+w {
			return i, x - hand, true
		}
		hand += w
	}
	return 0, 0, false
}

// HitTest returns the logical index whose item body (margins excluded)
// contains the content-space coordinate x. Only the rendered groups are
// considered.
func (g Geometry) HitTest(x float64) (int, bool) {
	logical, rel, ok := g.locate(x)
	if !ok || logical >= GroupCount*g.Count {
		return 0, false
	}
	size := g.ItemSize(g.Physical(logical))
	if rel < g.Margin || rel >= g.Margin+size {
		return 0, false
	}
	return logical, true
}
