package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/snapscroll/internal/snap"
)

// Swatch is one colour of the swatch carousel.
type Swatch struct {
	Name  string
	Color color.Color
	Width float64
}

// SwatchScreen shows a carousel of colour blocks of varying widths.
type SwatchScreen struct {
	carousel *Carousel
	router   *PointerRouter
	swatches []Swatch
	selected int
}

func NewSwatchScreen(opts snap.Options, swatches []Swatch) (*SwatchScreen, error) {
	s := &SwatchScreen{router: NewPointerRouter(), swatches: swatches}

	items := make([]Item, len(swatches))
	for i, sw := range swatches {
		items[i] = &SwatchItem{Color: sw.Color, Width: sw.Width, Label: sw.Name}
	}

	rect := Rect{X: 0, Y: TabBarHeight + 140, W: ScreenWidth, H: SwatchHeight}
	if opts.Direction == snap.Vertical {
		rect = Rect{X: ScreenWidth/2 - SwatchHeight/2, Y: TabBarHeight + 60, W: SwatchHeight, H: ScreenHeight - TabBarHeight - 140}
	}

	onSnap := opts.OnSnap
	opts.OnSnap = func(i int) {
		s.selected = i
		if onSnap != nil {
			onSnap(i)
		}
	}
	c, err := NewCarousel(opts, items, rect)
	if err != nil {
		return nil, fmt.Errorf("swatch carousel: %w", err)
	}
	s.carousel = c
	s.selected = c.View().Focused()
	return s, nil
}

func (s *SwatchScreen) Name() string { return "Swatches" }
func (s *SwatchScreen) OnEnter()     {}
func (s *SwatchScreen) OnExit()      {}

func (s *SwatchScreen) ActiveCarousel() *Carousel { return s.carousel }

// Selected is the physical index of the focused swatch.
func (s *SwatchScreen) Selected() int { return s.selected }

func (s *SwatchScreen) Update(in Input) (*ScreenTransition, error) {
	s.router.Dispatch(in.Pointers, s.carousel)
	if step := in.Step + s.carousel.NavStep(in.Nav); step != 0 {
		s.carousel.Step(step)
	}
	s.carousel.Update(in.Now)
	return nil, nil
}

func (s *SwatchScreen) Draw(dst *ebiten.Image) {
	DrawText(dst, "Swipe, fling or tap a swatch", SectionPadding, TabBarHeight+40, FontSizeHeading, ColorText)
	s.carousel.Draw(dst)

	if s.selected < len(s.swatches) {
		sw := s.swatches[s.selected]
		label := fmt.Sprintf("Selected: %s (%d of %d)", sw.Name, s.selected+1, len(s.swatches))
		DrawTextCentered(dst, label, ScreenWidth/2, ScreenHeight-60, FontSizeBody, ColorTextSecondary)
	}
}
