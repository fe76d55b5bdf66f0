package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/snapscroll/internal/snap"
)

// TimePickerScreen is two vertical carousels, hours and minutes.
type TimePickerScreen struct {
	hours   *Carousel
	minutes *Carousel
	router  *PointerRouter
	active  *Carousel

	hour, minute int
}

// NewTimePickerScreen builds the picker. base supplies transition and tap
// slop; direction and margin are fixed by the picker layout.
func NewTimePickerScreen(base snap.Options, margin, rowHeight float64, hour, minute int) (*TimePickerScreen, error) {
	tp := &TimePickerScreen{router: NewPointerRouter()}

	hourItems := make([]Item, 24)
	for i := range hourItems {
		hourItems[i] = &LabelItem{Text: strconv.Itoa(i), Size: rowHeight}
	}
	minuteItems := make([]Item, 60)
	for i := range minuteItems {
		minuteItems[i] = &LabelItem{Text: fmt.Sprintf("%02d", i), Size: rowHeight}
	}

	left := float64(ScreenWidth)/2 - PickerColumnW - PickerColumnGap/2
	top := float64(TabBarHeight + 100)

	opts := base
	opts.Direction = snap.Vertical
	opts.Margin = margin

	opts.InitialIndex = hour
	opts.OnSnap = func(i int) { tp.hour = i }
	h, err := NewCarousel(opts, hourItems, Rect{X: left, Y: top, W: PickerColumnW, H: PickerViewHeight})
	if err != nil {
		return nil, fmt.Errorf("hour carousel: %w", err)
	}

	opts.InitialIndex = minute
	opts.OnSnap = func(i int) { tp.minute = i }
	m, err := NewCarousel(opts, minuteItems, Rect{X: left + PickerColumnW + PickerColumnGap, Y: top, W: PickerColumnW, H: PickerViewHeight})
	if err != nil {
		return nil, fmt.Errorf("minute carousel: %w", err)
	}

	tp.hours, tp.minutes, tp.active = h, m, h
	tp.hour, tp.minute = h.View().Focused(), m.View().Focused()
	return tp, nil
}

func (tp *TimePickerScreen) Name() string { return "Time Picker" }
func (tp *TimePickerScreen) OnEnter()     {}
func (tp *TimePickerScreen) OnExit()      {}

func (tp *TimePickerScreen) ActiveCarousel() *Carousel { return tp.active }

// Selected returns the picked hour and minute.
func (tp *TimePickerScreen) Selected() (hour, minute int) { return tp.hour, tp.minute }

// Label is the text shown under the picker.
func (tp *TimePickerScreen) Label() string {
	return fmt.Sprintf("Selected: %d:%02d", tp.hour, tp.minute)
}

func (tp *TimePickerScreen) Update(in Input) (*ScreenTransition, error) {
	tp.router.Dispatch(in.Pointers, tp.hours, tp.minutes)
	if c := tp.router.LastTouched(); c != nil {
		tp.active = c
	}

	switch in.Nav {
	case NavLeft:
		tp.active = tp.hours
	case NavRight:
		tp.active = tp.minutes
	}
	if step := in.Step + tp.active.NavStep(in.Nav); step != 0 {
		tp.active.Step(step)
	}

	tp.hours.Update(in.Now)
	tp.minutes.Update(in.Now)
	return nil, nil
}

func (tp *TimePickerScreen) Draw(dst *ebiten.Image) {
	DrawText(dst, "Pick a time", SectionPadding, TabBarHeight+40, FontSizeHeading, ColorText)

	tp.hours.Draw(dst)
	tp.minutes.Draw(dst)

	r := tp.active.Rect
	vector.StrokeRect(dst, float32(r.X-2), float32(r.Y-2), float32(r.W+4), float32(r.H+4), 2, ColorPrimary, false)

	colon := tp.hours.Rect
	DrawTextCentered(dst, ":", colon.X+colon.W+PickerColumnGap/2, colon.Y+colon.H/2, FontSizeTitle, ColorText)

	DrawTextCentered(dst, tp.Label(), ScreenWidth/2, colon.Y+colon.H+50, FontSizeHeading, ColorTextSecondary)
}
