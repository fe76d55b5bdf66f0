package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/snapscroll/internal/snap"
)

const debugEventHistory = 8

var (
	debugOverlayVisible bool
	debugEvents         []snap.PointerEvent
)

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// RecordPointerEvents keeps the most recent pointer events for the overlay.
func RecordPointerEvents(evs []snap.PointerEvent) {
	debugEvents = append(debugEvents, evs...)
	if n := len(debugEvents); n > debugEventHistory {
		debugEvents = append(debugEvents[:0], debugEvents[n-debugEventHistory:]...)
	}
}

// DebugLines describes a carousel's gesture state, one line per field.
func DebugLines(c *Carousel) []string {
	if c == nil {
		return []string{"(no carousel)"}
	}
	v := c.View()
	st := v.State()
	return []string{
		fmt.Sprintf("phase=%s  grabbing=%v", st.Phase, st.Grabbing),
		fmt.Sprintf("focused=%d  logical=%d", st.Focused, st.FocusedLogical),
		fmt.Sprintf("base=%.1f  inner=%.1f  offset=%.1f", st.BaseTranslate, st.LastInnerTranslate, st.Offset),
		fmt.Sprintf("velocity=%.3f px/ms", st.Velocity),
		fmt.Sprintf("group=%.1f  container=%.1f", v.Geometry().GroupSize, v.Geometry().ContainerSize),
	}
}

// DrawDebugOverlay draws the snap state of the current screen's carousel
// and recent pointer events, if visible.
func DrawDebugOverlay(dst *ebiten.Image, s Screen) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = TabBarHeight + 20.0
	)

	var c *Carousel
	if cs, ok := s.(CarouselScreen); ok {
		c = cs.ActiveCarousel()
	}
	state := DebugLines(c)

	lines := 2 + len(state) + 2 + max(len(debugEvents), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 420.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(dst, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(dst, "Debug: Snap State (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(dst, "--- carousel ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH
	for _, line := range state {
		DrawText(dst, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}

	y += lineH * 0.5
	DrawText(dst, "--- pointer events ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(debugEvents) == 0 {
		DrawText(dst, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	now := time.Now()
	for _, ev := range debugEvents {
		age := now.Sub(ev.Time).Truncate(time.Millisecond)
		line := fmt.Sprintf("id=%-3d %-6s (%4.0f,%4.0f)  %s ago", ev.ID, ev.Phase, ev.Position.X, ev.Position.Y, age)
		DrawText(dst, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
