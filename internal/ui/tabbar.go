package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tabStartX = 240.0
	tabY      = 12.0
	tabH      = 38.0
	tabGap    = 10.0
)

// TabBar is the strip of demo names drawn at the top of every screen.
type TabBar struct {
	Tabs []string

	ActiveScreenName string // for visual highlight of the current screen

	OnSelect func(index int)
}

func NewTabBar(tabs ...string) *TabBar {
	return &TabBar{Tabs: tabs}
}

func tabX(i int) float64 {
	return tabStartX + float64(i)*(TabWidth+tabGap)
}

// TabAt returns the tab under (x, y), or -1.
func (tb *TabBar) TabAt(x, y float64) int {
	for i := range tb.Tabs {
		if PointInRect(x, y, tabX(i), tabY, TabWidth, tabH) {
			return i
		}
	}
	return -1
}

// HandleClick selects the tab under (x, y). Returns true if one was hit.
func (tb *TabBar) HandleClick(x, y float64) bool {
	i := tb.TabAt(x, y)
	if i < 0 {
		return false
	}
	tb.selectTab(i)
	return true
}

// Next selects the tab after the active one, wrapping around.
func (tb *TabBar) Next() {
	if len(tb.Tabs) == 0 {
		return
	}
	tb.selectTab((tb.ActiveIndex() + 1) % len(tb.Tabs))
}

// ActiveIndex is the index of the tab named ActiveScreenName, or 0.
func (tb *TabBar) ActiveIndex() int {
	for i, name := range tb.Tabs {
		if name == tb.ActiveScreenName {
			return i
		}
	}
	return 0
}

func (tb *TabBar) selectTab(i int) {
	tb.ActiveScreenName = tb.Tabs[i]
	if tb.OnSelect != nil {
		tb.OnSelect(i)
	}
}

func (tb *TabBar) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, float32(ScreenWidth), float32(TabBarHeight), ColorBackground, false)
	vector.DrawFilledRect(dst, 0, float32(TabBarHeight-1), float32(ScreenWidth), 1, ColorSurfaceHover, false)

	DrawText(dst, "SnapScroll", SectionPadding, 16, FontSizeTitle, ColorPrimary)

	for i, name := range tb.Tabs {
		x := tabX(i)
		if name == tb.ActiveScreenName {
			vector.DrawFilledRect(dst, float32(x), tabY, TabWidth, tabH, ColorPrimary, false)
			DrawTextCentered(dst, name, x+TabWidth/2, tabY+tabH/2, FontSizeBody, ColorBackground)
			continue
		}
		vector.DrawFilledRect(dst, float32(x), tabY, TabWidth, tabH, ColorSurfaceHover, false)
		vector.StrokeRect(dst, float32(x), tabY, TabWidth, tabH, 1, ColorPrimary, false)
		DrawTextCentered(dst, name, x+TabWidth/2, tabY+tabH/2, FontSizeBody, ColorText)
	}
}
