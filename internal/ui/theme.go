package ui

import "image/color"

// Colors: dark theme shared by every demo screen
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF1, G: 0x58, B: 0x69, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0x00, G: 0xD7, B: 0xB6, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xFF, G: 0xF6, B: 0xED, A: 0xFF}
	ColorCenterLine    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x30}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
)

// Layout constants
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	TabBarHeight  = 60
	TabBarPadding = 20
	TabWidth      = 160

	SectionPadding = 40

	SwatchHeight     = 160
	SwatchFocusPad   = 6
	PickerColumnW    = 120
	PickerColumnGap  = 40
	PickerViewHeight = 336
	GalleryHeight    = 320

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// Frames before a held key starts repeating, and between repeats.
	KeyRepeatDelay    = 18
	KeyRepeatInterval = 4
)
