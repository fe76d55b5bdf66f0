package ui

import (
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/snapscroll/internal/cache"
)

// SwatchItem is a solid colour block.
type SwatchItem struct {
	Color color.Color
	Width float64
	Label string
}

func (s *SwatchItem) Extent() float64 { return s.Width }

func (s *SwatchItem) Draw(dst *ebiten.Image, r Rect, focused bool) {
	pad := float32(SwatchFocusPad)
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if focused {
		vector.StrokeRect(dst, x+1, y+1, w-2, h-2, 2, ColorFocusBorder, false)
	}
	vector.DrawFilledRect(dst, x+pad, y+pad, w-2*pad, h-2*pad, s.Color, false)
	if s.Label != "" && focused {
		DrawTextCentered(dst, truncateText(s.Label, r.W-2*SwatchFocusPad, FontSizeSmall),
			r.X+r.W/2, r.Y+r.H-FontSizeSmall-SwatchFocusPad*2, FontSizeSmall, ColorBackground)
	}
}

// LabelItem is a text cell, used for picker rows.
type LabelItem struct {
	Text string
	Size float64
}

func (l *LabelItem) Extent() float64 { return l.Size }

func (l *LabelItem) Draw(dst *ebiten.Image, r Rect, focused bool) {
	size, clr := float64(FontSizeHeading), color.Color(ColorTextSecondary)
	if focused {
		size, clr = FontSizeTitle, ColorText
	}
	DrawTextCentered(dst, l.Text, r.X+r.W/2, r.Y+r.H/2, size, clr)
}

// ImageItem shows an image from the cache, with a placeholder until it has
// loaded. Decoded images arrive on a loader goroutine and are uploaded to
// the GPU on the next Draw.
type ImageItem struct {
	Source  string
	Size    float64
	Caption string

	mu        sync.Mutex
	requested bool
	pending   image.Image
	failed    bool
	img       *ebiten.Image
}

// NewImageItemFrom wraps an already decoded image.
func NewImageItemFrom(img image.Image, size float64, caption string) *ImageItem {
	return &ImageItem{Size: size, Caption: caption, pending: img, requested: true}
}

func (it *ImageItem) Extent() float64 { return it.Size }

// Load requests the image from c once. maxW and maxH bound the decoded
// image kept in memory.
func (it *ImageItem) Load(c *cache.ImageCache, maxW, maxH int) {
	it.mu.Lock()
	if it.requested {
		it.mu.Unlock()
		return
	}
	it.requested = true
	it.mu.Unlock()

	c.LoadAsync(it.Source, func(img image.Image, err error) {
		it.mu.Lock()
		defer it.mu.Unlock()
		if err != nil {
			log.Printf("Failed to load gallery image %s: %v", it.Source, err)
			it.failed = true
			return
		}
		it.pending = cache.Fit(img, maxW, maxH)
	})
}

// Loaded reports whether a decoded image is available.
func (it *ImageItem) Loaded() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.img != nil || it.pending != nil
}

func (it *ImageItem) Draw(dst *ebiten.Image, r Rect, focused bool) {
	it.mu.Lock()
	if it.pending != nil {
		it.img = ebiten.NewImageFromImage(it.pending)
		it.pending = nil
	}
	img, failed := it.img, it.failed
	it.mu.Unlock()

	pad := float64(SwatchFocusPad)
	inner := Rect{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
	if focused {
		vector.StrokeRect(dst, float32(r.X+1), float32(r.Y+1), float32(r.W-2), float32(r.H-2), 2, ColorFocusBorder, false)
	}

	if img == nil {
		vector.DrawFilledRect(dst, float32(inner.X), float32(inner.Y), float32(inner.W), float32(inner.H), ColorSurfaceHover, false)
		msg, clr := "Loading…", color.Color(ColorTextMuted)
		if failed {
			msg, clr = "Unavailable", ColorError
		}
		DrawTextCentered(dst, msg, inner.X+inner.W/2, inner.Y+inner.H/2, FontSizeSmall, clr)
		return
	}

	// Fit inside the cell, centred.
	b := img.Bounds()
	scale := min(inner.W/float64(b.Dx()), inner.H/float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(inner.X+(inner.W-float64(b.Dx())*scale)/2, inner.Y+(inner.H-float64(b.Dy())*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)

	if it.Caption != "" {
		vector.DrawFilledRect(dst, float32(inner.X), float32(inner.Y+inner.H-FontSizeSmall-8), float32(inner.W), FontSizeSmall+8, ColorOverlay, false)
		DrawText(dst, truncateText(it.Caption, inner.W-8, FontSizeSmall), inner.X+4, inner.Y+inner.H-FontSizeSmall-6, FontSizeSmall, ColorText)
	}
}
