package icon

import (
	"image"
	"image/color"
)

// Swatch colours from the default carousel
var (
	darkBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	swatchRed  = color.RGBA{R: 0xB0, G: 0x43, B: 0x49, A: 0xFF}
	swatchAmb  = color.RGBA{R: 0xFD, G: 0x95, B: 0x1F, A: 0xFF}
	swatchTeal = color.RGBA{R: 0x00, G: 0xD7, B: 0xB6, A: 0xFF}
	focusRing  = color.RGBA{R: 0xFF, G: 0xF6, B: 0xED, A: 0xFF}
	fade       = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0x90}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws three swatches in a row with the middle one focused,
// cut off at the edges the way a carousel viewport clips its neighbours.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, darkBG)

	// Neighbours, partly outside the viewport
	fillRoundedRect(img, -s*0.12, s*0.30, s*0.30, s*0.40, s*0.05, swatchRed)
	fillRoundedRect(img, s*0.82, s*0.30, s*0.30, s*0.40, s*0.05, swatchTeal)
	fillRoundedRect(img, -s*0.12, s*0.30, s*0.30, s*0.40, s*0.05, fade)
	fillRoundedRect(img, s*0.82, s*0.30, s*0.30, s*0.40, s*0.05, fade)

	// Focused swatch with ring
	fillRoundedRect(img, s*0.24, s*0.18, s*0.52, s*0.64, s*0.08, focusRing)
	fillRoundedRect(img, s*0.28, s*0.22, s*0.44, s*0.56, s*0.06, swatchAmb)

	// Centre tick below the row
	fillRoundedRect(img, s*0.48, s*0.86, s*0.04, s*0.08, s*0.02, focusRing)

	return img
}

// fillRoundedRect fills the rectangle (xf, yf, wf, hf) with corners of radius
// rf, clipped to img.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	b := img.Bounds()
	x0, y0 := max(int(xf), b.Min.X), max(int(yf), b.Min.Y)
	x1, y1 := min(int(xf+wf), b.Max.X), min(int(yf+hf), b.Max.Y)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			// Distance into the nearest corner square, if any.
			dx := max(xf+rf-px, px-(xf+wf-rf), 0)
			dy := max(yf+rf-py, py-(yf+hf-rf), 0)
			if dx*dx+dy*dy <= rf*rf {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	if a == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a
	mix := func(src uint32, d uint8) uint8 {
		return uint8((src + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(r, dst.R),
		G: mix(g, dst.G),
		B: mix(b, dst.B),
		A: 0xFF,
	})
}
