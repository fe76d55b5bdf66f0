package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestGenerate_Sizes(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("got %d images, want 2", len(imgs))
	}
	for i, want := range []int{64, 32} {
		if b := imgs[i].Bounds(); b.Dx() != want || b.Dy() != want {
			t.Errorf("image %d is %v, want %dx%d", i, b, want, want)
		}
	}
}

func TestGenerate_FocusedSwatchInCentre(t *testing.T) {
	img := generate(64).(*image.RGBA)
	if got := img.RGBAAt(32, 32); got != swatchAmb {
		t.Errorf("centre pixel = %v, want %v", got, swatchAmb)
	}
	// Rounded corner leaves the very corner transparent.
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 0xFF})
	// Half-opaque white, premultiplied.
	blendPixel(img, 0, 0, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80})
	got := img.RGBAAt(0, 0)
	if got.R < 0x7E || got.R > 0x81 || got.A != 0xFF {
		t.Errorf("blended = %v, want about 0x80 grey", got)
	}
}
