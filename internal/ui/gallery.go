package ui

import (
	"fmt"
	"image"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/depeter/snapscroll/internal/cache"
	"github.com/depeter/snapscroll/internal/snap"
)

// placeholderCount is how many generated images the gallery shows when no
// sources are configured.
const placeholderCount = 6

// GalleryScreen is a carousel of images loaded through the image cache.
type GalleryScreen struct {
	carousel *Carousel
	router   *PointerRouter
	items    []*ImageItem
	cache    *cache.ImageCache
	selected int
}

// NewGalleryScreen builds a gallery over sources (file paths or URLs). With
// no sources it shows generated gradients.
func NewGalleryScreen(opts snap.Options, sources []string, itemSize float64, imgCache *cache.ImageCache) (*GalleryScreen, error) {
	g := &GalleryScreen{router: NewPointerRouter(), cache: imgCache}

	if len(sources) == 0 {
		for i, img := range GradientImages(placeholderCount, int(itemSize), GalleryHeight) {
			g.items = append(g.items, NewImageItemFrom(img, itemSize, fmt.Sprintf("Gradient %d", i+1)))
		}
	} else {
		for _, src := range sources {
			g.items = append(g.items, &ImageItem{Source: src, Size: itemSize, Caption: path.Base(src)})
		}
	}

	items := make([]Item, len(g.items))
	for i, it := range g.items {
		items[i] = it
	}

	onSnap := opts.OnSnap
	opts.OnSnap = func(i int) {
		g.selected = i
		if onSnap != nil {
			onSnap(i)
		}
	}
	rect := Rect{X: 0, Y: TabBarHeight + 100, W: ScreenWidth, H: GalleryHeight}
	c, err := NewCarousel(opts, items, rect)
	if err != nil {
		return nil, fmt.Errorf("gallery carousel: %w", err)
	}
	g.carousel = c
	g.selected = c.View().Focused()
	return g, nil
}

func (g *GalleryScreen) Name() string { return "Gallery" }

// OnEnter starts loading every image; the cache dedups repeats.
func (g *GalleryScreen) OnEnter() {
	if g.cache == nil {
		return
	}
	for _, it := range g.items {
		it.Load(g.cache, int(it.Size), GalleryHeight)
	}
}

func (g *GalleryScreen) OnExit() {}

func (g *GalleryScreen) ActiveCarousel() *Carousel { return g.carousel }

func (g *GalleryScreen) Update(in Input) (*ScreenTransition, error) {
	g.router.Dispatch(in.Pointers, g.carousel)
	if step := in.Step + g.carousel.NavStep(in.Nav); step != 0 {
		g.carousel.Step(step)
	}
	g.carousel.Update(in.Now)
	return nil, nil
}

func (g *GalleryScreen) Draw(dst *ebiten.Image) {
	DrawText(dst, "Gallery", SectionPadding, TabBarHeight+40, FontSizeHeading, ColorText)
	g.carousel.Draw(dst)

	if g.selected < len(g.items) {
		label := fmt.Sprintf("%d / %d  %s", g.selected+1, len(g.items), g.items[g.selected].Caption)
		DrawTextCentered(dst, label, ScreenWidth/2, ScreenHeight-80, FontSizeBody, ColorTextSecondary)
	}
}

// GradientImages renders n horizontal gradients whose hues walk around the
// colour wheel, blended in HCL so the steps look even.
func GradientImages(n, w, h int) []image.Image {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	out := make([]image.Image, n)
	for i := range out {
		hue := 360 * float64(i) / float64(n)
		from := colorful.Hcl(hue, 0.6, 0.45).Clamped()
		to := colorful.Hcl(hue+60, 0.5, 0.8).Clamped()

		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for x := 0; x < w; x++ {
			c := from.BlendHcl(to, float64(x)/float64(max(w-1, 1))).Clamped()
			for y := 0; y < h; y++ {
				img.Set(x, y, c)
			}
		}
		out[i] = img
	}
	return out
}
