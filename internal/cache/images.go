package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedSource is returned for sources that are neither a file path
// nor an http(s) or file URL.
var ErrUnsupportedSource = errors.New("cache: unsupported image source")

// maxConcurrentLoads bounds simultaneous decodes and downloads.
const maxConcurrentLoads = 6

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache keeps decoded gallery images in memory and, for remote sources,
// the fetched bytes on disk.
type ImageCache struct {
	cacheDir string
	client   *http.Client
	memory   sync.Map // source -> image.Image
	loading  sync.Map // source -> *loadEntry
	sem      chan struct{}
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	done      bool
	callbacks []func(image.Image, error)
}

// NewImageCache creates a cache that stores downloads under cacheDir.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		client:   httpClient,
		sem:      make(chan struct{}, maxConcurrentLoads),
	}, nil
}

// Get returns a loaded image, or nil.
func (ic *ImageCache) Get(src string) image.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(image.Image)
	}
	return nil
}

// LoadAsync loads src in the background. The callback runs once per call,
// possibly on another goroutine, with either the image or the load error.
func (ic *ImageCache) LoadAsync(src string, callback func(image.Image, error)) {
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(image.Image), nil)
		return
	}

	entry := &loadEntry{callbacks: []func(image.Image, error){callback}}
	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		e := existing.(*loadEntry)
		e.mu.Lock()
		done := e.done
		if !done {
			e.callbacks = append(e.callbacks, callback)
		}
		e.mu.Unlock()
		if done {
			// Finished between the lookup and the lock.
			ic.LoadAsync(src, callback)
		}
		return
	}

	go func() {
		ic.sem <- struct{}{}
		img, err := ic.Load(src)
		<-ic.sem

		if err == nil {
			ic.memory.Store(src, img)
		}
		entry.mu.Lock()
		entry.done = true
		ic.loading.Delete(src)
		cbs := entry.callbacks
		entry.callbacks = nil
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(img, err)
		}
	}()
}

// Load decodes src synchronously without touching the memory cache.
func (ic *ImageCache) Load(src string) (image.Image, error) {
	u, err := url.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, src)
	}
	switch strings.ToLower(u.Scheme) {
	case "":
		return decodeFile(src)
	case "file":
		return decodeFile(u.Path)
	case "http", "https":
		return ic.fetch(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, src)
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (ic *ImageCache) fetch(src string) (image.Image, error) {
	diskPath := ic.diskPath(src)

	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		// Corrupt cache file, fetch again.
		os.Remove(diskPath)
	}

	resp, err := ic.client.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

func (ic *ImageCache) diskPath(src string) string {
	h := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all loaded images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// ClearDisk removes all downloaded images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}

// Fit scales img to fit inside w×h, keeping its aspect ratio. Images that
// already fit are returned as is.
func Fit(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() <= w && b.Dy() <= h) {
		return img
	}
	scale := min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dw := max(1, int(float64(b.Dx())*scale))
	dh := max(1, int(float64(b.Dy())*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
