package cache

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xB0, G: 0x43, B: 0x49, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newCache(t *testing.T) *ImageCache {
	t.Helper()
	ic, err := NewImageCache(filepath.Join(t.TempDir(), "images"))
	if err != nil {
		t.Fatal(err)
	}
	return ic
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	if err := os.WriteFile(path, pngBytes(t, 8, 4), 0o644); err != nil {
		t.Fatal(err)
	}
	ic := newCache(t)

	for _, src := range []string{path, "file://" + path} {
		img, err := ic.Load(src)
		if err != nil {
			t.Fatalf("Load(%q): %v", src, err)
		}
		if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
			t.Errorf("bounds = %v, want 8x4", b)
		}
	}
}

func TestLoad_UnsupportedSource(t *testing.T) {
	ic := newCache(t)
	if _, err := ic.Load("ftp://example.com/a.png"); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("err = %v, want ErrUnsupportedSource", err)
	}
}

func TestLoad_HTTPUsesDiskCache(t *testing.T) {
	var hits atomic.Int32
	body := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(body)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "images")
	ic, err := NewImageCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ic.Load(srv.URL + "/a.png"); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// A fresh cache over the same directory reads from disk.
	ic2, err := NewImageCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ic2.Load(srv.URL + "/a.png"); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestClearDisk_RefetchesAfterwards(t *testing.T) {
	var hits atomic.Int32
	body := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(body)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "images")
	ic, err := NewImageCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ic.CacheDir() != dir {
		t.Errorf("CacheDir = %q, want %q", ic.CacheDir(), dir)
	}
	if _, err := ic.Load(srv.URL + "/a.png"); err != nil {
		t.Fatalf("first load: %v", err)
	}

	if err := ic.ClearDisk(); err != nil {
		t.Fatalf("ClearDisk: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("cache dir still present after ClearDisk: %v", err)
	}

	if _, err := ic.Load(srv.URL + "/a.png"); err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("server hits = %d, want 2", n)
	}
}

func TestLoad_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ic := newCache(t)
	if _, err := ic.Load(srv.URL + "/missing.png"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestLoadAsync_DedupsAndCaches(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	body := pngBytes(t, 3, 3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write(body)
	}))
	defer srv.Close()

	ic := newCache(t)
	src := srv.URL + "/b.png"

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		ic.LoadAsync(src, func(img image.Image, err error) {
			defer wg.Done()
			if err != nil || img == nil {
				t.Errorf("callback got (%v, %v)", img, err)
			}
		})
	}
	close(release)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callbacks did not fire")
	}

	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
	if ic.Get(src) == nil {
		t.Error("image not kept in memory")
	}

	ic.Clear()
	if ic.Get(src) != nil {
		t.Error("Clear left image in memory")
	}
}

func TestLoadAsync_ReportsError(t *testing.T) {
	ic := newCache(t)
	errc := make(chan error, 1)
	ic.LoadAsync(filepath.Join(t.TempDir(), "nope.png"), func(_ image.Image, err error) {
		errc <- err
	})
	select {
	case err := <-errc:
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want not-exist", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{100, 100, 100, 50},
		{400, 50, 100, 50},
		{800, 800, 400, 200},
		{0, 10, 400, 200},
	}
	for _, tt := range tests {
		b := Fit(src, tt.w, tt.h).Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("Fit(%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}
