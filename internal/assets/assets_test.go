package assets

import (
	"bytes"
	"image"
	"image/png"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/Faultbox/orrery/internal/scene"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"sun.png": {Data: pngBytes(t, 8, 4)},
		"big.png":        {Data: pngBytes(t, 64, 32)},
		"broken.png":     {Data: []byte("garbage")},
	}
}

func TestLoad(t *testing.T) {
	m := NewManager(testFS(t), 0)

	tex, err := m.Load("sun.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Name != "sun.png" {
		t.Errorf("name = %q", tex.Name)
	}
	if tex.Image.Bounds().Dx() != 8 || tex.Image.Bounds().Dy() != 4 {
		t.Errorf("size = %v, want 8x4", tex.Image.Bounds().Size())
	}
}

func TestLoadDownscales(t *testing.T) {
	m := NewManager(testFS(t), 16)

	tex, err := m.Load("big.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tex.Image.Bounds().Size(); got.X != 16 || got.Y != 8 {
		t.Errorf("size = %v, want 16x8", got)
	}
}

func TestLoadErrors(t *testing.T) {
	m := NewManager(testFS(t), 0)

	if _, err := m.Load("missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := m.Load("broken.png"); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestCacheHits(t *testing.T) {
	m := NewManager(testFS(t), 0)

	first, err := m.Load("big.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := m.Load("big.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Error("second load should return the cached texture")
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses; want 1, 1", hits, misses)
	}
}

func TestRequestAsync(t *testing.T) {
	m := NewManager(testFS(t), 0)

	var (
		mu      sync.Mutex
		results = map[string]error{}
		loaded  = map[string]*scene.Texture{}
	)
	for _, name := range []string{"big.png", "missing.png", "broken.png"} {
		m.Request(name, func(tex *scene.Texture, err error) {
			mu.Lock()
			defer mu.Unlock()
			results[name] = err
			loaded[name] = tex
		})
	}
	m.Wait()

	if len(results) != 3 {
		t.Fatalf("callbacks = %d, want 3", len(results))
	}
	if results["big.png"] != nil || loaded["big.png"] == nil {
		t.Errorf("big.png: tex=%v err=%v", loaded["big.png"], results["big.png"])
	}
	if results["missing.png"] == nil {
		t.Error("missing.png should fail")
	}
	if results["broken.png"] == nil {
		t.Error("broken.png should fail")
	}
}

func TestRequestAfterClose(t *testing.T) {
	m := NewManager(testFS(t), 0)
	m.Close()

	called := false
	m.Request("big.png", func(tex *scene.Texture, err error) {
		called = true
		if err == nil {
			t.Error("expected error after Close")
		}
	})
	if !called {
		t.Error("callback should run synchronously after Close")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("a", &scene.Texture{Name: "a"})

	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit")
	}
	c.Clear()
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after Clear")
	}
	hits, misses := c.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("stats = %d, %d; want 0, 1", hits, misses)
	}
}
