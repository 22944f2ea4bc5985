// Package assets loads texture images in the background and caches them.
package assets

import (
	"fmt"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// Manager loads textures from a file system. Requests are served on
// goroutines; completed textures are cached by name.
type Manager struct {
	fsys    fs.FS
	maxSize int
	cache   *Cache

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewManager creates a manager reading from fsys. Textures larger than
// maxSize on either side are downscaled; maxSize <= 0 disables that.
func NewManager(fsys fs.FS, maxSize int) *Manager {
	return &Manager{
		fsys:    fsys,
		maxSize: maxSize,
		cache:   NewCache(),
	}
}

// Load reads and decodes a texture synchronously.
func (m *Manager) Load(name string) (*scene.Texture, error) {
	if tex, ok := m.cache.Get(name); ok {
		return tex, nil
	}

	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading texture %s: %w", name, err)
	}

	img, format, err := texture.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}

	rgba := texture.FitWithin(img, m.maxSize)
	if rgba.Bounds() != img.Bounds() {
		logger.Debug("texture downscaled",
			zap.String("name", name),
			zap.Stringer("from", img.Bounds().Size()),
			zap.Stringer("to", rgba.Bounds().Size()))
	}

	tex := &scene.Texture{Name: name, Image: rgba}
	m.cache.Set(name, tex)

	logger.Debug("texture loaded",
		zap.String("name", name),
		zap.String("format", format),
		zap.Int("width", rgba.Bounds().Dx()),
		zap.Int("height", rgba.Bounds().Dy()))

	return tex, nil
}

// Request loads a texture on a goroutine and calls done with the result.
// done runs on the loader goroutine. Requests after Close fail immediately.
func (m *Manager) Request(name string, done func(*scene.Texture, error)) {
	if tex, ok := m.cache.Get(name); ok {
		done(tex, nil)
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		done(nil, fmt.Errorf("texture %s: manager closed", name))
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		tex, err := m.Load(name)
		done(tex, err)
	}()
}

// Wait blocks until every outstanding request has completed.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// Close rejects new requests, waits for outstanding ones and clears the cache.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.wg.Wait()
	m.cache.Clear()
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for decoded textures.
type Cache struct {
	data map[string]*scene.Texture
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*scene.Texture),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*scene.Texture, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tex, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return tex, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, tex *scene.Texture) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = tex
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*scene.Texture)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
