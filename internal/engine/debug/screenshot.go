// Package debug holds developer tooling that sits beside the render loop.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

const timestampLayout = "2006-01-02_15-04-05"

// Screenshots writes frame snapshots as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
	seq    int
}

// NewScreenshots writes into dir, creating it on first capture. An empty
// dir means the working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	if prefix == "" {
		prefix = "orrery"
	}
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Dir returns the output directory.
func (s *Screenshots) Dir() string {
	return s.dir
}

// Filename returns the path the next capture would use.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format(timestampLayout))
	if s.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", s.prefix, s.now().Format(timestampLayout), s.seq)
	}
	if s.dir != "" {
		name = filepath.Join(s.dir, name)
	}
	return name
}

// Capture encodes img to a new file and returns its path. Captures within
// the same second get a numeric suffix instead of overwriting.
func (s *Screenshots) Capture(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("empty frame")
	}
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	s.seq = 0
	filename := s.Filename()
	for exists(filename) {
		s.seq++
		filename = s.Filename()
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	b := img.Bounds()
	logger.Info("screenshot saved",
		zap.String("path", filename),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return filename, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
