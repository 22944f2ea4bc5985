// Package window hosts the application window and drives one callback per
// display refresh through the Dear ImGui SDL backend.
package window

import (
	"fmt"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	// Background is the clear color behind the scene, RGBA 0-1.
	Background [4]float32
}

// Host owns the window and the GL context.
type Host struct {
	Frames

	config  Config
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// New creates the window and initializes OpenGL.
func New(cfg Config) (*Host, error) {
	h := &Host{config: cfg}

	var err error
	h.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	bg := cfg.Background
	h.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	h.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))))

	return h, nil
}

// Run starts the main loop. It returns when the window is closed.
func (h *Host) Run(hooks Hooks) {
	h.backend.Run(func() {
		w, ht := FramebufferSize()
		h.Step(time.Now(), w, ht, hooks)
	})
}

// SetTitle updates the window title.
func (h *Host) SetTitle(title string) {
	h.backend.SetWindowTitle(title)
}

// FramebufferSize returns the drawable size in pixels, accounting for HiDPI scaling.
func FramebufferSize() (width, height int) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int(size.X * scale.X), int(size.Y * scale.Y)
}
