// Package app wires the scene, camera rig, frame clock and renderer into a
// running viewer.
package app

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/clock"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/ui"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
)

const (
	toastDuration = 3 * time.Second

	// Longer gaps (window drags, breakpoints) are treated as one slow frame.
	maxFrameDelta = 250 * time.Millisecond
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	variant *Variant

	host     *window.Host
	renderer *renderer.Renderer
	textures *assets.Manager
	rig      *camera.Rig
	clock    *clock.Clock
	fps      *clock.FPSCounter
	router   *input.Router
	panel    *ui.Panel
	shots    *debug.Screenshots

	wantShot   bool
	toast      string
	toastUntil time.Time
	shownFPS   int
}

// New creates the window, the GL resources and the chosen scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	// Texture loading starts as soon as the bodies exist, so the manager
	// comes first.
	a.textures = assets.NewManager(os.DirFS(cfg.Scene.TextureDir), cfg.Scene.MaxTextureSize)

	var err error
	a.variant, err = BuildVariant(cfg.Scene.Variant, a.textures)
	if err != nil {
		a.textures.Close()
		return nil, err
	}

	a.host, err = window.New(window.Config{
		Title:      fmt.Sprintf("%s [%s]", cfg.Window.Title, a.variant.Name),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: a.variant.Background,
	})
	if err != nil {
		a.textures.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must be created AFTER the window, since the GL context must exist
	a.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: a.variant.Background,
	})
	if err != nil {
		a.textures.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.rig = NewRig(cfg.Scene.Controls, a.variant, cfg.Window.Width, cfg.Window.Height)
	a.fps = clock.NewFPSCounter()
	a.clock = clock.New(a.host, a.variant.Graph, a.rig, a.renderer, a.fps, clock.Options{
		TimeScaled: cfg.Scene.TimeScaledRotation,
		MaxDelta:   maxFrameDelta,
	})

	a.router = input.NewRouter(input.ImGui{}, a.rig)
	a.router.OnScreenshot = func() { a.wantShot = true }

	a.panel = NewPanel(a.rig.Camera(), a.variant.Graph)
	a.panel.Visible = cfg.Debug.Panel
	a.shots = debug.NewScreenshots(cfg.Debug.ScreenshotDir, "orrery")

	logger.Info("scene ready",
		zap.String("variant", a.variant.Name),
		zap.String("controls", cfg.Scene.Controls),
		zap.Int("entities", a.variant.Graph.Len()),
		zap.Bool("time_scaled", cfg.Scene.TimeScaledRotation))

	return a, nil
}

// Run starts the frame clock and blocks until the window closes.
func (a *App) Run() error {
	if err := a.clock.Start(); err != nil {
		return err
	}
	logger.Info("starting frame loop")

	a.host.Run(window.Hooks{
		Resize: a.resize,
		Input:  a.router.Poll,
		Draw:   a.draw,
	})
	return nil
}

func (a *App) resize(width, height int) {
	a.renderer.Resize(width, height)
	a.rig.Resize(width, height)
}

// draw runs after the tick, so the render target holds this frame.
func (a *App) draw() {
	ui.DrawBackground(a.renderer.Texture())

	if a.wantShot {
		a.wantShot = false
		a.screenshot()
	}

	a.panel.Draw()
	if a.cfg.Debug.ShowFPS {
		ui.DrawFPS(a.fps.FPS(), a.fps.FrameTime())
	}
	if a.toast != "" {
		if time.Now().After(a.toastUntil) {
			a.toast = ""
		}
		ui.DrawToast(a.toast)
	}

	if fps := int(a.fps.FPS() + 0.5); fps != a.shownFPS {
		a.shownFPS = fps
		a.host.SetTitle(fmt.Sprintf("%s [%s] %d FPS", a.cfg.Window.Title, a.variant.Name, fps))
	}
}

func (a *App) screenshot() {
	path, err := a.shots.Capture(a.renderer.Snapshot())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		a.showToast("Screenshot failed")
		return
	}
	a.showToast("Saved " + path)
}

func (a *App) showToast(msg string) {
	a.toast = msg
	a.toastUntil = time.Now().Add(toastDuration)
}

// Close releases GL resources and stops texture loading.
func (a *App) Close() {
	logger.Info("closing viewer")
	hits, misses := a.textures.Stats()
	logger.Debug("texture cache", zap.Int("hits", hits), zap.Int("misses", misses))

	a.textures.Close()
	a.renderer.Close()
}
