// Package gui hosts the driver in a native raylib window. The window is the
// surface, raylib's resize flag is the resize event, and each pass of the
// main loop is a frame tick.
package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/driver"
	"github.com/san-kum/spincube/internal/logging"
	"github.com/san-kum/spincube/internal/loop"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	title        = "spincube"
)

// windowSurface reads the live framebuffer size.
type windowSurface struct{}

func (windowSurface) Width() int  { return rl.GetScreenWidth() }
func (windowSurface) Height() int { return rl.GetScreenHeight() }

// initWindow opens a resizable window, multisampled when antialiasing is on.
func initWindow(cfg *config.Config) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if cfg.Scene.Antialias {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(windowWidth, windowHeight, title)
	rl.SetTargetFPS(int32(cfg.Loop.FPS))
}

// Run opens the window and animates until it is closed. It returns the
// driver's error, if the renderer failed.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	initWindow(cfg)
	defer rl.CloseWindow()

	sc := cfg.Scene
	if dpi := rl.GetWindowScaleDPI(); dpi.X > 0 {
		sc.PixelRatio = float64(dpi.X)
	}

	frames := loop.New()
	notifier := &driver.ResizeNotifier{}
	d := driver.New(sc, NewWindowRenderer(), frames)
	if err := d.Initialize(windowSurface{}, notifier); err != nil {
		return err
	}
	logging.Logger().Info("gui: window open", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())

	for !rl.WindowShouldClose() && d.State() == driver.Running {
		if rl.IsWindowResized() {
			notifier.Emit()
		}
		frames.Tick(time.Now())
	}
	d.Stop()
	logging.Logger().Info("gui: window closed", "frames", d.Frames())
	return d.Err()
}
