// Package driver owns a scene, a camera, a light and one spinning cube,
// and keeps them consistent with a host surface.
//
// The host (a terminal program, a native window, a headless renderer)
// supplies four collaborators:
//
//   - [render.Surface]: the drawing region whose size the camera tracks
//   - [render.Renderer]: draws the scene each frame
//   - [EventSource]: delivers resize notifications
//   - [Scheduler]: runs the next frame on the host's refresh signal
//
// # Example
//
//	loop := loop.New()
//	d := driver.New(cfg.Scene, render.NewTerminalRenderer(), loop)
//	notifier := &driver.ResizeNotifier{}
//	if err := d.Initialize(surface, notifier); err != nil {
//		return err
//	}
//	for range ticker.C {
//		loop.Tick(time.Now())
//	}
//
// # Thread Safety
//
// A Driver is NOT thread-safe. Resize and frame callbacks must arrive on
// one logical thread, as they do from a bubbletea Update or a raylib
// main loop.
package driver
