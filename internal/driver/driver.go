package driver

import (
	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/logging"
	"github.com/san-kum/spincube/internal/render"
	"github.com/san-kum/spincube/internal/scene"
)

type State int

const (
	Uninitialized State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Driver builds the scene once and then animates the cube on every frame.
type Driver struct {
	cfg       config.Scene
	renderer  render.Renderer
	scheduler Scheduler
	surface   render.Surface

	scene  *scene.Scene
	camera *scene.PerspectiveCamera
	light  *scene.DirectionalLight
	cube   *scene.Mesh

	state  State
	frames uint64
	err    error

	// Bound once so every registration shares the same callback.
	frameFn  func(timestamp float64)
	resizeFn func()
}

func New(cfg config.Scene, r render.Renderer, s Scheduler) *Driver {
	d := &Driver{cfg: cfg, renderer: r, scheduler: s}
	d.frameFn = d.Render
	d.resizeFn = d.onResize
	return d
}

// Initialize builds the renderer state, scene, camera, light and cube,
// registers the resize handler and requests the first frame. If the
// initial resize fails the driver stays Uninitialized.
func (d *Driver) Initialize(surface render.Surface, events EventSource) error {
	if d.state != Uninitialized {
		return ErrAlreadyInitialized
	}
	if surface == nil {
		return ErrNilSurface
	}
	lightColor, err := d.cfg.LightColor()
	if err != nil {
		return err
	}
	cubeColor, err := d.cfg.CubeColor()
	if err != nil {
		return err
	}
	for _, w := range d.cfg.ColorWarnings() {
		logging.Logger().Warn("driver: suspicious color literal", "detail", w)
	}

	d.surface = surface
	d.renderer.SetPixelRatio(d.cfg.PixelRatio)
	d.scene = scene.New()
	d.setupCamera()
	d.setupLight(lightColor)
	d.setupModel(cubeColor)

	if err := d.Resize(); err != nil {
		return err
	}
	if events != nil {
		events.OnResize(d.resizeFn)
	}
	d.state = Running
	logging.Logger().Info("driver: initialized",
		"width", surface.Width(), "height", surface.Height(), "objects", d.scene.Len())
	d.scheduler.RequestFrame(d.frameFn)
	return nil
}

func (d *Driver) setupCamera() {
	c := d.cfg.Camera
	d.camera = scene.NewPerspectiveCamera(c.FOV, 1, c.Near, c.Far)
	d.camera.Position.Z = c.Z
}

func (d *Driver) setupLight(color scene.Color) {
	p := d.cfg.Light.Position
	d.light = scene.NewDirectionalLight(color, d.cfg.Light.Intensity)
	d.light.Position = scene.Vec3{X: p[0], Y: p[1], Z: p[2]}
	d.scene.Add(d.light)
}

func (d *Driver) setupModel(color scene.Color) {
	s, p := d.cfg.Cube.Size, d.cfg.Cube.Position
	d.cube = scene.NewMesh(scene.NewBoxGeometry(s[0], s[1], s[2]), scene.NewPhongMaterial(color))
	d.cube.Position = scene.Vec3{X: p[0], Y: p[1], Z: p[2]}
	d.scene.Add(d.cube)
}

// Resize matches the camera aspect and renderer size to the surface.
// A surface with a non-positive dimension is rejected with a
// *SurfaceError and nothing changes.
func (d *Driver) Resize() error {
	if d.surface == nil {
		return ErrNilSurface
	}
	w, h := d.surface.Width(), d.surface.Height()
	if w <= 0 || h <= 0 {
		return &SurfaceError{Width: w, Height: h}
	}
	d.camera.Aspect = float64(w) / float64(h)
	d.camera.UpdateProjectionMatrix()
	d.renderer.SetSize(w, h)
	return nil
}

func (d *Driver) onResize() {
	if d.state == Stopped {
		return
	}
	if err := d.Resize(); err != nil {
		logging.Logger().Warn("driver: resize rejected", "err", err)
	}
}

// Render draws one frame, advances the animation to timestamp and
// requests the next frame. A renderer failure stops the driver.
func (d *Driver) Render(timestamp float64) {
	if d.state != Running {
		return
	}
	if err := d.renderer.Render(d.scene, d.camera); err != nil {
		d.err = &FrameError{Frame: d.frames, Timestamp: timestamp, Wrapped: err}
		logging.Logger().Error("driver: stopping", "err", d.err)
		d.Stop()
		return
	}
	d.Update(timestamp)
	d.frames++
	d.scheduler.RequestFrame(d.frameFn)
}

// Update sets both cube rotation angles to the elapsed time in seconds.
// It does nothing unless the driver is running.
func (d *Driver) Update(timestamp float64) {
	if d.state != Running {
		return
	}
	secs := timestamp / 1000
	d.cube.Rotation.X = secs
	d.cube.Rotation.Y = secs
}

// Stop ends the animation. Further frames and resizes are ignored. A
// driver that never started is left as it is.
func (d *Driver) Stop() {
	if d.state != Running {
		return
	}
	d.state = Stopped
	d.scheduler.Cancel()
	logging.Logger().Info("driver: stopped", "frames", d.frames)
}

func (d *Driver) State() State                     { return d.state }
func (d *Driver) Scene() *scene.Scene              { return d.scene }
func (d *Driver) Camera() *scene.PerspectiveCamera { return d.camera }
func (d *Driver) Light() *scene.DirectionalLight   { return d.light }
func (d *Driver) Cube() *scene.Mesh                { return d.cube }
func (d *Driver) Frames() uint64                   { return d.frames }
func (d *Driver) Err() error                       { return d.err }
