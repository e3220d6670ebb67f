package driver_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/driver"
	"github.com/san-kum/spincube/internal/loop"
	"github.com/san-kum/spincube/internal/render"
	"github.com/san-kum/spincube/internal/scene"
)

var _ = Describe("Driver", func() {
	var (
		cfg      *config.Config
		surface  *render.Size
		renderer *fakeRenderer
		sched    *fakeScheduler
		notifier *driver.ResizeNotifier
		d        *driver.Driver
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		surface = &render.Size{W: 800, H: 600}
		renderer = &fakeRenderer{}
		sched = &fakeScheduler{}
		notifier = &driver.ResizeNotifier{}
		d = driver.New(cfg.Scene, renderer, sched)
	})

	Describe("Initialize", func() {
		It("builds a scene with exactly one light and one mesh", func() {
			Expect(d.State()).To(Equal(driver.Uninitialized))
			Expect(d.Initialize(surface, notifier)).To(Succeed())

			Expect(d.State()).To(Equal(driver.Running))
			Expect(d.Scene().Len()).To(Equal(2))
			Expect(d.Scene().Lights()).To(ConsistOf(d.Light()))
			Expect(d.Scene().Meshes()).To(ConsistOf(d.Cube()))
		})

		It("uses the configured camera, light and cube", func() {
			Expect(d.Initialize(surface, notifier)).To(Succeed())

			cam := d.Camera()
			Expect(cam.FOV).To(Equal(75.0))
			Expect(cam.Near).To(Equal(0.1))
			Expect(cam.Far).To(Equal(100.0))
			Expect(cam.Position).To(Equal(scene.Vec3{Z: 2}))

			Expect(d.Light().Color).To(Equal(scene.White))
			Expect(d.Light().Intensity).To(Equal(1.0))
			Expect(d.Light().Position).To(Equal(scene.Vec3{X: -1, Y: 2, Z: 4}))

			cube := d.Cube()
			Expect(*cube.Geometry).To(Equal(scene.BoxGeometry{Width: 1, Height: 1, Depth: 1}))
			Expect(cube.Position).To(Equal(scene.Vec3{}))
			Expect(cube.Material.Color).To(Equal(scene.Color(0x44a88)))
		})

		It("sets the pixel ratio, sizes the renderer and schedules one frame", func() {
			cfg.Scene.PixelRatio = 2
			d = driver.New(cfg.Scene, renderer, sched)
			Expect(d.Initialize(surface, notifier)).To(Succeed())

			Expect(renderer.ratio).To(Equal(2.0))
			Expect(renderer.sizes).To(Equal([][2]int{{800, 600}}))
			Expect(sched.requests).To(Equal(1))
			Expect(renderer.renders).To(BeZero())
		})

		It("rejects a nil surface", func() {
			Expect(d.Initialize(nil, notifier)).To(MatchError(driver.ErrNilSurface))
			Expect(d.State()).To(Equal(driver.Uninitialized))
		})

		It("rejects a second call", func() {
			Expect(d.Initialize(surface, notifier)).To(Succeed())
			Expect(d.Initialize(surface, notifier)).To(MatchError(driver.ErrAlreadyInitialized))
			Expect(sched.requests).To(Equal(1))
		})

		It("stays uninitialized when the surface has no height", func() {
			surface.H = 0
			err := d.Initialize(surface, notifier)
			Expect(err).To(MatchError(driver.ErrInvalidSurface))
			Expect(d.State()).To(Equal(driver.Uninitialized))
			Expect(sched.requests).To(BeZero())
		})

		It("rejects an unparseable color", func() {
			cfg.Scene.Cube.Color = "blue"
			d = driver.New(cfg.Scene, renderer, sched)
			Expect(d.Initialize(surface, notifier)).NotTo(Succeed())
		})
	})

	Describe("Resize", func() {
		BeforeEach(func() {
			Expect(d.Initialize(surface, notifier)).To(Succeed())
		})

		DescribeTable("keeps the camera aspect equal to width/height",
			func(w, h int) {
				surface.Set(w, h)
				notifier.Emit()
				Expect(d.Camera().Aspect).To(Equal(float64(w) / float64(h)))
				Expect(renderer.sizes[len(renderer.sizes)-1]).To(Equal([2]int{w, h}))
			},
			Entry("landscape", 1920, 1080),
			Entry("portrait", 300, 900),
			Entry("square", 512, 512),
			Entry("one pixel tall", 7, 1),
		)

		It("updates the projection matrix", func() {
			before := d.Camera().ProjectionMatrix()
			surface.Set(400, 600)
			Expect(d.Resize()).To(Succeed())
			after := d.Camera().ProjectionMatrix()
			Expect(after[0]).To(BeNumerically("~", before[0]*2, 1e-12))
			Expect(after[5]).To(Equal(before[5]))
		})

		It("is idempotent", func() {
			Expect(d.Resize()).To(Succeed())
			aspect, proj := d.Camera().Aspect, d.Camera().ProjectionMatrix()
			Expect(d.Resize()).To(Succeed())

			Expect(d.Camera().Aspect).To(Equal(aspect))
			Expect(d.Camera().ProjectionMatrix()).To(Equal(proj))
			n := len(renderer.sizes)
			Expect(renderer.sizes[n-1]).To(Equal(renderer.sizes[n-2]))
		})

		It("fails fast on zero height and leaves state untouched", func() {
			aspect := d.Camera().Aspect
			calls := len(renderer.sizes)
			surface.Set(800, 0)

			err := d.Resize()
			Expect(err).To(MatchError(driver.ErrInvalidSurface))
			var se *driver.SurfaceError
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.Height).To(BeZero())

			Expect(d.Camera().Aspect).To(Equal(aspect))
			Expect(math.IsInf(d.Camera().Aspect, 0)).To(BeFalse())
			Expect(renderer.sizes).To(HaveLen(calls))
		})

		It("survives a zero-height event and recovers", func() {
			surface.Set(800, 0)
			notifier.Emit()
			surface.Set(1000, 500)
			notifier.Emit()
			Expect(d.Camera().Aspect).To(Equal(2.0))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			Expect(d.Initialize(surface, notifier)).To(Succeed())
		})

		DescribeTable("sets both angles to elapsed seconds",
			func(ms float64) {
				d.Update(ms)
				Expect(d.Cube().Rotation.X).To(Equal(ms / 1000))
				Expect(d.Cube().Rotation.Y).To(Equal(ms / 1000))
				Expect(d.Cube().Rotation.Z).To(BeZero())
			},
			Entry("first frame", 0.0),
			Entry("one frame in", 16.6),
			Entry("one second", 1000.0),
			Entry("one hour", 3.6e6),
		)

		It("assigns absolute angles instead of accumulating", func() {
			d.Update(1000)
			d.Update(1000)
			Expect(d.Cube().Rotation.X).To(Equal(1.0))
			d.Update(500)
			Expect(d.Cube().Rotation.Y).To(Equal(0.5))
		})
	})

	Describe("Render", func() {
		BeforeEach(func() {
			Expect(d.Initialize(surface, notifier)).To(Succeed())
		})

		It("draws, updates and schedules exactly one next frame", func() {
			for i := 1; i <= 5; i++ {
				sched.fire(float64(i) * 100)
				Expect(renderer.renders).To(Equal(i))
				Expect(sched.requests).To(Equal(i + 1))
				Expect(sched.pending).NotTo(BeNil())
			}
			Expect(d.Frames()).To(Equal(uint64(5)))
			Expect(d.Cube().Rotation.X).To(Equal(0.5))
		})

		It("stops on renderer failure without rescheduling", func() {
			boom := errors.New("boom")
			renderer.failWith = boom
			sched.fire(40)

			Expect(d.State()).To(Equal(driver.Stopped))
			Expect(d.Err()).To(MatchError(driver.ErrRenderer))
			Expect(d.Err()).To(MatchError(boom))
			var fe *driver.FrameError
			Expect(errors.As(d.Err(), &fe)).To(BeTrue())
			Expect(fe.Timestamp).To(Equal(40.0))
			Expect(sched.requests).To(Equal(1))
			Expect(sched.cancelled).To(BeTrue())
			Expect(d.Cube().Rotation.X).To(BeZero())
		})
	})

	Describe("Stop", func() {
		BeforeEach(func() {
			Expect(d.Initialize(surface, notifier)).To(Succeed())
		})

		It("cancels the scheduler and ignores later frames and resizes", func() {
			d.Stop()
			d.Stop()
			Expect(d.State()).To(Equal(driver.Stopped))
			Expect(sched.cancelled).To(BeTrue())

			d.Render(1000)
			Expect(renderer.renders).To(BeZero())

			calls := len(renderer.sizes)
			surface.Set(10, 10)
			notifier.Emit()
			Expect(renderer.sizes).To(HaveLen(calls))
		})
	})

	Describe("before Initialize", func() {
		It("ignores Update, Render and Stop", func() {
			Expect(func() { d.Update(1000) }).NotTo(Panic())
			d.Render(1000)
			d.Stop()
			Expect(d.State()).To(Equal(driver.Uninitialized))
			Expect(sched.cancelled).To(BeFalse())
			Expect(renderer.renders).To(BeZero())
		})

		It("can still be initialized after an early Stop", func() {
			d.Stop()
			Expect(d.Initialize(surface, notifier)).To(Succeed())
			Expect(d.State()).To(Equal(driver.Running))
		})
	})

	Describe("with a real loop", func() {
		It("animates from the loop's elapsed timestamps", func() {
			l := loop.New()
			d = driver.New(cfg.Scene, renderer, l)
			Expect(d.Initialize(surface, notifier)).To(Succeed())

			for _, ms := range []float64{0, 250, 1000} {
				Expect(l.TickAt(ms)).To(BeTrue())
			}
			Expect(d.Cube().Rotation.X).To(Equal(1.0))
			Expect(l.Pending()).To(BeTrue())

			d.Stop()
			Expect(l.Pending()).To(BeFalse())
			Expect(l.TickAt(2000)).To(BeFalse())
		})
	})
})

var _ = Describe("State", func() {
	It("has readable names", func() {
		Expect(driver.Uninitialized.String()).To(Equal("uninitialized"))
		Expect(driver.Running.String()).To(Equal("running"))
		Expect(driver.Stopped.String()).To(Equal("stopped"))
		Expect(driver.State(9).String()).To(Equal("unknown"))
	})
})
