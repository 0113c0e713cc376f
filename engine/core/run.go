package core

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/glsketch/engine/gfx"
)

// Run wires the platform window + graphics context and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newContext func(Window, Config) (gfx.Context, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	cfg.normalize()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}

	ctx, err := newContext(win, cfg)
	if err != nil {
		return err
	}
	if s, ok := ctx.(interface{ Shutdown() }); ok {
		defer s.Shutdown()
	}

	w, h := win.FramebufferSize()
	ctx.Viewport(0, 0, int32(w), int32(h))

	eng := &Engine{Window: win, GL: ctx, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.dispatch(app, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			ctx.Viewport(0, 0, int32(fw), int32(fh))
		}
	})

	app.OnStart(eng)

	drv := newFrameDriver(cfg.TickRate, cfg.MaxSteps, eng.start)
	clear := cfg.ClearColor

	for !win.ShouldClose() {
		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		alpha := drv.advance(time.Now(), func(elapsed, dt float64) {
			app.OnUpdate(eng, elapsed, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, elapsed, dt) })
		})

		ctx.ClearColor(clear[0], clear[1], clear[2], clear[3])
		ctx.ClearDepth(1)
		ctx.Clear(gfx.ClearColorBit | gfx.ClearDepthBit)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	eng.Layers.ForEachReverse(func(l Layer) bool {
		l.OnDetach(eng)
		return false
	})
	app.OnShutdown(eng)
	slog.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

// dispatch feeds input state, then layers top-down until one handles the
// event, then the app.
func (e *Engine) dispatch(app App, ev Event) {
	e.Input.Handle(ev)
	e.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
	app.OnEvent(e, ev)
}

// frameDriver runs a fixed-timestep update with render interpolation.
type frameDriver struct {
	tick    time.Duration
	maxStep int // prevent spiral of death
	start   time.Time
	prev    time.Time
	accum   time.Duration
	ticks   int64
}

func newFrameDriver(rate, maxStep int, start time.Time) *frameDriver {
	return &frameDriver{
		tick:    time.Second / time.Duration(rate),
		maxStep: maxStep,
		start:   start,
		prev:    start,
	}
}

// advance runs as many fixed updates as the time since the last call allows
// and returns the interpolation factor for rendering. Time the driver could
// not catch up on within maxStep updates is dropped.
func (d *frameDriver) advance(now time.Time, update func(elapsed, dt float64)) float64 {
	d.accum += now.Sub(d.prev)
	d.prev = now

	dt := d.tick.Seconds()
	steps := 0
	for d.accum >= d.tick && steps < d.maxStep {
		d.ticks++
		update(float64(d.ticks)*dt, dt)
		d.accum -= d.tick
		steps++
	}
	if d.accum >= d.tick {
		d.accum = d.tick - 1
	}
	return float64(d.accum) / float64(d.tick)
}
