package main

import (
	"embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/glsketch/engine/assets"
	"github.com/hubastard/glsketch/engine/colors"
	"github.com/hubastard/glsketch/engine/core"
	"github.com/hubastard/glsketch/engine/gfx"
	glbackend "github.com/hubastard/glsketch/engine/gfx/gl"
	"github.com/hubastard/glsketch/engine/platform"
)

//go:embed shaders
var shaders embed.FS

type App struct {
	tracer Tracer
	prog   *gfx.Program
	color  colors.Color
}

func (a *App) OnStart(e *core.Engine) {
	vs, fs, err := assets.LoadProgramSources(shaders, "shaders/dot")
	if err != nil {
		panic(err)
	}
	a.prog, err = newDotProgram(e.GL, vs, fs)
	if err != nil {
		panic(err)
	}
	a.color = colors.Red
}

func (a *App) OnUpdate(e *core.Engine, elapsed, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
	a.tracer.Step()
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	ctx := e.GL
	a.prog.Prepare(ctx)
	a.prog.SetUniform(ctx, "u_color", a.color.Uniform())
	for _, d := range a.tracer.Dots() {
		a.prog.SetUniform(ctx, "u_translation", gfx.Vec2{d.X, d.Y})
		a.prog.SetUniform(ctx, "u_scale", gfx.Float(d.Size))
		a.prog.Draw(ctx)
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	w, h := e.Window.Size()
	switch v := ev.(type) {
	case core.EventMouseMove:
		a.tracer.Add(toClip(v.X, v.Y, w, h))
	case core.EventMouseButton:
		if v.Down && v.Button == core.MouseLeft {
			a.tracer.Burst(toClip(v.X, v.Y, w, h))
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.prog != nil {
		a.prog.Release(e.GL)
	}
}

// newDotProgram draws a single point at the origin; uniforms move and size it.
func newDotProgram(ctx gfx.Context, vs, fs string) (*gfx.Program, error) {
	return gfx.NewProgram(ctx, gfx.ProgramDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		Attributes: []gfx.Attribute{
			{Name: "a_position", Shape: gfx.Vector(gfx.D2), Values: []float32{0, 0}},
		},
		Options: gfx.RenderOptions{Primitive: gfx.Points, Side: gfx.SideDouble, VertexCount: 1},
	})
}

func main() {
	configPath := flag.String("config", "tracer.yaml", "path to a YAML config file")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	newContext := func(win core.Window, cfg core.Config) (gfx.Context, error) {
		return glbackend.NewContext(win, cfg)
	}

	if err := core.Run(&App{}, cfg, platform.NewGLFWWindow, newContext); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
