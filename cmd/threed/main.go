package main

import (
	"embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/glsketch/engine/assets"
	"github.com/hubastard/glsketch/engine/core"
	"github.com/hubastard/glsketch/engine/gfx"
	glbackend "github.com/hubastard/glsketch/engine/gfx/gl"
	"github.com/hubastard/glsketch/engine/platform"
	"github.com/hubastard/glsketch/engine/scene"
)

//go:embed shaders
var shaders embed.FS

type App struct {
	cfg     core.Config
	cam     *scene.Camera
	capture bool
}

func (a *App) OnStart(e *core.Engine) {
	a.cam = scene.NewCamera(e.Aspect())

	e.PushLayer(NewSceneLayer(a.cam))
	e.PushLayer(NewCurveLayer(a.cam))
}

func (a *App) OnUpdate(e *core.Engine, elapsed, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	if !a.capture {
		return
	}
	a.capture = false

	w, h := e.Window.FramebufferSize()
	img := assets.CaptureFrame(e.GL, w, h)
	if err := assets.SaveImage(a.cfg.ScreenshotPath, img, a.cfg.ScreenshotScale); err != nil {
		slog.Error("screenshot failed", "err", err)
		return
	}
	slog.Info("screenshot saved", "path", a.cfg.ScreenshotPath, "width", w, "height", h)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventKey:
		a.capture = a.capture || isScreenshotKey(v)
	case core.EventResize:
		a.cam.SetViewport(e.Window.FramebufferSize())
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

// isScreenshotKey reports whether ev is F12 or Ctrl+P being pressed.
func isScreenshotKey(ev core.EventKey) bool {
	if !ev.Down {
		return false
	}
	return ev.Key == core.KeyF12 || (ev.Key == core.KeyP && ev.Mods&core.ModCtrl != 0)
}

func main() {
	configPath := flag.String("config", "threed.yaml", "path to a YAML config file")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	app := &App{cfg: cfg}

	newContext := func(win core.Window, cfg core.Config) (gfx.Context, error) {
		return glbackend.NewContext(win, cfg)
	}

	if err := core.Run(app, cfg, platform.NewGLFWWindow, newContext); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
