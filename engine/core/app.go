package core

import (
	"time"

	"github.com/hubastard/glsketch/engine/gfx"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                       // called once after window/context init
	OnUpdate(e *Engine, elapsed, dt float64) // fixed tick; elapsed and dt in seconds
	OnRender(e *Engine, alpha float64)       // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)             // input/window events
	OnShutdown(e *Engine)                    // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window Window
	GL     gfx.Context
	Input  *Input
	Layers LayerStack
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Aspect is the framebuffer width over height, 1 while minimized.
func (e *Engine) Aspect() float32 {
	w, h := e.Window.FramebufferSize()
	if w < 1 || h < 1 {
		return 1
	}
	return float32(w) / float32(h)
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	Size() (int, int) // screen coordinates, the space cursor positions are in
	CursorPos() (float64, float64)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyF12
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)
