package main

import "github.com/chewxy/math32"

const (
	dotSize    = 10    // initial point size in pixels
	dotShrink  = 0.1   // size lost per tick
	burstDots  = 16    // dots spawned per click
	burstSpeed = 0.005 // clip-space units per tick
)

// Dot is a point in clip space that shrinks every tick and dies at size 0.
type Dot struct {
	X, Y   float32
	Size   float32
	DX, DY float32
}

// Tracer owns the live dots. Not safe for concurrent use.
type Tracer struct {
	dots []Dot
}

func (t *Tracer) Dots() []Dot { return t.dots }

// Add spawns a stationary dot at (x, y).
func (t *Tracer) Add(x, y float32) {
	t.dots = append(t.dots, Dot{X: x, Y: y, Size: dotSize})
}

// Burst spawns burstDots dots at (x, y) moving outward at evenly spaced angles.
func (t *Tracer) Burst(x, y float32) {
	step := 2 * math32.Pi / burstDots
	for n := 0; n < burstDots; n++ {
		a := float32(n) * step
		t.dots = append(t.dots, Dot{
			X: x, Y: y,
			Size: dotSize,
			DX:   burstSpeed * math32.Cos(a),
			DY:   burstSpeed * math32.Sin(a),
		})
	}
}

// Step shrinks and moves every dot, then drops the ones that vanished.
func (t *Tracer) Step() {
	live := t.dots[:0]
	for _, d := range t.dots {
		d.Size -= dotShrink
		d.X += d.DX
		d.Y += d.DY
		if d.Size > 0 {
			live = append(live, d)
		}
	}
	t.dots = live
}

// toClip maps a cursor position in window coordinates to clip space.
func toClip(x, y float64, w, h int) (float32, float32) {
	if w < 1 || h < 1 {
		return 0, 0
	}
	return float32(x/float64(w)*2 - 1), float32(1 - y/float64(h)*2)
}
