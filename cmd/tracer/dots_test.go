package main

import (
	"testing"

	"github.com/hubastard/glsketch/engine/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSpawnsStationaryDot(t *testing.T) {
	var tr Tracer
	tr.Add(0.5, -0.5)

	require.Len(t, tr.Dots(), 1)
	d := tr.Dots()[0]
	assert.Equal(t, Dot{X: 0.5, Y: -0.5, Size: dotSize}, d)
}

func TestBurstSpreadsEvenly(t *testing.T) {
	var tr Tracer
	tr.Burst(0, 0)

	dots := tr.Dots()
	require.Len(t, dots, burstDots)
	var sx, sy float32
	for _, d := range dots {
		assert.InDelta(t, burstSpeed*burstSpeed, d.DX*d.DX+d.DY*d.DY, 1e-9)
		sx += d.DX
		sy += d.DY
	}
	assert.InDelta(t, 0, sx, 1e-6)
	assert.InDelta(t, 0, sy, 1e-6)
	assert.InDelta(t, burstSpeed, dots[0].DX, 1e-7)
}

func TestStepShrinksMovesAndRemoves(t *testing.T) {
	var tr Tracer
	tr.Burst(0, 0)
	first := tr.Dots()[0]

	tr.Step()
	moved := tr.Dots()[0]
	assert.InDelta(t, dotSize-dotShrink, moved.Size, 1e-6)
	assert.InDelta(t, first.X+first.DX, moved.X, 1e-7)

	for i := 0; i < 200 && len(tr.Dots()) > 0; i++ {
		tr.Step()
	}
	assert.Empty(t, tr.Dots())
}

func TestToClip(t *testing.T) {
	x, y := toClip(0, 0, 800, 600)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)

	x, y = toClip(400, 300, 800, 600)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	x, y = toClip(10, 10, 0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestEmbeddedDotShaders(t *testing.T) {
	vs, fs, err := assets.LoadProgramSources(shaders, "shaders/dot")
	require.NoError(t, err)
	assert.Contains(t, vs, "gl_PointSize")
	assert.Contains(t, fs, "gl_PointCoord")
}
