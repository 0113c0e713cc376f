package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bp0 = mgl32.Vec3{-1, -1, 0}
	bp1 = mgl32.Vec3{-0.5, 1, 0.5}
	bp2 = mgl32.Vec3{0.5, -1, -0.5}
	bp3 = mgl32.Vec3{1, 1, 0}
)

func TestCubicBezierSampleCount(t *testing.T) {
	for _, n := range []int{1, 2, 17, DefaultBezierSamples} {
		pts := CubicBezier(bp0, bp1, bp2, bp3, n)
		assert.Len(t, pts, n*3)
	}
}

func TestCubicBezierClampsSamples(t *testing.T) {
	assert.Len(t, CubicBezier(bp0, bp1, bp2, bp3, 0), 3)
	assert.Len(t, CubicBezier(bp0, bp1, bp2, bp3, -4), 3)
}

func TestCubicBezierStartsAtP0(t *testing.T) {
	pts := CubicBezier(bp0, bp1, bp2, bp3, DefaultBezierSamples)
	require.GreaterOrEqual(t, len(pts), 3)
	assert.Equal(t, []float32{bp0[0], bp0[1], bp0[2]}, pts[:3])
}

func TestBezierPointEndpoints(t *testing.T) {
	assert.True(t, BezierPoint(0, bp0, bp1, bp2, bp3).ApproxEqual(bp0))
	assert.True(t, BezierPoint(1, bp0, bp1, bp2, bp3).ApproxEqual(bp3))
}

func TestBezierPointMidpoint(t *testing.T) {
	// B(0.5) = (p0 + 3p1 + 3p2 + p3) / 8
	want := bp0.Add(bp1.Mul(3)).Add(bp2.Mul(3)).Add(bp3).Mul(1.0 / 8)
	assert.True(t, BezierPoint(0.5, bp0, bp1, bp2, bp3).ApproxEqualThreshold(want, 1e-6))
}

func TestCubicBezierStraightLine(t *testing.T) {
	// evenly spaced collinear control points give uniform spacing
	a, b := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 0, 0}
	pts := CubicBezier(a, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0}, b, 10)
	for i := 0; i < 10; i++ {
		assert.InDelta(t, float32(i)*0.3, pts[i*3], 1e-5)
		assert.Zero(t, pts[i*3+1])
		assert.Zero(t, pts[i*3+2])
	}
}

func TestCubicBezierIsContinuous(t *testing.T) {
	pts := CubicBezier(bp0, bp1, bp2, bp3, 1000)
	for i := 3; i < len(pts); i += 3 {
		prev := mgl32.Vec3{pts[i-3], pts[i-2], pts[i-1]}
		cur := mgl32.Vec3{pts[i], pts[i+1], pts[i+2]}
		assert.Less(t, cur.Sub(prev).Len(), float32(0.05))
	}
}
