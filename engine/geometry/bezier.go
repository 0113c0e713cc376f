package geometry

import "github.com/go-gl/mathgl/mgl32"

// DefaultBezierSamples is the sample count the curve demos draw with.
const DefaultBezierSamples = 300

// CubicBezier samples the curve at t = i/samples for i in [0, samples) and
// returns the points as flat xyz triples. samples is raised to at least 1.
// The end point p3 itself (t = 1) is not part of the output.
func CubicBezier(p0, p1, p2, p3 mgl32.Vec3, samples int) []float32 {
	samples = max(samples, 1)
	step := 1 / float32(samples)

	out := make([]float32, 0, samples*3)
	for i := 0; i < samples; i++ {
		p := BezierPoint(float32(i)*step, p0, p1, p2, p3)
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// BezierPoint evaluates the Bernstein form of the cubic curve at t.
func BezierPoint(t float32, p0, p1, p2, p3 mgl32.Vec3) mgl32.Vec3 {
	k := 1 - t
	b0 := k * k * k
	b1 := 3 * k * k * t
	b2 := 3 * k * t * t
	b3 := t * t * t

	var out mgl32.Vec3
	for i := range out {
		out[i] = b0*p0[i] + b1*p1[i] + b2*p2[i] + b3*p3[i]
	}
	return out
}
