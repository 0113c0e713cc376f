package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	FovY        float32 // radians
	Aspect      float32
	Near, Far   float32
	Eye, Target mgl32.Vec3
	Up          mgl32.Vec3
}

// NewCamera returns a 45 degree camera 8 units back on -Z looking at the origin.
func NewCamera(aspect float32) *Camera {
	return &Camera{
		FovY:   mgl32.DegToRad(45),
		Aspect: aspect,
		Near:   1,
		Far:    2000,
		Eye:    mgl32.Vec3{0, 0, -8},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) SetViewport(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.Aspect = float32(w) / float32(h)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) ModelView(o *Object) mgl32.Mat4 {
	return c.View().Mul4(o.Model())
}

// NormalMatrix is the inverse transpose of mv, for transforming normals.
func NormalMatrix(mv mgl32.Mat4) mgl32.Mat4 {
	return mv.Inv().Transpose()
}
