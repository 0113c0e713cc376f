package gfx

// UniformValue is one of Int, Float, Vec2..Vec4, IVec2..IVec4 or Mat2..Mat4.
// Matrices are column major, so mgl32 matrices convert directly, e.g.
// gfx.Mat4(m).
type UniformValue interface {
	upload(ctx Context, loc UniformLocation)
}

type (
	Int   int32
	Float float32
	Vec2  [2]float32
	Vec3  [3]float32
	Vec4  [4]float32
	IVec2 [2]int32
	IVec3 [3]int32
	IVec4 [4]int32
	Mat2  [4]float32
	Mat3  [9]float32
	Mat4  [16]float32
)

func (v Int) upload(ctx Context, loc UniformLocation)   { ctx.Uniform1i(loc, int32(v)) }
func (v Float) upload(ctx Context, loc UniformLocation) { ctx.Uniform1f(loc, float32(v)) }
func (v Vec2) upload(ctx Context, loc UniformLocation)  { ctx.Uniform2f(loc, v) }
func (v Vec3) upload(ctx Context, loc UniformLocation)  { ctx.Uniform3f(loc, v) }
func (v Vec4) upload(ctx Context, loc UniformLocation)  { ctx.Uniform4f(loc, v) }
func (v IVec2) upload(ctx Context, loc UniformLocation) { ctx.Uniform2i(loc, v) }
func (v IVec3) upload(ctx Context, loc UniformLocation) { ctx.Uniform3i(loc, v) }
func (v IVec4) upload(ctx Context, loc UniformLocation) { ctx.Uniform4i(loc, v) }
func (v Mat2) upload(ctx Context, loc UniformLocation)  { ctx.UniformMatrix2f(loc, v) }
func (v Mat3) upload(ctx Context, loc UniformLocation)  { ctx.UniformMatrix3f(loc, v) }
func (v Mat4) upload(ctx Context, loc UniformLocation)  { ctx.UniformMatrix4f(loc, v) }
