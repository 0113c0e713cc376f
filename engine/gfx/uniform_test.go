package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestUniformDispatch(t *testing.T) {
	m4 := mgl32.Ident4()
	tests := []struct {
		value UniformValue
		want  call
	}{
		{Int(7), call{"Uniform1i", []any{UniformLocation(5), int32(7)}}},
		{Float(0.5), call{"Uniform1f", []any{UniformLocation(5), float32(0.5)}}},
		{Vec2{1, 2}, call{"Uniform2f", []any{UniformLocation(5), [2]float32{1, 2}}}},
		{Vec3{1, 2, 3}, call{"Uniform3f", []any{UniformLocation(5), [3]float32{1, 2, 3}}}},
		{Vec4{1, 2, 3, 4}, call{"Uniform4f", []any{UniformLocation(5), [4]float32{1, 2, 3, 4}}}},
		{IVec2{1, 2}, call{"Uniform2i", []any{UniformLocation(5), [2]int32{1, 2}}}},
		{IVec3{1, 2, 3}, call{"Uniform3i", []any{UniformLocation(5), [3]int32{1, 2, 3}}}},
		{IVec4{1, 2, 3, 4}, call{"Uniform4i", []any{UniformLocation(5), [4]int32{1, 2, 3, 4}}}},
		{Mat2(mgl32.Ident2()), call{"UniformMatrix2f", []any{UniformLocation(5), [4]float32{1, 0, 0, 1}}}},
		{Mat3(mgl32.Ident3()), call{"UniformMatrix3f", []any{UniformLocation(5), [9]float32(mgl32.Ident3())}}},
		{Mat4(m4), call{"UniformMatrix4f", []any{UniformLocation(5), [16]float32(m4)}}},
	}

	for _, tt := range tests {
		ctx := newFakeContext()
		ctx.uniforms["u_value"] = 5
		p := &Program{handle: 1}
		p.SetUniform(ctx, "u_value", tt.value)

		if assert.Len(t, ctx.calls, 2, "%T", tt.value) {
			assert.Equal(t, "UniformLocation", ctx.calls[0].name)
			assert.Equal(t, tt.want, ctx.calls[1])
		}
	}
}

func TestSetUniformResolvesEveryCall(t *testing.T) {
	ctx := newFakeContext()
	p := &Program{handle: 1}
	p.SetUniform(ctx, "u_scale", Float(1))
	p.SetUniform(ctx, "u_scale", Float(2))
	assert.Len(t, ctx.named("UniformLocation"), 2)
}

func TestSetUniformUnknownNameStillUploads(t *testing.T) {
	ctx := newFakeContext()
	p := &Program{handle: 1}
	p.SetUniform(ctx, "u_nope", Int(1))

	calls := ctx.named("Uniform1i")
	if assert.Len(t, calls, 1) {
		assert.Equal(t, UniformLocation(-1), calls[0].args[0])
	}
}
