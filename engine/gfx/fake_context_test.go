package gfx

import (
	"fmt"
	"strings"
)

// call is one recorded Context method invocation.
type call struct {
	name string
	args []any
}

func (c call) String() string { return fmt.Sprintf("%s%v", c.name, c.args) }

// fakeContext records calls and hands out sequential handles. Shaders whose
// source contains "syntax error" fail to compile; programs fail to link when
// failLink is set.
type fakeContext struct {
	calls    []call
	next     uint32
	sources  map[Shader]string
	attribs  map[string]int32
	uniforms map[string]UniformLocation
	failLink bool
	deleted  map[string]int
	live     map[uint32]bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		sources:  map[Shader]string{},
		attribs:  map[string]int32{},
		uniforms: map[string]UniformLocation{},
		deleted:  map[string]int{},
		live:     map[uint32]bool{},
	}
}

func (f *fakeContext) record(name string, args ...any) { f.calls = append(f.calls, call{name, args}) }

func (f *fakeContext) alloc() uint32 {
	f.next++
	f.live[f.next] = true
	return f.next
}

func (f *fakeContext) free(kind string, h uint32) {
	f.deleted[kind]++
	delete(f.live, h)
}

func (f *fakeContext) named(name string) []call {
	var out []call
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeContext) reset() { f.calls = nil }

func (f *fakeContext) CreateShader(stage ShaderStage) Shader {
	s := Shader(f.alloc())
	f.record("CreateShader", stage)
	return s
}
func (f *fakeContext) ShaderSource(s Shader, src string) { f.sources[s] = src }
func (f *fakeContext) CompileShader(s Shader)            { f.record("CompileShader", s) }
func (f *fakeContext) ShaderCompiled(s Shader) bool {
	return !strings.Contains(f.sources[s], "syntax error")
}
func (f *fakeContext) ShaderInfoLog(s Shader) string {
	return "ERROR: 0:1: '" + f.sources[s] + "' : syntax error"
}
func (f *fakeContext) DeleteShader(s Shader) { f.free("shader", uint32(s)) }

func (f *fakeContext) CreateProgram() ProgramHandle {
	p := ProgramHandle(f.alloc())
	f.record("CreateProgram")
	return p
}
func (f *fakeContext) AttachShader(p ProgramHandle, s Shader) { f.record("AttachShader", p, s) }
func (f *fakeContext) LinkProgram(p ProgramHandle)            { f.record("LinkProgram", p) }
func (f *fakeContext) ProgramLinked(p ProgramHandle) bool     { return !f.failLink }
func (f *fakeContext) ProgramInfoLog(p ProgramHandle) string  { return "link failed: varying mismatch" }
func (f *fakeContext) UseProgram(p ProgramHandle)             { f.record("UseProgram", p) }
func (f *fakeContext) DeleteProgram(p ProgramHandle)          { f.free("program", uint32(p)) }

func (f *fakeContext) CreateBuffer() Buffer {
	b := Buffer(f.alloc())
	f.record("CreateBuffer")
	return b
}
func (f *fakeContext) BindBuffer(target BufferTarget, b Buffer) { f.record("BindBuffer", target, b) }
func (f *fakeContext) BufferFloat32(target BufferTarget, data []float32) {
	f.record("BufferFloat32", target, len(data))
}
func (f *fakeContext) BufferUint16(target BufferTarget, data []uint16) {
	f.record("BufferUint16", target, len(data))
}
func (f *fakeContext) DeleteBuffer(b Buffer) { f.free("buffer", uint32(b)) }

func (f *fakeContext) AttribLocation(p ProgramHandle, name string) int32 {
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}
func (f *fakeContext) EnableVertexAttribArray(loc uint32) { f.record("EnableVertexAttribArray", loc) }
func (f *fakeContext) VertexAttribPointer(loc uint32, size, stride int32, offset int) {
	f.record("VertexAttribPointer", loc, size, stride, offset)
}

func (f *fakeContext) UniformLocation(p ProgramHandle, name string) UniformLocation {
	f.record("UniformLocation", name)
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}
func (f *fakeContext) Uniform1i(loc UniformLocation, v int32)      { f.record("Uniform1i", loc, v) }
func (f *fakeContext) Uniform2i(loc UniformLocation, v [2]int32)   { f.record("Uniform2i", loc, v) }
func (f *fakeContext) Uniform3i(loc UniformLocation, v [3]int32)   { f.record("Uniform3i", loc, v) }
func (f *fakeContext) Uniform4i(loc UniformLocation, v [4]int32)   { f.record("Uniform4i", loc, v) }
func (f *fakeContext) Uniform1f(loc UniformLocation, v float32)    { f.record("Uniform1f", loc, v) }
func (f *fakeContext) Uniform2f(loc UniformLocation, v [2]float32) { f.record("Uniform2f", loc, v) }
func (f *fakeContext) Uniform3f(loc UniformLocation, v [3]float32) { f.record("Uniform3f", loc, v) }
func (f *fakeContext) Uniform4f(loc UniformLocation, v [4]float32) { f.record("Uniform4f", loc, v) }
func (f *fakeContext) UniformMatrix2f(loc UniformLocation, m [4]float32) {
	f.record("UniformMatrix2f", loc, m)
}
func (f *fakeContext) UniformMatrix3f(loc UniformLocation, m [9]float32) {
	f.record("UniformMatrix3f", loc, m)
}
func (f *fakeContext) UniformMatrix4f(loc UniformLocation, m [16]float32) {
	f.record("UniformMatrix4f", loc, m)
}

func (f *fakeContext) DrawArrays(mode Primitive, first, count int32) {
	f.record("DrawArrays", mode, first, count)
}
func (f *fakeContext) DrawElements(mode Primitive, count int32) { f.record("DrawElements", mode, count) }

func (f *fakeContext) Enable(c Capability)           { f.record("Enable", c) }
func (f *fakeContext) Disable(c Capability)          { f.record("Disable", c) }
func (f *fakeContext) CullFace(face Face)            { f.record("CullFace", face) }
func (f *fakeContext) FrontFace(w Winding)           { f.record("FrontFace", w) }
func (f *fakeContext) DepthFunc(d DepthFunc)         { f.record("DepthFunc", d) }
func (f *fakeContext) Viewport(x, y, w, h int32)     { f.record("Viewport", x, y, w, h) }
func (f *fakeContext) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }
func (f *fakeContext) ClearDepth(d float64)          { f.record("ClearDepth", d) }
func (f *fakeContext) Clear(mask ClearMask)          { f.record("Clear", mask) }
func (f *fakeContext) ReadPixels(x, y, w, h int32) []byte {
	return make([]byte, int(w)*int(h)*4)
}

var _ Context = (*fakeContext)(nil)
