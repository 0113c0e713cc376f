package glbackend

import (
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/glsketch/engine/core"
	"github.com/hubastard/glsketch/engine/gfx"
)

// Context implements gfx.Context on an OpenGL 3.3 core profile context.
// The GL context must be current on the calling thread.
type Context struct {
	win core.Window
	vao uint32
}

var _ gfx.Context = (*Context)(nil)

func NewContext(win core.Window, _ core.Config) (*Context, error) {
	c := &Context{win: win}
	if err := c.Init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Context) Init() error {
	// Core profile refuses attribute pointers without a bound VAO; one shared
	// VAO is enough since programs rebind their buffers every frame.
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	// gl_PointSize is ignored unless this is on in core profile.
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	slog.Info("gl context ready",
		"vendor", c.GPUVendor(),
		"renderer", c.GPURenderer(),
		"version", c.GPUVersion())
	return nil
}

func (c *Context) Shutdown() {
	if c.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

func (c *Context) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (c *Context) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (c *Context) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// --- Shaders and programs ---

func (c *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == gfx.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	return gfx.Shader(gl.CreateShader(kind))
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s), 1, csrc, nil)
}

func (c *Context) CompileShader(s gfx.Shader) { gl.CompileShader(uint32(s)) }

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	var logLen int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(uint32(s), logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(s gfx.Shader) { gl.DeleteShader(uint32(s)) }

func (c *Context) CreateProgram() gfx.ProgramHandle { return gfx.ProgramHandle(gl.CreateProgram()) }

func (c *Context) AttachShader(p gfx.ProgramHandle, s gfx.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) LinkProgram(p gfx.ProgramHandle) { gl.LinkProgram(uint32(p)) }

func (c *Context) ProgramLinked(p gfx.ProgramHandle) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p gfx.ProgramHandle) string {
	var logLen int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(uint32(p), logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) UseProgram(p gfx.ProgramHandle)    { gl.UseProgram(uint32(p)) }
func (c *Context) DeleteProgram(p gfx.ProgramHandle) { gl.DeleteProgram(uint32(p)) }

// --- Buffers and attributes ---

func (c *Context) CreateBuffer() gfx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.Buffer(b)
}

func (c *Context) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	gl.BindBuffer(bufferTarget(target), uint32(b))
}

func (c *Context) BufferFloat32(target gfx.BufferTarget, data []float32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) BufferUint16(target gfx.BufferTarget, data []uint16) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (c *Context) AttribLocation(p gfx.ProgramHandle, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (c *Context) EnableVertexAttribArray(loc uint32) { gl.EnableVertexAttribArray(loc) }

func (c *Context) VertexAttribPointer(loc uint32, size, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, stride, uintptr(offset))
}

// --- Uniforms ---

func (c *Context) UniformLocation(p gfx.ProgramHandle, name string) gfx.UniformLocation {
	return gfx.UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *Context) Uniform1i(loc gfx.UniformLocation, v int32) { gl.Uniform1i(int32(loc), v) }
func (c *Context) Uniform2i(loc gfx.UniformLocation, v [2]int32) {
	gl.Uniform2i(int32(loc), v[0], v[1])
}
func (c *Context) Uniform3i(loc gfx.UniformLocation, v [3]int32) {
	gl.Uniform3i(int32(loc), v[0], v[1], v[2])
}
func (c *Context) Uniform4i(loc gfx.UniformLocation, v [4]int32) {
	gl.Uniform4i(int32(loc), v[0], v[1], v[2], v[3])
}
func (c *Context) Uniform1f(loc gfx.UniformLocation, v float32) { gl.Uniform1f(int32(loc), v) }
func (c *Context) Uniform2f(loc gfx.UniformLocation, v [2]float32) {
	gl.Uniform2f(int32(loc), v[0], v[1])
}
func (c *Context) Uniform3f(loc gfx.UniformLocation, v [3]float32) {
	gl.Uniform3f(int32(loc), v[0], v[1], v[2])
}
func (c *Context) Uniform4f(loc gfx.UniformLocation, v [4]float32) {
	gl.Uniform4f(int32(loc), v[0], v[1], v[2], v[3])
}
func (c *Context) UniformMatrix2f(loc gfx.UniformLocation, m [4]float32) {
	gl.UniformMatrix2fv(int32(loc), 1, false, &m[0])
}
func (c *Context) UniformMatrix3f(loc gfx.UniformLocation, m [9]float32) {
	gl.UniformMatrix3fv(int32(loc), 1, false, &m[0])
}
func (c *Context) UniformMatrix4f(loc gfx.UniformLocation, m [16]float32) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

// --- Drawing and pipeline state ---

func (c *Context) DrawArrays(mode gfx.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

func (c *Context) DrawElements(mode gfx.Primitive, count int32) {
	gl.DrawElements(primitive(mode), count, gl.UNSIGNED_SHORT, nil)
}

func (c *Context) Enable(cp gfx.Capability)  { gl.Enable(capability(cp)) }
func (c *Context) Disable(cp gfx.Capability) { gl.Disable(capability(cp)) }

func (c *Context) CullFace(f gfx.Face) {
	switch f {
	case gfx.FaceFront:
		gl.CullFace(gl.FRONT)
	case gfx.FaceFrontAndBack:
		gl.CullFace(gl.FRONT_AND_BACK)
	default:
		gl.CullFace(gl.BACK)
	}
}

func (c *Context) FrontFace(w gfx.Winding) {
	if w == gfx.WindingCW {
		gl.FrontFace(gl.CW)
		return
	}
	gl.FrontFace(gl.CCW)
}

func (c *Context) DepthFunc(f gfx.DepthFunc) {
	switch f {
	case gfx.DepthLessEqual:
		gl.DepthFunc(gl.LEQUAL)
	case gfx.DepthAlways:
		gl.DepthFunc(gl.ALWAYS)
	default:
		gl.DepthFunc(gl.LESS)
	}
}

func (c *Context) Viewport(x, y, w, h int32)     { gl.Viewport(x, y, w, h) }
func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (c *Context) ClearDepth(d float64)          { gl.ClearDepth(d) }

func (c *Context) Clear(mask gfx.ClearMask) {
	var bits uint32
	if mask&gfx.ClearColorBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&gfx.ClearDepthBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *Context) ReadPixels(x, y, w, h int32) []byte {
	pix := make([]byte, int(w)*int(h)*4)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}

// --- enum translation ---

func bufferTarget(t gfx.BufferTarget) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func primitive(p gfx.Primitive) uint32 {
	switch p {
	case gfx.Points:
		return gl.POINTS
	case gfx.Lines:
		return gl.LINES
	case gfx.LineStrip:
		return gl.LINE_STRIP
	case gfx.LineLoop:
		return gl.LINE_LOOP
	case gfx.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gfx.TriangleFan:
		return gl.TRIANGLE_FAN
	}
	return gl.TRIANGLES
}

func capability(cp gfx.Capability) uint32 {
	switch cp {
	case gfx.CapCullFace:
		return gl.CULL_FACE
	case gfx.CapBlend:
		return gl.BLEND
	}
	return gl.DEPTH_TEST
}
