// Package gfx is a small immediate-mode rendering layer: shader programs with
// their vertex buffers, uniform values, and the graphics context they run on.
package gfx

// Handles are opaque to gfx; a zero Shader, ProgramHandle or Buffer means "none".
type (
	Shader        uint32
	ProgramHandle uint32
	Buffer        uint32
)

// UniformLocation is -1 when the program has no uniform by that name.
type UniformLocation int32

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	LineLoop
	Points
)

type Capability int

const (
	CapDepthTest Capability = iota
	CapCullFace
	CapBlend
)

type Face int

const (
	FaceBack Face = iota
	FaceFront
	FaceFrontAndBack
)

type Winding int

const (
	WindingCCW Winding = iota
	WindingCW
)

type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
	DepthAlways
)

type ClearMask int

const (
	ClearColorBit ClearMask = 1 << iota
	ClearDepthBit
)

// Context is the graphics API the renderer issues its calls against.
// Implementations are not safe for concurrent use; all calls happen on the
// thread that owns the GL context.
type Context interface {
	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() ProgramHandle
	AttachShader(p ProgramHandle, s Shader)
	LinkProgram(p ProgramHandle)
	ProgramLinked(p ProgramHandle) bool
	ProgramInfoLog(p ProgramHandle) string
	UseProgram(p ProgramHandle)
	DeleteProgram(p ProgramHandle)

	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint16(target BufferTarget, data []uint16)
	DeleteBuffer(b Buffer)

	// AttribLocation returns -1 for names the program does not use.
	AttribLocation(p ProgramHandle, name string) int32
	EnableVertexAttribArray(loc uint32)
	// VertexAttribPointer describes tightly typed float32 data in the bound
	// array buffer. stride and offset are in bytes.
	VertexAttribPointer(loc uint32, size, stride int32, offset int)

	UniformLocation(p ProgramHandle, name string) UniformLocation
	Uniform1i(loc UniformLocation, v int32)
	Uniform2i(loc UniformLocation, v [2]int32)
	Uniform3i(loc UniformLocation, v [3]int32)
	Uniform4i(loc UniformLocation, v [4]int32)
	Uniform1f(loc UniformLocation, v float32)
	Uniform2f(loc UniformLocation, v [2]float32)
	Uniform3f(loc UniformLocation, v [3]float32)
	Uniform4f(loc UniformLocation, v [4]float32)
	UniformMatrix2f(loc UniformLocation, m [4]float32)
	UniformMatrix3f(loc UniformLocation, m [9]float32)
	UniformMatrix4f(loc UniformLocation, m [16]float32)

	DrawArrays(mode Primitive, first, count int32)
	// DrawElements draws count uint16 indices from the bound element buffer.
	DrawElements(mode Primitive, count int32)

	Enable(c Capability)
	Disable(c Capability)
	CullFace(f Face)
	FrontFace(w Winding)
	DepthFunc(f DepthFunc)
	Viewport(x, y, w, h int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	Clear(mask ClearMask)

	// ReadPixels returns w*h RGBA8 pixels, bottom row first.
	ReadPixels(x, y, w, h int32) []byte
}
