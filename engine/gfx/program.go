package gfx

import "log/slog"

// Side selects which faces of a mesh are drawn.
type Side int

const (
	SideFront Side = iota
	SideBack
	SideDouble
)

type RenderOptions struct {
	Primitive   Primitive
	Side        Side
	VertexCount int32 // non-indexed draws only
}

type ProgramDesc struct {
	VertexSource   string
	FragmentSource string
	Attributes     []Attribute
	Indices        []uint16 // optional
	Options        RenderOptions
}

type ProgramState int

const (
	StateCompiled ProgramState = iota
	StatePrepared
	StateDrawn
)

// Program is a linked shader pair with its vertex and index buffers.
//
// The graphics context is not stored; every method borrows the one it is
// given for the duration of the call.
type Program struct {
	handle     ProgramHandle
	attributes []boundAttribute
	indices    Buffer
	indexCount int32
	opts       RenderOptions
	state      ProgramState
}

// NewProgram compiles and links the shader pair and uploads the attribute and
// index data. Compile and link failures are returned as *ShaderCompileError
// and *ProgramLinkError; nothing created along the way is kept.
func NewProgram(ctx Context, desc ProgramDesc) (*Program, error) {
	handle, err := linkProgram(ctx, desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}

	p := &Program{handle: handle, opts: desc.Options}
	for _, a := range desc.Attributes {
		buf := ctx.CreateBuffer()
		ctx.BindBuffer(ArrayBuffer, buf)
		ctx.BufferFloat32(ArrayBuffer, a.Values)

		loc := ctx.AttribLocation(handle, a.Name)
		if loc < 0 {
			slog.Debug("attribute not used by program", "name", a.Name)
		}
		p.attributes = append(p.attributes, boundAttribute{
			name:     a.Name,
			location: loc,
			shape:    a.Shape,
			buffer:   buf,
		})
	}

	if desc.Indices != nil {
		p.indices = ctx.CreateBuffer()
		ctx.BindBuffer(ElementArrayBuffer, p.indices)
		ctx.BufferUint16(ElementArrayBuffer, desc.Indices)
		p.indexCount = int32(len(desc.Indices))
	}

	return p, nil
}

func (p *Program) Handle() ProgramHandle  { return p.handle }
func (p *Program) Options() RenderOptions { return p.opts }
func (p *Program) State() ProgramState    { return p.state }
func (p *Program) Indexed() bool          { return p.indices != 0 }

// Prepare makes the program current and binds its buffers.
func (p *Program) Prepare(ctx Context) {
	ctx.UseProgram(p.handle)
	for _, a := range p.attributes {
		a.bind(ctx)
	}
	if p.indices != 0 {
		ctx.BindBuffer(ElementArrayBuffer, p.indices)
	}
	p.state = StatePrepared
}

// SetUniform looks the name up on every call and uploads v.
// The value's type must match the uniform's declaration in the shader.
func (p *Program) SetUniform(ctx Context, name string, v UniformValue) {
	v.upload(ctx, ctx.UniformLocation(p.handle, name))
}

// Draw issues one draw call over all indices, or over VertexCount vertices
// when the program has no index buffer.
func (p *Program) Draw(ctx Context) {
	applySide(ctx, p.opts.Side)
	if p.indices != 0 {
		ctx.DrawElements(p.opts.Primitive, p.indexCount)
	} else {
		ctx.DrawArrays(p.opts.Primitive, 0, p.opts.VertexCount)
	}
	p.state = StateDrawn
}

// Release deletes the program and its buffers.
func (p *Program) Release(ctx Context) {
	for _, a := range p.attributes {
		ctx.DeleteBuffer(a.buffer)
	}
	p.attributes = nil
	if p.indices != 0 {
		ctx.DeleteBuffer(p.indices)
		p.indices = 0
	}
	if p.handle != 0 {
		ctx.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func applySide(ctx Context, side Side) {
	switch side {
	case SideDouble:
		ctx.Disable(CapCullFace)
	case SideBack:
		ctx.Enable(CapCullFace)
		ctx.FrontFace(WindingCW)
		ctx.CullFace(FaceBack)
	default:
		ctx.Enable(CapCullFace)
		ctx.FrontFace(WindingCCW)
		ctx.CullFace(FaceBack)
	}
}

// --- Shader utilities ---

func compileShader(ctx Context, stage ShaderStage, src string) (Shader, error) {
	sh := ctx.CreateShader(stage)
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if !ctx.ShaderCompiled(sh) {
		log := ctx.ShaderInfoLog(sh)
		ctx.DeleteShader(sh)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

func linkProgram(ctx Context, vsSrc, fsSrc string) (ProgramHandle, error) {
	vs, err := compileShader(ctx, VertexStage, vsSrc)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(ctx, FragmentStage, fsSrc)
	if err != nil {
		ctx.DeleteShader(vs)
		return 0, err
	}

	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	ctx.LinkProgram(prog)

	linked := ctx.ProgramLinked(prog)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)

	if !linked {
		log := ctx.ProgramInfoLog(prog)
		ctx.DeleteProgram(prog)
		return 0, &ProgramLinkError{Log: log}
	}
	return prog, nil
}
