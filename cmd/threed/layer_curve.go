package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glsketch/engine/assets"
	"github.com/hubastard/glsketch/engine/colors"
	"github.com/hubastard/glsketch/engine/core"
	"github.com/hubastard/glsketch/engine/geometry"
	"github.com/hubastard/glsketch/engine/gfx"
	"github.com/hubastard/glsketch/engine/scene"
)

// CurveLayer draws a static cubic Bezier curve as a line strip.
type CurveLayer struct {
	cam   *scene.Camera
	obj   *scene.Object
	color colors.Color
	prog  *gfx.Program
}

func NewCurveLayer(cam *scene.Camera) *CurveLayer {
	return &CurveLayer{
		cam:   cam,
		obj:   scene.NewObject(mgl32.Vec3{0, 0, -1}),
		color: colors.Blue,
	}
}

func (l *CurveLayer) OnAttach(e *core.Engine) {
	vs, fs, err := assets.LoadProgramSources(shaders, "shaders/curve")
	if err != nil {
		panic(err)
	}

	l.prog, err = newCurveProgram(e.GL, vs, fs, geometry.CubicBezier(
		mgl32.Vec3{-3, -2, 0},
		mgl32.Vec3{-1, 3, 0},
		mgl32.Vec3{1, -3, 0},
		mgl32.Vec3{3, 2, 0},
		geometry.DefaultBezierSamples,
	))
	if err != nil {
		panic(err)
	}
}

func (l *CurveLayer) OnDetach(e *core.Engine) {
	if l.prog != nil {
		l.prog.Release(e.GL)
		l.prog = nil
	}
}

func (l *CurveLayer) OnUpdate(e *core.Engine, elapsed, dt float64) {}

func (l *CurveLayer) OnRender(e *core.Engine, alpha float64) {
	ctx := e.GL
	l.prog.Prepare(ctx)
	l.prog.SetUniform(ctx, "u_projection_matrix", gfx.Mat4(l.cam.Projection()))
	l.prog.SetUniform(ctx, "u_model_view_matrix", gfx.Mat4(l.cam.ModelView(l.obj)))
	l.prog.SetUniform(ctx, "u_color", l.color.Uniform())
	l.prog.Draw(ctx)
}

func (l *CurveLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func newCurveProgram(ctx gfx.Context, vs, fs string, points []float32) (*gfx.Program, error) {
	return gfx.NewProgram(ctx, gfx.ProgramDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		Attributes: []gfx.Attribute{
			{Name: "a_position", Shape: gfx.Vector(gfx.D3), Values: points},
		},
		Options: gfx.RenderOptions{
			Primitive:   gfx.LineStrip,
			Side:        gfx.SideDouble,
			VertexCount: int32(len(points) / 3),
		},
	})
}
