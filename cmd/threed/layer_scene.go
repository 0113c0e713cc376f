package main

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glsketch/engine/assets"
	"github.com/hubastard/glsketch/engine/colors"
	"github.com/hubastard/glsketch/engine/core"
	"github.com/hubastard/glsketch/engine/geometry"
	"github.com/hubastard/glsketch/engine/gfx"
	"github.com/hubastard/glsketch/engine/scene"
)

// spinRate is the Y rotation speed in radians per second.
const spinRate = math32.Pi / 4

// meshDraw is one program drawn once per object.
type meshDraw struct {
	prog    *gfx.Program
	objects []*scene.Object
}

// SceneLayer draws two lit cubes and a lit sphere spinning about Y.
type SceneLayer struct {
	cam   *scene.Camera
	ctrl  *scene.OrbitController
	light gfx.Vec3
	draws []meshDraw
}

func NewSceneLayer(cam *scene.Camera) *SceneLayer {
	return &SceneLayer{
		cam:   cam,
		ctrl:  scene.NewOrbitController(cam),
		light: gfx.Vec3(mgl32.Vec3{1, 1, 0}.Normalize()),
	}
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	vs, fs, err := assets.LoadProgramSources(shaders, "shaders/lit")
	if err != nil {
		panic(err)
	}

	cube, err := newMeshProgram(e.GL, vs, fs, geometry.Cube(1, 1, 1), colors.White)
	if err != nil {
		panic(fmt.Errorf("cube program: %w", err))
	}
	sphere, err := newMeshProgram(e.GL, vs, fs,
		geometry.UVSphere(1, 128, 128, 0, 2*math32.Pi, 0, math32.Pi), colors.White)
	if err != nil {
		panic(fmt.Errorf("sphere program: %w", err))
	}

	l.draws = []meshDraw{
		{prog: cube, objects: []*scene.Object{
			scene.NewObject(mgl32.Vec3{2, -2, 2}),
			scene.NewObject(mgl32.Vec3{-2, 2, 2}),
		}},
		{prog: sphere, objects: []*scene.Object{
			scene.NewObject(mgl32.Vec3{}),
		}},
	}
}

func (l *SceneLayer) OnDetach(e *core.Engine) {
	for _, d := range l.draws {
		d.prog.Release(e.GL)
	}
	l.draws = nil
}

func (l *SceneLayer) OnUpdate(e *core.Engine, elapsed, dt float64) {
	l.ctrl.Update(e, float32(dt))
	for _, d := range l.draws {
		spin(d.objects, elapsed)
	}
}

func (l *SceneLayer) OnRender(e *core.Engine, alpha float64) {
	ctx := e.GL
	proj := gfx.Mat4(l.cam.Projection())
	for _, d := range l.draws {
		d.prog.Prepare(ctx)
		d.prog.SetUniform(ctx, "u_light_direction", l.light)
		d.prog.SetUniform(ctx, "u_projection_matrix", proj)
		for _, o := range d.objects {
			mv := l.cam.ModelView(o)
			d.prog.SetUniform(ctx, "u_model_view_matrix", gfx.Mat4(mv))
			d.prog.SetUniform(ctx, "u_normal_matrix", gfx.Mat4(scene.NormalMatrix(mv)))
			d.prog.Draw(ctx)
		}
	}
}

func (l *SceneLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	return l.ctrl.HandleEvent(e, ev)
}

// spin sets every object's rotation to a pure Y turn of elapsed*spinRate.
func spin(objects []*scene.Object, elapsed float64) {
	angle := float32(elapsed) * spinRate
	for _, o := range objects {
		o.Rotation = mgl32.Vec3{0, angle, 0}
	}
}

// newMeshProgram uploads m with a flat per-vertex color into the lit shader pair.
func newMeshProgram(ctx gfx.Context, vs, fs string, m geometry.Mesh, c colors.Color) (*gfx.Program, error) {
	return gfx.NewProgram(ctx, gfx.ProgramDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		Attributes: []gfx.Attribute{
			{Name: "a_position", Shape: gfx.Vector(gfx.D3), Values: m.Vertices},
			{Name: "a_color", Shape: gfx.Vector(gfx.D4), Values: c.Repeat(m.VertexCount())},
			{Name: "a_normal", Shape: gfx.Vector(gfx.D3), Values: m.Normals},
		},
		Indices: m.Indices,
		Options: gfx.RenderOptions{Primitive: gfx.Triangles, Side: gfx.SideFront},
	})
}
