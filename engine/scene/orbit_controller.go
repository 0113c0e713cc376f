package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glsketch/engine/core"
)

// OrbitController: A/D orbit around the target, W/S tilt, scroll to zoom.
type OrbitController struct {
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // distance factor per scroll notch
	MinDist   float32
	MaxDist   float32
	Camera    *Camera

	yaw, pitch, dist float32
}

func NewOrbitController(cam *Camera) *OrbitController {
	offset := cam.Eye.Sub(cam.Target)
	dist := offset.Len()
	cc := &OrbitController{
		RotSpeed:  1.5,
		ZoomSpeed: 1.1,
		MinDist:   2,
		MaxDist:   100,
		Camera:    cam,
		dist:      dist,
	}
	if dist > 0 {
		cc.pitch = math32.Asin(offset.Y() / dist)
		cc.yaw = math32.Atan2(offset.X(), offset.Z())
	}
	return cc
}

func (cc *OrbitController) Update(e *core.Engine, dt float32) {
	in := e.Input
	step := cc.RotSpeed * dt

	if in.IsKeyDown(core.KeyA) {
		cc.yaw -= step
	}
	if in.IsKeyDown(core.KeyD) {
		cc.yaw += step
	}
	if in.IsKeyDown(core.KeyW) {
		cc.pitch += step
	}
	if in.IsKeyDown(core.KeyS) {
		cc.pitch -= step
	}
	cc.apply()
}

// HandleEvent zooms on scroll and reports whether it consumed the event.
func (cc *OrbitController) HandleEvent(_ *core.Engine, ev core.Event) bool {
	s, ok := ev.(core.EventScroll)
	if !ok || s.Yoff == 0 {
		return false
	}
	if s.Yoff > 0 {
		cc.dist /= cc.ZoomSpeed
	} else {
		cc.dist *= cc.ZoomSpeed
	}
	cc.apply()
	return true
}

func (cc *OrbitController) apply() {
	const limit = math32.Pi/2 - 0.01
	cc.pitch = mgl32.Clamp(cc.pitch, -limit, limit)
	cc.dist = mgl32.Clamp(cc.dist, cc.MinDist, cc.MaxDist)

	cp := math32.Cos(cc.pitch)
	offset := mgl32.Vec3{
		cc.dist * cp * math32.Sin(cc.yaw),
		cc.dist * math32.Sin(cc.pitch),
		cc.dist * cp * math32.Cos(cc.yaw),
	}
	cc.Camera.Eye = cc.Camera.Target.Add(offset)
}
