package scene

import "github.com/go-gl/mathgl/mgl32"

// Object is a mutable transform owned by the caller and updated once per tick.
// Rotation holds Euler angles in radians, applied X, then Y, then Z.
type Object struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

func NewObject(translation mgl32.Vec3) *Object {
	return &Object{Translation: translation, Scale: mgl32.Vec3{1, 1, 1}}
}

// Model returns T * Rx * Ry * Rz * S.
func (o *Object) Model() mgl32.Mat4 {
	return mgl32.Translate3D(o.Translation.X(), o.Translation.Y(), o.Translation.Z()).
		Mul4(mgl32.HomogRotate3DX(o.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(o.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(o.Rotation.Z())).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}
