package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	localForward = mgl64.Vec3{0, 0, -1}
	localRight   = mgl64.Vec3{1, 0, 0}
)

// Transform is a local placement. Forward is -Z, up is +Y.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()

func NewTransform(x, y, z float64) Transform {
	return Transform{
		Translation: mgl64.Vec3{x, y, z},
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

func (t Transform) Forward() mgl64.Vec3 { return t.Rotation.Rotate(localForward) }
func (t Transform) Right() mgl64.Vec3   { return t.Rotation.Rotate(localRight) }
func (t Transform) Up() mgl64.Vec3      { return t.Rotation.Rotate(WorldUp) }

// LookAt rotates t so Forward points at target. A target at the transform's
// own position leaves the rotation unchanged.
func (t *Transform) LookAt(target, up mgl64.Vec3) {
	dir := target.Sub(t.Translation)
	if dir.Len() < 1e-9 {
		return
	}
	f := dir.Normalize()
	r := f.Cross(up)
	if r.Len() < 1e-9 {
		// looking straight along up; any perpendicular right works
		r = f.Cross(mgl64.Vec3{0, 0, 1})
		if r.Len() < 1e-9 {
			r = f.Cross(mgl64.Vec3{1, 0, 0})
		}
	}
	r = r.Normalize()
	u := r.Cross(f)
	basis := mgl64.Mat3FromCols(r, u, f.Mul(-1))
	t.Rotation = mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// Mul composes t (parent) with child, returning child expressed in t's space.
func (t Transform) Mul(child Transform) Transform {
	scaled := mulElem(t.Scale, child.Translation)
	return Transform{
		Translation: t.Translation.Add(t.Rotation.Rotate(scaled)),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:       mulElem(t.Scale, child.Scale),
	}
}

// Matrix returns translate * rotate * scale.
func (t Transform) Matrix() mgl64.Mat4 {
	tr := mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	sc := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}

// LerpVec3 interpolates linearly without clamping s.
func LerpVec3(a, b mgl64.Vec3, s float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(s))
}

// YawRotation returns a rotation of degrees about world up.
func YawRotation(degrees float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(degrees), WorldUp)
}

// Yaw returns the heading of v on the XZ plane in radians, 0 along -Z.
func Yaw(v mgl64.Vec3) float64 {
	return math.Atan2(-v.X(), -v.Z())
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// GlobalTransform is the world-space placement written by transform
// propagation. Renderers read it instead of Transform.
type GlobalTransform struct {
	Transform
}

var GlobalTransformComponent = NewComponent[GlobalTransform]()

// Parent links an entity to the entity whose global transform it is relative
// to. Entity holds the raw ecs.Entity value.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
