package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the render-side placement of an entity: position, orientation, non-uniform scale.
// The collision volume is tracked separately by the collision service.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform creates a transform with identity rotation
func NewTransform(position, scale mgl64.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Scale:    scale,
	}
}

// Matrix combines the transform into a single TRS matrix (translate * rotate * scale)
func (t Transform) Matrix() mgl64.Mat4 {
	rot := t.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(rot.Mat4()).Mul4(scale)
}

// Extents returns the axis-aligned box size for base dimensions scaled per axis.
// Axes are scaled in x, y, z order, the same order used at registration.
func Extents(base, scale mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		base.X() * scale.X(),
		base.Y() * scale.Y(),
		base.Z() * scale.Z(),
	}
}
