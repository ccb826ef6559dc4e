package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// AABB is an axis-aligned box given by its min and max corners
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates a box from a centre and full edge lengths
func NewAABB(center, size mgl64.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Center returns the centre of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full edge lengths of the box
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Overlaps reports strict overlap. Boxes that only share a face do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y() &&
		a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z()
}

// BB projects the box onto the x/y plane
func (a AABB) BB() cp.BB {
	return cp.BB{L: a.Min.X(), B: a.Min.Y(), R: a.Max.X(), T: a.Max.Y()}
}
