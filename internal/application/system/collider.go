package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

// Collider is the collision service the systems run against.
// collision.World implements it; tests use a mock.
type Collider interface {
	// Register returns entity.NoCollider when the service rejects the volume
	Register(center, extents mgl64.Vec3, static bool) entity.ColliderID
	UpdateVolume(id entity.ColliderID, center, extents mgl64.Vec3) bool
	UpdateTransform(id entity.ColliderID, m mgl64.Mat4) bool
	// QueryAt tests id's volume placed at candidate against every other volume
	QueryAt(id entity.ColliderID, candidate mgl64.Vec3) bool
	QueryPair(a, b entity.ColliderID) bool
	SetSensor(id entity.ColliderID, sensor bool) bool
}
