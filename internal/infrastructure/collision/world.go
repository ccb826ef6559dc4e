package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

// DefaultCapacity is the volume limit used when none is configured
const DefaultCapacity = 1024

type volume struct {
	box       AABB
	bb        cp.BB
	static    bool
	sensor    bool
	transform mgl64.Mat4
}

// World is an in-process collision service over axis-aligned boxes.
// Handles are indices into the volume list and are never recycled.
// World is not safe for concurrent writers.
type World struct {
	capacity int
	volumes  []volume
}

// NewWorld creates a world holding at most capacity volumes.
// A non-positive capacity falls back to DefaultCapacity.
func NewWorld(capacity int) *World {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &World{
		capacity: capacity,
		volumes:  make([]volume, 0, min(capacity, 256)),
	}
}

// Register adds a volume centred at center with full edge lengths extents.
// Returns entity.NoCollider when the world is full or extents are negative.
func (w *World) Register(center, extents mgl64.Vec3, static bool) entity.ColliderID {
	if len(w.volumes) >= w.capacity {
		return entity.NoCollider
	}
	if extents.X() < 0 || extents.Y() < 0 || extents.Z() < 0 {
		return entity.NoCollider
	}

	box := NewAABB(center, extents)
	w.volumes = append(w.volumes, volume{
		box:       box,
		bb:        box.BB(),
		static:    static,
		transform: mgl64.Translate3D(center.X(), center.Y(), center.Z()),
	})
	return entity.ColliderID(len(w.volumes) - 1)
}

func (w *World) get(id entity.ColliderID) (*volume, bool) {
	if !id.Valid() || int(id) >= len(w.volumes) {
		return nil, false
	}
	return &w.volumes[id], true
}

// UpdateVolume repositions and resizes a registered volume.
// Reports false for unknown ids.
func (w *World) UpdateVolume(id entity.ColliderID, center, extents mgl64.Vec3) bool {
	v, ok := w.get(id)
	if !ok {
		return false
	}
	v.box = NewAABB(center, extents)
	v.bb = v.box.BB()
	return true
}

// UpdateTransform associates a render transform with id.
// The collision volume is not affected.
func (w *World) UpdateTransform(id entity.ColliderID, m mgl64.Mat4) bool {
	v, ok := w.get(id)
	if !ok {
		return false
	}
	v.transform = m
	return true
}

// Transform returns the render transform last associated with id
func (w *World) Transform(id entity.ColliderID) (mgl64.Mat4, bool) {
	v, ok := w.get(id)
	if !ok {
		return mgl64.Mat4{}, false
	}
	return v.transform, true
}

// Volume returns the current box of id
func (w *World) Volume(id entity.ColliderID) (AABB, bool) {
	v, ok := w.get(id)
	if !ok {
		return AABB{}, false
	}
	return v.box, true
}

// IsStatic reports whether id was registered as static
func (w *World) IsStatic(id entity.ColliderID) bool {
	v, ok := w.get(id)
	return ok && v.static
}

// SetSensor marks id as a sensor. Sensors never block QueryAt
// but still report overlaps through QueryPair.
func (w *World) SetSensor(id entity.ColliderID, sensor bool) bool {
	v, ok := w.get(id)
	if !ok {
		return false
	}
	v.sensor = sensor
	return true
}

// QueryAt reports whether id's volume, moved to candidate, would overlap
// any other non-sensor volume. State is not mutated.
func (w *World) QueryAt(id entity.ColliderID, candidate mgl64.Vec3) bool {
	v, ok := w.get(id)
	if !ok {
		return false
	}

	probe := NewAABB(candidate, v.box.Size())
	probeBB := probe.BB()
	for i := range w.volumes {
		if entity.ColliderID(i) == id {
			continue
		}
		other := &w.volumes[i]
		if other.sensor {
			continue
		}
		if !probeBB.Intersects(other.bb) {
			continue
		}
		if probe.Overlaps(other.box) {
			return true
		}
	}
	return false
}

// QueryPair reports current overlap between two distinct volumes
func (w *World) QueryPair(a, b entity.ColliderID) bool {
	if a == b {
		return false
	}
	va, ok := w.get(a)
	if !ok {
		return false
	}
	vb, ok := w.get(b)
	if !ok {
		return false
	}
	if !va.bb.Intersects(vb.bb) {
		return false
	}
	return va.box.Overlaps(vb.box)
}

// Len returns the number of registered volumes
func (w *World) Len() int {
	return len(w.volumes)
}

// Capacity returns the volume limit
func (w *World) Capacity() int {
	return w.capacity
}
