package system

import (
	"bytes"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

// mockCollider is a scripted collision service.
// Queries answer false unless a hook is set.
type mockCollider struct {
	attempts int
	failOn   map[int]bool // registration attempt -> reject
	next     entity.ColliderID

	centers    map[entity.ColliderID]mgl64.Vec3
	extents    map[entity.ColliderID]mgl64.Vec3
	transforms map[entity.ColliderID]mgl64.Mat4
	sensors    map[entity.ColliderID]bool

	queryAt   func(id entity.ColliderID, candidate mgl64.Vec3) bool
	queryPair func(a, b entity.ColliderID) bool

	queryAtCalls []mgl64.Vec3
}

func newMockCollider() *mockCollider {
	return &mockCollider{
		failOn:     make(map[int]bool),
		centers:    make(map[entity.ColliderID]mgl64.Vec3),
		extents:    make(map[entity.ColliderID]mgl64.Vec3),
		transforms: make(map[entity.ColliderID]mgl64.Mat4),
		sensors:    make(map[entity.ColliderID]bool),
	}
}

func (m *mockCollider) Register(center, extents mgl64.Vec3, static bool) entity.ColliderID {
	attempt := m.attempts
	m.attempts++
	if m.failOn[attempt] {
		return entity.NoCollider
	}
	id := m.next
	m.next++
	m.centers[id] = center
	m.extents[id] = extents
	return id
}

func (m *mockCollider) UpdateVolume(id entity.ColliderID, center, extents mgl64.Vec3) bool {
	if _, ok := m.centers[id]; !ok {
		return false
	}
	m.centers[id] = center
	m.extents[id] = extents
	return true
}

func (m *mockCollider) UpdateTransform(id entity.ColliderID, mat mgl64.Mat4) bool {
	m.transforms[id] = mat
	return true
}

func (m *mockCollider) QueryAt(id entity.ColliderID, candidate mgl64.Vec3) bool {
	m.queryAtCalls = append(m.queryAtCalls, candidate)
	if m.queryAt == nil {
		return false
	}
	return m.queryAt(id, candidate)
}

func (m *mockCollider) QueryPair(a, b entity.ColliderID) bool {
	if m.queryPair == nil {
		return false
	}
	return m.queryPair(a, b)
}

func (m *mockCollider) SetSensor(id entity.ColliderID, sensor bool) bool {
	m.sensors[id] = sensor
	return true
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}
