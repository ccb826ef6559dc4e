package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

// Registry maps collider ids to render transforms.
// Rows are append-only; existing rows are mutated in place by index.
// The transform list is the single source of truth for what gets drawn.
type Registry struct {
	ids        []entity.ColliderID
	transforms []Transform
	index      map[entity.ColliderID]int

	// Matrix cache, rebuilt lazily for rows touched since the last Matrices call
	matrices []mgl64.Mat4
	dirty    []bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[entity.ColliderID]int),
	}
}

// Add appends a row for id and returns its index.
// Returns -1 without adding if id is the sentinel or already present.
func (r *Registry) Add(id entity.ColliderID, t Transform) int {
	if !id.Valid() {
		return -1
	}
	if _, exists := r.index[id]; exists {
		return -1
	}

	idx := len(r.transforms)
	r.ids = append(r.ids, id)
	r.transforms = append(r.transforms, t)
	r.matrices = append(r.matrices, mgl64.Ident4())
	r.dirty = append(r.dirty, true)
	r.index[id] = idx
	return idx
}

// Set replaces the transform at index. Out-of-range indices are ignored and reported as false.
func (r *Registry) Set(index int, t Transform) bool {
	if index < 0 || index >= len(r.transforms) {
		return false
	}
	r.transforms[index] = t
	r.dirty[index] = true
	return true
}

// IndexOf returns the row index for id
func (r *Registry) IndexOf(id entity.ColliderID) (int, bool) {
	idx, ok := r.index[id]
	return idx, ok
}

// Get returns the transform at index
func (r *Registry) Get(index int) (Transform, bool) {
	if index < 0 || index >= len(r.transforms) {
		return Transform{}, false
	}
	return r.transforms[index], true
}

// IDAt returns the collider id stored at index
func (r *Registry) IDAt(index int) (entity.ColliderID, bool) {
	if index < 0 || index >= len(r.ids) {
		return entity.NoCollider, false
	}
	return r.ids[index], true
}

// Len returns the number of rows
func (r *Registry) Len() int {
	return len(r.transforms)
}

// IDs returns a copy of the registered ids in row order
func (r *Registry) IDs() []entity.ColliderID {
	out := make([]entity.ColliderID, len(r.ids))
	copy(out, r.ids)
	return out
}

// Matrices returns the TRS matrix of every row in row order.
// The returned slice is owned by the registry and valid until the next mutation.
func (r *Registry) Matrices() []mgl64.Mat4 {
	for i, d := range r.dirty {
		if d {
			r.matrices[i] = r.transforms[i].Matrix()
			r.dirty[i] = false
		}
	}
	return r.matrices
}
