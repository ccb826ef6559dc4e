// Package render draws the registry's transform list in instance batches.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultBatchLimit is the largest instance count submitted in one draw call
const DefaultBatchLimit = 1023

// Mesh is the shared box mesh and material every instance is drawn with
type Mesh struct {
	Size  mgl64.Vec3 // box edge lengths before the instance transform
	Color color.RGBA
}

// Drawer issues one draw call for a chunk of instances
type Drawer interface {
	DrawInstances(mesh Mesh, instances []mgl64.Mat4)
}

// Batcher splits a transform list into chunks no larger than its limit
type Batcher struct {
	limit  int
	drawer Drawer
}

// NewBatcher creates a batcher. A non-positive limit falls back to DefaultBatchLimit.
func NewBatcher(limit int, drawer Drawer) *Batcher {
	if limit <= 0 {
		limit = DefaultBatchLimit
	}
	return &Batcher{
		limit:  limit,
		drawer: drawer,
	}
}

// Limit returns the chunk size
func (b *Batcher) Limit() int {
	return b.limit
}

// Draw submits every instance in order and returns the number of draw calls
func (b *Batcher) Draw(instances []mgl64.Mat4, mesh Mesh) int {
	calls := 0
	for start := 0; start < len(instances); start += b.limit {
		end := min(start+b.limit, len(instances))
		b.drawer.DrawInstances(mesh, instances[start:end])
		calls++
	}
	return calls
}
