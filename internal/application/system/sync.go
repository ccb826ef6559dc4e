package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
	"github.com/younwookim/boxworld/internal/ecs"
)

// syncer writes a resolved placement to the registry row and the collision volume of one id
type syncer struct {
	collider Collider
	registry *ecs.Registry
	logger   *log.Logger
}

func newSyncer(collider Collider, registry *ecs.Registry, logger *log.Logger) syncer {
	if logger == nil {
		logger = log.Default()
	}
	return syncer{collider: collider, registry: registry, logger: logger}
}

// sync reports false and logs when id has no registry row; the caller skips
// that entity for the tick.
func (s syncer) sync(id entity.ColliderID, t ecs.Transform, extents mgl64.Vec3) bool {
	idx, ok := s.registry.IndexOf(id)
	if !ok {
		s.logger.Printf("%s not found in registry, skipping", id)
		return false
	}
	s.registry.Set(idx, t)
	s.collider.UpdateVolume(id, t.Position, extents)
	s.collider.UpdateTransform(id, t.Matrix())
	return true
}
