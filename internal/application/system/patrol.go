package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
	"github.com/younwookim/boxworld/internal/ecs"
)

// PatrolConfig holds adversary motion parameters
type PatrolConfig struct {
	Speed  float64
	MinX   float64
	MaxX   float64
	Height float64    // fixed y of every adversary
	Box    mgl64.Vec3 // volume extents
}

// PatrolSystem moves adversaries back and forth and reports player contact
type PatrolSystem struct {
	config PatrolConfig
	syncer

	// OnContact is called for each adversary overlapping the player after it moved
	OnContact func(e *entity.Enemy)
}

// NewPatrolSystem creates a new patrol system
func NewPatrolSystem(cfg PatrolConfig, collider Collider, registry *ecs.Registry, logger *log.Logger) *PatrolSystem {
	return &PatrolSystem{
		config: cfg,
		syncer: newSyncer(collider, registry, logger),
	}
}

// Step advances every adversary by dt.
// Contact checks are skipped while the player is unregistered.
func (s *PatrolSystem) Step(enemies []*entity.Enemy, player entity.ColliderID, dt float64) {
	for _, e := range enemies {
		s.stepOne(e, player, dt)
	}
}

func (s *PatrolSystem) stepOne(e *entity.Enemy, player entity.ColliderID, dt float64) {
	// Unconditional advance; no collision gating against level geometry
	e.Position = e.Position.Add(e.Direction.Mul(s.config.Speed * dt))

	// Reflection is tested after the move, so an adversary may overshoot by one step
	if x := e.Position.X(); x < s.config.MinX || x > s.config.MaxX {
		e.Reverse()
	}

	e.Position[1] = s.config.Height

	t := ecs.NewTransform(e.Position, mgl64.Vec3{1, 1, 1})
	if !s.sync(e.ID, t, s.config.Box) {
		return
	}

	if player.Valid() && s.collider.QueryPair(e.ID, player) && s.OnContact != nil {
		s.OnContact(e)
	}
}
