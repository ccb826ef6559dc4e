package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
	"github.com/younwookim/boxworld/internal/ecs"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

// MovementSystem integrates the controlled entity one fixed step at a time.
// Axes are resolved independently: horizontal first, then vertical at the
// already-resolved horizontal position.
type MovementSystem struct {
	config *config.PhysicsConfig
	box    mgl64.Vec3 // base box dimensions
	syncer
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.PhysicsConfig, box mgl64.Vec3, collider Collider, registry *ecs.Registry, logger *log.Logger) *MovementSystem {
	return &MovementSystem{
		config: cfg,
		box:    box,
		syncer: newSyncer(collider, registry, logger),
	}
}

// SetConfig swaps the tuning used from the next step on
func (m *MovementSystem) SetConfig(cfg *config.PhysicsConfig) {
	m.config = cfg
}

// CanJump reports whether a jump request should be accepted now.
// A body that was grounded last step but is airborne now either rests in
// contact or has just walked off a ledge; only the first has something
// within one rest gap below it.
func (m *MovementSystem) CanJump(p *entity.Player) bool {
	if !m.config.Jump.RequireGrounded || p.Grounded {
		return true
	}
	if !p.Supported() {
		return false
	}
	below := p.Position
	below[1] -= m.restGap()
	return m.collider.QueryAt(p.ID, below)
}

// restGap bounds the gap left under a resting body: the first fall step
// from rest would close any larger one.
func (m *MovementSystem) restGap() float64 {
	dt := m.config.Simulation.FixedStep
	return m.config.Jump.Gravity * math.Max(1, m.config.Jump.FallMultiplier) * dt * dt
}

// Step advances the player by dt with horizontal input axis in [-1, 1].
// An unregistered player is left untouched.
func (m *MovementSystem) Step(p *entity.Player, axis, dt float64) {
	if !p.ID.Valid() {
		return
	}

	startGrounded := p.Grounded
	if p.Grounded {
		p.VelocityY = 0
	}

	if p.ConsumeJump() {
		p.VelocityY = m.config.Jump.Force
		p.Grounded = false
		startGrounded = false
	} else if !p.Grounded {
		// Falls are steeper than rises
		mult := 1.0
		if p.VelocityY < 0 {
			mult = m.config.Jump.FallMultiplier
		}
		p.VelocityY -= m.config.Jump.Gravity * mult * dt
	}
	p.WasGrounded = startGrounded

	axis = mgl64.Clamp(axis, -1, 1)
	speed := m.config.Movement.Speed
	if !p.Grounded {
		speed *= m.config.Movement.AirControl
	}

	pos := p.Position

	// Horizontal: rejected outright on overlap
	candidate := pos
	candidate[0] += axis * speed * dt
	if candidate != pos && !m.collider.QueryAt(p.ID, candidate) {
		pos = candidate
	}

	// Vertical
	candidate = pos
	candidate[1] += p.VelocityY * dt
	if m.collider.QueryAt(p.ID, candidate) {
		if p.VelocityY < 0 {
			p.Grounded = true
		}
		p.VelocityY = 0
	} else {
		pos = candidate
		p.Grounded = false
	}

	p.Position = pos
	m.sync(p.ID, ecs.Transform{Position: p.Position, Rotation: p.Rotation, Scale: p.Scale}, ecs.Extents(m.box, p.Scale))
}
