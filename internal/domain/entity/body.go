package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MoveState is the movement state of the controlled entity
type MoveState int

const (
	Airborne MoveState = iota
	Grounded
)

// String returns the string representation of the move state
func (s MoveState) String() string {
	if s == Grounded {
		return "Grounded"
	}
	return "Airborne"
}

// Body represents the physical body of an entity.
// Position is the volume centre in world units.
type Body struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	VelocityY float64
	Grounded  bool

	// WasGrounded is the state at the start of the previous step
	WasGrounded bool
}

// State returns the current movement state
func (b *Body) State() MoveState {
	if b.Grounded {
		return Grounded
	}
	return Airborne
}

// Supported reports whether the body is resting on something.
// A resting body alternates between Grounded and Airborne every step,
// so either of the last two step states counts.
func (b *Body) Supported() bool {
	return b.Grounded || b.WasGrounded
}

// Player represents the controlled entity
type Player struct {
	Body
	ID ColliderID

	Health    int
	MaxHealth int

	// LastDamageTime is the simulation time of the last applied damage, in seconds
	LastDamageTime float64

	jumpRequested bool
}

// NewPlayer creates a player at position with unit scale and no rotation.
// The player starts unregistered and Airborne.
func NewPlayer(position mgl64.Vec3, maxHealth int) *Player {
	return &Player{
		Body: Body{
			Position: position,
			Rotation: mgl64.QuatIdent(),
			Scale:    mgl64.Vec3{1, 1, 1},
		},
		ID:             NoCollider,
		Health:         maxHealth,
		MaxHealth:      maxHealth,
		LastDamageTime: math.Inf(-1),
	}
}

// RequestJump queues a jump for the next simulation step.
// Repeated requests before the step collapse into one.
func (p *Player) RequestJump() {
	p.jumpRequested = true
}

// JumpRequested reports whether a jump is queued
func (p *Player) JumpRequested() bool {
	return p.jumpRequested
}

// ConsumeJump clears the jump request and reports whether one was queued
func (p *Player) ConsumeJump() bool {
	requested := p.jumpRequested
	p.jumpRequested = false
	return requested
}

// IsDefeated returns true once health has reached zero or below
func (p *Player) IsDefeated() bool {
	return p.Health <= 0
}
