package entity

import "github.com/go-gl/mathgl/mgl64"

// Enemy represents a patrolling adversary
type Enemy struct {
	ID        ColliderID
	Position  mgl64.Vec3
	Direction mgl64.Vec3 // unit vector along x
}

// NewEnemy creates an enemy moving along dir.
// A zero direction is kept as is; the enemy then stands still.
func NewEnemy(id ColliderID, position, dir mgl64.Vec3) *Enemy {
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return &Enemy{
		ID:        id,
		Position:  position,
		Direction: dir,
	}
}

// Reverse flips the patrol direction
func (e *Enemy) Reverse() {
	e.Direction = e.Direction.Mul(-1)
}

// Goal is the designated win volume. It never moves.
type Goal struct {
	ID       ColliderID
	Position mgl64.Vec3
	Size     mgl64.Vec3
}

// NewGoal creates an unregistered goal
func NewGoal(position, size mgl64.Vec3) *Goal {
	return &Goal{
		ID:       NoCollider,
		Position: position,
		Size:     size,
	}
}
