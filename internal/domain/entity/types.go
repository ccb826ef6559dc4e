package entity

import "fmt"

// ColliderID is the handle the collision service hands out for a registered volume.
// Handles are dense, non-negative and never recycled.
type ColliderID int

// NoCollider marks a failed registration or an entity that was never registered.
// It must never be stored in the registry or passed to a query.
const NoCollider ColliderID = -1

// Valid returns true if the id refers to a registered volume
func (id ColliderID) Valid() bool {
	return id >= 0
}

// String returns the id for log output
func (id ColliderID) String() string {
	if !id.Valid() {
		return "collider(none)"
	}
	return fmt.Sprintf("collider(%d)", int(id))
}

// Kind tags what an entity is for logging and rendering
type Kind int

const (
	KindPlayer Kind = iota
	KindGround
	KindBox
	KindEnemy
	KindObstacle
	KindGoal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGround:
		return "ground"
	case KindBox:
		return "box"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}
