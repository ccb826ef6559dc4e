package system

import (
	"github.com/younwookim/boxworld/internal/application/state"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

// GoalSystem detects the player reaching the goal volume
type GoalSystem struct {
	collider Collider
	state    state.SimState

	// OnWon is called once on entry into Won
	OnWon func()
}

// NewGoalSystem creates a goal system in the Running state
func NewGoalSystem(collider Collider) *GoalSystem {
	return &GoalSystem{
		collider: collider,
		state:    state.Running,
	}
}

// State returns the current simulation state
func (s *GoalSystem) State() state.SimState {
	return s.state
}

// Check tests player against goal and transitions to Won on overlap.
// It is a no-op while either id is unregistered. Reports whether the
// transition happened on this call.
func (s *GoalSystem) Check(player, goal entity.ColliderID) bool {
	if !player.Valid() || !goal.Valid() {
		return false
	}
	if !s.collider.QueryPair(player, goal) {
		return false
	}

	next, changed := s.state.Win()
	s.state = next
	if changed && s.OnWon != nil {
		s.OnWon()
	}
	return changed
}
