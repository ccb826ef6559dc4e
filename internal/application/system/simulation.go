package system

import (
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/application/state"
	"github.com/younwookim/boxworld/internal/domain/entity"
	"github.com/younwookim/boxworld/internal/ecs"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

// Simulation owns one session: the player, adversaries, goal, the render
// registry and the systems stepping them. It is single-threaded; the
// presentation tick and the simulation tick must run on the same goroutine.
type Simulation struct {
	physics *config.PhysicsConfig
	world   *config.WorldConfig

	collider Collider
	registry *ecs.Registry
	rng      *rand.Rand
	logger   *log.Logger

	player  *entity.Player
	enemies []*entity.Enemy
	goal    *entity.Goal
	kinds   map[entity.ColliderID]entity.Kind

	movement *MovementSystem
	patrol   *PatrolSystem
	damage   *DamageSystem
	goals    *GoalSystem

	clock float64 // simulation seconds
	steps int

	// Event callbacks
	OnHealthChanged func(health int)
	OnDefeated      func()
	OnWon           func()
}

// NewSimulation wires the systems for an empty world.
// Call Populate to create the entities.
func NewSimulation(physics *config.PhysicsConfig, world *config.WorldConfig, collider Collider, rng *rand.Rand, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.Default()
	}

	registry := ecs.NewRegistry()
	s := &Simulation{
		physics:  physics,
		world:    world,
		collider: collider,
		registry: registry,
		rng:      rng,
		logger:   logger,
		player:   entity.NewPlayer(world.Player.Spawn, physics.Combat.MaxHealth),
		goal:     entity.NewGoal(world.Goal.Position, world.Goal.Size),
		kinds:    make(map[entity.ColliderID]entity.Kind),
		goals:    NewGoalSystem(collider),
	}

	s.movement = NewMovementSystem(physics, world.Box, collider, registry, logger)
	s.patrol = NewPatrolSystem(PatrolConfig{
		Speed:  world.Enemies.Speed,
		MinX:   world.Enemies.PatrolMinX,
		MaxX:   world.Enemies.PatrolMaxX,
		Height: world.Ground.Y + world.Box.Y(),
		Box:    world.Box,
	}, collider, registry, logger)
	s.damage = NewDamageSystem(&physics.Combat, logger)

	// Set up callbacks
	s.patrol.OnContact = func(*entity.Enemy) {
		s.damage.Apply(s.player, s.physics.Combat.ContactDamage, s.clock)
	}
	s.damage.OnHealthChanged = func(health int) {
		if s.OnHealthChanged != nil {
			s.OnHealthChanged(health)
		}
	}
	s.damage.OnDefeated = func() {
		if s.OnDefeated != nil {
			s.OnDefeated()
		}
	}
	s.goals.OnWon = func() {
		s.logger.Printf("goal reached after %d steps", s.steps)
		if s.OnWon != nil {
			s.OnWon()
		}
	}

	return s
}

// RequestJump queues a jump for the next step. Requests are dropped when
// jumping requires ground contact and the player has none.
func (s *Simulation) RequestJump() bool {
	if !s.movement.CanJump(s.player) {
		return false
	}
	s.player.RequestJump()
	return true
}

// Step advances one fixed step with the given horizontal axis.
// Order: player, then each adversary with its contact check, then the goal.
// Reports false without doing anything once the session is Won.
func (s *Simulation) Step(axis float64) bool {
	if !s.goals.State().Advances() {
		return false
	}

	dt := s.physics.Simulation.FixedStep
	s.clock += dt
	s.steps++

	s.movement.Step(s.player, axis, dt)
	s.patrol.Step(s.enemies, s.player.ID, dt)
	s.goals.Check(s.player.ID, s.goal.ID)
	return true
}

// SetPhysics swaps tuning between steps. Max health and the fixed step of a
// running session are kept.
func (s *Simulation) SetPhysics(cfg *config.PhysicsConfig) {
	next := *cfg
	next.Simulation.FixedStep = s.physics.Simulation.FixedStep
	next.Combat.MaxHealth = s.physics.Combat.MaxHealth
	s.physics = &next
	s.movement.SetConfig(s.physics)
	s.damage.SetConfig(&s.physics.Combat)
}

// State returns the session state
func (s *Simulation) State() state.SimState {
	return s.goals.State()
}

// Player returns the controlled entity
func (s *Simulation) Player() *entity.Player {
	return s.player
}

// Enemies returns the adversaries
func (s *Simulation) Enemies() []*entity.Enemy {
	return s.enemies
}

// Goal returns the goal
func (s *Simulation) Goal() *entity.Goal {
	return s.goal
}

// Registry returns the render registry
func (s *Simulation) Registry() *ecs.Registry {
	return s.registry
}

// KindOf returns the kind of a registered id
func (s *Simulation) KindOf(id entity.ColliderID) (entity.Kind, bool) {
	k, ok := s.kinds[id]
	return k, ok
}

// Clock returns elapsed simulation seconds
func (s *Simulation) Clock() float64 {
	return s.clock
}

// Steps returns the number of steps taken
func (s *Simulation) Steps() int {
	return s.steps
}

// Physics returns the tuning in use
func (s *Simulation) Physics() *config.PhysicsConfig {
	return s.physics
}

// spawn registers a volume and, on success, appends its registry row.
// Failures are logged and return entity.NoCollider.
func (s *Simulation) spawn(kind entity.Kind, t ecs.Transform, extents mgl64.Vec3, static bool) entity.ColliderID {
	id := s.collider.Register(t.Position, extents, static)
	if !id.Valid() {
		s.logger.Printf("failed to register %s collider at %v", kind, t.Position)
		return entity.NoCollider
	}
	if s.registry.Add(id, t) < 0 {
		s.logger.Printf("duplicate %s for %s", id, kind)
		return entity.NoCollider
	}
	s.collider.UpdateTransform(id, t.Matrix())
	s.kinds[id] = kind
	return id
}
