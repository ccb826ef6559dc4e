package system

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
	"github.com/younwookim/boxworld/internal/ecs"
)

// Population counts what Populate created
type Population struct {
	Player    bool
	Ground    int
	Boxes     int
	Enemies   int
	Obstacles int
	Goal      bool
	Failed    int
}

// String returns a one-line summary for logging
func (p Population) String() string {
	return fmt.Sprintf("player=%t ground=%d boxes=%d enemies=%d obstacles=%d goal=%t failed=%d",
		p.Player, p.Ground, p.Boxes, p.Enemies, p.Obstacles, p.Goal, p.Failed)
}

// Total returns the number of registry rows created
func (p Population) Total() int {
	n := p.Ground + p.Boxes + p.Enemies + p.Obstacles
	if p.Player {
		n++
	}
	if p.Goal {
		n++
	}
	return n
}

// Populate creates the player, ground, random boxes, adversaries, obstacles
// and goal, in that order. Failed registrations are skipped.
func (s *Simulation) Populate() Population {
	var pop Population
	count := func(id entity.ColliderID, n *int) {
		if id.Valid() {
			*n++
		} else {
			pop.Failed++
		}
	}

	s.createPlayer(&pop)

	for _, t := range s.groundTiles() {
		count(s.spawn(entity.KindGround, t, ecs.Extents(s.world.Box, t.Scale), true), &pop.Ground)
	}

	for i := 0; i < s.world.Boxes.RandomCount(); i++ {
		count(s.AddRandomBox(), &pop.Boxes)
	}

	for i := 0; i < s.world.Enemies.Count; i++ {
		count(s.createEnemy(), &pop.Enemies)
	}

	for i := 0; i < s.world.Obstacles.Count; i++ {
		count(s.createObstacle(), &pop.Obstacles)
	}

	s.createGoal(&pop)

	s.logger.Printf("world %q populated: %s", s.world.Name, pop)
	return pop
}

func (s *Simulation) createPlayer(pop *Population) {
	p := s.player
	t := ecs.Transform{Position: p.Position, Rotation: p.Rotation, Scale: p.Scale}
	p.ID = s.spawn(entity.KindPlayer, t, ecs.Extents(s.world.Box, p.Scale), true)
	pop.Player = p.ID.Valid()
	if !pop.Player {
		pop.Failed++
	}
	if s.OnHealthChanged != nil {
		s.OnHealthChanged(p.Health)
	}
}

// groundTiles covers [MinX, MaxX] with tiles of the configured width
func (s *Simulation) groundTiles() []ecs.Transform {
	g := s.world.Ground
	b := s.world.Bounds
	n := int(math.Ceil((b.MaxX - b.MinX) / g.TileWidth))

	tiles := make([]ecs.Transform, 0, n)
	for i := 0; i < n; i++ {
		x := b.MinX + float64(i)*g.TileWidth + g.TileWidth/2
		tiles = append(tiles, ecs.NewTransform(mgl64.Vec3{x, g.Y, 0}, mgl64.Vec3{g.TileWidth, 1, g.Depth}))
	}
	return tiles
}

// AddRandomBox scatters one box inside the world bounds with a random
// z rotation and per-axis scale. Collision ignores the rotation.
func (s *Simulation) AddRandomBox() entity.ColliderID {
	b := s.world.Bounds
	bx := s.world.Boxes

	pos := mgl64.Vec3{s.uniform(b.MinX, b.MaxX), s.uniform(b.MinY, b.MaxY), 0}
	rot := mgl64.QuatRotate(mgl64.DegToRad(s.uniform(0, 360)), mgl64.Vec3{0, 0, 1})
	scale := mgl64.Vec3{
		s.uniform(bx.ScaleMin, bx.ScaleMax),
		s.uniform(bx.ScaleMin, bx.ScaleMax),
		s.uniform(bx.ScaleMin, bx.ScaleMax),
	}

	t := ecs.Transform{Position: pos, Rotation: rot, Scale: scale}
	return s.spawn(entity.KindBox, t, ecs.Extents(s.world.Box, scale), false)
}

// createEnemy spawns inside the patrol range; reflection assumes a start
// inside it, so an enemy placed outside would reverse every step.
func (s *Simulation) createEnemy() entity.ColliderID {
	w := s.world
	pos := mgl64.Vec3{s.uniform(w.Enemies.PatrolMinX, w.Enemies.PatrolMaxX), w.Ground.Y + 1, 0}
	r := w.Enemies.DirectionRange
	dir := mgl64.Vec3{s.uniform(-r, r), 0, 0}

	id := s.spawn(entity.KindEnemy, ecs.NewTransform(pos, mgl64.Vec3{1, 1, 1}), w.Box, false)
	if id.Valid() {
		s.enemies = append(s.enemies, entity.NewEnemy(id, pos, dir))
	}
	return id
}

func (s *Simulation) createObstacle() entity.ColliderID {
	w := s.world
	size := s.uniform(w.Obstacles.SizeMin, w.Obstacles.SizeMax)
	scale := mgl64.Vec3{size, size, size}
	pos := mgl64.Vec3{s.uniform(w.Bounds.MinX, w.Bounds.MaxX), w.Ground.Y + w.Box.Y()/2, 0}

	return s.spawn(entity.KindObstacle, ecs.NewTransform(pos, scale), ecs.Extents(w.Box, scale), false)
}

func (s *Simulation) createGoal(pop *Population) {
	g := s.goal
	g.ID = s.spawn(entity.KindGoal, ecs.NewTransform(g.Position, g.Size), g.Size, false)
	if !g.ID.Valid() {
		pop.Failed++
		return
	}
	// The goal must not block movement into it
	s.collider.SetSensor(g.ID, true)
	pop.Goal = true
	s.logger.Printf("goal %s at %v size %v", g.ID, g.Position, g.Size)
}

// uniform returns a value in [lo, hi)
func (s *Simulation) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
