package system

import (
	"log"
	"math/rand"

	"github.com/younwookim/boxworld/internal/infrastructure/collision"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

// Stepper converts presentation frame time into a whole number of fixed
// simulation steps. Leftover time carries over to the next frame.
type Stepper struct {
	step     float64
	maxSteps int
	acc      float64
}

// NewStepper creates a stepper. maxSteps <= 0 means no cap.
func NewStepper(step float64, maxSteps int) *Stepper {
	return &Stepper{step: step, maxSteps: maxSteps}
}

// Advance adds frameDT to the accumulator and returns how many steps to run.
// Time beyond the cap is dropped so a stalled frame cannot spiral.
func (s *Stepper) Advance(frameDT float64) int {
	s.acc += frameDT
	n := 0
	for s.acc >= s.step {
		if s.maxSteps > 0 && n == s.maxSteps {
			s.acc = 0
			break
		}
		s.acc -= s.step
		n++
	}
	return n
}

// Reset clears the accumulator
func (s *Stepper) Reset() {
	s.acc = 0
}

// NewSession creates an unpopulated simulation backed by an in-process
// collision world. The same seed and config always populate the same world.
func NewSession(cfg *config.GameConfig, seed int64, logger *log.Logger) *Simulation {
	collider := collision.NewWorld(cfg.Physics.Simulation.ColliderCapacity)
	return NewSimulation(cfg.Physics, cfg.World, collider, rand.New(rand.NewSource(seed)), logger)
}
