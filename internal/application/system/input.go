package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem samples the keyboard once per presentation tick
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one presentation tick's input snapshot
type InputState struct {
	Left  bool
	Right bool
	// JumpPressed is true only on the tick the jump key went down
	JumpPressed bool
	SpawnBox    bool
	Restart     bool
}

// Horizontal returns the movement axis in [-1, 1]
func (in InputState) Horizontal() float64 {
	axis := 0.0
	if in.Left {
		axis -= 1
	}
	if in.Right {
		axis += 1
	}
	return axis
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		SpawnBox:    inpututil.IsKeyJustPressed(ebiten.KeyB),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Apply forwards the edge-triggered actions of one snapshot to the simulation.
// The horizontal axis is consumed by Step.
func (s *InputSystem) Apply(sim *Simulation, in InputState) {
	if in.JumpPressed {
		sim.RequestJump()
	}
	if in.SpawnBox {
		if id := sim.AddRandomBox(); id.Valid() {
			sim.logger.Printf("spawned box %s", id)
		}
	}
}
