package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/application/replay"
	"github.com/younwookim/boxworld/internal/application/state"
	"github.com/younwookim/boxworld/internal/application/system"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

// ReplayResult is the final state of a headless replay
type ReplayResult struct {
	SessionID string
	World     string
	Frames    int
	Steps     int
	State     state.SimState
	Health    int
	Position  mgl64.Vec3
	Instances int
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("session %s world %s: %d frames, %d steps, %s, health %d, player at (%.3f, %.3f, %.3f), %d instances",
		r.SessionID, r.World, r.Frames, r.Steps, r.State, r.Health,
		r.Position.X(), r.Position.Y(), r.Position.Z(), r.Instances)
}

// runReplay reruns a recording against a freshly populated world. Each
// recorded frame goes through the same input and stepping path as the
// playing scene, so an unchanged config reproduces the session.
func runReplay(loader *config.Loader, data *replay.ReplayData, logger *log.Logger) (ReplayResult, error) {
	cfg, err := loader.LoadAll(data.World)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to load replay world: %w", err)
	}

	sim := system.NewSession(cfg, data.Seed, logger)
	sim.Populate()

	tps := data.TPS
	if tps <= 0 {
		tps = cfg.Physics.Display.Framerate
	}
	dt := 1.0 / float64(tps)

	stepper := system.NewStepper(cfg.Physics.Simulation.FixedStep, cfg.Physics.Simulation.MaxStepsPerFrame)
	input := system.NewInputSystem()
	replayer := replay.NewReplayer(*data)

	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}

		snapshot := system.InputState{
			Left:        in.Left,
			Right:       in.Right,
			JumpPressed: in.JumpPressed,
			SpawnBox:    in.SpawnBox,
		}
		input.Apply(sim, snapshot)

		for n := stepper.Advance(dt); n > 0; n-- {
			if !sim.Step(snapshot.Horizontal()) {
				break
			}
		}
	}

	return ReplayResult{
		SessionID: data.SessionID,
		World:     data.World,
		Frames:    replayer.CurrentFrame(),
		Steps:     sim.Steps(),
		State:     sim.State(),
		Health:    sim.Player().Health,
		Position:  sim.Player().Position,
		Instances: sim.Registry().Len(),
	}, nil
}
