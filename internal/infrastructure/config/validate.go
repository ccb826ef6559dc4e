package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for values the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// MaxBatchLimit keeps four vertices per instance addressable by 16-bit indices
const MaxBatchLimit = 1 << 14

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks physics tuning
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.Simulation.FixedStep <= 0 {
		errs = append(errs, invalid("simulation.fixedStep must be positive, got %v", c.Simulation.FixedStep))
	}
	if c.Simulation.MaxStepsPerFrame <= 0 {
		errs = append(errs, invalid("simulation.maxStepsPerFrame must be positive, got %d", c.Simulation.MaxStepsPerFrame))
	}
	if c.Display.BatchLimit <= 0 || c.Display.BatchLimit > MaxBatchLimit {
		errs = append(errs, invalid("display.batchLimit must be in [1, %d], got %d", MaxBatchLimit, c.Display.BatchLimit))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, invalid("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Display.PixelsPerUnit <= 0 {
		errs = append(errs, invalid("display.pixelsPerUnit must be positive, got %v", c.Display.PixelsPerUnit))
	}
	if c.Combat.DamageCooldown < 0 {
		errs = append(errs, invalid("combat.damageCooldown must not be negative, got %v", c.Combat.DamageCooldown))
	}
	return errors.Join(errs...)
}

// Validate checks a world layout
func (c *WorldConfig) Validate() error {
	var errs []error
	for i, d := range c.Box {
		if d <= 0 {
			errs = append(errs, invalid("box dimension %d must be positive, got %v", i, d))
		}
	}
	if c.Bounds.MinX > c.Bounds.MaxX || c.Bounds.MinY > c.Bounds.MaxY {
		errs = append(errs, invalid("bounds are inverted"))
	}
	if c.Enemies.PatrolMinX > c.Enemies.PatrolMaxX {
		errs = append(errs, invalid("enemies patrol range is inverted"))
	}
	if c.Enemies.PatrolMinX < c.Bounds.MinX || c.Enemies.PatrolMaxX > c.Bounds.MaxX {
		errs = append(errs, invalid("enemies patrol range [%v, %v] must lie within bounds x [%v, %v]",
			c.Enemies.PatrolMinX, c.Enemies.PatrolMaxX, c.Bounds.MinX, c.Bounds.MaxX))
	}
	if c.Ground.TileWidth <= 0 {
		errs = append(errs, invalid("ground.tileWidth must be positive, got %v", c.Ground.TileWidth))
	}
	if c.Boxes.ScaleMin > c.Boxes.ScaleMax {
		errs = append(errs, invalid("boxes scale range is inverted"))
	}
	if c.Obstacles.SizeMin > c.Obstacles.SizeMax {
		errs = append(errs, invalid("obstacles size range is inverted"))
	}
	if c.Boxes.InstanceCount < 0 || c.Enemies.Count < 0 || c.Obstacles.Count < 0 {
		errs = append(errs, invalid("counts must not be negative"))
	}
	return errors.Join(errs...)
}
