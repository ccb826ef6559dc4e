package config

import "github.com/go-gl/mathgl/mgl64"

// DefaultPhysics returns the built-in tuning. Loaded files overlay it,
// so any field a file omits keeps its default.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:   640,
			ScreenHeight:  480,
			Scale:         1,
			Framerate:     60,
			PixelsPerUnit: 8,
			BatchLimit:    1023,
		},
		Simulation: SimulationConfig{
			FixedStep:        0.02,
			MaxStepsPerFrame: 5,
			ColliderCapacity: 1024,
		},
		Movement: MovementConfig{
			Speed:      5,
			AirControl: 0.5,
		},
		Jump: JumpConfig{
			Force:           10,
			Gravity:         9.8,
			FallMultiplier:  2,
			RequireGrounded: true,
		},
		Combat: CombatConfig{
			MaxHealth:      100,
			ContactDamage:  10,
			DamageCooldown: 1.0,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
			Offset:    mgl64.Vec3{0, 0, -15},
		},
	}
}

// DefaultWorld returns the built-in world layout
func DefaultWorld() *WorldConfig {
	return &WorldConfig{
		Name: "default",
		Box:  mgl64.Vec3{1, 1, 1},
		Bounds: BoundsConfig{
			MinX: -50, MaxX: 50,
			MinY: -50, MaxY: 50,
		},
		Ground: GroundConfig{
			Y:         -20,
			TileWidth: 10,
			Depth:     200,
		},
		Player: PlayerConfig{
			Spawn: mgl64.Vec3{0, 10, 0},
		},
		Boxes: BoxesConfig{
			InstanceCount: 100,
			ScaleMin:      0.5,
			ScaleMax:      3,
		},
		Enemies: EnemiesConfig{
			Count:          4,
			Speed:          2,
			DirectionRange: 5,
			PatrolMinX:     -50,
			PatrolMaxX:     50,
		},
		Obstacles: ObstaclesConfig{
			Count:   4,
			SizeMin: 1,
			SizeMax: 3,
		},
		Goal: GoalConfig{
			Position: mgl64.Vec3{200, 1, 0},
			Size:     mgl64.Vec3{2, 2, 2},
		},
	}
}
