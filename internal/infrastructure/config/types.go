package config

import "github.com/go-gl/mathgl/mgl64"

// PhysicsConfig is the root config for physics.{json,yaml}
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Movement   MovementConfig   `json:"movement" yaml:"movement"`
	Jump       JumpConfig       `json:"jump" yaml:"jump"`
	Combat     CombatConfig     `json:"combat" yaml:"combat"`
	Camera     CameraConfig     `json:"camera" yaml:"camera"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screenHeight"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"`
	BatchLimit    int     `json:"batchLimit" yaml:"batchLimit"` // max instances per draw call
}

type SimulationConfig struct {
	FixedStep        float64 `json:"fixedStep" yaml:"fixedStep"`               // seconds per simulation tick
	MaxStepsPerFrame int     `json:"maxStepsPerFrame" yaml:"maxStepsPerFrame"` // accumulator catch-up limit
	ColliderCapacity int     `json:"colliderCapacity" yaml:"colliderCapacity"`
}

type MovementConfig struct {
	Speed      float64 `json:"speed" yaml:"speed"`           // world units per second on the ground
	AirControl float64 `json:"airControl" yaml:"airControl"` // speed factor while airborne
}

type JumpConfig struct {
	Force           float64 `json:"force" yaml:"force"`
	Gravity         float64 `json:"gravity" yaml:"gravity"`
	FallMultiplier  float64 `json:"fallMultiplier" yaml:"fallMultiplier"`
	RequireGrounded bool    `json:"requireGrounded" yaml:"requireGrounded"`
}

type CombatConfig struct {
	MaxHealth      int     `json:"maxHealth" yaml:"maxHealth"`
	ContactDamage  int     `json:"contactDamage" yaml:"contactDamage"`
	DamageCooldown float64 `json:"damageCooldown" yaml:"damageCooldown"` // seconds
}

type CameraConfig struct {
	Smoothing float64    `json:"smoothing" yaml:"smoothing"`
	Offset    mgl64.Vec3 `json:"offset" yaml:"offset"`
}

// WorldConfig is the root config for worlds/<name>.{json,yaml}
type WorldConfig struct {
	Name      string          `json:"name" yaml:"name"`
	Seed      int64           `json:"seed" yaml:"seed"` // 0 picks a seed at start
	Box       mgl64.Vec3      `json:"box" yaml:"box"`   // base box dimensions
	Bounds    BoundsConfig    `json:"bounds" yaml:"bounds"`
	Ground    GroundConfig    `json:"ground" yaml:"ground"`
	Player    PlayerConfig    `json:"player" yaml:"player"`
	Boxes     BoxesConfig     `json:"boxes" yaml:"boxes"`
	Enemies   EnemiesConfig   `json:"enemies" yaml:"enemies"`
	Obstacles ObstaclesConfig `json:"obstacles" yaml:"obstacles"`
	Goal      GoalConfig      `json:"goal" yaml:"goal"`
}

type BoundsConfig struct {
	MinX float64 `json:"minX" yaml:"minX"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
}

type GroundConfig struct {
	Y         float64 `json:"y" yaml:"y"`
	TileWidth float64 `json:"tileWidth" yaml:"tileWidth"`
	Depth     float64 `json:"depth" yaml:"depth"`
}

type PlayerConfig struct {
	Spawn mgl64.Vec3 `json:"spawn" yaml:"spawn"`
}

type BoxesConfig struct {
	// InstanceCount includes the player and the goal, matching the batch size
	InstanceCount int     `json:"instanceCount" yaml:"instanceCount"`
	ScaleMin      float64 `json:"scaleMin" yaml:"scaleMin"`
	ScaleMax      float64 `json:"scaleMax" yaml:"scaleMax"`
}

// RandomCount returns the number of scattered boxes
func (b BoxesConfig) RandomCount() int {
	return max(b.InstanceCount-2, 0)
}

type EnemiesConfig struct {
	Count          int     `json:"count" yaml:"count"`
	Speed          float64 `json:"speed" yaml:"speed"`
	DirectionRange float64 `json:"directionRange" yaml:"directionRange"`
	PatrolMinX     float64 `json:"patrolMinX" yaml:"patrolMinX"`
	PatrolMaxX     float64 `json:"patrolMaxX" yaml:"patrolMaxX"`
}

type ObstaclesConfig struct {
	Count   int     `json:"count" yaml:"count"`
	SizeMin float64 `json:"sizeMin" yaml:"sizeMin"`
	SizeMax float64 `json:"sizeMax" yaml:"sizeMax"`
}

type GoalConfig struct {
	Position mgl64.Vec3 `json:"position" yaml:"position"`
	Size     mgl64.Vec3 `json:"size" yaml:"size"`
}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	World   *WorldConfig
}
