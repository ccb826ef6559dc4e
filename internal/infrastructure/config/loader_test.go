package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 1023, cfg.Display.BatchLimit)
	assert.Equal(t, 0.02, cfg.Simulation.FixedStep)
	assert.Equal(t, 5.0, cfg.Movement.Speed)
	assert.Equal(t, 9.8, cfg.Jump.Gravity)
	assert.Equal(t, 2.0, cfg.Jump.FallMultiplier)
	assert.True(t, cfg.Jump.RequireGrounded)
	assert.Equal(t, 10, cfg.Combat.ContactDamage)
	assert.Equal(t, mgl64.Vec3{0, 0, -15}, cfg.Camera.Offset)
}

func TestLoader_LoadWorld(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	t.Run("json", func(t *testing.T) {
		cfg, err := loader.LoadWorld("default")
		require.NoError(t, err)

		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, mgl64.Vec3{0, 10, 0}, cfg.Player.Spawn)
		assert.Equal(t, 98, cfg.Boxes.RandomCount())
		assert.Equal(t, 4, cfg.Enemies.Count)
		assert.Equal(t, -20.0, cfg.Ground.Y)
	})

	t.Run("yaml", func(t *testing.T) {
		cfg, err := loader.LoadWorld("arena")
		require.NoError(t, err)

		assert.Equal(t, "arena", cfg.Name)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 3, cfg.Enemies.Count)
		assert.Equal(t, mgl64.Vec3{18, -8.5, 0}, cfg.Goal.Position)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loader.LoadWorld("nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestLoader_PartialFilesKeepDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml":      {Data: []byte("movement:\n  speed: 8\n")},
		"worlds/tiny.json":  {Data: []byte(`{"enemies": {"count": 1}}`)},
		"worlds/notes.txt":  {Data: []byte("ignored")},
		"worlds/tiny2.yml":  {Data: []byte("seed: 7\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	physics, err := loader.LoadPhysics()
	require.NoError(t, err)
	assert.Equal(t, 8.0, physics.Movement.Speed)
	assert.Equal(t, DefaultPhysics().Jump, physics.Jump)

	world, err := loader.LoadWorld("tiny")
	require.NoError(t, err)
	assert.Equal(t, 1, world.Enemies.Count)
	assert.Equal(t, 2.0, world.Enemies.Speed)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, world.Box)
	assert.Equal(t, "tiny", world.Name)

	names, err := loader.ListWorlds()
	require.NoError(t, err)
	assert.Equal(t, []string{"tiny", "tiny2"}, names)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		invalid bool
	}{
		{
			name: "missing physics",
			fsys: fstest.MapFS{},
		},
		{
			name: "malformed json",
			fsys: fstest.MapFS{"physics.json": {Data: []byte("{")}},
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{"physics.yaml": {Data: []byte("movement: [")}},
		},
		{
			name:    "zero fixed step",
			fsys:    fstest.MapFS{"physics.json": {Data: []byte(`{"simulation": {"fixedStep": 0}}`)}},
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadPhysics()
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestWorldConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*WorldConfig)
		ok     bool
	}{
		{"defaults", func(*WorldConfig) {}, true},
		{"zero box", func(c *WorldConfig) { c.Box = mgl64.Vec3{1, 0, 1} }, false},
		{"inverted bounds", func(c *WorldConfig) { c.Bounds.MinX = 60 }, false},
		{"inverted patrol", func(c *WorldConfig) { c.Enemies.PatrolMinX = 40; c.Enemies.PatrolMaxX = 30 }, false},
		{"patrol past min bound", func(c *WorldConfig) { c.Enemies.PatrolMinX = -60 }, false},
		{"patrol past max bound", func(c *WorldConfig) { c.Enemies.PatrolMaxX = 51 }, false},
		{"patrol narrower than bounds", func(c *WorldConfig) { c.Enemies.PatrolMinX, c.Enemies.PatrolMaxX = -10, 10 }, true},
		{"zero tile", func(c *WorldConfig) { c.Ground.TileWidth = 0 }, false},
		{"negative count", func(c *WorldConfig) { c.Obstacles.Count = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWorld()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestBoxesConfig_RandomCount(t *testing.T) {
	assert.Equal(t, 98, BoxesConfig{InstanceCount: 100}.RandomCount())
	assert.Equal(t, 0, BoxesConfig{InstanceCount: 1}.RandomCount())
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("default")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.World)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.json"), []byte("{}"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "physics.json", filepath.Base(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no event for config file")
	}
}

func TestWatcher_DrainAndClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, w.Drain())
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "close is idempotent")
	assert.Empty(t, w.Drain())
}
