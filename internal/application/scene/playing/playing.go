// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/boxworld/internal/application/render"
	"github.com/younwookim/boxworld/internal/application/scene"
	"github.com/younwookim/boxworld/internal/application/state"
	"github.com/younwookim/boxworld/internal/application/system"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorBox      = color.RGBA{120, 160, 200, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorDefeated = color.RGBA{100, 0, 0, 180}
	colorWon      = color.RGBA{0, 80, 0, 160}
)

// Options configures a Playing scene
type Options struct {
	Seed       int64  // 0 uses the world's seed, or a time-based one if that is 0 too
	RecordPath string // non-empty enables recording
	TPS        int    // presentation ticks per second, stored in recordings

	// Loader and Watcher enable hot reload of physics tuning. Both may be nil.
	Loader  *config.Loader
	Watcher *config.Watcher
	Logger  *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	loader  *config.Loader
	watcher *config.Watcher
	logger  *log.Logger

	sim     *system.Simulation
	stepper *system.Stepper
	input   *system.InputSystem

	camera  *render.Camera
	drawer  *render.EbitenDrawer
	batcher *render.Batcher
	mesh    render.Mesh

	screenW int
	screenH int
	tps     int

	// HUD state, fed by simulation callbacks
	health   int
	defeated bool

	// Deterministic RNG
	seed      int64
	fixedSeed bool

	// Input recording
	recorder       *Recorder
	recordFilename string
	sessions       int // sessions started, for per-restart recording names
}

// New creates a new Playing scene and populates its world.
func New(cfg *config.GameConfig, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = cfg.Physics.Display.Framerate
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.World.Seed
	}

	display := cfg.Physics.Display
	p := &Playing{
		config:         cfg,
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		logger:         logger,
		input:          system.NewInputSystem(),
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		tps:            tps,
		seed:           seed,
		fixedSeed:      seed != 0,
		recordFilename: opts.RecordPath,
		mesh:           render.Mesh{Size: cfg.World.Box, Color: colorBox},
	}
	if !p.fixedSeed {
		p.seed = time.Now().UnixNano()
	}

	p.camera = render.NewCamera(cfg.World.Player.Spawn, cfg.Physics.Camera.Offset, cfg.Physics.Camera.Smoothing,
		display.PixelsPerUnit, display.ScreenWidth, display.ScreenHeight)
	p.drawer = render.NewEbitenDrawer(p.camera)
	p.batcher = render.NewBatcher(display.BatchLimit, p.drawer)

	p.startSession()
	return p
}

// startSession builds and populates a fresh simulation from the current config
func (p *Playing) startSession() {
	p.sessions++
	p.sim = system.NewSession(p.config, p.seed, p.logger)
	p.stepper = system.NewStepper(p.config.Physics.Simulation.FixedStep, p.config.Physics.Simulation.MaxStepsPerFrame)
	p.defeated = false

	p.sim.OnHealthChanged = func(health int) {
		p.health = health
	}
	p.sim.OnDefeated = func() {
		p.defeated = true
		p.saveRecording()
	}
	p.sim.OnWon = func() {
		p.saveRecording()
	}

	pop := p.sim.Populate()
	p.logger.Printf("session started (seed %d, %d instances)", p.seed, pop.Total())

	p.camera.Position = p.sim.Player().Position.Add(p.camera.Offset)

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.config.World.Name, p.tps)
		p.logger.Printf("Recording enabled: %s (session %s)", p.recordPath(), p.recorder.SessionID())
	}
}

// recordPath names the current session's recording. The first session uses
// the configured path; each restart gets a numbered sibling.
func (p *Playing) recordPath() string {
	if p.recordFilename == "" {
		return GenerateFilename()
	}
	n := p.sessions - 1
	if n <= 0 {
		return p.recordFilename
	}
	ext := filepath.Ext(p.recordFilename)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(p.recordFilename, ext), n, ext)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.reloadConfig()

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.input.GetInput()
	if input.Restart {
		p.restart()
		return nil, nil
	}

	p.tick(input, dt)
	return nil, nil // nil = stay on this scene
}

// tick runs one presentation tick: record and apply the input snapshot,
// run the fixed steps owed for dt, then move the camera. Returns the
// number of simulation steps taken.
func (p *Playing) tick(input system.InputState, dt float64) int {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.input.Apply(p.sim, input)

	n := p.stepper.Advance(dt)
	taken := 0
	for i := 0; i < n; i++ {
		if !p.sim.Step(input.Horizontal()) {
			break
		}
		taken++
	}

	p.camera.Follow(p.sim.Player().Position)
	return taken
}

// reloadConfig applies pending physics file changes
func (p *Playing) reloadConfig() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	for _, changed := range p.watcher.Drain() {
		name := strings.TrimSuffix(filepath.Base(changed), filepath.Ext(changed))
		if name != "physics" {
			p.logger.Printf("config changed: %s (press R to restart with it)", changed)
			continue
		}

		physics, err := p.loader.LoadPhysics()
		if err != nil {
			p.logger.Printf("physics reload rejected: %v", err)
			continue
		}
		p.sim.SetPhysics(physics)
		p.logger.Printf("physics reloaded from %s", changed)
	}
}

// restart rebuilds the world, re-reading config when a loader is set
func (p *Playing) restart() {
	if p.loader != nil {
		if cfg, err := p.loader.LoadAll(p.config.World.Name); err != nil {
			p.logger.Printf("config reload failed, keeping current: %v", err)
		} else {
			p.config = cfg
			p.mesh.Size = cfg.World.Box
		}
	}

	// Keep the finished session's input before the recorder is replaced
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}

	// Reset RNG with new seed
	if !p.fixedSeed {
		p.seed = time.Now().UnixNano()
	}
	p.startSession()
	p.logger.Printf("restarted (seed %d)", p.seed)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath()

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Printf("Failed to save recording: %v", err)
	} else {
		p.logger.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	// The whole registry is resubmitted every presentation tick
	p.drawer.SetTarget(screen)
	p.batcher.Draw(p.sim.Registry().Matrices(), p.mesh)

	p.drawUI(screen)

	switch {
	case p.sim.State() == state.Won:
		p.drawWonOverlay(screen)
	case p.defeated:
		p.drawDefeatedOverlay(screen)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	// Background
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	// Foreground
	healthRatio := float64(p.health) / float64(p.sim.Player().MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d", p.health), int(barX+barW+8), int(barY)-3)

	player := p.sim.Player()
	status := fmt.Sprintf("%s  pos (%.1f, %.1f)  instances %d  steps %d",
		player.State(), player.Position.X(), player.Position.Y(), p.sim.Registry().Len(), p.sim.Steps())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	// Controls
	debugText := "A/D: Move | Space: Jump | B: Spawn box | R: Restart"
	if p.recorder != nil {
		debugText += " | F5: Save replay"
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawDefeatedOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorDefeated)

	text := fmt.Sprintf("DEFEATED\n\nHealth: %d\n\nPress R to restart", p.health)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func (p *Playing) drawWonOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorWon)

	text := fmt.Sprintf("GOAL REACHED\n\nTime: %.2fs\n\nPress R to restart", p.sim.Clock())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			p.logger.Printf("closing config watcher: %v", err)
		}
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
