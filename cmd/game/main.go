package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/boxworld/internal/application/game"
	"github.com/younwookim/boxworld/internal/application/replay"
	"github.com/younwookim/boxworld/internal/application/scene/playing"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Rerun a recording headless and print the final state")
	worldFlag := flag.String("world", "default", "World config name under configs/worlds")
	seedFlag := flag.Int64("seed", 0, "World seed (0 = time based)")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	watchFlag := flag.Bool("watch", false, "Hot reload physics tuning from -config")
	listFlag := flag.Bool("list", false, "List available worlds and exit")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	if *listFlag {
		worlds, err := loader.ListWorlds()
		if err != nil {
			log.Fatalf("Failed to list worlds: %v", err)
		}
		for _, w := range worlds {
			fmt.Println(w)
		}
		return
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		result, err := runReplay(loader, data, log.Default())
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(result)
		return
	}

	cfg, err := loader.LoadAll(*worldFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		TPS:        cfg.Physics.Display.Framerate,
		Loader:     loader,
	}
	if *watchFlag {
		if *configFlag == "" {
			log.Fatal("-watch requires -config")
		}
		watcher, err := config.NewWatcher(*configFlag, filepath.Join(*configFlag, "worlds"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		opts.Watcher = watcher
		log.Printf("Watching %s for changes", *configFlag)
	}

	display := cfg.Physics.Display
	g := game.New(playing.New(cfg, opts), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Boxworld - %s", cfg.World.Name))
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
