package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"circle-collision-sim/internal/audio"
	"circle-collision-sim/internal/config"
	"circle-collision-sim/internal/simulation"
	"circle-collision-sim/internal/terminal"
	"circle-collision-sim/internal/visualization"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	restoreLog, err := cfg.RedirectLog(log.Default())
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	defer restoreLog()

	if err := run(cfg); err != nil {
		// Put stderr back so the failure is visible even in terminal mode.
		restoreLog()
		log.Fatalf("Simulation failed: %v", err)
	}
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	// --- Create Simulation ---
	opts, err := cfg.SimulationOptions()
	if err != nil {
		return err
	}
	sim, err := simulation.NewSimulation(opts, rng)
	if err != nil {
		return fmt.Errorf("error creating simulation: %w", err)
	}
	if err := sim.Populate(); err != nil {
		return fmt.Errorf("error creating circles: %w", err)
	}
	log.Printf("Created %d circles (seed %d, boundary %s, collisions %s)", sim.Len(), seed, cfg.Boundary, cfg.Collision)

	if cfg.Sound {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the simulation runs without sound
			log.Printf("Warning: sound disabled: %v", err)
		} else {
			defer player.Close()
			sim.OnCollision(player.Collided)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Frontend {
	case config.FrontendHeadless:
		err := sim.Run(ctx, cfg.Steps, cfg.TickDuration())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	case config.FrontendTerminal:
		screen, err := terminal.OpenScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()
		app := terminal.NewApp(screen, sim, terminal.Options{
			TickDuration: cfg.TickDuration(),
			ClickRemove:  cfg.ClickRemove,
		})
		return app.Run(ctx)

	default:
		renderer, err := visualization.NewRenderer(sim, visualization.Options{
			ClickRemove: cfg.ClickRemove,
			ShowHUD:     cfg.HUD,
		})
		if err != nil {
			return err
		}
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle("Circle Collisions")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetTPS(cfg.TPS)
		return ebiten.RunGame(renderer)
	}
}
