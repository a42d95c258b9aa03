package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/drewwalton19216801/gameoflife/model"
	"github.com/drewwalton19216801/gameoflife/utils"
)

const configFile = "config.json"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %+v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Probability = resolveProbability(args, config)

	grid, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(config, grid)

	// The signal watcher is the only collaborator sharing state with the
	// tick loop: a single stop flag, written once on interrupt and polled
	// once per tick
	var stop atomic.Bool
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var eg errgroup.Group
	eg.Go(func() error {
		<-sigChan
		stop.Store(true)
		return nil
	})
	eg.Go(func() error {
		defer func() {
			// Unblock the watcher if the loop dies on a render error
			signal.Stop(sigChan)
			close(sigChan)
		}()
		return runLoop(grid, pool, renderer, stats, config, &stop)
	})

	if err = eg.Wait(); err != nil {
		return err
	}

	displayFinalStats(stats)
	return nil
}

// runLoop drives the simulation: paint the current generation, advance,
// sleep, check the stop flag. It exits cleanly on interrupt and fatally on
// the first render error.
func runLoop(
	grid *model.Grid,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
	stop *atomic.Bool,
) error {
	if err := renderer.HideCursor(); err != nil {
		return err
	}
	if err := renderer.ClearScreen(); err != nil {
		return err
	}
	if err := renderer.PaintFull(grid); err != nil {
		return err
	}

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for !stop.Load() {
		time.Sleep(config.TickInterval)

		prev := grid
		grid = prev.Advance(pool)
		if config.BorderWall {
			grid.AddBorderWall()
		}
		generation++

		var err error
		if config.RenderMode == utils.RenderModeFull {
			err = renderer.PaintFull(grid)
		} else {
			err = renderer.PaintDiff(grid, prev)
		}
		if err != nil {
			return err
		}

		// Previous generation is no longer referenced once the diff is drawn
		model.GridToPool(prev, pool)

		stats.Update(generation, grid.Population(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()
	}

	if err := renderer.ClearScreen(); err != nil {
		return err
	}
	return renderer.ShowCursor()
}
