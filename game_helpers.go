package main

import (
	"fmt"
	"os"
	"time"

	"github.com/drewwalton19216801/gameoflife/model"
	"github.com/drewwalton19216801/gameoflife/utils"
)

// resolveProbability applies the optional command-line probability
// argument on top of the configured value, printing a usage hint when the
// argument is missing or malformed
func resolveProbability(args []string, config utils.Config) float64 {
	probability, ok := utils.ParseProbability(args, config.Probability)
	if ok {
		fmt.Printf("Initial grid probability: %v\n", probability)
		return probability
	}

	fmt.Printf("Default initial grid probability: %v\n", probability)
	fmt.Println("To change the initial grid probability, pass it as an argument to the program.")
	fmt.Println("Example: gameoflife 0.5")
	return probability
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	size, err := resolveConsoleSize(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	grid := model.NewRandomGrid(size.Cols, size.Rows, config.Probability)
	if config.BorderWall {
		grid.AddBorderWall()
	}

	pool := model.NewGridPool()
	renderer := model.NewTerminalRenderer(os.Stdout, config.Color)
	stats := utils.NewStats()

	return grid, pool, renderer, stats, nil
}

// resolveConsoleSize picks the grid dimensions according to the size mode
func resolveConsoleSize(config utils.Config) (model.ConsoleSize, error) {
	if config.SizeMode == utils.SizeModeFixed {
		return model.ConsoleSize{Rows: config.FixedHeight, Cols: config.FixedWidth}, nil
	}
	return model.DetectConsoleSize()
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	time.Sleep(2 * time.Second)
}

// displayFinalStats shows the run summary after a clean shutdown
func displayFinalStats(stats *utils.Stats) {
	fmt.Println("🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
