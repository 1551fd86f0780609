package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-patterns/model"
	"github.com/sheikhrachel/life-patterns/sweep"
	"github.com/sheikhrachel/life-patterns/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON configuration")
		boardFile  = flag.String("board", "", "load the initial board from this text grid instead of seeding randomly")
		patternDir = flag.String("patterns", "", "directory of pattern files (default: built-in library)")
		savePath   = flag.String("save", "", "write the board to this file on exit")
		quiet      = flag.Bool("quiet", false, "do not render the board")
		runSweep   = flag.Bool("sweep", false, "run a density sweep instead of a single simulation")
		sweepOut   = flag.String("sweep-out", "data.txt", "output file for -sweep")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Error loading configuration:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if *boardFile != "" {
		config.BoardFile = *boardFile
	}
	if *patternDir != "" {
		config.PatternDir = *patternDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *runSweep {
		if err = runDensitySweep(ctx, config, *sweepOut); err != nil {
			fmt.Println("Error running sweep:", err)
			os.Exit(1)
		}
		return
	}

	g, err := initializeGame(config)
	if err != nil {
		fmt.Println("Error initializing game:", err)
		os.Exit(1)
	}
	displayGameInfo(g)
	run(ctx, g, !*quiet)
	saveGame(g, *savePath)
}

// run drives the simulation until a stop condition or a signal
func run(ctx context.Context, g *game, render bool) {
	lastFrameTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				g.board.Generation(), time.Since(g.stats.StartTime).Seconds())
			return
		default:
		}

		frameStart := time.Now()
		// analysis only ever sees a completed generation
		snapshot := g.board.Snapshot(g.pool)

		st := updateGameState(g, snapshot, lastFrameTime)
		lastFrameTime = frameStart

		if render {
			g.renderer.Clear()
			displayGameStatus(g, st)
			g.renderer.Display(snapshot)
		}
		if st.stable {
			reportPatterns(g, snapshot)
		}
		model.GridToPool(snapshot, g.pool)

		if stop, reason := checkStopConditions(g, st); stop {
			fmt.Printf("🏁 Stopping: %s\n", reason)
			if !render {
				displayGameStatus(g, st)
			}
			return
		}

		g.board.Advance()

		if g.config.FrameRate > 0 {
			time.Sleep(g.config.FrameRate)
		}
	}
}

func runDensitySweep(ctx context.Context, config utils.Config, out string) error {
	opts := sweep.Options{
		Width:          config.BoardWidth,
		Height:         config.BoardHeight,
		CellSize:       config.BoardCellSize,
		Densities:      sweep.Densities(0.05, 0.95, 0.05),
		Threshold:      config.StabilityThreshold,
		MaxGenerations: config.MaxGenerations,
		Parallel:       int64(runtime.NumCPU()),
		Seed:           config.Seed,
	}
	fmt.Printf("Sweeping %d densities on a %dx%d board...\n", len(opts.Densities), opts.Width, opts.Height)

	results, err := sweep.Run(ctx, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "[runDensitySweep] failed to create file: %+v", out)
	}
	defer f.Close()
	if err = sweep.Write(f, results); err != nil {
		return err
	}
	fmt.Printf("✨ Sweep written to %s\n", out)
	return nil
}
