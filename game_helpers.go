package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-patterns/model"
	"github.com/sheikhrachel/life-patterns/storage"
	"github.com/sheikhrachel/life-patterns/utils"
)

// game is the whole simulation state owned by the driver loop
type game struct {
	config     utils.Config
	board      *model.Board
	tracker    *model.StabilityTracker
	classifier *model.Classifier
	pool       *model.GridPool
	renderer   *model.TerminalRenderer
	stats      *utils.Stats

	reported bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	board, err := newBoard(config)
	if err != nil {
		return nil, err
	}
	if config.Workers > 0 {
		board.SetWorkers(config.Workers)
	}

	lib, err := loadPatterns(config.PatternDir)
	if err != nil {
		return nil, err
	}

	return &game{
		config:     config,
		board:      board,
		tracker:    model.NewStabilityTracker(config.StabilityThreshold),
		classifier: model.NewClassifier(lib),
		pool:       model.NewGridPool(board.Columns(), board.Rows()),
		renderer:   &model.TerminalRenderer{},
		stats:      utils.NewStats(),
	}, nil
}

// newBoard loads the board file when one is configured, otherwise seeds a random board
func newBoard(config utils.Config) (*model.Board, error) {
	if config.BoardFile != "" {
		return storage.LoadBoard(config.BoardFile)
	}

	board, err := model.NewBoard(config.BoardWidth, config.BoardHeight, config.BoardCellSize)
	if err != nil {
		return nil, errors.Wrap(err, "[newBoard] failed to create board")
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board.Randomize(config.LiveDensity, rand.New(rand.NewSource(seed)))
	return board, nil
}

func loadPatterns(dir string) (*model.PatternLibrary, error) {
	if dir == "" {
		return storage.DefaultPatternLibrary()
	}
	return storage.LoadPatternLibrary(os.DirFS(dir), ".")
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Board: %dx%d cells | Initial living cells: %d\n",
		g.board.Columns(), g.board.Rows(), g.board.CountLiveCells())
	fmt.Printf("Patterns: %v | Stability threshold: %d generations\n",
		g.classifier.Library().Names(), g.tracker.Threshold())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// tickStatus is what one tick observed on its snapshot
type tickStatus struct {
	livingCells int
	groups      int
	density     float64
	stable      bool
	status      string
}

// updateGameState samples the snapshot, feeds the stability tracker and returns status information
func updateGameState(g *game, snapshot *model.Grid, lastFrameTime time.Time) tickStatus {
	livingCells := snapshot.CountLivingCells()
	cells := snapshot.GetWidth() * snapshot.GetHeight()
	generation := g.board.Generation()

	// Update performance stats
	g.stats.Update(generation, livingCells, time.Since(lastFrameTime))

	stable := g.tracker.CheckStable(livingCells, generation)
	status := "Active"
	if stable {
		first, _ := g.tracker.FirstStableGeneration()
		g.stats.MarkStable(first)
		status = fmt.Sprintf("Stable (since %d)", first)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return tickStatus{
		livingCells: livingCells,
		groups:      model.CountGroups(snapshot),
		density:     float64(livingCells) / float64(cells) * 100,
		stable:      stable,
		status:      status,
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, st tickStatus) {
	fmt.Printf("Gen: %d | Living: %d | Groups: %d | Density: %.1f%% | Status: %s\n",
		g.board.Generation(), st.livingCells, st.groups, st.density, st.status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, time.Since(g.stats.StartTime).Seconds())
	fmt.Println()
}

// reportPatterns classifies the stable snapshot and prints the counts once per run
func reportPatterns(g *game, snapshot *model.Grid) map[string]int {
	counts := g.classifier.ClassifyGrid(snapshot)
	if !g.reported {
		g.reported = true
		fmt.Printf("🔍 Stable at generation %d, patterns found:\n", g.stats.StableGeneration)
		g.renderer.DisplayPatterns(counts, g.classifier.Library().Names())
		fmt.Println()
	}
	return counts
}

// checkStopConditions determines if the loop should end
func checkStopConditions(g *game, st tickStatus) (bool, string) {
	if st.stable && g.config.StopWhenStable {
		return true, "stability reached"
	}
	if g.config.MaxGenerations > 0 && g.board.Generation() >= g.config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", g.config.MaxGenerations)
	}
	return false, ""
}

// saveGame writes the board when a save path was given
func saveGame(g *game, filename string) {
	if filename == "" {
		return
	}
	if err := storage.SaveBoard(filename, g.board); err != nil {
		fmt.Println("Error saving board:", err)
		return
	}
	fmt.Printf("💾 Board saved to %s\n", filename)
}
