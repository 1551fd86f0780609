package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sheikhrachel/life-patterns/model"
	"github.com/sheikhrachel/life-patterns/storage"
	"github.com/sheikhrachel/life-patterns/utils"
)

const blockAndBlinker = "" +
	"0000000000\n" +
	"0110000000\n" +
	"0110000000\n" +
	"0000000000\n" +
	"0000000000\n" +
	"0000011100\n" +
	"0000000000\n" +
	"0000000000\n"

func testConfig(t *testing.T) utils.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(blockAndBlinker), 0o644); err != nil {
		t.Fatal(err)
	}
	config := utils.DefaultConfig()
	config.BoardFile = path
	config.FrameRate = 0
	config.StabilityThreshold = 5
	config.Workers = 2
	return config
}

func TestRunStopsWhenStable(t *testing.T) {
	g, err := initializeGame(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if g.board.Columns() != 10 || g.board.Rows() != 8 {
		t.Fatalf("board is %dx%d", g.board.Columns(), g.board.Rows())
	}

	run(context.Background(), g, false)

	if !g.stats.Stable || g.stats.StableGeneration != 4 {
		t.Fatalf("stable=%v at %d, want generation 4", g.stats.Stable, g.stats.StableGeneration)
	}
	if g.board.Generation() != 4 || !g.reported {
		t.Fatalf("generation %d, reported %v", g.board.Generation(), g.reported)
	}

	counts := reportPatterns(g, g.board.Snapshot(nil))
	if counts["block"] != 1 || counts["blinker"] != 1 || counts[model.UnknownPattern] != 0 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	config := testConfig(t)
	config.StopWhenStable = false
	config.MaxGenerations = 12

	g, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	run(context.Background(), g, false)
	if g.board.Generation() != 12 {
		t.Fatalf("generation = %d, want 12", g.board.Generation())
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	config := testConfig(t)
	config.StopWhenStable = false
	config.MaxGenerations = 0

	g, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run(ctx, g, false)
	if g.board.Generation() != 0 {
		t.Fatalf("generation = %d after cancelled run", g.board.Generation())
	}
}

func TestNewBoardRandomIsSeeded(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 99

	a, err := newBoard(config)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newBoard(config)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Snapshot(nil).Equal(b.Snapshot(nil)) {
		t.Fatal("same seed produced different boards")
	}
	if a.Columns() != config.BoardWidth || a.Rows() != config.BoardHeight {
		t.Fatalf("board is %dx%d", a.Columns(), a.Rows())
	}

	config.BoardCellSize = 7
	if _, err = newBoard(config); err == nil {
		t.Fatal("expected dimensions error")
	}
}

func TestInitializeGameWithPatternDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "domino.txt"), []byte("11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	config := testConfig(t)
	config.PatternDir = dir

	g, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if names := g.classifier.Library().Names(); len(names) != 1 || names[0] != "domino" {
		t.Fatalf("names = %v", names)
	}
}

func TestSaveGame(t *testing.T) {
	g, err := initializeGame(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "saved.txt")
	saveGame(g, path)

	loaded, err := storage.LoadBoard(path)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Snapshot(nil).Equal(g.board.Snapshot(nil)) {
		t.Fatal("saved board differs")
	}
}
