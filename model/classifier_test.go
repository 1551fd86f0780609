package model

import (
	"reflect"
	"testing"
)

func library(t *testing.T, patterns ...*Pattern) *PatternLibrary {
	t.Helper()
	lib := NewPatternLibrary()
	for _, p := range patterns {
		if err := lib.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	return lib
}

// stamp sets the live cells of m with its top left corner at (ox, oy)
func stamp(g *Grid, m [][]bool, ox, oy int) {
	for y, row := range m {
		for x, alive := range row {
			if alive {
				g.Set(ox+x, oy+y, true)
			}
		}
	}
}

func testLibrary(t *testing.T) *PatternLibrary {
	return library(t,
		mustPattern(t, "blinker", "###"),
		mustPattern(t, "block", "##", "##"),
		mustPattern(t, "boat", "##.", "#.#", ".#."),
		mustPattern(t, "glider", ".#.", "..#", "###"),
		mustPattern(t, "hive", ".##.", "#..#", ".##."),
		mustPattern(t, "ship", "##.", "#.#", ".##"),
		mustPattern(t, "tub", ".#.", "#.#", ".#."),
	)
}

func TestClassifyBlock(t *testing.T) {
	lib := testLibrary(t)
	g := gridWith(t, 6, 6, Point{2, 2}, Point{3, 2}, Point{2, 3}, Point{3, 3})

	got := Classify(ExtractGroups(g), lib)

	want := map[string]int{
		"blinker": 0, "block": 1, "boat": 0, "glider": 0, "hive": 0, "ship": 0, "tub": 0,
		UnknownPattern: 0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestClassifyMixedBoard(t *testing.T) {
	g := gridWith(t, 5, 5,
		Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1},
		Point{3, 1}, Point{4, 1},
		Point{1, 4}, Point{2, 4}, Point{3, 4},
	)

	got := Classify(ExtractGroups(g), testLibrary(t))

	if got["block"] != 1 || got["blinker"] != 1 || got[UnknownPattern] != 1 {
		t.Fatalf("got %v", got)
	}
	total := 0
	for _, n := range got {
		total += n
	}
	if total != 3 {
		t.Fatalf("counted %d groups, want 3", total)
	}
}

func TestClassifyIgnoresSingleCells(t *testing.T) {
	g := gridWith(t, 7, 7, Point{1, 1}, Point{5, 5}, Point{1, 5})
	got := Classify(ExtractGroups(g), testLibrary(t))
	for name, n := range got {
		if n != 0 {
			t.Fatalf("%s counted %d for isolated cells", name, n)
		}
	}
}

func TestClassifyBlinkerUnderRotation(t *testing.T) {
	lib := library(t, mustPattern(t, "blinker", "###"))
	g := gridWith(t, 5, 5, Point{2, 1}, Point{2, 2}, Point{2, 3})

	got := Classify(ExtractGroups(g), lib)
	if got["blinker"] != 1 || got[UnknownPattern] != 0 {
		t.Fatalf("vertical blinker not recognised: %v", got)
	}
}

func TestClassifyEveryGliderOrientation(t *testing.T) {
	lib := testLibrary(t)
	glider, _ := lib.Get("glider")

	for i, m := range glider.Orientations() {
		g := NewGrid(9, 9)
		stamp(g, m, 3, 2)
		got := Classify(ExtractGroups(g), lib)
		if got["glider"] != 1 || got[UnknownPattern] != 0 || got["boat"] != 0 {
			t.Errorf("orientation %d: got %v", i, got)
		}
	}
}

func TestClassifyShapesWithHoles(t *testing.T) {
	lib := testLibrary(t)
	g := NewGrid(20, 20)
	hive, _ := lib.Get("hive")
	stamp(g, rotateMask(hive.Mask, 1), 1, 1)
	ship, _ := lib.Get("ship")
	stamp(g, mirrorMask(ship.Mask), 8, 8)
	tub, _ := lib.Get("tub")
	stamp(g, tub.Mask, 14, 2)

	got := Classify(ExtractGroups(g), lib)
	if got["hive"] != 1 || got["ship"] != 1 || got["tub"] != 1 || got[UnknownPattern] != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyFilledHoleIsUnknown(t *testing.T) {
	// a tub with its center filled has 5 cells and matches nothing
	g := gridWith(t, 5, 5, Point{2, 1}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{2, 3})
	got := Classify(ExtractGroups(g), testLibrary(t))
	if got[UnknownPattern] != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyEmptyLibrary(t *testing.T) {
	g := gridWith(t, 6, 6, Point{0, 0}, Point{1, 0}, Point{4, 4}, Point{4, 5}, Point{5, 4}, Point{5, 5})
	got := Classify(ExtractGroups(g), NewPatternLibrary())
	if !reflect.DeepEqual(got, map[string]int{UnknownPattern: 2}) {
		t.Fatalf("got %v", got)
	}

	if got = Classify(ExtractGroups(g), nil); got[UnknownPattern] != 2 {
		t.Fatalf("nil library: got %v", got)
	}
}

func TestClassifyFirstRegisteredPatternWins(t *testing.T) {
	lib := library(t,
		mustPattern(t, "domino", "##"),
		mustPattern(t, "upright", "#", "#"),
	)
	g := gridWith(t, 5, 5, Point{1, 1}, Point{1, 2})

	got := Classify(ExtractGroups(g), lib)
	if got["domino"] != 1 || got["upright"] != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	b, err := NewBoard(12, 12, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {6, 6}, {7, 6}, {8, 6}} {
		b.SetAlive(p.X, p.Y, true)
	}
	lib := testLibrary(t)
	snap := b.Snapshot(nil)

	first := Classify(ExtractGroups(snap), lib)
	second := Classify(ExtractGroups(snap), lib)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("first %v, second %v", first, second)
	}

	c := NewClassifier(lib)
	cached := c.ClassifyGrid(snap)
	if !reflect.DeepEqual(cached, first) {
		t.Fatalf("classifier %v, Classify %v", cached, first)
	}
	cached["block"] = 99
	if again := c.ClassifyGrid(snap); again["block"] != 1 {
		t.Fatalf("cached result was mutated through a returned map: %v", again)
	}

	b.Advance()
	if next := c.ClassifyGrid(b.Snapshot(nil)); next["blinker"] != 1 || next["block"] != 1 {
		t.Fatalf("after advance got %v", next)
	}
}
