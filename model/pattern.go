package model

import "github.com/pkg/errors"

// Pattern is a named reference shape. The mask is trimmed to its live bounding
// box so that its origin lines up with a matching group's bounding box.
type Pattern struct {
	Name      string
	Mask      [][]bool
	LiveCells int
}

// NewPattern builds a pattern from a row-major mask. A mask without live cells
// is rejected.
func NewPattern(name string, mask [][]bool) (*Pattern, error) {
	if name == "" {
		return nil, errors.New("[NewPattern] pattern name is empty")
	}

	minX, minY, maxX, maxY := -1, -1, -1, -1
	live := 0
	for y, row := range mask {
		for x, alive := range row {
			if !alive {
				continue
			}
			if live == 0 {
				minX, maxX, minY, maxY = x, x, y, y
			} else {
				minX = min(minX, x)
				maxX = max(maxX, x)
				minY = min(minY, y)
				maxY = max(maxY, y)
			}
			live++
		}
	}
	if live == 0 {
		return nil, errors.Errorf("[NewPattern] pattern %q has no live cells", name)
	}

	trimmed := make([][]bool, maxY-minY+1)
	for y := range trimmed {
		trimmed[y] = make([]bool, maxX-minX+1)
		row := mask[minY+y]
		for x := range trimmed[y] {
			if minX+x < len(row) {
				trimmed[y][x] = row[minX+x]
			}
		}
	}

	return &Pattern{Name: name, Mask: trimmed, LiveCells: live}, nil
}

// Width returns the mask's column count
func (p *Pattern) Width() int {
	return len(p.Mask[0])
}

// Height returns the mask's row count
func (p *Pattern) Height() int {
	return len(p.Mask)
}

// Orientations returns the mask under the 4 clockwise rotations, each followed
// by its horizontal mirror: 8 masks, possibly with duplicates for symmetric shapes.
func (p *Pattern) Orientations() [][][]bool {
	out := make([][][]bool, 0, 8)
	for rotation := range 4 {
		rotated := rotateMask(p.Mask, rotation)
		out = append(out, rotated, mirrorMask(rotated))
	}
	return out
}

// rotateMask turns mask clockwise by rotation*90 degrees
func rotateMask(mask [][]bool, rotation int) [][]bool {
	h, w := len(mask), len(mask[0])
	rotation = ((rotation % 4) + 4) % 4

	outH, outW := h, w
	if rotation%2 == 1 {
		outH, outW = w, h
	}
	out := make([][]bool, outH)
	for r := range outH {
		out[r] = make([]bool, outW)
		for c := range outW {
			switch rotation {
			case 0:
				out[r][c] = mask[r][c]
			case 1:
				out[r][c] = mask[h-1-c][r]
			case 2:
				out[r][c] = mask[h-1-r][w-1-c]
			case 3:
				out[r][c] = mask[c][w-1-r]
			}
		}
	}
	return out
}

// mirrorMask flips the column axis
func mirrorMask(mask [][]bool) [][]bool {
	out := make([][]bool, len(mask))
	for r, row := range mask {
		out[r] = make([]bool, len(row))
		for c := range row {
			out[r][c] = row[len(row)-1-c]
		}
	}
	return out
}

// PatternLibrary is an ordered set of patterns; order decides which pattern
// wins when more than one could match.
type PatternLibrary struct {
	patterns []*Pattern
	byName   map[string]*Pattern
}

func NewPatternLibrary() *PatternLibrary {
	return &PatternLibrary{byName: make(map[string]*Pattern)}
}

// Add registers p after every pattern already present
func (l *PatternLibrary) Add(p *Pattern) error {
	if p == nil {
		return errors.New("[PatternLibrary.Add] nil pattern")
	}
	if p.Name == UnknownPattern {
		return errors.Errorf("[PatternLibrary.Add] %q is reserved", UnknownPattern)
	}
	if _, ok := l.byName[p.Name]; ok {
		return errors.Errorf("[PatternLibrary.Add] duplicate pattern %q", p.Name)
	}
	l.patterns = append(l.patterns, p)
	l.byName[p.Name] = p
	return nil
}

// Get looks a pattern up by name
func (l *PatternLibrary) Get(name string) (*Pattern, bool) {
	p, ok := l.byName[name]
	return p, ok
}

// Patterns returns the patterns in registration order
func (l *PatternLibrary) Patterns() []*Pattern {
	return append([]*Pattern(nil), l.patterns...)
}

// Names returns the pattern names in registration order
func (l *PatternLibrary) Names() []string {
	names := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		names[i] = p.Name
	}
	return names
}

func (l *PatternLibrary) Len() int {
	return len(l.patterns)
}
