package model

import "sync"

// UnknownPattern counts groups of two or more cells that match no pattern
const UnknownPattern = "Unknown"

/*
Classify counts how many groups match each pattern of lib.

Single cell groups are skipped. A group is compared against patterns in
library order and is counted once, for the first pattern that matches it in
any of its 8 orientations. Groups that match nothing go to UnknownPattern.
The result always holds every pattern name and UnknownPattern.
*/
func Classify(groups []ConnectedGroup, lib *PatternLibrary) map[string]int {
	counts := map[string]int{UnknownPattern: 0}
	var patterns []*Pattern
	if lib != nil {
		patterns = lib.patterns
	}
	for _, p := range patterns {
		counts[p.Name] = 0
	}

	for i := range groups {
		group := &groups[i]
		if group.Size() < 2 {
			continue
		}
		if name, ok := matchGroup(group, patterns); ok {
			counts[name]++
		} else {
			counts[UnknownPattern]++
		}
	}
	return counts
}

func matchGroup(group *ConnectedGroup, patterns []*Pattern) (string, bool) {
	for _, p := range patterns {
		if quickReject(group, p) {
			continue
		}
		for _, mask := range p.Orientations() {
			if maskMatches(group, mask) {
				return p.Name, true
			}
		}
	}
	return "", false
}

// quickReject is a fast path only; maskMatches decides
func quickReject(group *ConnectedGroup, p *Pattern) bool {
	if group.Size() != p.LiveCells {
		return true
	}
	gw, gh := group.Width(), group.Height()
	pw, ph := p.Width(), p.Height()
	fitsUpright := gw <= pw && gh <= ph
	fitsTurned := gw <= ph && gh <= pw
	return !fitsUpright && !fitsTurned
}

// maskMatches lays mask over the group's bounding box origin and compares
// every cell of the mask footprint.
func maskMatches(group *ConnectedGroup, mask [][]bool) bool {
	for r, row := range mask {
		for c, alive := range row {
			if group.Contains(Point{X: group.MinX + c, Y: group.MinY + r}) != alive {
				return false
			}
		}
	}
	return true
}

// Classifier classifies grids against a fixed library and remembers the last
// result, keyed by grid hash, so a stable board is only analysed once.
type Classifier struct {
	lib *PatternLibrary

	mu       sync.Mutex
	lastHash string
	last     map[string]int
}

func NewClassifier(lib *PatternLibrary) *Classifier {
	if lib == nil {
		lib = NewPatternLibrary()
	}
	return &Classifier{lib: lib}
}

// Library returns the patterns this classifier matches against
func (c *Classifier) Library() *PatternLibrary {
	return c.lib
}

// ClassifyGrid extracts the groups of g and classifies them. The returned map
// is a copy the caller may modify.
func (c *Classifier) ClassifyGrid(g *Grid) map[string]int {
	hash := g.GetGridHash()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil || hash != c.lastHash {
		c.last = Classify(ExtractGroups(g), c.lib)
		c.lastHash = hash
	}

	out := make(map[string]int, len(c.last))
	for name, count := range c.last {
		out[name] = count
	}
	return out
}
