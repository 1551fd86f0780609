package rules

// conway[alive][neighbors] is the B3/S23 outcome
var conway = [2][9]bool{
	{3: true},
	{2: true, 3: true},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 live neighbors is born, a live cell with 2 or 3 survives.
Neighbor counts outside 0..8 never produce a live cell.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	state := 0
	if alive {
		state = 1
	}
	return conway[state][neighbors]
}
