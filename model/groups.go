package model

// Point is a cell coordinate: X is the column, Y the row
type Point struct {
	X, Y int
}

// ConnectedGroup is one maximal 8-connected set of live cells
type ConnectedGroup struct {
	Points []Point
	set    map[Point]struct{}

	MinX, MaxX, MinY, MaxY int
}

// Size returns the number of cells in the group
func (g *ConnectedGroup) Size() int {
	return len(g.Points)
}

// Contains reports whether p belongs to the group
func (g *ConnectedGroup) Contains(p Point) bool {
	_, ok := g.set[p]
	return ok
}

// Width returns the bounding box width
func (g *ConnectedGroup) Width() int {
	return g.MaxX - g.MinX + 1
}

// Height returns the bounding box height
func (g *ConnectedGroup) Height() int {
	return g.MaxY - g.MinY + 1
}

func (g *ConnectedGroup) add(p Point) {
	if len(g.Points) == 0 {
		g.MinX, g.MaxX, g.MinY, g.MaxY = p.X, p.X, p.Y, p.Y
	} else {
		g.MinX = min(g.MinX, p.X)
		g.MaxX = max(g.MaxX, p.X)
		g.MinY = min(g.MinY, p.Y)
		g.MaxY = max(g.MaxY, p.Y)
	}
	g.Points = append(g.Points, p)
	g.set[p] = struct{}{}
}

/*
ExtractGroups partitions the live cells of g into 8-connected groups.

Adjacency stops at the grid edges: unlike the board's generation rule, two
cells on opposite edges are never joined. Groups come out in raster order of
their first cell.
*/
func ExtractGroups(g *Grid) []ConnectedGroup {
	visited := make([][]bool, g.height)
	for y := range visited {
		visited[y] = make([]bool, g.width)
	}

	var groups []ConnectedGroup
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] && !visited[y][x] {
				groups = append(groups, g.collect(Point{X: x, Y: y}, visited))
			}
		}
	}
	return groups
}

// collect runs a breadth-first search from start over live, unvisited cells
func (g *Grid) collect(start Point, visited [][]bool) ConnectedGroup {
	group := ConnectedGroup{set: make(map[Point]struct{})}
	queue := []Point{start}
	visited[start.Y][start.X] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		group.add(p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
					continue
				}
				if g.cells[ny][nx] && !visited[ny][nx] {
					visited[ny][nx] = true
					queue = append(queue, Point{X: nx, Y: ny})
				}
			}
		}
	}
	return group
}

// CountGroups returns how many connected groups the grid holds
func CountGroups(g *Grid) int {
	return len(ExtractGroups(g))
}
