package snake

// Cell is a coordinate on the grid.
type Cell struct {
	X, Y int
}

// Add returns the cell moved by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Rand is the random source used for fruit placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid is the N×N fruit board. A true cell holds a fruit.
type Grid struct {
	n      int
	fruits [][]bool // indexed [y][x]
}

// NewGrid creates an empty n×n grid.
// The caller is responsible for rejecting sizes without an interior.
func NewGrid(n int) *Grid {
	fruits := make([][]bool, n)
	for y := range fruits {
		fruits[y] = make([]bool, n)
	}
	return &Grid{n: n, fruits: fruits}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// InInterior reports whether c lies strictly inside the border ring.
func (g *Grid) InInterior(c Cell) bool {
	return interior(g.n, c)
}

func (g *Grid) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

// SpawnFruit marks a uniformly chosen interior cell as holding fruit and
// returns it. A cell that already holds fruit stays as it is.
func (g *Grid) SpawnFruit(rng Rand) Cell {
	c := Cell{
		X: 1 + rng.Intn(g.n-2),
		Y: 1 + rng.Intn(g.n-2),
	}
	g.fruits[c.Y][c.X] = true
	return c
}

// Place puts a fruit on an interior cell. Cells outside the interior are ignored.
func (g *Grid) Place(c Cell) {
	if !g.InInterior(c) {
		return
	}
	g.fruits[c.Y][c.X] = true
}

// HasFruit reports whether c currently holds fruit.
func (g *Grid) HasFruit(c Cell) bool {
	if !g.inBounds(c) {
		return false
	}
	return g.fruits[c.Y][c.X]
}

// Consume clears c and returns whether it held fruit.
func (g *Grid) Consume(c Cell) bool {
	if !g.inBounds(c) {
		return false
	}
	had := g.fruits[c.Y][c.X]
	g.fruits[c.Y][c.X] = false
	return had
}

// Fruit returns all fruit cells in row-major order.
func (g *Grid) Fruit() []Cell {
	var cells []Cell
	for y, row := range g.fruits {
		for x, has := range row {
			if has {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Border returns the outermost ring of cells, clockwise from the top-left corner.
func (g *Grid) Border() []Cell {
	n := g.n
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Cell{{X: 0, Y: 0}}
	}
	cells := make([]Cell, 0, 4*(n-1))
	for x := 0; x < n; x++ {
		cells = append(cells, Cell{X: x, Y: 0})
	}
	for y := 1; y < n; y++ {
		cells = append(cells, Cell{X: n - 1, Y: y})
	}
	for x := n - 2; x >= 0; x-- {
		cells = append(cells, Cell{X: x, Y: n - 1})
	}
	for y := n - 2; y >= 1; y-- {
		cells = append(cells, Cell{X: 0, Y: y})
	}
	return cells
}
