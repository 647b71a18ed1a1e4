package grid

// Cell is one addressable unit of the board. Coordinates are 0-indexed and
// immutable after construction; only the state tag mutates.
type Cell struct {
	row, column int
	state       State
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Column returns the cell's column index.
func (c *Cell) Column() int { return c.column }

// State returns the cell's current marker.
func (c *Cell) State() State { return c.state }

// IsBarrier reports whether the cell blocks movement.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// MarkOpen tags the cell as a frontier member. Used by the search engine.
func (c *Cell) MarkOpen() { c.state = Open }

// MarkClosed tags the cell as fully processed. Used by the search engine.
func (c *Cell) MarkClosed() { c.state = Closed }

// MarkPath tags the cell as part of the reconstructed path.
func (c *Cell) MarkPath() { c.state = Path }

// MarkStart restores the Start tag. The search engine calls this to undo an
// Open/Path marker that landed on the origin during a run.
func (c *Cell) MarkStart() { c.state = Start }

// MarkEnd restores the End tag, undoing an Open/Path marker on the target.
func (c *Cell) MarkEnd() { c.state = End }

// Grid owns an N×N board of cells. Start/End are non-owning references into
// the same storage; at most one of each exists at any time.
type Grid struct {
	size  int
	cells [][]*Cell
	start *Cell
	end   *Cell
}

// New allocates a size×size board of Empty cells.
// Returns ErrBadSize if size is not positive.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	cells := make([][]*Cell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]*Cell, size)
		for c := 0; c < size; c++ {
			cells[r][c] = &Cell{row: r, column: c}
		}
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns N, the number of cells per side. Fixed for the grid's lifetime.
func (g *Grid) Size() int { return g.size }

// Start returns the current Start cell, or nil if none is placed.
func (g *Grid) Start() *Cell { return g.start }

// End returns the current End cell, or nil if none is placed.
func (g *Grid) End() *Cell { return g.end }

// InBounds reports whether (row, column) lies on the board.
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.size && column >= 0 && column < g.size
}

// At returns the cell at (row, column), or ErrOutOfBounds. Invalid
// coordinates from the input layer are rejected here, before any mutation.
func (g *Grid) At(row, column int) (*Cell, error) {
	if !g.InBounds(row, column) {
		return nil, ErrOutOfBounds
	}

	return g.cells[row][column], nil
}

// Neighbors returns the in-bounds, non-Barrier cells orthogonally adjacent
// to c, in fixed up/down/left/right order. The order feeds the search
// engine's insertion-sequence counter, so it participates in tie-breaking.
// Adjacency is computed on demand from the current barrier state, never
// cached across edits.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, col := c.row+d[0], c.column+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		if n := g.cells[r][col]; !n.IsBarrier() {
			out = append(out, n)
		}
	}

	return out
}

// Place sets the cell at (row, column) to the given role.
//
// Placing RoleStart or RoleEnd moves the role: any prior holder reverts to
// Empty. A cell holding Start or End never changes role in place — Barrier
// placement on it, or placement of the opposite endpoint, returns
// ErrInvalidPlacement; the cell must be cleared first.
func (g *Grid) Place(row, column int, role Role) error {
	c, err := g.At(row, column)
	if err != nil {
		return err
	}
	switch role {
	case RoleStart:
		if c == g.end {
			return ErrInvalidPlacement
		}
		if g.start != nil && g.start != c {
			g.start.state = Empty
		}
		c.state = Start
		g.start = c
	case RoleEnd:
		if c == g.start {
			return ErrInvalidPlacement
		}
		if g.end != nil && g.end != c {
			g.end.state = Empty
		}
		c.state = End
		g.end = c
	case RoleBarrier:
		if c == g.start || c == g.end {
			return ErrInvalidPlacement
		}
		c.state = Barrier
	}

	return nil
}

// Clear returns the cell at (row, column) to Empty. If the cell held Start
// or End, the corresponding grid reference is dropped as well.
func (g *Grid) Clear(row, column int) error {
	c, err := g.At(row, column)
	if err != nil {
		return err
	}
	if c == g.start {
		g.start = nil
	}
	if c == g.end {
		g.end = nil
	}
	c.state = Empty

	return nil
}

// ResetForRun drops stale Open/Closed/Path markers from a previous run,
// leaving Barrier/Start/End cells untouched. Called immediately before each
// search invocation. Idempotent.
func (g *Grid) ResetForRun() {
	for _, row := range g.cells {
		for _, c := range row {
			switch c.state {
			case Open, Closed, Path:
				c.state = Empty
			}
		}
	}
}

// Reset returns every cell to Empty and clears the Start/End references.
func (g *Grid) Reset() {
	for _, row := range g.cells {
		for _, c := range row {
			c.state = Empty
		}
	}
	g.start = nil
	g.end = nil
}
