package astar

import "github.com/katalvlaran/gridpath/grid"

// reconstruct walks the origin map backwards from the end cell, marking each
// predecessor as Path and notifying the sink after each individual marking
// so the host can render the route being traced incrementally.
//
// The start cell is appended to the result but never painted: it keeps its
// role marker. The returned sequence runs from the cell adjacent to End back
// to Start (reverse-path order); its length equals g_score[end], which on an
// open grid is the Manhattan distance between the endpoints.
func (r *runner) reconstruct() []*grid.Cell {
	path := make([]*grid.Cell, 0, r.gScore[r.end])
	cur := r.end
	for {
		prev, ok := r.origin[cur]
		if !ok {
			// cur is the start cell: it has no predecessor by construction.
			break
		}
		if prev != r.start {
			prev.MarkPath()
			r.opts.OnStep()
		}
		path = append(path, prev)
		cur = prev
	}

	return path
}
