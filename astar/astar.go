// Package astar provides best-first shortest-path search over a grid.Grid,
// emitting Open/Closed/Path cell transitions for incremental rendering.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// unreach is the default g_score/f_score for undiscovered cells.
const unreach = math.MaxInt

// Run searches g from start to end, applying any number of functional
// Options.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be non-nil (ErrEndpointMissing).
//  3. start and end must be distinct (ErrSameEndpoint).
//  4. start and end must be cells of g (ErrForeignCell).
//
// The caller is expected to have cleared stale Open/Closed/Path markers
// (grid.ResetForRun) before invoking Run; the engine never clears them
// itself. Adjacency is snapshotted once at initialization, so barrier state
// as of the moment the run starts stays fixed for the whole run.
//
// Options customization:
//
//   - WithContext(ctx): cooperative cancellation, observed once per popped
//     frontier element.
//   - WithOnStep(fn):   render-sink hook, called synchronously after each
//     state-changing step.
//
// Complexity:
//
//   - Time:  O(N² log N²) for an N×N grid.
//   - Space: O(N²).
func Run(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	// 1) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Validate endpoints.
	if start == nil || end == nil {
		return nil, ErrEndpointMissing
	}
	if start == end {
		return nil, ErrSameEndpoint
	}
	if c, err := g.At(start.Row(), start.Column()); err != nil || c != start {
		return nil, ErrForeignCell
	}
	if c, err := g.At(end.Row(), end.Column()); err != nil || c != end {
		return nil, ErrForeignCell
	}

	// 4) Allocate run state and execute. Run state lives only for this call.
	r := &runner{
		g:          g,
		start:      start,
		end:        end,
		opts:       o,
		gScore:     make(map[*grid.Cell]int, g.Size()*g.Size()),
		fScore:     make(map[*grid.Cell]int, g.Size()*g.Size()),
		origin:     make(map[*grid.Cell]*grid.Cell),
		adjacency:  make(map[*grid.Cell][]*grid.Cell, g.Size()*g.Size()),
		inFrontier: make(map[*grid.Cell]struct{}),
	}
	r.init()

	return r.process(), nil
}

// runner holds the mutable state of a single search run.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	opts       Options

	gScore     map[*grid.Cell]int          // cheapest known cost from start
	fScore     map[*grid.Cell]int          // gScore + heuristic; frontier priority
	origin     map[*grid.Cell]*grid.Cell   // predecessor on the best known path
	adjacency  map[*grid.Cell][]*grid.Cell // neighbor snapshot, fixed for the run
	inFrontier map[*grid.Cell]struct{}     // membership set for the frontier

	pq      frontier
	seq     int // monotonically increasing insertion counter, FIFO tie-break
	visited []*grid.Cell
}

// init snapshots adjacency, seeds the score maps, and pushes start onto the
// frontier with insertion sequence 0.
func (r *runner) init() {
	for row := 0; row < r.g.Size(); row++ {
		for col := 0; col < r.g.Size(); col++ {
			c, _ := r.g.At(row, col)
			r.gScore[c] = unreach
			r.fScore[c] = unreach
			if !c.IsBarrier() {
				r.adjacency[c] = r.g.Neighbors(c)
			}
		}
	}
	r.gScore[r.start] = 0
	r.fScore[r.start] = manhattan(r.start, r.end)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{f: r.fScore[r.start], seq: 0, cell: r.start})
	r.inFrontier[r.start] = struct{}{}
}

// process is the core loop: pop the minimum (f, seq) entry, relax its
// neighbors, mark it Closed, and notify the sink, until the end cell is
// popped, the frontier empties, or the run is cancelled.
func (r *runner) process() *Result {
	for r.pq.Len() > 0 {
		// Cancellation is observed once per iteration, before the pop. A
		// cancelled run stops immediately: no further cell mutation, no
		// path reconstruction.
		select {
		case <-r.opts.Ctx.Done():
			return &Result{Outcome: Cancelled, Visited: r.visited}
		default:
		}

		cur := heap.Pop(&r.pq).(*frontierItem).cell
		delete(r.inFrontier, cur)
		r.visited = append(r.visited, cur)

		// The search ends when the end cell holds the lowest score.
		if cur == r.end {
			path := r.reconstruct()
			// Reconstruction may have painted the endpoints; restore their
			// role markers before the final redraw.
			r.end.MarkEnd()
			r.start.MarkStart()
			r.opts.OnStep()

			return &Result{Outcome: Found, Path: path, Visited: r.visited}
		}

		r.relax(cur)

		if cur != r.start {
			cur.MarkClosed()
		}
		// Relaxation marks newly discovered cells Open, the end cell
		// included; restore its role marker every iteration.
		r.end.MarkEnd()

		r.opts.OnStep()
	}

	// Frontier emptied without reaching end: no path exists. Open/Closed
	// markers stay on the grid as a visible trace; the next ResetForRun
	// clears them.
	return &Result{Outcome: Exhausted, Visited: r.visited}
}

// relax attempts to improve each neighbor of cur, in the fixed
// up/down/left/right order of the adjacency snapshot. Uniform edge cost 1;
// only strict improvements update scores. A neighbor already in the
// frontier keeps its entry — its priority is fixed at insertion, and the
// membership set prevents duplicate scheduling.
func (r *runner) relax(cur *grid.Cell) {
	for _, n := range r.adjacency[cur] {
		candidate := r.gScore[cur] + 1
		if candidate >= r.gScore[n] {
			continue
		}
		r.origin[n] = cur
		r.gScore[n] = candidate
		r.fScore[n] = candidate + manhattan(n, r.end)

		if _, scheduled := r.inFrontier[n]; !scheduled {
			r.seq++
			heap.Push(&r.pq, &frontierItem{f: r.fScore[n], seq: r.seq, cell: n})
			r.inFrontier[n] = struct{}{}
			n.MarkOpen()
		}
	}
}

// manhattan returns the Manhattan distance between two cells — the
// admissible, consistent heuristic for 4-directional uniform-cost grids.
func manhattan(a, b *grid.Cell) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Column() - b.Column()
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// frontierItem is one scheduled cell: its f_score at insertion time and the
// insertion sequence used as a FIFO tie-break.
type frontierItem struct {
	f    int
	seq  int
	cell *grid.Cell
}

// frontier is a min-heap of *frontierItem ordered by (f, seq) ascending.
// The sequence tie-break makes the ordering total: no two entries ever
// compare equal, so earlier-discovered cells win ties.
type frontier []*frontierItem

// Len returns the number of scheduled entries.
func (fr frontier) Len() int { return len(fr) }

// Less orders by f_score, then by insertion sequence.
func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}

	return fr[i].seq < fr[j].seq
}

// Swap swaps two entries.
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push appends x; called by heap.Push.
func (fr *frontier) Push(x interface{}) { *fr = append(*fr, x.(*frontierItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := len(old)
	item := old[n-1]
	*fr = old[:n-1]

	return item
}
