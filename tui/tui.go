package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

// Option configures the UI via functional arguments.
type Option func(*Options)

// Options holds frontend tunables.
type Options struct {
	// ASCII renders monochrome glyphs instead of colored cells.
	ASCII bool

	// Sound enables the audible completion cue. Speaker initialization
	// failure silently disables it; the visualiser needs no audio to work.
	Sound bool
}

// WithASCII selects glyph rendering.
func WithASCII() Option {
	return func(o *Options) { o.ASCII = true }
}

// WithSound enables the completion cue.
func WithSound() Option {
	return func(o *Options) { o.Sound = true }
}

// UI renders the board on a tcell screen and feeds input back into the
// session. It implements session.Renderer.
type UI struct {
	screen tcell.Screen
	opts   Options
	bell   *chime

	sess     *session.Session
	events   chan tcell.Event
	status   string
	quitting bool
}

// New wraps an initialized tcell screen. The caller owns the screen's
// lifecycle (Init before, Fini after).
func New(screen tcell.Screen, opts ...Option) *UI {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	bell, _ := newChime(o.Sound)

	return &UI{screen: screen, opts: o, bell: bell}
}

// Run drives the event loop over sess until the user quits. Commands run
// synchronously on this goroutine; a second goroutine only ferries raw
// tcell events into a channel.
func (u *UI) Run(sess *session.Session) {
	u.sess = sess
	u.screen.EnableMouse()
	defer u.bell.close()

	u.events = make(chan tcell.Event, 64)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil { // screen finalized
				close(u.events)
				return
			}
			u.events <- ev
		}
	}()

	u.status = "click: place node | right-click: remove | space: search | r: reset | esc: quit"
	u.Redraw(sess.Grid())

	for !u.quitting {
		ev, ok := <-u.events
		if !ok {
			return
		}
		u.handle(ev)
	}
}

// handle translates one idle-state event into a session command.
func (u *UI) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			u.quitting = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			u.search()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			u.sess.ResetGrid()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		row, col := y, x/cellWidth
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			// Placement rejections (outside the board, endpoint overwrite)
			// leave the board unchanged; nothing to report per click.
			_ = u.sess.PlaceNode(row, col)
		case ev.Buttons()&(tcell.Button2|tcell.Button3) != 0:
			_ = u.sess.RemoveNode(row, col)
		}
	case *tcell.EventResize:
		u.screen.Sync()
		u.Redraw(u.sess.Grid())
	}
}

// search runs the engine and reports the outcome on the status line.
func (u *UI) search() {
	res, err := u.sess.BeginSearch(context.Background())
	switch {
	case errors.Is(err, session.ErrNotReady):
		u.status = "place start and end before searching"
	case err != nil:
		u.status = err.Error()
	default:
		switch res.Outcome {
		case astar.Found:
			u.status = fmt.Sprintf("path found: %d steps | r: reset", len(res.Path))
			u.bell.found()
		case astar.Exhausted:
			u.status = "no path exists | r: reset"
			u.bell.exhausted()
		case astar.Cancelled:
			u.status = "search cancelled | space: retry"
		}
	}
	u.Redraw(u.sess.Grid())
}

// Redraw paints the whole board and the status line. While a run is active
// it first services pending cancel/quit keys, so a single-threaded search
// stays cancellable. The grid itself is never mutated here.
func (u *UI) Redraw(g *grid.Grid) {
	u.pump()

	u.screen.Clear()
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			c, err := g.At(row, col)
			if err != nil {
				continue
			}
			u.drawCell(row, col, c.State())
		}
	}
	u.drawText(0, g.Size()+1, u.status)
	u.screen.Show()
}

// drawCell paints one board cell, cellWidth columns wide.
func (u *UI) drawCell(row, col int, s grid.State) {
	x := col * cellWidth
	if u.opts.ASCII {
		u.screen.SetContent(x, row, cellGlyph(s), nil, tcell.StyleDefault)
		u.screen.SetContent(x+1, row, ' ', nil, tcell.StyleDefault)
		return
	}
	style := cellStyle(s)
	u.screen.SetContent(x, row, ' ', nil, style)
	u.screen.SetContent(x+1, row, ' ', nil, style)
}

// drawText writes a plain string starting at (x, y).
func (u *UI) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		u.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// pump drains pending events while a run is active, honoring only the
// cancel and quit keys; everything else is dropped so stray clicks cannot
// edit the board mid-run.
func (u *UI) pump() {
	if u.sess == nil || !u.sess.Running() {
		return
	}
	for {
		select {
		case ev, ok := <-u.events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					u.quitting = true
					u.sess.CancelSearch()
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					u.sess.CancelSearch()
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}
		default:
			return
		}
	}
}
