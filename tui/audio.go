package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays short completion cues. A zero chime (initialization declined
// or failed) is silent; the visualiser runs fine without sound.
type chime struct {
	ready bool
}

// newChime initializes the speaker when enabled. Initialization failure is
// non-fatal and reported to the caller for logging only.
func newChime(enabled bool) (*chime, error) {
	if !enabled {
		return &chime{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}

	return &chime{ready: true}, nil
}

// found plays the high cue for a successful run.
func (c *chime) found() { c.tone(880) }

// exhausted plays the low cue for a no-path run.
func (c *chime) exhausted() { c.tone(220) }

// tone plays freq Hz for 50ms, fire-and-forget.
func (c *chime) tone(freq float64) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

// close releases the speaker.
func (c *chime) close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}
