package playback

import (
	"fmt"
	"time"

	"github.com/showdesk/showdesk/dmx"
)

// Executor is one fader-driven playback slot: an ordered cue list, a
// fader, GO/BACK advancement, and a fade engine that eases the output
// level toward the fader position.
//
// The fade state machine has two states. Idle: OutputLevel tracks
// FaderLevel directly. Fading: entered by Go/GoBack or by the fader
// leaving zero while idle (a "flash up" gesture, which forces the target
// to full); OutputLevel is progress x FaderLevel until progress reaches
// 1, then the executor snaps back to Idle with OutputLevel == FaderLevel.
type Executor struct {
	ID int
	// Cues is the ordered list owned by this executor. Cues never move
	// between executors except through MoveCue.
	Cues []Cue
	// CurrentIndex addresses the active cue within Cues.
	CurrentIndex int
	// CurrentCueID is the active cue's id, 0 when nothing has run yet.
	CurrentCueID int
	// FaderLevel is the physical fader position, 0..1.
	FaderLevel float64
	// TargetLevel is where the active fade is heading.
	TargetLevel float64
	// OutputLevel is what the mixer reads this tick, 0..1.
	OutputLevel float64
	// Interpolate enables per-channel blending from the previous cue's
	// levels during a cue fade. Off by default: cue levels display
	// instantaneously and only the output level eases in.
	Interpolate bool

	storedLevels   dmx.Frame
	previousLevels dmx.Frame
	fading         bool
	fadeFromCue    bool // fade was started by Go/GoBack, not a flash-up
	fadeForward    bool // direction of the last cue transition
	fadeStart      time.Time
	lastFaderLevel float64

	// now is swappable so fade timing is deterministic under test.
	now func() time.Time
}

// NewExecutor builds an empty executor.
func NewExecutor(id int) *Executor {
	return &Executor{ID: id, now: time.Now}
}

func (e *Executor) clock() time.Time {
	if e.now == nil {
		return time.Now()
	}
	return e.now()
}

// Go advances to the next cue, wrapping, and starts a fade toward it.
// No-op on an empty cue list.
func (e *Executor) Go() {
	if len(e.Cues) == 0 {
		return
	}
	e.CurrentIndex = (e.CurrentIndex + 1) % len(e.Cues)
	e.beginCueFade(true)
}

// GoBack steps to the previous cue, wrapping. No-op on an empty list.
func (e *Executor) GoBack() {
	if len(e.Cues) == 0 {
		return
	}
	e.CurrentIndex = (len(e.Cues) + e.CurrentIndex - 1) % len(e.Cues)
	e.beginCueFade(false)
}

func (e *Executor) beginCueFade(forward bool) {
	cue := &e.Cues[e.CurrentIndex]
	e.CurrentCueID = cue.ID
	e.previousLevels = e.storedLevels
	e.storedLevels = cue.Levels
	e.TargetLevel = e.FaderLevel
	e.fading = true
	e.fadeFromCue = true
	e.fadeForward = forward
	e.fadeStart = e.clock()
}

// UpdateFade advances the fade engine. It must be called exactly once per
// tick; it is the only place fade progress moves.
func (e *Executor) UpdateFade() {
	// Flash-up gesture: the fader leaving zero while idle starts a fade
	// with the target forced to full, whatever the fader reads.
	if !e.fading && e.lastFaderLevel == 0 && e.FaderLevel != 0 {
		e.TargetLevel = 1.0
		e.fading = true
		e.fadeFromCue = false
		e.fadeStart = e.clock()
	}
	e.lastFaderLevel = e.FaderLevel

	if !e.fading || len(e.Cues) == 0 {
		e.OutputLevel = e.FaderLevel
		return
	}

	fadeTime := e.Cues[e.CurrentIndex].FadeTime
	if fadeTime <= 0 {
		e.OutputLevel = e.FaderLevel
		e.fading = false
		return
	}

	progress := e.fadeProgress(fadeTime)
	e.OutputLevel = progress * e.FaderLevel
	if progress >= 1.0 {
		e.fading = false
		e.OutputLevel = e.FaderLevel
	}
}

func (e *Executor) fadeProgress(fadeTime float64) float64 {
	elapsed := e.clock().Sub(e.fadeStart).Seconds()
	progress := elapsed / fadeTime
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0 {
		progress = 0
	}
	return progress
}

// Fading reports whether a fade is in progress.
func (e *Executor) Fading() bool {
	return e.fading
}

// FadeForward reports the direction of the last cue transition.
func (e *Executor) FadeForward() bool {
	return e.fadeForward
}

// OutputLevels returns the channel levels the mixer should scale by
// OutputLevel this tick. By default the active cue's snapshot is shown
// instantaneously. With Interpolate set, an active cue fade blends each
// channel linearly from the previous cue's levels; flash-up fades never
// interpolate because they have no cue transition behind them.
func (e *Executor) OutputLevels() dmx.Frame {
	if !e.Interpolate || !e.fading || !e.fadeFromCue || len(e.Cues) == 0 {
		return e.storedLevels
	}
	fadeTime := e.Cues[e.CurrentIndex].FadeTime
	if fadeTime <= 0 {
		return e.storedLevels
	}
	progress := e.fadeProgress(fadeTime)
	var out dmx.Frame
	for i := range out {
		from := float64(e.previousLevels[i])
		to := float64(e.storedLevels[i])
		out[i] = dmx.ClampLevel(from + (to-from)*progress)
	}
	return out
}

// StoreCue appends a new cue holding the given levels and returns its id.
// Ids are allocated one past the highest id in the list, so renumbered
// lists keep allocating unique ids.
func (e *Executor) StoreCue(levels dmx.Frame) int {
	id := 1
	for _, c := range e.Cues {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	cue := NewCue(id)
	cue.Levels = levels
	e.Cues = append(e.Cues, cue)
	return id
}

// RenameCue relabels the cue with the given id.
func (e *Executor) RenameCue(cueID int, name string) error {
	for i := range e.Cues {
		if e.Cues[i].ID == cueID {
			e.Cues[i].Name = name
			return nil
		}
	}
	return fmt.Errorf("executor %d: no cue with id %d", e.ID, cueID)
}

// ClearCues drops every cue and resets playback. The output level falls
// back to tracking the raw fader.
func (e *Executor) ClearCues() {
	e.Cues = nil
	e.CurrentIndex = 0
	e.CurrentCueID = 0
	e.storedLevels = dmx.Frame{}
	e.previousLevels = dmx.Frame{}
	e.fading = false
}

// CueIndex resolves a cue id to its list index, -1 when absent.
func (e *Executor) CueIndex(cueID int) int {
	for i := range e.Cues {
		if e.Cues[i].ID == cueID {
			return i
		}
	}
	return -1
}
