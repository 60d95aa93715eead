// Package playback owns the cue lists and the executor fade engine: the
// part of the console that turns stored snapshots and fader positions
// into per-tick output levels.
package playback

import (
	"fmt"

	"github.com/showdesk/showdesk/dmx"
)

// Cue is a full-frame snapshot with timing. Cue ids are unique within
// their owning executor's list, not globally.
type Cue struct {
	ID       int
	Name     string
	FadeTime float64 // seconds to transition into this cue
	Delay    float64 // seconds before the fade starts
	Levels   dmx.Frame
}

// NewCue builds an empty cue with its default display name.
func NewCue(id int) Cue {
	return Cue{ID: id, Name: fmt.Sprintf("Cue %d", id)}
}
