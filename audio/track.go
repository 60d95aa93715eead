// Package audio plays show tracks: concurrent playback with per-track
// volume, timed fade-ins on a detached timeline, and end-of-track events
// the show layer polls to chain tracks together.
package audio

import "fmt"

// Action selects what happens after a track finishes.
type Action int

const (
	// ActionNone plays the track and stops.
	ActionNone Action = iota
	// ActionFollow starts the next track when this one finishes.
	ActionFollow
	// ActionContinue starts the next track at the same time as this one.
	ActionContinue
)

func (a Action) String() string {
	switch a {
	case ActionFollow:
		return "Follow"
	case ActionContinue:
		return "Continue"
	default:
		return "None"
	}
}

// Track describes one audio file in the show. End of 0 means play to the
// natural end of the file.
type Track struct {
	ID       int
	Name     string
	Path     string
	FadeIn   float64 // seconds
	FadeOut  float64 // seconds
	Start    float64 // start offset, seconds
	End      float64 // optional end offset, seconds; 0 = full length
	Volume   float64 // 0..1
	Duration float64 // cached total length, seconds
	Action   Action
}

// NewTrack builds a track with full volume and no fades.
func NewTrack(id int, name, path string) *Track {
	return &Track{ID: id, Name: name, Path: path, Volume: 1.0}
}

func (t *Track) String() string {
	return fmt.Sprintf("track %d (%s)", t.ID, t.Name)
}
