// Package desk ties the console together: the shared state aggregate,
// the per-tick mixing pipeline, the command interpreter, and the OSC
// remote-control router. Everything here runs on the single tick thread;
// the audio engine is the only collaborator with background execution.
package desk

import (
	"github.com/showdesk/showdesk/audio"
	"github.com/showdesk/showdesk/dmx"
	"github.com/showdesk/showdesk/playback"
)

// DefaultExecutorCount is the stock eight-fader layout.
const DefaultExecutorCount = 8

// historyWindow bounds how much command history is shown at once.
// Storage is append-only; only the display window is bounded.
const historyWindow = 10

// oscHistoryLimit bounds the remote-control message log. Unlike command
// history the OSC log is capped in storage, old entries are dropped.
const oscHistoryLimit = 20

// State is the whole console: every subsystem mutates it through explicit
// calls on the tick thread, and presentation reads it without holding its
// own copy of truth.
type State struct {
	// Lighting
	Executors    []*playback.Executor
	Buffer       dmx.Buffer
	Fixtures     []*dmx.Fixture
	Groups       []*dmx.Group
	Templates    *dmx.Library
	MasterDimmer float64

	// Audio
	Tracks       []*audio.Track
	Audio        *audio.Engine
	AudioIndex   int
	MasterVolume float64

	// Command console
	History      []Command
	CommandError string

	// Transport health, recorded by the mixer every tick.
	DMXConnected bool
	DMXError     string

	// Remote control
	Naming     OSCNaming
	OSCHistory []string

	lastFrame dmx.Frame
	sentOnce  bool
}

// NewState builds a console with the given number of empty executors,
// the predefined template library, and both masters at full.
func NewState(executorCount int) *State {
	s := &State{
		Templates:    dmx.NewLibrary(),
		MasterDimmer: 1.0,
		MasterVolume: 1.0,
		Naming:       DefaultNaming(),
	}
	for i := 0; i < executorCount; i++ {
		s.Executors = append(s.Executors, playback.NewExecutor(i))
	}
	return s
}

// Executor returns the executor with the given 1-based number, nil if out
// of range. Operators and remote messages count executors from 1.
func (s *State) Executor(number int) *playback.Executor {
	idx := number - 1
	if idx < 0 || idx >= len(s.Executors) {
		return nil
	}
	return s.Executors[idx]
}

// Fixture looks a fixture up by id, nil if unknown.
func (s *State) Fixture(id int) *dmx.Fixture {
	for _, f := range s.Fixtures {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Track looks a track up by id, nil if unknown.
func (s *State) Track(id int) *audio.Track {
	for _, t := range s.Tracks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RecentHistory returns the display window of the command history, newest
// last.
func (s *State) RecentHistory() []Command {
	if len(s.History) <= historyWindow {
		return s.History
	}
	return s.History[len(s.History)-historyWindow:]
}

// ToggleBlackout flips the master dimmer between 0 and 1.
func (s *State) ToggleBlackout() {
	if s.MasterDimmer != 0 {
		s.MasterDimmer = 0
	} else {
		s.MasterDimmer = 1
	}
}

// StoreBufferToExecutor snapshots the override buffer into a new cue on
// the given executor and returns the new cue's id.
func (s *State) StoreBufferToExecutor(exec *playback.Executor) int {
	return exec.StoreCue(s.Buffer.Levels())
}
